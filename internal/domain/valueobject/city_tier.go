package valueobject

import "fmt"

// CityTier is the 1/2/3 economic tier of a city.
type CityTier struct {
	value int
}

var (
	CityTier1 = CityTier{value: 1}
	CityTier2 = CityTier{value: 2}
	CityTier3 = CityTier{value: 3}
)

var tier1Cities = map[string]struct{}{
	"Mumbai": {}, "Delhi": {}, "Bangalore": {}, "Chennai": {}, "Kolkata": {},
	"Hyderabad": {}, "Pune": {},
}

var tier2Cities = map[string]struct{}{
	"Jaipur": {}, "Chandigarh": {}, "Indore": {}, "Lucknow": {}, "Patna": {},
	"Ranchi": {}, "Visakhapatnam": {}, "Coimbatore": {}, "Bhopal": {},
	"Nagpur": {}, "Vadodara": {}, "Surat": {}, "Rajkot": {}, "Jodhpur": {},
	"Raipur": {}, "Amritsar": {}, "Varanasi": {}, "Agra": {}, "Dehradun": {},
	"Mysore": {}, "Jabalpur": {}, "Guwahati": {}, "Thiruvananthapuram": {},
	"Ludhiana": {}, "Nashik": {}, "Allahabad": {}, "Udaipur": {},
	"Aurangabad": {}, "Hubli": {}, "Belgaum": {}, "Salem": {}, "Vijayawada": {},
	"Tiruchirappalli": {}, "Bhavnagar": {}, "Gwalior": {}, "Dhanbad": {},
	"Bareilly": {}, "Aligarh": {}, "Gaya": {}, "Kozhikode": {}, "Warangal": {},
	"Kolhapur": {}, "Bilaspur": {}, "Jalandhar": {}, "Noida": {}, "Guntur": {},
	"Asansol": {}, "Siliguri": {},
}

// CityTierOf looks city up in the fixed tier lists. The lookup is exact and
// case-sensitive; anything not listed is tier 3.
func CityTierOf(city string) CityTier {
	if _, ok := tier1Cities[city]; ok {
		return CityTier1
	}
	if _, ok := tier2Cities[city]; ok {
		return CityTier2
	}
	return CityTier3
}

// CityTierFromInt reconstructs a CityTier from storage.
func CityTierFromInt(v int) (CityTier, error) {
	switch v {
	case 1:
		return CityTier1, nil
	case 2:
		return CityTier2, nil
	case 3:
		return CityTier3, nil
	default:
		return CityTier{}, fmt.Errorf("invalid city tier: %d", v)
	}
}

// Int returns the numeric tier.
func (t CityTier) Int() int {
	return t.value
}

// String returns the tier as a decimal string.
func (t CityTier) String() string {
	return fmt.Sprintf("%d", t.value)
}
