package valueobject

import "fmt"

// Occupation is the applicant's employment category.
type Occupation struct {
	value string
}

var (
	OccupationRetired       = Occupation{value: "retired"}
	OccupationFreelancer    = Occupation{value: "freelancer"}
	OccupationStudent       = Occupation{value: "student"}
	OccupationGovernmentJob = Occupation{value: "government_job"}
	OccupationBusinessOwner = Occupation{value: "business_owner"}
	OccupationUnemployed    = Occupation{value: "unemployed"}
	OccupationPrivateJob    = Occupation{value: "private_job"}
)

var occupations = []Occupation{
	OccupationRetired,
	OccupationFreelancer,
	OccupationStudent,
	OccupationGovernmentJob,
	OccupationBusinessOwner,
	OccupationUnemployed,
	OccupationPrivateJob,
}

// OccupationFromString parses an occupation. Matching is exact.
func OccupationFromString(s string) (Occupation, error) {
	for _, o := range occupations {
		if o.value == s {
			return o, nil
		}
	}
	return Occupation{}, fmt.Errorf("invalid occupation: %q", s)
}

// OccupationValues lists the accepted occupation strings in canonical order.
func OccupationValues() []string {
	values := make([]string, len(occupations))
	for i, o := range occupations {
		values[i] = o.value
	}
	return values
}

// String returns the string representation.
func (o Occupation) String() string {
	return o.value
}

// IsZero returns true if the Occupation has not been set.
func (o Occupation) IsZero() bool {
	return o.value == ""
}
