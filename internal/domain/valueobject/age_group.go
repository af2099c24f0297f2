package valueobject

import "fmt"

// AgeGroup buckets the applicant's age.
type AgeGroup struct {
	value string
}

var (
	AgeGroupYoung      = AgeGroup{value: "young"}
	AgeGroupAdult      = AgeGroup{value: "adult"}
	AgeGroupMiddleAged = AgeGroup{value: "middle-aged"}
	AgeGroupSenior     = AgeGroup{value: "senior"}
)

// AgeGroupFor derives the bucket. Each boundary belongs to the older group:
// 25 is adult, 45 is middle-aged, 60 is senior.
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age < 25:
		return AgeGroupYoung
	case age < 45:
		return AgeGroupAdult
	case age < 60:
		return AgeGroupMiddleAged
	default:
		return AgeGroupSenior
	}
}

// AgeGroupFromString reconstructs an AgeGroup from storage.
func AgeGroupFromString(s string) (AgeGroup, error) {
	switch s {
	case "young":
		return AgeGroupYoung, nil
	case "adult":
		return AgeGroupAdult, nil
	case "middle-aged":
		return AgeGroupMiddleAged, nil
	case "senior":
		return AgeGroupSenior, nil
	default:
		return AgeGroup{}, fmt.Errorf("invalid age group: %q", s)
	}
}

// String returns the string representation.
func (g AgeGroup) String() string {
	return g.value
}
