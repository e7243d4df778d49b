package patient

import "strings"

// AgeBucket is one of the fixed age ranges the patient list can be
// filtered by. Boundaries are inclusive on both ends.
type AgeBucket string

const (
	AgeBucketChild      AgeBucket = "0-18"
	AgeBucketYoungAdult AgeBucket = "19-30"
	AgeBucketAdult      AgeBucket = "31-50"
	AgeBucketSenior     AgeBucket = "51+"
)

func (b AgeBucket) Valid() bool {
	switch b {
	case AgeBucketChild, AgeBucketYoungAdult, AgeBucketAdult, AgeBucketSenior:
		return true
	}
	return false
}

func (b AgeBucket) Contains(age int) bool {
	switch b {
	case AgeBucketChild:
		return age <= 18
	case AgeBucketYoungAdult:
		return age >= 19 && age <= 30
	case AgeBucketAdult:
		return age >= 31 && age <= 50
	case AgeBucketSenior:
		return age >= 51
	}
	return false
}

// Criteria are ANDed together; a zero-value criterion passes everything.
type Criteria struct {
	Search    string // case-insensitive substring of name or contact
	Gender    Gender
	Condition string
	AgeBucket AgeBucket
}

// Filter returns the patients matching all supplied criteria, preserving
// collection order. It is a pure linear scan over the snapshot.
func Filter(patients []*Patient, c Criteria) []*Patient {
	search := strings.ToLower(c.Search)
	out := make([]*Patient, 0, len(patients))
	for _, p := range patients {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Contact), search) {
			continue
		}
		if c.Gender != "" && p.Gender != c.Gender {
			continue
		}
		if c.Condition != "" && p.Condition != c.Condition {
			continue
		}
		if c.AgeBucket != "" && !c.AgeBucket.Contains(p.Age) {
			continue
		}
		out = append(out, p)
	}
	return out
}
