package doctor

import "strings"

// Criteria are ANDed together; a zero-value criterion passes everything.
type Criteria struct {
	Search         string // case-insensitive substring of name
	Specialization string
	Availability   Availability
}

// Filter returns the doctors matching all supplied criteria, preserving
// collection order.
func Filter(doctors []*Doctor, c Criteria) []*Doctor {
	search := strings.ToLower(c.Search)
	out := make([]*Doctor, 0, len(doctors))
	for _, d := range doctors {
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		if c.Specialization != "" && d.Specialization != c.Specialization {
			continue
		}
		if c.Availability != "" && d.Availability != c.Availability {
			continue
		}
		out = append(out, d)
	}
	return out
}
