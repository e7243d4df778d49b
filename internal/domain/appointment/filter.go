package appointment

// Criteria are ANDed together; a zero-value criterion passes everything.
type Criteria struct {
	Date      string // exact YYYY-MM-DD match
	Status    Status
	PatientID int
	DoctorID  int
}

// Filter returns the appointments matching all supplied criteria,
// preserving collection order. Dates compare as strings; the stored
// format sorts and equates correctly.
func Filter(apts []*Appointment, c Criteria) []*Appointment {
	out := make([]*Appointment, 0, len(apts))
	for _, a := range apts {
		if c.Date != "" && a.Date != c.Date {
			continue
		}
		if c.Status != "" && a.Status != c.Status {
			continue
		}
		if c.PatientID != 0 && a.PatientID != c.PatientID {
			continue
		}
		if c.DoctorID != 0 && a.DoctorID != c.DoctorID {
			continue
		}
		out = append(out, a)
	}
	return out
}
