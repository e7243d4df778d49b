package billing

// Criteria are ANDed together; a zero-value criterion passes everything.
type Criteria struct {
	Status    Status
	PatientID int
}

// Filter returns the billing records matching all supplied criteria,
// preserving collection order.
func Filter(recs []*Record, c Criteria) []*Record {
	out := make([]*Record, 0, len(recs))
	for _, r := range recs {
		if c.Status != "" && r.Status != c.Status {
			continue
		}
		if c.PatientID != 0 && r.PatientID != c.PatientID {
			continue
		}
		out = append(out, r)
	}
	return out
}
