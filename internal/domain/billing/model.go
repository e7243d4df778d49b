package billing

// Status is the payment state of a billing record. Only Paid records count
// toward revenue.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// Record is one billing entry. Date is stamped with the current date on
// creation and never changed by updates. The patient reference is not
// enforced; a dangling one renders as "Unknown" at display time.
type Record struct {
	ID        int     `json:"id"`
	PatientID int     `json:"patientId"`
	Services  string  `json:"services"`
	Amount    float64 `json:"amount"`
	Status    Status  `json:"status"`
	Date      string  `json:"date"` // YYYY-MM-DD
}

func (r *Record) GetID() int   { return r.ID }
func (r *Record) SetID(id int) { r.ID = id }

// Patch lists the fields an update may change. Nil fields are preserved;
// ID, PatientID and Date are deliberately absent.
type Patch struct {
	Services *string  `json:"services,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Status   *Status  `json:"status,omitempty"`
}

// Apply merges the patch onto a copy of old and returns the result.
func (p Patch) Apply(old Record) Record {
	out := old
	if p.Services != nil {
		out.Services = *p.Services
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out
}

// View is a billing record decorated with the resolved patient name.
type View struct {
	Record
	PatientName string `json:"patientName"`
}

// Seed returns the fixed sample billing records installed on first run.
func Seed() []*Record {
	return []*Record{
		{ID: 1, PatientID: 1, Services: "Cardiac Consultation", Amount: 150, Status: StatusPaid, Date: "2024-01-15"},
		{ID: 2, PatientID: 2, Services: "Neurological Exam", Amount: 200, Status: StatusPending, Date: "2024-01-16"},
	}
}
