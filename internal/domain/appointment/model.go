package appointment

// Status is the lifecycle state of an appointment. New appointments always
// start Pending regardless of what the caller supplies.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment links a patient and a doctor to a date and time slot. The
// references are not enforced: deleting either side leaves the appointment
// in place and the name resolves to "Unknown" at display time.
type Appointment struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patientId"`
	DoctorID  int    `json:"doctorId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Status    Status `json:"status"`
}

func (a *Appointment) GetID() int   { return a.ID }
func (a *Appointment) SetID(id int) { a.ID = id }

// Patch lists the fields an update may change. Nil fields are preserved.
type Patch struct {
	PatientID *int    `json:"patientId,omitempty"`
	DoctorID  *int    `json:"doctorId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// Apply merges the patch onto a copy of old and returns the result.
func (p Patch) Apply(old Appointment) Appointment {
	out := old
	if p.PatientID != nil {
		out.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		out.DoctorID = *p.DoctorID
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out
}

// View is an appointment decorated with the resolved patient and doctor
// names for display.
type View struct {
	Appointment
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
}

// Seed returns the fixed sample appointments installed on first run.
func Seed() []*Appointment {
	return []*Appointment{
		{ID: 1, PatientID: 1, DoctorID: 1, Date: "2024-01-15", Time: "09:00", Status: StatusConfirmed},
		{ID: 2, PatientID: 2, DoctorID: 2, Date: "2024-01-15", Time: "10:30", Status: StatusPending},
	}
}
