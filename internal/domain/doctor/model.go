package doctor

// Availability tracks whether a doctor can currently take appointments.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
	AvailabilityOnLeave   Availability = "On Leave"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOnLeave:
		return true
	}
	return false
}

// Doctor is one doctor record. Rating is a satisfaction score on a
// 0-5 scale.
type Doctor struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Specialization string       `json:"specialization"`
	Availability   Availability `json:"availability"`
	Rating         float64      `json:"rating"`
}

func (d *Doctor) GetID() int   { return d.ID }
func (d *Doctor) SetID(id int) { d.ID = id }

// Patch lists the fields an update may change. Nil fields are preserved.
type Patch struct {
	Name           *string       `json:"name,omitempty"`
	Specialization *string       `json:"specialization,omitempty"`
	Availability   *Availability `json:"availability,omitempty"`
	Rating         *float64      `json:"rating,omitempty"`
}

// Apply merges the patch onto a copy of old and returns the result.
func (p Patch) Apply(old Doctor) Doctor {
	out := old
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Specialization != nil {
		out.Specialization = *p.Specialization
	}
	if p.Availability != nil {
		out.Availability = *p.Availability
	}
	if p.Rating != nil {
		out.Rating = *p.Rating
	}
	return out
}

// Ref is a display-time reference to a doctor. Unresolved references carry
// the "Unknown" sentinel instead of failing.
type Ref struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

func UnknownRef(id int) Ref {
	return Ref{ID: id, Name: "Unknown"}
}

// Seed returns the fixed sample doctors installed on first run.
func Seed() []*Doctor {
	return []*Doctor{
		{ID: 1, Name: "Dr. Emily Davis", Specialization: "Cardiology", Availability: AvailabilityAvailable, Rating: 4.8},
		{ID: 2, Name: "Dr. Robert Wilson", Specialization: "Neurology", Availability: AvailabilityBusy, Rating: 4.9},
		{ID: 3, Name: "Dr. Michael Chen", Specialization: "General Medicine", Availability: AvailabilityOnLeave, Rating: 4.6},
	}
}
