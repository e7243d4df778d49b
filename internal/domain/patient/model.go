package patient

// Gender is the closed set of gender labels a patient record can carry.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient is one patient record. LastVisit is set to the current date on
// creation and never changed by updates.
type Patient struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    Gender `json:"gender"`
	Contact   string `json:"contact"`
	Condition string `json:"condition"`
	LastVisit string `json:"lastVisit,omitempty"`
}

func (p *Patient) GetID() int   { return p.ID }
func (p *Patient) SetID(id int) { p.ID = id }

// Patch lists the fields an update may change. Nil fields are preserved;
// ID and LastVisit are deliberately absent.
type Patch struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Gender    *Gender `json:"gender,omitempty"`
	Contact   *string `json:"contact,omitempty"`
	Condition *string `json:"condition,omitempty"`
}

// Apply merges the patch onto a copy of old and returns the result.
func (p Patch) Apply(old Patient) Patient {
	out := old
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Age != nil {
		out.Age = *p.Age
	}
	if p.Gender != nil {
		out.Gender = *p.Gender
	}
	if p.Contact != nil {
		out.Contact = *p.Contact
	}
	if p.Condition != nil {
		out.Condition = *p.Condition
	}
	return out
}

// Ref is a display-time reference to a patient. Unresolved references carry
// the "Unknown" sentinel instead of failing.
type Ref struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

func UnknownRef(id int) Ref {
	return Ref{ID: id, Name: "Unknown"}
}

// Seed returns the fixed sample patients installed on first run.
func Seed() []*Patient {
	return []*Patient{
		{ID: 1, Name: "John Doe", Age: 35, Gender: GenderMale, Contact: "+1-555-0123", Condition: "Cardiology", LastVisit: "2024-01-10"},
		{ID: 2, Name: "Jane Smith", Age: 28, Gender: GenderFemale, Contact: "+1-555-0124", Condition: "Neurology", LastVisit: "2024-01-12"},
		{ID: 3, Name: "Mike Johnson", Age: 42, Gender: GenderMale, Contact: "+1-555-0125", Condition: "Orthopedics", LastVisit: "2024-01-14"},
	}
}
