package appointment

import (
	"context"

	"github.com/clinichq/hms/internal/domain/doctor"
	"github.com/clinichq/hms/internal/domain/patient"
	"github.com/clinichq/hms/internal/domain/record"
)

// Service owns appointment records. It holds the patient and doctor
// services for display-time name resolution only; references are never
// checked against them on create or update.
type Service struct {
	repo     Repository
	patients *patient.Service
	doctors  *doctor.Service
}

func NewService(repo Repository, patients *patient.Service, doctors *doctor.Service) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

// Create validates presence of the required fields and appends the record.
// The status is forced to Pending; whatever the caller set is discarded.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == 0 {
		return &record.ValidationError{Field: "patientId"}
	}
	if a.DoctorID == 0 {
		return &record.ValidationError{Field: "doctorId"}
	}
	if a.Date == "" {
		return &record.ValidationError{Field: "date"}
	}
	if a.Time == "" {
		return &record.ValidationError{Field: "time"}
	}
	a.Status = StatusPending
	return s.repo.Insert(ctx, a)
}

// Update merges the patch onto the stored record. Unlike create, a patch
// may set any valid status.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Appointment, error) {
	old, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "appointment", ID: id}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, &record.ValidationError{Field: "status"}
	}
	updated := patch.Apply(*old)
	if err := s.repo.Replace(ctx, &updated); err != nil {
		return &updated, err
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) Get(id int) (*Appointment, error) {
	a, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "appointment", ID: id}
	}
	return a, nil
}

// List returns all appointments in insertion order.
func (s *Service) List() []*Appointment {
	return s.repo.List()
}

// Filter applies the criteria to the current snapshot.
func (s *Service) Filter(c Criteria) []*Appointment {
	return Filter(s.repo.List(), c)
}

// Views decorates each appointment with the patient and doctor names.
// Dangling references render as "Unknown".
func (s *Service) Views(apts []*Appointment) []View {
	out := make([]View, 0, len(apts))
	for _, a := range apts {
		out = append(out, s.View(a))
	}
	return out
}

func (s *Service) View(a *Appointment) View {
	return View{
		Appointment: *a,
		PatientName: s.patients.Resolve(a.PatientID).Name,
		DoctorName:  s.doctors.Resolve(a.DoctorID).Name,
	}
}
