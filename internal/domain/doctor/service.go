package doctor

import (
	"context"

	"github.com/clinichq/hms/internal/domain/record"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates presence of every required field and appends the record.
// The id is assigned by the repository.
func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return &record.ValidationError{Field: "name"}
	}
	if d.Specialization == "" {
		return &record.ValidationError{Field: "specialization"}
	}
	if !d.Availability.Valid() {
		return &record.ValidationError{Field: "availability"}
	}
	if d.Rating <= 0 || d.Rating > 5 {
		return &record.ValidationError{Field: "rating"}
	}
	return s.repo.Insert(ctx, d)
}

// Update merges the patch onto the stored record. Fields the patch leaves
// nil keep their values.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Doctor, error) {
	old, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "doctor", ID: id}
	}
	if patch.Availability != nil && !patch.Availability.Valid() {
		return nil, &record.ValidationError{Field: "availability"}
	}
	if patch.Rating != nil && (*patch.Rating <= 0 || *patch.Rating > 5) {
		return nil, &record.ValidationError{Field: "rating"}
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

func (s *Service) Get(id int) (*Doctor, error) {
	d, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "doctor", ID: id}
	}
	return d, nil
}

// List returns all doctors in insertion order.
func (s *Service) List() []*Doctor {
	return s.repo.List()
}

// Filter applies the criteria to the current snapshot.
func (s *Service) Filter(c Criteria) []*Doctor {
	return Filter(s.repo.List(), c)
}

// Resolve looks up a doctor for display. Dangling references resolve to
// the Unknown sentinel, never an error.
func (s *Service) Resolve(id int) Ref {
	d, ok := s.repo.GetByID(id)
	if !ok {
		return UnknownRef(id)
	}
	return Ref{ID: d.ID, Name: d.Name, Known: true}
}
