package patient

import (
	"context"
	"time"

	"github.com/clinichq/hms/internal/domain/record"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates presence of every required field, stamps LastVisit with
// the current date, and appends the record. The id is assigned by the
// repository. On a persistence failure the record is still returned: it
// exists in memory.
func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return &record.ValidationError{Field: "name"}
	}
	if p.Age <= 0 {
		return &record.ValidationError{Field: "age"}
	}
	if !p.Gender.Valid() {
		return &record.ValidationError{Field: "gender"}
	}
	if p.Contact == "" {
		return &record.ValidationError{Field: "contact"}
	}
	if p.Condition == "" {
		return &record.ValidationError{Field: "condition"}
	}
	p.LastVisit = s.now().Format("2006-01-02")
	return s.repo.Insert(ctx, p)
}

// Update merges the patch onto the stored record. Fields the patch leaves
// nil keep their values; LastVisit is never touched.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Patient, error) {
	old, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "patient", ID: id}
	}
	if patch.Gender != nil && !patch.Gender.Valid() {
		return nil, &record.ValidationError{Field: "gender"}
	}
	if patch.Age != nil && *patch.Age <= 0 {
		return nil, &record.ValidationError{Field: "age"}
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

func (s *Service) Get(id int) (*Patient, error) {
	p, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "patient", ID: id}
	}
	return p, nil
}

// List returns all patients in insertion order.
func (s *Service) List() []*Patient {
	return s.repo.List()
}

// Filter applies the criteria to the current snapshot.
func (s *Service) Filter(c Criteria) []*Patient {
	return Filter(s.repo.List(), c)
}

// Resolve looks up a patient for display. Dangling references resolve to
// the Unknown sentinel, never an error.
func (s *Service) Resolve(id int) Ref {
	p, ok := s.repo.GetByID(id)
	if !ok {
		return UnknownRef(id)
	}
	return Ref{ID: p.ID, Name: p.Name, Known: true}
}
