package billing

import (
	"context"
	"time"

	"github.com/clinichq/hms/internal/domain/patient"
	"github.com/clinichq/hms/internal/domain/record"
)

// Service owns billing records. It holds the patient service for
// display-time name resolution only.
type Service struct {
	repo     Repository
	patients *patient.Service
	now      func() time.Time
}

func NewService(repo Repository, patients *patient.Service) *Service {
	return &Service{repo: repo, patients: patients, now: time.Now}
}

// Create validates presence of the required fields, stamps Date with the
// current date, and appends the record.
func (s *Service) Create(ctx context.Context, r *Record) error {
	if r.PatientID == 0 {
		return &record.ValidationError{Field: "patientId"}
	}
	if r.Services == "" {
		return &record.ValidationError{Field: "services"}
	}
	if r.Amount <= 0 {
		return &record.ValidationError{Field: "amount"}
	}
	if !r.Status.Valid() {
		return &record.ValidationError{Field: "status"}
	}
	r.Date = s.now().Format("2006-01-02")
	return s.repo.Insert(ctx, r)
}

// Update merges the patch onto the stored record. Fields the patch leaves
// nil keep their values; Date is never touched.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Record, error) {
	old, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "billing record", ID: id}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, &record.ValidationError{Field: "status"}
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, &record.ValidationError{Field: "amount"}
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

func (s *Service) Get(id int) (*Record, error) {
	r, ok := s.repo.GetByID(id)
	if !ok {
		return nil, &record.NotFoundError{Kind: "billing record", ID: id}
	}
	return r, nil
}

// List returns all billing records in insertion order.
func (s *Service) List() []*Record {
	return s.repo.List()
}

// Filter applies the criteria to the current snapshot.
func (s *Service) Filter(c Criteria) []*Record {
	return Filter(s.repo.List(), c)
}

// Revenue sums the amounts of all Paid records.
func (s *Service) Revenue() float64 {
	var total float64
	for _, r := range s.repo.List() {
		if r.Status == StatusPaid {
			total += r.Amount
		}
	}
	return total
}

// Views decorates each record with the patient name. Dangling references
// render as "Unknown".
func (s *Service) Views(recs []*Record) []View {
	out := make([]View, 0, len(recs))
	for _, r := range recs {
		out = append(out, s.View(r))
	}
	return out
}

func (s *Service) View(r *Record) View {
	return View{
		Record:      *r,
		PatientName: s.patients.Resolve(r.PatientID).Name,
	}
}
