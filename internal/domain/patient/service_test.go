package patient

import (
	"context"
	"testing"
	"time"

	"github.com/clinichq/hms/internal/domain/record"
	"github.com/clinichq/hms/internal/platform/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := NewRepo(context.Background(), store.NewMemoryStore())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validPatient() *Patient {
	return &Patient{Name: "Alice Brown", Age: 30, Gender: GenderFemale, Contact: "+1-555-0200", Condition: "Dermatology"}
}

func TestSeedInstalledOnFirstRun(t *testing.T) {
	svc := newTestService(t)
	got := svc.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 seeded patients, got %d", len(got))
	}
	if got[0].Name != "John Doe" || got[2].Name != "Mike Johnson" {
		t.Errorf("unexpected seed order: %q, %q", got[0].Name, got[2].Name)
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	svc := newTestService(t)
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != 4 {
		t.Errorf("expected id 4 after seed, got %d", p.ID)
	}
}

func TestCreateStampsLastVisit(t *testing.T) {
	svc := newTestService(t)
	p := validPatient()
	p.LastVisit = "1999-01-01" // caller-supplied value is discarded
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.LastVisit != "2024-02-01" {
		t.Errorf("expected lastVisit 2024-02-01, got %q", p.LastVisit)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Patient)
	}{
		{"name", func(p *Patient) { p.Name = "" }},
		{"age", func(p *Patient) { p.Age = 0 }},
		{"age", func(p *Patient) { p.Age = -1 }},
		{"gender", func(p *Patient) { p.Gender = "" }},
		{"gender", func(p *Patient) { p.Gender = "Unknown" }},
		{"contact", func(p *Patient) { p.Contact = "" }},
		{"condition", func(p *Patient) { p.Condition = "" }},
	}
	for _, tt := range tests {
		svc := newTestService(t)
		p := validPatient()
		tt.mutate(p)
		err := svc.Create(context.Background(), p)
		if !record.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tt.field, err)
			continue
		}
		if got := err.Error(); got != tt.field+" is required" {
			t.Errorf("expected %q error, got %q", tt.field, got)
		}
	}
}

func TestUpdatePreservesUnsetFields(t *testing.T) {
	svc := newTestService(t)
	cond := "Oncology"
	updated, err := svc.Update(context.Background(), 1, Patch{Condition: &cond})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Condition != "Oncology" {
		t.Errorf("expected condition updated, got %q", updated.Condition)
	}
	if updated.Name != "John Doe" || updated.Age != 35 || updated.Contact != "+1-555-0123" {
		t.Errorf("unset fields changed: %+v", updated)
	}
	if updated.LastVisit != "2024-01-10" {
		t.Errorf("lastVisit must never change on update, got %q", updated.LastVisit)
	}
}

func TestUpdateMissingPatient(t *testing.T) {
	svc := newTestService(t)
	name := "Nobody"
	_, err := svc.Update(context.Background(), 99, Patch{Name: &name})
	if !record.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	svc := newTestService(t)
	bad := Gender("Robot")
	if _, err := svc.Update(context.Background(), 1, Patch{Gender: &bad}); !record.IsValidation(err) {
		t.Errorf("expected validation error for gender, got %v", err)
	}
	age := -5
	if _, err := svc.Update(context.Background(), 1, Patch{Age: &age}); !record.IsValidation(err) {
		t.Errorf("expected validation error for age, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(2); !record.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, 2); !record.IsNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	svc := newTestService(t)
	ref := svc.Resolve(1)
	if !ref.Known || ref.Name != "John Doe" {
		t.Errorf("expected resolved ref, got %+v", ref)
	}
	ref = svc.Resolve(42)
	if ref.Known || ref.Name != "Unknown" {
		t.Errorf("expected Unknown sentinel, got %+v", ref)
	}
}
