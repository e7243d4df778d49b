package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/clinichq/hms/internal/domain/appointment"
	"github.com/clinichq/hms/internal/domain/billing"
	"github.com/clinichq/hms/internal/domain/doctor"
	"github.com/clinichq/hms/internal/domain/patient"
	"github.com/clinichq/hms/internal/platform/store"
)

func newTestService(t *testing.T) (*Service, *appointment.Service, *patient.Service) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemoryStore()

	patientRepo, err := patient.NewRepo(ctx, st)
	if err != nil {
		t.Fatalf("patient repo: %v", err)
	}
	doctorRepo, err := doctor.NewRepo(ctx, st)
	if err != nil {
		t.Fatalf("doctor repo: %v", err)
	}
	appointmentRepo, err := appointment.NewRepo(ctx, st)
	if err != nil {
		t.Fatalf("appointment repo: %v", err)
	}
	billingRepo, err := billing.NewRepo(ctx, st)
	if err != nil {
		t.Fatalf("billing repo: %v", err)
	}

	patientSvc := patient.NewService(patientRepo)
	doctorSvc := doctor.NewService(doctorRepo)
	appointmentSvc := appointment.NewService(appointmentRepo, patientSvc, doctorSvc)
	billingSvc := billing.NewService(billingRepo, patientSvc)

	svc := NewService(patientSvc, doctorSvc, appointmentSvc, billingSvc)
	// Both seeded appointments fall on this day.
	svc.now = func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }
	return svc, appointmentSvc, patientSvc
}

func TestDashboardFromSeedData(t *testing.T) {
	svc, _, _ := newTestService(t)
	got := svc.Dashboard()

	if got.TotalPatients != 3 {
		t.Errorf("expected 3 patients, got %d", got.TotalPatients)
	}
	if got.TotalDoctors != 3 {
		t.Errorf("expected 3 doctors, got %d", got.TotalDoctors)
	}
	if got.TodayAppointments != 2 {
		t.Errorf("expected 2 appointments today, got %d", got.TodayAppointments)
	}
	if got.TotalRevenue != 150 {
		t.Errorf("expected revenue 150, got %v", got.TotalRevenue)
	}
}

func TestTodayCountUsesExactDateMatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.now = func() time.Time { return time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC) }
	if got := svc.Dashboard().TodayAppointments; got != 0 {
		t.Errorf("expected 0 appointments on 2024-01-16, got %d", got)
	}
}

func TestReportIncludesAppointmentTotal(t *testing.T) {
	svc, appointments, _ := newTestService(t)
	a := &appointment.Appointment{PatientID: 1, DoctorID: 1, Date: "2024-02-01", Time: "11:00"}
	if err := appointments.Create(context.Background(), a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	got := svc.Report()
	if got.TotalAppointments != 3 {
		t.Errorf("expected 3 appointments, got %d", got.TotalAppointments)
	}
	if got.TodayAppointments != 2 {
		t.Errorf("expected 2 appointments today, got %d", got.TodayAppointments)
	}
}

func TestUpcomingSkipsClosedAppointments(t *testing.T) {
	svc, appointments, _ := newTestService(t)
	ctx := context.Background()

	cancelled := appointment.StatusCancelled
	if _, err := appointments.Update(ctx, 1, appointment.Patch{Status: &cancelled}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := svc.Upcoming(5)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only appointment 2, got %v", got)
	}
	if got[0].PatientName != "Jane Smith" || got[0].DoctorName != "Dr. Robert Wilson" {
		t.Errorf("expected resolved names, got %q / %q", got[0].PatientName, got[0].DoctorName)
	}
}

func TestUpcomingHonorsLimit(t *testing.T) {
	svc, appointments, _ := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		a := &appointment.Appointment{PatientID: 1, DoctorID: 1, Date: "2024-02-01", Time: "11:00"}
		if err := appointments.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if got := svc.Upcoming(2); len(got) != 2 {
		t.Errorf("expected 2, got %d", len(got))
	}
}

func TestRecentPatientsNewestFirst(t *testing.T) {
	svc, _, patients := newTestService(t)
	p := &patient.Patient{Name: "Alice Brown", Age: 30, Gender: patient.GenderFemale, Contact: "+1-555-0200", Condition: "Dermatology"}
	if err := patients.Create(context.Background(), p); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	got := svc.RecentPatients(2)
	if len(got) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(got))
	}
	if got[0].Name != "Alice Brown" || got[1].Name != "Mike Johnson" {
		t.Errorf("expected newest first, got %q, %q", got[0].Name, got[1].Name)
	}

	// Asking for more than exist returns everything.
	if got := svc.RecentPatients(10); len(got) != 4 {
		t.Errorf("expected 4 patients, got %d", len(got))
	}
}
