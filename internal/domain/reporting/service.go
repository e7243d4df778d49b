package reporting

import (
	"time"

	"github.com/clinichq/hms/internal/domain/appointment"
	"github.com/clinichq/hms/internal/domain/billing"
	"github.com/clinichq/hms/internal/domain/doctor"
	"github.com/clinichq/hms/internal/domain/patient"
)

// DashboardStats is the at-a-glance summary for the landing view.
type DashboardStats struct {
	TotalPatients     int     `json:"totalPatients"`
	TotalDoctors      int     `json:"totalDoctors"`
	TodayAppointments int     `json:"todayAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// ReportStats extends the dashboard numbers with the full appointment
// count for the reports view.
type ReportStats struct {
	TotalPatients     int     `json:"totalPatients"`
	TotalDoctors      int     `json:"totalDoctors"`
	TotalAppointments int     `json:"totalAppointments"`
	TodayAppointments int     `json:"todayAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// Service derives read-only aggregates from the four record services. It
// holds no state of its own; every call recomputes from live snapshots.
type Service struct {
	patients     *patient.Service
	doctors      *doctor.Service
	appointments *appointment.Service
	billing      *billing.Service
	now          func() time.Time
}

func NewService(p *patient.Service, d *doctor.Service, a *appointment.Service, b *billing.Service) *Service {
	return &Service{patients: p, doctors: d, appointments: a, billing: b, now: time.Now}
}

func (s *Service) Dashboard() DashboardStats {
	return DashboardStats{
		TotalPatients:     len(s.patients.List()),
		TotalDoctors:      len(s.doctors.List()),
		TodayAppointments: s.todayCount(),
		TotalRevenue:      s.billing.Revenue(),
	}
}

func (s *Service) Report() ReportStats {
	return ReportStats{
		TotalPatients:     len(s.patients.List()),
		TotalDoctors:      len(s.doctors.List()),
		TotalAppointments: len(s.appointments.List()),
		TodayAppointments: s.todayCount(),
		TotalRevenue:      s.billing.Revenue(),
	}
}

// todayCount counts appointments whose date equals today's, compared as
// YYYY-MM-DD strings.
func (s *Service) todayCount() int {
	today := s.now().Format("2006-01-02")
	n := 0
	for _, a := range s.appointments.List() {
		if a.Date == today {
			n++
		}
	}
	return n
}

// Upcoming returns the first n appointments still in play, in collection
// order, with names resolved. Cancelled and completed ones are skipped.
func (s *Service) Upcoming(n int) []appointment.View {
	out := make([]appointment.View, 0, n)
	for _, a := range s.appointments.List() {
		if a.Status != appointment.StatusConfirmed && a.Status != appointment.StatusPending {
			continue
		}
		out = append(out, s.appointments.View(a))
		if len(out) == n {
			break
		}
	}
	return out
}

// RecentPatients returns the last n patients, newest first.
func (s *Service) RecentPatients(n int) []*patient.Patient {
	all := s.patients.List()
	if n > len(all) {
		n = len(all)
	}
	out := make([]*patient.Patient, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out
}
