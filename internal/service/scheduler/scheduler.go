// Package scheduler synthesizes the date-based events that have no
// natural trigger: birthdays, hire anniversaries, contract expiry and
// probation end windows. It runs once per day, scans active employees
// and publishes matching events on the bus.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	notificationService "github.com/cmlabs-hris/hris-notify-go/internal/service/notification"
)

type Service struct {
	employees employee.EmployeeRepository
	settings  *notificationService.SettingsService
	bus       *event.Bus
	now       func() time.Time
}

// NewSchedulerService creates the daily scan service
func NewSchedulerService(
	employees employee.EmployeeRepository,
	settings *notificationService.SettingsService,
	bus *event.Bus,
) *Service {
	return &Service{
		employees: employees,
		settings:  settings,
		bus:       bus,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Used by tests.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// RunDaily performs the four synthetic-condition scans. The sub-scans
// are independent: a failure or empty result in one never affects the
// others.
func (s *Service) RunDaily(ctx context.Context) error {
	st := s.settings.Resolve(ctx)
	if !st.Enabled {
		slog.Debug("Notifications globally disabled, skipping daily scan")
		return nil
	}

	candidates, err := s.employees.GetActiveForScan(ctx)
	if err != nil {
		return fmt.Errorf("failed to load scan candidates: %w", err)
	}

	today := truncateToDate(s.now())

	s.scan("birthday", func() { s.scanBirthdays(ctx, st, candidates, today) })
	s.scan("anniversary", func() { s.scanAnniversaries(ctx, st, candidates, today) })
	s.scan("contract_expiry", func() { s.scanContracts(ctx, st, candidates, today) })
	s.scan("probation_end", func() { s.scanProbations(ctx, st, candidates, today) })

	return nil
}

func (s *Service) scan(name string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Scheduler scan panicked", "scan", name, "panic", p)
		}
	}()
	fn()
}

// scanBirthdays matches birth month/day against today plus the lead
// window, year-independent.
func (s *Service) scanBirthdays(ctx context.Context, st notification.Settings, candidates []employee.ScanCandidate, today time.Time) {
	target := today.AddDate(0, 0, st.BirthdayLeadDays)
	for _, c := range candidates {
		if c.DOB == nil {
			continue
		}
		if sameMonthDay(*c.DOB, target) {
			s.bus.PublishBirthday(ctx, event.Birthday{EmployeeID: c.EmployeeID})
		}
	}
}

// scanAnniversaries matches hire month/day against today plus the lead
// window. Employees hired in the current calendar year are excluded:
// a zero-year anniversary is not notified.
func (s *Service) scanAnniversaries(ctx context.Context, st notification.Settings, candidates []employee.ScanCandidate, today time.Time) {
	target := today.AddDate(0, 0, st.AnniversaryLeadDays)
	for _, c := range candidates {
		if c.HireDate.Year() >= today.Year() {
			continue
		}
		if sameMonthDay(c.HireDate, target) {
			s.bus.PublishAnniversary(ctx, event.Anniversary{
				EmployeeID: c.EmployeeID,
				Years:      today.Year() - c.HireDate.Year(),
			})
		}
	}
}

// scanContracts fires once per configured lead day whose exact date
// matches the contract end, so an employee can be reminded at each
// threshold as the date approaches.
func (s *Service) scanContracts(ctx context.Context, st notification.Settings, candidates []employee.ScanCandidate, today time.Time) {
	for _, lead := range st.ContractLeadDays {
		target := today.AddDate(0, 0, lead)
		for _, c := range candidates {
			if c.ContractEndDate == nil {
				continue
			}
			if sameDate(*c.ContractEndDate, target) {
				s.bus.PublishContractExpiring(ctx, event.ContractExpiring{
					EmployeeID: c.EmployeeID,
					DaysUntil:  lead,
				})
			}
		}
	}
}

func (s *Service) scanProbations(ctx context.Context, st notification.Settings, candidates []employee.ScanCandidate, today time.Time) {
	target := today.AddDate(0, 0, st.ProbationLeadDays)
	for _, c := range candidates {
		if c.ProbationEndDate == nil {
			continue
		}
		if sameDate(*c.ProbationEndDate, target) {
			s.bus.PublishProbationEnding(ctx, event.ProbationEnding{
				EmployeeID: c.EmployeeID,
				DaysUntil:  st.ProbationLeadDays,
			})
		}
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
