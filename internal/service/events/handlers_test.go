package events

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/sms"
	notificationService "github.com/cmlabs-hris/hris-notify-go/internal/service/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/service/resolver"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (f *fakeSettingsRepo) Load(ctx context.Context) (map[string]string, error) {
	return f.values, nil
}

type fakeEmployeeRepo struct {
	profiles map[string]employee.NotifyProfile
}

func (f *fakeEmployeeRepo) GetNotifyProfile(ctx context.Context, employeeID string) (employee.NotifyProfile, error) {
	p, ok := f.profiles[employeeID]
	if !ok {
		return employee.NotifyProfile{}, employee.ErrEmployeeNotFound
	}
	return p, nil
}

func (f *fakeEmployeeRepo) GetActiveForScan(ctx context.Context) ([]employee.ScanCandidate, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	details map[string]leave.RequestDetail
}

func (f *fakeLeaveRepo) GetDetail(ctx context.Context, requestID string) (leave.RequestDetail, error) {
	d, ok := f.details[requestID]
	if !ok {
		return leave.RequestDetail{}, leave.ErrLeaveRequestNotFound
	}
	return d, nil
}

type fakePayrollRepo struct {
	runs map[string]payroll.RunSummary
}

func (f *fakePayrollRepo) GetRunSummary(ctx context.Context, runID string) (payroll.RunSummary, error) {
	r, ok := f.runs[runID]
	if !ok {
		return payroll.RunSummary{}, payroll.ErrPayrollRunNotFound
	}
	return r, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []sentMail
	errFor map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (f *fakeMailer) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.To)
	}
	sort.Strings(out)
	return out
}

type fakeDigestRepo struct {
	entries []notification.DigestEntry
}

func (f *fakeDigestRepo) Append(ctx context.Context, entry *notification.DigestEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeDigestRepo) List(ctx context.Context, limit int) ([]notification.DigestEntry, error) {
	return f.entries, nil
}

type fakeUserLookup struct{}

func (fakeUserLookup) UserIDByEmail(ctx context.Context, email string) (string, error) {
	return "", notification.ErrUserNotFound
}

type fakeProvider struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Send(ctx context.Context, phone, message string) sms.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, message)
	return sms.Outcome{OK: true}
}

type fixture struct {
	handlers *Handlers
	mailer   *fakeMailer
	provider *fakeProvider
	digest   *fakeDigestRepo
}

func strPtr(s string) *string { return &s }

func janeProfile() employee.NotifyProfile {
	return employee.NotifyProfile{
		EmployeeID:     "emp-1",
		FullName:       "Jane Doe",
		Email:          "jane@acme.com",
		PhoneNumber:    "+6281234567890",
		DepartmentName: strPtr("Engineering"),
		PositionName:   strPtr("Backend Engineer"),
		HireDate:       time.Date(2022, time.February, 14, 0, 0, 0, 0, time.UTC),
		ManagerName:    strPtr("Maria Boss"),
		ManagerEmail:   strPtr("maria@acme.com"),
	}
}

func newFixture(t *testing.T, settings map[string]string) fixture {
	t.Helper()

	mailer := &fakeMailer{}
	digest := &fakeDigestRepo{}
	provider := &fakeProvider{}

	dispatcher := notificationService.NewDispatcher(mailer, digest, fakeUserLookup{})
	dispatcher.SetSMSFactory(func(notification.Settings) sms.Provider { return provider })

	res := resolver.NewResolverService(
		&fakeEmployeeRepo{profiles: map[string]employee.NotifyProfile{"emp-1": janeProfile()}},
		&fakeLeaveRepo{details: map[string]leave.RequestDetail{
			"42": {
				RequestID:     "42",
				EmployeeID:    "emp-1",
				EmployeeName:  "Jane Doe",
				LeaveTypeName: "Annual Leave",
				StartDate:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
				EndDate:       time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
				TotalDays:     3,
				Reason:        "family trip",
				Status:        leave.LeaveRequestStatusApproved,
			},
		}},
		&fakePayrollRepo{runs: map[string]payroll.RunSummary{
			"run-7": {
				RunID:         "run-7",
				PeriodName:    "August 2026",
				EmployeeCount: 52,
				TotalNet:      decimal.NewFromInt(481250000),
			},
		}},
	)

	settingsSvc := notificationService.NewSettingsService(&fakeSettingsRepo{values: settings})
	h := NewHandlers(settingsSvc, res, dispatcher)
	return fixture{handlers: h, mailer: mailer, provider: provider, digest: digest}
}

func TestHandleLeaveStatusChanged_Approved(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		OldStatus: "waiting_approval",
		NewStatus: "approved",
	})

	// Employee and manager each get one mail.
	require.Len(t, f.mailer.sent, 2)
	assert.Equal(t, []string{"jane@acme.com", "maria@acme.com"}, f.mailer.recipients())

	for _, m := range f.mailer.sent {
		assert.Contains(t, m.Subject, "approved")
		assert.Contains(t, m.Body, "Annual Leave")
	}
	assert.Empty(t, f.provider.sent, "SMS is off by default")
}

func TestHandleLeaveStatusChanged_ApprovedWithSMS(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{"sms_enabled": "true"})
	f.handlers.HandleLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		NewStatus: "approved",
	})

	// Only the employee contact carries a phone number.
	require.Len(t, f.provider.sent, 1)
	msg := f.provider.sent[0]
	assert.NotContains(t, msg, "<")
	assert.LessOrEqual(t, len([]rune(msg)), sms.MaxMessageLength)
	assert.Contains(t, msg, "Jane Doe")
}

func TestHandleLeaveStatusChanged_RejectedGoesToEmployeeOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		NewStatus: "rejected",
	})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "jane@acme.com", f.mailer.sent[0].To)
	assert.Contains(t, f.mailer.sent[0].Subject, "rejected")
}

func TestHandleLeaveStatusChanged_CancelledGoesToManagerOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		NewStatus: "cancelled",
	})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "maria@acme.com", f.mailer.sent[0].To)
}

func TestHandleLeaveStatusChanged_UnknownTransitionIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		NewStatus: "waiting_approval",
	})

	assert.Empty(t, f.mailer.sent)
}

func TestHandleLeaveStatusChanged_EventTypeDisabled(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{"notify_leave_approved": "false"})
	f.handlers.HandleLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		NewStatus: "approved",
	})

	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.provider.sent)
}

func TestHandleLeaveCreated_ManagerAndHR(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{"hr_emails": "hr@acme.com"})
	f.handlers.HandleLeaveCreated(context.Background(), event.LeaveCreated{RequestID: "42"})

	assert.Equal(t, []string{"hr@acme.com", "maria@acme.com"}, f.mailer.recipients())
}

func TestHandleLeaveCreated_UnknownRequest(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLeaveCreated(context.Background(), event.LeaveCreated{RequestID: "no-such"})

	assert.Empty(t, f.mailer.sent)
}

func TestHandleEmployeeCreated_HRFanOutIsolatesFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{
		"hr_emails": "hr-a@acme.com,hr-b@acme.com,hr-c@acme.com",
	})
	f.mailer.errFor = map[string]error{"hr-b@acme.com": errors.New("mailbox full")}

	f.handlers.HandleEmployeeCreated(context.Background(), event.EmployeeCreated{EmployeeID: "emp-1"})

	// Welcome mail, manager mail, and the two deliverable HR addresses.
	assert.Equal(t,
		[]string{"hr-a@acme.com", "hr-c@acme.com", "jane@acme.com", "maria@acme.com"},
		f.mailer.recipients())
}

func TestHandleEmployeeCreated_RoleTogglesRespected(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{
		"notify_employee": "false",
		"notify_hr":       "false",
		"hr_emails":       "hr@acme.com",
	})

	f.handlers.HandleEmployeeCreated(context.Background(), event.EmployeeCreated{EmployeeID: "emp-1"})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "maria@acme.com", f.mailer.sent[0].To)
}

func TestHandleLateArrival_BelowThresholdSkipped(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLateArrival(context.Background(), event.LateArrival{
		EmployeeID:  "emp-1",
		MinutesLate: 10,
	})

	assert.Empty(t, f.mailer.sent)
}

func TestHandleLateArrival_NotifiesManagerOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleLateArrival(context.Background(), event.LateArrival{
		EmployeeID:   "emp-1",
		MinutesLate:  25,
		ExpectedTime: "09:00",
		ActualTime:   "09:25",
	})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "maria@acme.com", f.mailer.sent[0].To)
	assert.Contains(t, f.mailer.sent[0].Body, "25 minute(s)")
}

func TestHandleBirthday_EmployeeOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{"hr_emails": "hr@acme.com"})
	f.handlers.HandleBirthday(context.Background(), event.Birthday{EmployeeID: "emp-1"})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "jane@acme.com", f.mailer.sent[0].To)
}

func TestHandleContractExpiring_EmployeeAndHR(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{"hr_emails": "hr@acme.com"})
	f.handlers.HandleContractExpiring(context.Background(), event.ContractExpiring{
		EmployeeID: "emp-1",
		DaysUntil:  14,
	})

	assert.Equal(t, []string{"hr@acme.com", "jane@acme.com"}, f.mailer.recipients())
	for _, m := range f.mailer.sent {
		assert.Contains(t, m.Body, "14")
	}
}

func TestHandleAnniversary_YearsInMessage(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandleAnniversary(context.Background(), event.Anniversary{EmployeeID: "emp-1", Years: 4})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "jane@acme.com", f.mailer.sent[0].To)
	assert.Contains(t, f.mailer.sent[0].Subject, "4")
}

func TestHandlePayrollRunApproved_HROnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, map[string]string{"hr_emails": "hr@acme.com,payroll@acme.com"})
	f.handlers.HandlePayrollRunApproved(context.Background(), event.PayrollRunApproved{RunID: "run-7"})

	assert.Equal(t, []string{"hr@acme.com", "payroll@acme.com"}, f.mailer.recipients())
	for _, m := range f.mailer.sent {
		assert.Contains(t, m.Body, "August 2026")
		assert.Contains(t, m.Body, "52")
	}
}

func TestHandlePayslipReady_EmployeeOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.handlers.HandlePayslipReady(context.Background(), event.PayslipReady{
		EmployeeID: "emp-1",
		PeriodName: "August 2026",
		NetSalary:  decimal.NewFromInt(12500000),
	})

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "jane@acme.com", f.mailer.sent[0].To)
	assert.Contains(t, f.mailer.sent[0].Body, "Rp 12.500.000")
}

func TestRegister_WiresEveryHandler(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	bus := event.NewBus()
	f.handlers.Register(bus)

	bus.PublishLeaveStatusChanged(context.Background(), event.LeaveStatusChanged{
		RequestID: "42",
		NewStatus: "approved",
	})

	assert.Len(t, f.mailer.sent, 2)
}
