package event

import (
	"context"
	"log/slog"
	"sync"
)

// Bus routes typed events to handlers registered at startup. Publishing
// runs subscribers synchronously in registration order; a panicking
// subscriber is recovered and logged so notification failures can never
// reach the business workflow that emitted the event.
type Bus struct {
	mu sync.RWMutex

	leaveCreated       []func(ctx context.Context, ev LeaveCreated)
	leaveStatusChanged []func(ctx context.Context, ev LeaveStatusChanged)
	lateArrival        []func(ctx context.Context, ev LateArrival)
	earlyLeave         []func(ctx context.Context, ev EarlyLeave)
	employeeCreated    []func(ctx context.Context, ev EmployeeCreated)
	birthday           []func(ctx context.Context, ev Birthday)
	anniversary        []func(ctx context.Context, ev Anniversary)
	contractExpiring   []func(ctx context.Context, ev ContractExpiring)
	probationEnding    []func(ctx context.Context, ev ProbationEnding)
	payrollRunApproved []func(ctx context.Context, ev PayrollRunApproved)
	payslipReady       []func(ctx context.Context, ev PayslipReady)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

func invoke(name string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Event subscriber panicked", "event", name, "panic", p)
		}
	}()
	fn()
}

func (b *Bus) OnLeaveCreated(fn func(ctx context.Context, ev LeaveCreated)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.leaveCreated = append(b.leaveCreated, fn)
}

func (b *Bus) PublishLeaveCreated(ctx context.Context, ev LeaveCreated) {
	b.mu.RLock()
	subs := b.leaveCreated
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("leave.created", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnLeaveStatusChanged(fn func(ctx context.Context, ev LeaveStatusChanged)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.leaveStatusChanged = append(b.leaveStatusChanged, fn)
}

func (b *Bus) PublishLeaveStatusChanged(ctx context.Context, ev LeaveStatusChanged) {
	b.mu.RLock()
	subs := b.leaveStatusChanged
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("leave.status_changed", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnLateArrival(fn func(ctx context.Context, ev LateArrival)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lateArrival = append(b.lateArrival, fn)
}

func (b *Bus) PublishLateArrival(ctx context.Context, ev LateArrival) {
	b.mu.RLock()
	subs := b.lateArrival
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("attendance.late", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnEarlyLeave(fn func(ctx context.Context, ev EarlyLeave)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.earlyLeave = append(b.earlyLeave, fn)
}

func (b *Bus) PublishEarlyLeave(ctx context.Context, ev EarlyLeave) {
	b.mu.RLock()
	subs := b.earlyLeave
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("attendance.early_leave", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnEmployeeCreated(fn func(ctx context.Context, ev EmployeeCreated)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.employeeCreated = append(b.employeeCreated, fn)
}

func (b *Bus) PublishEmployeeCreated(ctx context.Context, ev EmployeeCreated) {
	b.mu.RLock()
	subs := b.employeeCreated
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("employee.created", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnBirthday(fn func(ctx context.Context, ev Birthday)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.birthday = append(b.birthday, fn)
}

func (b *Bus) PublishBirthday(ctx context.Context, ev Birthday) {
	b.mu.RLock()
	subs := b.birthday
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("employee.birthday", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnAnniversary(fn func(ctx context.Context, ev Anniversary)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.anniversary = append(b.anniversary, fn)
}

func (b *Bus) PublishAnniversary(ctx context.Context, ev Anniversary) {
	b.mu.RLock()
	subs := b.anniversary
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("employee.anniversary", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnContractExpiring(fn func(ctx context.Context, ev ContractExpiring)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.contractExpiring = append(b.contractExpiring, fn)
}

func (b *Bus) PublishContractExpiring(ctx context.Context, ev ContractExpiring) {
	b.mu.RLock()
	subs := b.contractExpiring
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("contract.expiring", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnProbationEnding(fn func(ctx context.Context, ev ProbationEnding)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.probationEnding = append(b.probationEnding, fn)
}

func (b *Bus) PublishProbationEnding(ctx context.Context, ev ProbationEnding) {
	b.mu.RLock()
	subs := b.probationEnding
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("probation.ending", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnPayrollRunApproved(fn func(ctx context.Context, ev PayrollRunApproved)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payrollRunApproved = append(b.payrollRunApproved, fn)
}

func (b *Bus) PublishPayrollRunApproved(ctx context.Context, ev PayrollRunApproved) {
	b.mu.RLock()
	subs := b.payrollRunApproved
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("payroll.run_approved", func() { fn(ctx, ev) })
	}
}

func (b *Bus) OnPayslipReady(fn func(ctx context.Context, ev PayslipReady)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payslipReady = append(b.payslipReady, fn)
}

func (b *Bus) PublishPayslipReady(ctx context.Context, ev PayslipReady) {
	b.mu.RLock()
	subs := b.payslipReady
	b.mu.RUnlock()
	for _, fn := range subs {
		invoke("payslip.ready", func() { fn(ctx, ev) })
	}
}
