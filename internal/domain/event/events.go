package event

import (
	"github.com/shopspring/decimal"
)

// Domain events the engine reacts to. Each event carries a strongly
// typed payload so a missing or extra field is a compile-time error at
// the origin site, not a runtime surprise.

// LeaveCreated fires when an employee submits a leave request.
type LeaveCreated struct {
	RequestID string
}

// LeaveStatusChanged fires when a leave request transitions status
// (approved, rejected or cancelled).
type LeaveStatusChanged struct {
	RequestID string
	OldStatus string
	NewStatus string
}

// LateArrival fires when the attendance workflow records a late clock-in.
type LateArrival struct {
	EmployeeID   string
	MinutesLate  int
	ExpectedTime string
	ActualTime   string
}

// EarlyLeave fires when an employee requests to leave before shift end.
type EarlyLeave struct {
	EmployeeID string
	Reason     string
}

// EmployeeCreated fires when a new employee record is activated.
type EmployeeCreated struct {
	EmployeeID string
}

// Birthday is synthesized by the daily scheduler.
type Birthday struct {
	EmployeeID string
}

// Anniversary is synthesized by the daily scheduler. Years is always >= 1.
type Anniversary struct {
	EmployeeID string
	Years      int
}

// ContractExpiring is synthesized by the daily scheduler, once per
// matching configured lead day.
type ContractExpiring struct {
	EmployeeID string
	DaysUntil  int
}

// ProbationEnding is synthesized by the daily scheduler.
type ProbationEnding struct {
	EmployeeID string
	DaysUntil  int
}

// PayrollRunApproved fires when a payroll run is approved.
type PayrollRunApproved struct {
	RunID         string
	EmployeeCount int
	TotalNet      decimal.Decimal
}

// PayslipReady fires per employee once their payslip is published.
type PayslipReady struct {
	EmployeeID string
	PeriodName string
	NetSalary  decimal.Decimal
}
