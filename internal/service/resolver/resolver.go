// Package resolver assembles the per-event context: display-formatted
// template variables plus the resolved contact endpoints of the subject
// employee and their manager. A subject that no longer exists resolves
// to nil, never an error, since events may fire after the underlying
// record changed concurrently; callers treat nil as "silently skip".
package resolver

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/payroll"
)

type Service struct {
	employees employee.EmployeeRepository
	leaves    leave.LeaveRequestRepository
	payrolls  payroll.PayrollRepository
}

// NewResolverService creates a new recipient/context resolver
func NewResolverService(
	employees employee.EmployeeRepository,
	leaves leave.LeaveRequestRepository,
	payrolls payroll.PayrollRepository,
) *Service {
	return &Service{
		employees: employees,
		leaves:    leaves,
		payrolls:  payrolls,
	}
}

// ResolveEmployee builds the context for an employee-subject event.
func (s *Service) ResolveEmployee(ctx context.Context, employeeID string) *notification.EventContext {
	profile, err := s.employees.GetNotifyProfile(ctx, employeeID)
	if err != nil {
		slog.Debug("Employee not resolvable, skipping event", "employee_id", employeeID, "reason", err)
		return nil
	}

	ec := s.fromProfile(profile)
	ec.SubjectID = employeeID
	ec.SubjectType = notification.SubjectEmployee
	return ec
}

// ResolveLeave builds the context for a leave-request-subject event.
func (s *Service) ResolveLeave(ctx context.Context, requestID string) *notification.EventContext {
	detail, err := s.leaves.GetDetail(ctx, requestID)
	if err != nil {
		slog.Debug("Leave request not resolvable, skipping event", "request_id", requestID, "reason", err)
		return nil
	}

	profile, err := s.employees.GetNotifyProfile(ctx, detail.EmployeeID)
	if err != nil {
		slog.Debug("Leave request employee not resolvable, skipping event",
			"request_id", requestID, "employee_id", detail.EmployeeID, "reason", err)
		return nil
	}

	ec := s.fromProfile(profile)
	ec.SubjectID = requestID
	ec.SubjectType = notification.SubjectLeaveRequest
	ec.Vars["leave_type"] = detail.LeaveTypeName
	ec.Vars["start_date"] = FormatDate(detail.StartDate)
	ec.Vars["end_date"] = FormatDate(detail.EndDate)
	ec.Vars["total_days"] = strconv.FormatFloat(detail.TotalDays, 'f', -1, 64)
	ec.Vars["reason"] = detail.Reason
	ec.Vars["rejection_reason"] = deref(detail.RejectionReason)
	return ec
}

// ResolvePayrollRun builds the context for a payroll-run-subject event.
// Payroll runs have no employee or manager endpoints; only the HR
// distribution list receives run-level notifications.
func (s *Service) ResolvePayrollRun(ctx context.Context, runID string) *notification.EventContext {
	summary, err := s.payrolls.GetRunSummary(ctx, runID)
	if err != nil {
		slog.Debug("Payroll run not resolvable, skipping event", "run_id", runID, "reason", err)
		return nil
	}

	return &notification.EventContext{
		SubjectID:   runID,
		SubjectType: notification.SubjectPayrollRun,
		Vars: map[string]string{
			"period":         summary.PeriodName,
			"employee_count": strconv.Itoa(summary.EmployeeCount),
			"total_net":      FormatAmount(summary.TotalNet),
			"approved_at":    FormatDatePtr(summary.ApprovedAt),
		},
	}
}

func (s *Service) fromProfile(p employee.NotifyProfile) *notification.EventContext {
	return &notification.EventContext{
		Vars: map[string]string{
			"employee_name": p.FullName,
			"manager_name":  deref(p.ManagerName),
			"department":    deref(p.DepartmentName),
			"position":      deref(p.PositionName),
			"hire_date":     FormatDate(p.HireDate),
			"birth_date":    FormatDatePtr(p.DOB),
		},
		Employee: notification.Contact{
			UserID: deref(p.UserID),
			Name:   p.FullName,
			Email:  p.Email,
			Phone:  p.PhoneNumber,
		},
		Manager: notification.Contact{
			UserID: deref(p.ManagerUserID),
			Name:   deref(p.ManagerName),
			Email:  deref(p.ManagerEmail),
			Phone:  deref(p.ManagerPhone),
		},
	}
}
