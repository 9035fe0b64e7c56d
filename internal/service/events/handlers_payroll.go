package events

import (
	"context"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/template"
	"github.com/cmlabs-hris/hris-notify-go/internal/service/resolver"
)

// HandlePayrollRunApproved informs the HR distribution list.
func (h *Handlers) HandlePayrollRunApproved(ctx context.Context, ev event.PayrollRunApproved) {
	st, ok := h.enabled(ctx, notification.TypePayrollApproved)
	if !ok {
		return
	}

	ec := h.resolver.ResolvePayrollRun(ctx, ev.RunID)
	if ec == nil {
		return
	}

	h.sendToHR(ctx, st, ec.Vars, template.PayrollApprovedHR, notification.TypePayrollApproved)
}

// HandlePayslipReady tells the employee their payslip is available.
func (h *Handlers) HandlePayslipReady(ctx context.Context, ev event.PayslipReady) {
	st, ok := h.enabled(ctx, notification.TypePayslipReady)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	ec.Vars["period"] = ev.PeriodName
	ec.Vars["net_salary"] = resolver.FormatAmount(ev.NetSalary)

	h.sendToEmployee(ctx, st, ec, template.PayslipReadyEmployee, notification.TypePayslipReady)
}
