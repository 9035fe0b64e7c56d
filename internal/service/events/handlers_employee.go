package events

import (
	"context"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/template"
	"github.com/cmlabs-hris/hris-notify-go/internal/service/resolver"
)

// HandleEmployeeCreated welcomes the new employee and informs both the
// manager and the HR distribution list.
func (h *Handlers) HandleEmployeeCreated(ctx context.Context, ev event.EmployeeCreated) {
	st, ok := h.enabled(ctx, notification.TypeEmployeeCreated)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	h.sendToEmployee(ctx, st, ec, template.EmployeeCreatedWelcome, notification.TypeEmployeeCreated)
	h.sendToManager(ctx, st, ec, template.EmployeeCreatedManager, notification.TypeEmployeeCreated)
	h.sendToHR(ctx, st, ec.Vars, template.EmployeeCreatedHR, notification.TypeEmployeeCreated)
}

// HandleBirthday greets the employee.
func (h *Handlers) HandleBirthday(ctx context.Context, ev event.Birthday) {
	st, ok := h.enabled(ctx, notification.TypeBirthday)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	h.sendToEmployee(ctx, st, ec, template.BirthdayEmployee, notification.TypeBirthday)
}

// HandleAnniversary congratulates the employee on their work anniversary.
func (h *Handlers) HandleAnniversary(ctx context.Context, ev event.Anniversary) {
	st, ok := h.enabled(ctx, notification.TypeAnniversary)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	ec.Vars["years"] = strconv.Itoa(ev.Years)

	h.sendToEmployee(ctx, st, ec, template.AnniversaryEmployee, notification.TypeAnniversary)
}

// HandleContractExpiring warns the employee and HR ahead of the
// contract end date.
func (h *Handlers) HandleContractExpiring(ctx context.Context, ev event.ContractExpiring) {
	st, ok := h.enabled(ctx, notification.TypeContractExpiring)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	ec.Vars["days_until"] = strconv.Itoa(ev.DaysUntil)
	ec.Vars["contract_end_date"] = resolver.FormatDate(time.Now().AddDate(0, 0, ev.DaysUntil))

	h.sendToEmployee(ctx, st, ec, template.ContractExpiringStaff, notification.TypeContractExpiring)
	h.sendToHR(ctx, st, ec.Vars, template.ContractExpiringHR, notification.TypeContractExpiring)
}

// HandleProbationEnding reminds the manager and HR to prepare the
// evaluation before the probation end date.
func (h *Handlers) HandleProbationEnding(ctx context.Context, ev event.ProbationEnding) {
	st, ok := h.enabled(ctx, notification.TypeProbationEnding)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	ec.Vars["days_until"] = strconv.Itoa(ev.DaysUntil)
	ec.Vars["probation_end_date"] = resolver.FormatDate(time.Now().AddDate(0, 0, ev.DaysUntil))

	h.sendToManager(ctx, st, ec, template.ProbationEndingManager, notification.TypeProbationEnding)
	h.sendToHR(ctx, st, ec.Vars, template.ProbationEndingHR, notification.TypeProbationEnding)
}
