package events

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/template"
)

// HandleLateArrival notifies the manager only. The threshold is
// re-checked against settings so a misconfigured emitter cannot spam.
func (h *Handlers) HandleLateArrival(ctx context.Context, ev event.LateArrival) {
	st, ok := h.enabled(ctx, notification.TypeLateArrival)
	if !ok {
		return
	}

	if ev.MinutesLate < st.LateArrivalMinutes {
		slog.Debug("Late arrival below threshold, skipping",
			"employee_id", ev.EmployeeID, "minutes_late", ev.MinutesLate, "threshold", st.LateArrivalMinutes)
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	ec.Vars["minutes_late"] = strconv.Itoa(ev.MinutesLate)
	ec.Vars["expected_time"] = ev.ExpectedTime
	ec.Vars["actual_time"] = ev.ActualTime

	h.sendToManager(ctx, st, ec, template.LateArrivalManager, notification.TypeLateArrival)
}

// HandleEarlyLeave notifies the manager only.
func (h *Handlers) HandleEarlyLeave(ctx context.Context, ev event.EarlyLeave) {
	st, ok := h.enabled(ctx, notification.TypeEarlyLeave)
	if !ok {
		return
	}

	ec := h.resolver.ResolveEmployee(ctx, ev.EmployeeID)
	if ec == nil {
		return
	}

	ec.Vars["reason"] = ev.Reason

	h.sendToManager(ctx, st, ec, template.EarlyLeaveManager, notification.TypeEarlyLeave)
}
