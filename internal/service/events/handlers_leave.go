package events

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/template"
)

// HandleLeaveCreated notifies the manager and HR about a new leave request.
func (h *Handlers) HandleLeaveCreated(ctx context.Context, ev event.LeaveCreated) {
	st, ok := h.enabled(ctx, notification.TypeLeaveCreated)
	if !ok {
		return
	}

	ec := h.resolver.ResolveLeave(ctx, ev.RequestID)
	if ec == nil {
		return
	}

	h.sendToManager(ctx, st, ec, template.LeaveCreatedManager, notification.TypeLeaveCreated)
	h.sendToHR(ctx, st, ec.Vars, template.LeaveCreatedHR, notification.TypeLeaveCreated)
}

// HandleLeaveStatusChanged branches on the new status: approvals and
// rejections go to the employee (approvals also inform the manager),
// cancellations inform the manager only.
func (h *Handlers) HandleLeaveStatusChanged(ctx context.Context, ev event.LeaveStatusChanged) {
	var t notification.NotificationType
	switch leave.LeaveRequestStatus(ev.NewStatus) {
	case leave.LeaveRequestStatusApproved:
		t = notification.TypeLeaveApproved
	case leave.LeaveRequestStatusRejected:
		t = notification.TypeLeaveRejected
	case leave.LeaveRequestStatusCancelled:
		t = notification.TypeLeaveCancelled
	default:
		slog.Debug("Unhandled leave status transition, skipping",
			"request_id", ev.RequestID, "old_status", ev.OldStatus, "new_status", ev.NewStatus)
		return
	}

	st, ok := h.enabled(ctx, t)
	if !ok {
		return
	}

	ec := h.resolver.ResolveLeave(ctx, ev.RequestID)
	if ec == nil {
		return
	}

	switch t {
	case notification.TypeLeaveApproved:
		h.sendToEmployee(ctx, st, ec, template.LeaveApprovedEmployee, t)
		h.sendToManager(ctx, st, ec, template.LeaveApprovedManager, t)
	case notification.TypeLeaveRejected:
		h.sendToEmployee(ctx, st, ec, template.LeaveRejectedEmployee, t)
	case notification.TypeLeaveCancelled:
		h.sendToManager(ctx, st, ec, template.LeaveCancelledManager, t)
	}
}
