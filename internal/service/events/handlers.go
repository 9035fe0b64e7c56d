// Package events wires one handler per domain event. Each handler reads
// the resolved settings, resolves the event context, renders the
// role-specific templates and calls the dispatcher once per recipient.
// Every per-recipient delivery is fault-isolated: one failure never
// suppresses sibling recipients, sibling channels, or the business
// workflow that emitted the event.
package events

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/template"
	notificationService "github.com/cmlabs-hris/hris-notify-go/internal/service/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/service/resolver"
)

// hrFanOutLimit bounds concurrent sends to the HR distribution list.
const hrFanOutLimit = 4

type Handlers struct {
	settings   *notificationService.SettingsService
	resolver   *resolver.Service
	dispatcher *notificationService.Dispatcher
}

// NewHandlers creates the event handler set
func NewHandlers(
	settings *notificationService.SettingsService,
	res *resolver.Service,
	dispatcher *notificationService.Dispatcher,
) *Handlers {
	return &Handlers{
		settings:   settings,
		resolver:   res,
		dispatcher: dispatcher,
	}
}

// Register subscribes every handler on the bus. Called once at startup.
func (h *Handlers) Register(bus *event.Bus) {
	bus.OnLeaveCreated(h.HandleLeaveCreated)
	bus.OnLeaveStatusChanged(h.HandleLeaveStatusChanged)
	bus.OnLateArrival(h.HandleLateArrival)
	bus.OnEarlyLeave(h.HandleEarlyLeave)
	bus.OnEmployeeCreated(h.HandleEmployeeCreated)
	bus.OnBirthday(h.HandleBirthday)
	bus.OnAnniversary(h.HandleAnniversary)
	bus.OnContractExpiring(h.HandleContractExpiring)
	bus.OnProbationEnding(h.HandleProbationEnding)
	bus.OnPayrollRunApproved(h.HandlePayrollRunApproved)
	bus.OnPayslipReady(h.HandlePayslipReady)
}

// enabled resolves settings and applies the global + per-event gates.
func (h *Handlers) enabled(ctx context.Context, t notification.NotificationType) (notification.Settings, bool) {
	st := h.settings.Resolve(ctx)
	if !st.Enabled || !st.EventOn(t) {
		slog.Debug("Notification type disabled, skipping event", "type", t)
		return st, false
	}
	return st, true
}

// dispatch calls the dispatcher with panic isolation so one recipient's
// delivery can never abort the rest of the event.
func (h *Handlers) dispatch(ctx context.Context, st notification.Settings, req notification.Request) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Notification dispatch panicked", "type", req.Type, "panic", p)
		}
	}()
	h.dispatcher.Dispatch(ctx, st, req)
}

func (h *Handlers) sendTo(ctx context.Context, st notification.Settings, c notification.Contact, tmpl string, t notification.NotificationType, vars map[string]string) {
	h.dispatch(ctx, st, notification.Request{
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: template.RenderSubject(tmpl, vars),
		Body:    template.Render(tmpl, vars),
		Type:    t,
		UserID:  c.UserID,
	})
}

func (h *Handlers) sendToEmployee(ctx context.Context, st notification.Settings, ec *notification.EventContext, tmpl string, t notification.NotificationType) {
	if !st.NotifyEmployee {
		return
	}
	h.sendTo(ctx, st, ec.Employee, tmpl, t, ec.Vars)
}

func (h *Handlers) sendToManager(ctx context.Context, st notification.Settings, ec *notification.EventContext, tmpl string, t notification.NotificationType) {
	if !st.NotifyManager {
		return
	}
	h.sendTo(ctx, st, ec.Manager, tmpl, t, ec.Vars)
}

// sendToHR fans out one request per address on the HR distribution list
// so a failure on one address never suppresses the others. Deliveries
// are independent, so the group only bounds concurrency and waits.
func (h *Handlers) sendToHR(ctx context.Context, st notification.Settings, vars map[string]string, tmpl string, t notification.NotificationType) {
	if !st.NotifyHR || len(st.HREmails) == 0 {
		return
	}

	subject := template.RenderSubject(tmpl, vars)
	body := template.Render(tmpl, vars)

	g := new(errgroup.Group)
	g.SetLimit(hrFanOutLimit)
	for _, addr := range st.HREmails {
		addr := addr
		g.Go(func() error {
			h.dispatch(ctx, st, notification.Request{
				Email:   addr,
				Subject: subject,
				Body:    body,
				Type:    t,
			})
			return nil
		})
	}
	_ = g.Wait()
}
