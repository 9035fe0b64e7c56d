package notification

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/mail"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/sms"
)

// SMSFactory builds the SMS provider selected by the given settings.
type SMSFactory func(notification.Settings) sms.Provider

// Dispatcher routes one fully rendered notification request to the
// email channel (immediate or digest-deferred) and the SMS channel,
// independently. It never returns an error: a failed delivery is logged
// and final for that attempt.
type Dispatcher struct {
	mailer mail.Mailer
	smsFor SMSFactory
	digest notification.DigestRepository
	users  notification.UserLookup
	pref   notification.PreferenceFilter
	timing notification.TimingPolicy
}

// NewDispatcher creates a dispatcher with default-allow preference and
// always-immediate timing policies.
func NewDispatcher(mailer mail.Mailer, digest notification.DigestRepository, users notification.UserLookup) *Dispatcher {
	return &Dispatcher{
		mailer: mailer,
		smsFor: sms.ForSettings,
		digest: digest,
		users:  users,
		pref:   notification.AllowAll{},
		timing: notification.AlwaysImmediate{},
	}
}

// SetPreferenceFilter replaces the "does this recipient want this type"
// policy. Intended for wiring stricter policies at startup.
func (d *Dispatcher) SetPreferenceFilter(f notification.PreferenceFilter) {
	if f != nil {
		d.pref = f
	}
}

// SetTimingPolicy replaces the send-now-vs-digest policy.
func (d *Dispatcher) SetTimingPolicy(p notification.TimingPolicy) {
	if p != nil {
		d.timing = p
	}
}

// SetSMSFactory replaces the provider factory. Used by tests to record
// provider calls without network access.
func (d *Dispatcher) SetSMSFactory(f SMSFactory) {
	if f != nil {
		d.smsFor = f
	}
}

// Dispatch delivers one request according to the given settings. Email
// and SMS are gated and delivered independently; a failure on one
// channel never blocks the other.
func (d *Dispatcher) Dispatch(ctx context.Context, st notification.Settings, req notification.Request) {
	if !st.Enabled {
		slog.Debug("Notifications globally disabled, dropping request", "type", req.Type)
		return
	}
	if !req.HasDestination() {
		// Absence of contact info is expected for some roles; not an error.
		slog.Debug("Request has no destination, dropping", "type", req.Type)
		return
	}

	userID := d.resolveUserID(ctx, req)

	d.dispatchEmail(ctx, st, req, userID)
	d.dispatchSMS(ctx, st, req)
}

// resolveUserID backfills the owning user id from the destination email.
// Best effort: an unknown recipient proceeds with an empty id, which
// only coarsens preference-filter granularity.
func (d *Dispatcher) resolveUserID(ctx context.Context, req notification.Request) string {
	if req.UserID != "" {
		return req.UserID
	}
	if req.Email == "" || d.users == nil {
		return ""
	}
	id, err := d.users.UserIDByEmail(ctx, req.Email)
	if err != nil {
		slog.Debug("No user account for destination email", "email", req.Email)
		return ""
	}
	return id
}

func (d *Dispatcher) dispatchEmail(ctx context.Context, st notification.Settings, req notification.Request, userID string) {
	if !st.EmailEnabled || req.Email == "" {
		return
	}

	if !d.pref.Allow(ctx, userID, req.Type) {
		slog.Debug("Recipient opted out of notification type", "user_id", userID, "type", req.Type)
		return
	}

	if d.timing.Deliver(ctx, userID, req.Type) == notification.DeliverDigest {
		entry := &notification.DigestEntry{
			UserID:  userID,
			Email:   req.Email,
			Subject: req.Subject,
			Body:    req.Body,
			Type:    req.Type,
		}
		if err := d.digest.Append(ctx, entry); err != nil {
			slog.Error("Failed to queue digest entry", "to", req.Email, "type", req.Type, "error", err)
		}
		return
	}

	if err := d.mailer.Send(ctx, req.Email, req.Subject, req.Body); err != nil {
		slog.Error("Email dispatch failed", "to", req.Email, "type", req.Type, "error", err)
	}
}

// dispatchSMS sends the SMS leg. SMS has no digest mode: it is always
// immediate, and email-specific preference rejection does not affect it.
func (d *Dispatcher) dispatchSMS(ctx context.Context, st notification.Settings, req notification.Request) {
	if !st.SMSEnabled || req.Phone == "" {
		return
	}

	provider := d.smsFor(st)
	if provider == nil {
		slog.Debug("No SMS provider configured, skipping SMS", "type", req.Type)
		return
	}

	text := sms.Truncate(sms.StripMarkup(req.Body))
	outcome := provider.Send(ctx, req.Phone, text)
	if !outcome.OK {
		slog.Warn("SMS dispatch failed", "provider", provider.Name(), "type", req.Type, "detail", outcome.Detail)
	}
}
