package sms

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
)

type twilioProvider struct {
	cfg notification.TwilioConfig
}

// NewTwilio creates the Twilio gateway (basic auth with account SID and
// auth token).
func NewTwilio(cfg notification.TwilioConfig) Provider {
	return &twilioProvider{cfg: cfg}
}

func (p *twilioProvider) Name() string { return "twilio" }

func (p *twilioProvider) Send(ctx context.Context, phone, message string) Outcome {
	if p.cfg.AccountSID == "" || p.cfg.AuthToken == "" {
		slog.Debug("Twilio credentials missing, skipping SMS", "to", phone)
		return Outcome{OK: true, Detail: "skipped: missing credentials"}
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json",
		url.PathEscape(p.cfg.AccountSID))

	form := url.Values{}
	form.Set("To", NormalizePhone(phone))
	form.Set("From", p.cfg.FromNumber)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(p.Name(), phone, err)
	}
	req.SetBasicAuth(p.cfg.AccountSID, p.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return failure(p.Name(), phone, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return failure(p.Name(), phone, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	slog.Info("SMS sent", "provider", p.Name(), "to", phone)
	return Outcome{OK: true}
}

func failure(provider, phone string, err error) Outcome {
	slog.Error("Failed to send SMS", "provider", provider, "to", phone, "error", err)
	return Outcome{OK: false, Detail: err.Error()}
}
