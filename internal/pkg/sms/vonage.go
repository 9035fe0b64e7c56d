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

const vonageEndpoint = "https://rest.nexmo.com/sms/json"

type vonageProvider struct {
	cfg notification.VonageConfig
}

// NewVonage creates the Vonage gateway (api key/secret in the form body).
func NewVonage(cfg notification.VonageConfig) Provider {
	return &vonageProvider{cfg: cfg}
}

func (p *vonageProvider) Name() string { return "vonage" }

func (p *vonageProvider) Send(ctx context.Context, phone, message string) Outcome {
	if p.cfg.APIKey == "" || p.cfg.APISecret == "" {
		slog.Debug("Vonage credentials missing, skipping SMS", "to", phone)
		return Outcome{OK: true, Detail: "skipped: missing credentials"}
	}

	form := url.Values{}
	form.Set("api_key", p.cfg.APIKey)
	form.Set("api_secret", p.cfg.APISecret)
	form.Set("to", NormalizePhone(phone))
	form.Set("from", p.cfg.FromNumber)
	form.Set("text", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, vonageEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(p.Name(), phone, err)
	}
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
