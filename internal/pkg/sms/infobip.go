package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
)

type infobipProvider struct {
	cfg notification.InfobipConfig
}

// NewInfobip creates the Infobip gateway (App token in the
// Authorization header).
func NewInfobip(cfg notification.InfobipConfig) Provider {
	return &infobipProvider{cfg: cfg}
}

func (p *infobipProvider) Name() string { return "infobip" }

type infobipMessage struct {
	From         string               `json:"from"`
	Destinations []infobipDestination `json:"destinations"`
	Text         string               `json:"text"`
}

type infobipDestination struct {
	To string `json:"to"`
}

type infobipRequest struct {
	Messages []infobipMessage `json:"messages"`
}

func (p *infobipProvider) Send(ctx context.Context, phone, message string) Outcome {
	if p.cfg.BaseURL == "" || p.cfg.APIToken == "" {
		slog.Debug("Infobip credentials missing, skipping SMS", "to", phone)
		return Outcome{OK: true, Detail: "skipped: missing credentials"}
	}

	payload := infobipRequest{
		Messages: []infobipMessage{{
			From:         p.cfg.FromNumber,
			Destinations: []infobipDestination{{To: NormalizePhone(phone)}},
			Text:         message,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failure(p.Name(), phone, err)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/sms/2/text/advanced"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return failure(p.Name(), phone, err)
	}
	req.Header.Set("Authorization", "App "+p.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

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
