// Package sms implements the outbound SMS channel: one Provider
// implementation per gateway, selected by configuration. Adding a
// gateway means adding one implementation and one provider enum case;
// the dispatcher never changes.
package sms

import (
	"context"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
)

// MaxMessageLength is the single-segment SMS limit every outbound
// message is truncated to.
const MaxMessageLength = 160

// Outcome is the result of one provider call. Provider failures are
// never raised to the caller; they come back here and get logged.
type Outcome struct {
	OK     bool
	Detail string
}

// Provider sends one text message to one phone number.
type Provider interface {
	Name() string
	Send(ctx context.Context, phone, message string) Outcome
}

// Provider HTTP calls carry their own bounded timeout so a slow gateway
// cannot stall a whole dispatch batch.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// ForSettings returns the configured provider, or nil when SMS is
// pointed at no gateway.
func ForSettings(s notification.Settings) Provider {
	switch s.SMSProvider {
	case notification.ProviderTwilio:
		return NewTwilio(s.Twilio)
	case notification.ProviderVonage:
		return NewVonage(s.Vonage)
	case notification.ProviderInfobip:
		return NewInfobip(s.Infobip)
	default:
		return nil
	}
}

var phoneStripRe = regexp.MustCompile(`[^0-9+]`)

// NormalizePhone strips everything except digits and a leading +.
func NormalizePhone(phone string) string {
	p := phoneStripRe.ReplaceAllString(phone, "")
	if p == "" {
		return ""
	}
	// keep only a leading plus
	hasPlus := strings.HasPrefix(p, "+")
	p = strings.ReplaceAll(p, "+", "")
	if hasPlus {
		p = "+" + p
	}
	return p
}

var (
	tagBreakRe = regexp.MustCompile(`(?i)</p>|</div>|</li>|<br\s*/?>`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	multiWSRe  = regexp.MustCompile(`\s+`)
)

// StripMarkup turns an HTML mail body into plain text suitable for SMS.
func StripMarkup(body string) string {
	text := tagBreakRe.ReplaceAllString(body, " ")
	text = tagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = multiWSRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Truncate cuts a message to MaxMessageLength runes.
func Truncate(message string) string {
	runes := []rune(message)
	if len(runes) <= MaxMessageLength {
		return message
	}
	return string(runes[:MaxMessageLength])
}
