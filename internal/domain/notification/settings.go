package notification

import (
	"strconv"
	"strings"
)

// SMSProvider selects which gateway carries outbound SMS.
type SMSProvider string

const (
	ProviderNone    SMSProvider = "none"
	ProviderTwilio  SMSProvider = "twilio"
	ProviderVonage  SMSProvider = "vonage"
	ProviderInfobip SMSProvider = "infobip"
)

// TwilioConfig holds Twilio gateway credentials (basic auth).
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// VonageConfig holds Vonage gateway credentials (form-body key/secret).
type VonageConfig struct {
	APIKey     string
	APISecret  string
	FromNumber string
}

// InfobipConfig holds Infobip gateway credentials (App token header).
type InfobipConfig struct {
	BaseURL    string
	APIToken   string
	FromNumber string
}

// Settings is the flat engine configuration record. It is read on every
// dispatch decision and only ever written by the (external) settings UI,
// so it is passed around by value.
type Settings struct {
	Enabled      bool
	EmailEnabled bool
	SMSEnabled   bool

	SMSProvider SMSProvider
	Twilio      TwilioConfig
	Vonage      VonageConfig
	Infobip     InfobipConfig

	NotifyManager  bool
	NotifyEmployee bool
	NotifyHR       bool
	HREmails       []string

	EventEnabled map[NotificationType]bool

	LateArrivalMinutes  int
	BirthdayLeadDays    int
	AnniversaryLeadDays int
	ProbationLeadDays   int
	ContractLeadDays    []int
}

// EventOn reports whether notifications for the given type are switched
// on. Types without a stored flag default to enabled.
func (s Settings) EventOn(t NotificationType) bool {
	if s.EventEnabled == nil {
		return true
	}
	on, ok := s.EventEnabled[t]
	if !ok {
		return true
	}
	return on
}

// Setting store keys. The store is a plain key/value table; any key may
// be absent and resolution falls back per-key to the default.
const (
	KeyEnabled      = "notifications_enabled"
	KeyEmailEnabled = "email_enabled"
	KeySMSEnabled   = "sms_enabled"
	KeySMSProvider  = "sms_provider"

	KeyTwilioAccountSID = "twilio_account_sid"
	KeyTwilioAuthToken  = "twilio_auth_token"
	KeyTwilioFrom       = "twilio_from_number"
	KeyVonageAPIKey     = "vonage_api_key"
	KeyVonageAPISecret  = "vonage_api_secret"
	KeyVonageFrom       = "vonage_from_number"
	KeyInfobipBaseURL   = "infobip_base_url"
	KeyInfobipAPIToken  = "infobip_api_token"
	KeyInfobipFrom      = "infobip_from_number"

	KeyNotifyManager  = "notify_manager"
	KeyNotifyEmployee = "notify_employee"
	KeyNotifyHR       = "notify_hr"
	KeyHREmails       = "hr_emails"

	KeyLateArrivalMinutes  = "late_arrival_minutes"
	KeyBirthdayLeadDays    = "birthday_lead_days"
	KeyAnniversaryLeadDays = "anniversary_lead_days"
	KeyProbationLeadDays   = "probation_lead_days"
	KeyContractLeadDays    = "contract_lead_days"
)

// EventKey returns the store key of a per-event enable flag.
func EventKey(t NotificationType) string {
	return "notify_" + string(t)
}

// ResolveSettings merges the raw persisted key/value map with the
// documented defaults. It is pure: a nil or partially-populated map, or
// unparseable values, degrade per-key to the default and never fail.
func ResolveSettings(raw map[string]string) Settings {
	s := Settings{
		Enabled:      boolKey(raw, KeyEnabled, true),
		EmailEnabled: boolKey(raw, KeyEmailEnabled, true),
		SMSEnabled:   boolKey(raw, KeySMSEnabled, false),
		SMSProvider:  providerKey(raw, KeySMSProvider),

		Twilio: TwilioConfig{
			AccountSID: raw[KeyTwilioAccountSID],
			AuthToken:  raw[KeyTwilioAuthToken],
			FromNumber: raw[KeyTwilioFrom],
		},
		Vonage: VonageConfig{
			APIKey:     raw[KeyVonageAPIKey],
			APISecret:  raw[KeyVonageAPISecret],
			FromNumber: raw[KeyVonageFrom],
		},
		Infobip: InfobipConfig{
			BaseURL:    raw[KeyInfobipBaseURL],
			APIToken:   raw[KeyInfobipAPIToken],
			FromNumber: raw[KeyInfobipFrom],
		},

		NotifyManager:  boolKey(raw, KeyNotifyManager, true),
		NotifyEmployee: boolKey(raw, KeyNotifyEmployee, true),
		NotifyHR:       boolKey(raw, KeyNotifyHR, true),
		HREmails:       listKey(raw, KeyHREmails),

		LateArrivalMinutes:  intKey(raw, KeyLateArrivalMinutes, 15),
		BirthdayLeadDays:    intKey(raw, KeyBirthdayLeadDays, 1),
		AnniversaryLeadDays: intKey(raw, KeyAnniversaryLeadDays, 1),
		ProbationLeadDays:   intKey(raw, KeyProbationLeadDays, 7),
		ContractLeadDays:    intListKey(raw, KeyContractLeadDays, []int{30, 14, 7}),
	}

	s.EventEnabled = make(map[NotificationType]bool, len(AllNotificationTypes()))
	for _, t := range AllNotificationTypes() {
		s.EventEnabled[t] = boolKey(raw, EventKey(t), true)
	}

	return s
}

func boolKey(raw map[string]string, key string, fallback bool) bool {
	v, ok := raw[key]
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func intKey(raw map[string]string, key string, fallback int) int {
	v, ok := raw[key]
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func listKey(raw map[string]string, key string) []string {
	v := strings.TrimSpace(raw[key])
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intListKey(raw map[string]string, key string, fallback []int) []int {
	parts := listKey(raw, key)
	if len(parts) == 0 {
		return fallback
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fallback
		}
		out = append(out, n)
	}
	return out
}

func providerKey(raw map[string]string, key string) SMSProvider {
	switch SMSProvider(strings.ToLower(strings.TrimSpace(raw[key]))) {
	case ProviderTwilio:
		return ProviderTwilio
	case ProviderVonage:
		return ProviderVonage
	case ProviderInfobip:
		return ProviderInfobip
	default:
		return ProviderNone
	}
}
