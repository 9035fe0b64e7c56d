package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSettings_Defaults(t *testing.T) {
	t.Parallel()

	s := ResolveSettings(nil)

	assert.True(t, s.Enabled)
	assert.True(t, s.EmailEnabled)
	assert.False(t, s.SMSEnabled)
	assert.Equal(t, ProviderNone, s.SMSProvider)

	assert.True(t, s.NotifyManager)
	assert.True(t, s.NotifyEmployee)
	assert.True(t, s.NotifyHR)
	assert.Empty(t, s.HREmails)

	assert.Equal(t, 15, s.LateArrivalMinutes)
	assert.Equal(t, 1, s.BirthdayLeadDays)
	assert.Equal(t, 1, s.AnniversaryLeadDays)
	assert.Equal(t, 7, s.ProbationLeadDays)
	assert.Equal(t, []int{30, 14, 7}, s.ContractLeadDays)

	for _, typ := range AllNotificationTypes() {
		assert.True(t, s.EventOn(typ), "event %s should default on", typ)
	}
}

func TestResolveSettings_Overrides(t *testing.T) {
	t.Parallel()

	raw := map[string]string{
		KeyEnabled:            "false",
		KeySMSEnabled:         "true",
		KeySMSProvider:        "Twilio",
		KeyTwilioAccountSID:   "AC123",
		KeyTwilioAuthToken:    "secret",
		KeyTwilioFrom:         "+15550001111",
		KeyHREmails:           "hr@acme.com, payroll@acme.com ,",
		KeyLateArrivalMinutes: "30",
		KeyContractLeadDays:   "60, 30,7",
	}
	raw[EventKey(TypeBirthday)] = "false"

	s := ResolveSettings(raw)

	assert.False(t, s.Enabled)
	assert.True(t, s.SMSEnabled)
	assert.Equal(t, ProviderTwilio, s.SMSProvider)
	assert.Equal(t, "AC123", s.Twilio.AccountSID)
	assert.Equal(t, []string{"hr@acme.com", "payroll@acme.com"}, s.HREmails)
	assert.Equal(t, 30, s.LateArrivalMinutes)
	assert.Equal(t, []int{60, 30, 7}, s.ContractLeadDays)

	assert.False(t, s.EventOn(TypeBirthday))
	assert.True(t, s.EventOn(TypeAnniversary))
}

func TestResolveSettings_MalformedValuesFallBack(t *testing.T) {
	t.Parallel()

	s := ResolveSettings(map[string]string{
		KeyEnabled:            "maybe",
		KeyLateArrivalMinutes: "soon",
		KeyContractLeadDays:   "30,two weeks,7",
		KeySMSProvider:        "carrier-pigeon",
	})

	assert.True(t, s.Enabled)
	assert.Equal(t, 15, s.LateArrivalMinutes)
	assert.Equal(t, []int{30, 14, 7}, s.ContractLeadDays)
	assert.Equal(t, ProviderNone, s.SMSProvider)
}

func TestSettings_EventOnWithoutMap(t *testing.T) {
	t.Parallel()

	var s Settings
	assert.True(t, s.EventOn(TypeLeaveCreated))
}

func TestRequest_HasDestination(t *testing.T) {
	t.Parallel()

	assert.False(t, Request{}.HasDestination())
	assert.True(t, Request{Email: "a@b.c"}.HasDestination())
	assert.True(t, Request{Phone: "+628123"}.HasDestination())
}
