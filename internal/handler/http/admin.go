package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/handler/http/response"
	notificationService "github.com/cmlabs-hris/hris-notify-go/internal/service/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/service/scheduler"
)

// AdminHandler exposes the operator-facing surface: digest queue
// visibility for the external batcher, the resolved settings snapshot,
// and an on-demand scheduler run.
type AdminHandler interface {
	ListDigest(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	RunScheduler(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	digest    notification.DigestRepository
	settings  *notificationService.SettingsService
	scheduler *scheduler.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	digest notification.DigestRepository,
	settings *notificationService.SettingsService,
	schedulerSvc *scheduler.Service,
) AdminHandler {
	return &adminHandlerImpl{
		digest:    digest,
		settings:  settings,
		scheduler: schedulerSvc,
	}
}

type digestEntryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Type      string `json:"notification_type"`
	CreatedAt string `json:"created_at"`
}

func (h *adminHandlerImpl) ListDigest(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.digest.List(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list digest queue")
		return
	}

	out := make([]digestEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = digestEntryResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Email:     e.Email,
			Subject:   e.Subject,
			Type:      string(e.Type),
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	response.Success(w, out)
}

// settingsResponse is the resolved settings snapshot with provider
// credentials redacted.
type settingsResponse struct {
	Enabled      bool   `json:"enabled"`
	EmailEnabled bool   `json:"email_enabled"`
	SMSEnabled   bool   `json:"sms_enabled"`
	SMSProvider  string `json:"sms_provider"`

	NotifyManager  bool     `json:"notify_manager"`
	NotifyEmployee bool     `json:"notify_employee"`
	NotifyHR       bool     `json:"notify_hr"`
	HREmails       []string `json:"hr_emails"`

	EventEnabled map[string]bool `json:"event_enabled"`

	LateArrivalMinutes  int   `json:"late_arrival_minutes"`
	BirthdayLeadDays    int   `json:"birthday_lead_days"`
	AnniversaryLeadDays int   `json:"anniversary_lead_days"`
	ProbationLeadDays   int   `json:"probation_lead_days"`
	ContractLeadDays    []int `json:"contract_lead_days"`
}

func (h *adminHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	st := h.settings.Resolve(r.Context())

	events := make(map[string]bool, len(st.EventEnabled))
	for t, on := range st.EventEnabled {
		events[string(t)] = on
	}

	response.Success(w, settingsResponse{
		Enabled:             st.Enabled,
		EmailEnabled:        st.EmailEnabled,
		SMSEnabled:          st.SMSEnabled,
		SMSProvider:         string(st.SMSProvider),
		NotifyManager:       st.NotifyManager,
		NotifyEmployee:      st.NotifyEmployee,
		NotifyHR:            st.NotifyHR,
		HREmails:            st.HREmails,
		EventEnabled:        events,
		LateArrivalMinutes:  st.LateArrivalMinutes,
		BirthdayLeadDays:    st.BirthdayLeadDays,
		AnniversaryLeadDays: st.AnniversaryLeadDays,
		ProbationLeadDays:   st.ProbationLeadDays,
		ContractLeadDays:    st.ContractLeadDays,
	})
}

func (h *adminHandlerImpl) RunScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduler.RunDaily(r.Context()); err != nil {
		response.InternalServerError(w, "Scheduler run failed")
		return
	}
	response.Accepted(w, "Scheduler run completed")
}
