package notification

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
)

// SettingsService resolves the persisted settings store into a fully
// populated Settings value. Resolution never fails: a broken store
// degrades to the documented defaults.
type SettingsService struct {
	repo notification.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo notification.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Resolve loads and merges the persisted settings with defaults. The
// returned value is passed explicitly into every component handling the
// current event; nothing reads a global store.
func (s *SettingsService) Resolve(ctx context.Context) notification.Settings {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("Failed to load notification settings, using defaults", "error", err)
		raw = nil
	}
	return notification.ResolveSettings(raw)
}
