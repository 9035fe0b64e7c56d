package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB) notification.SettingsRepository {
	return &settingsRepository{db: db}
}

// Load reads the whole notification_settings key/value table. Missing
// keys are not an error; resolution falls back per-key to defaults.
func (r *settingsRepository) Load(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT key, value FROM notification_settings`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan notification setting: %w", err)
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notification settings: %w", err)
	}

	return settings, nil
}
