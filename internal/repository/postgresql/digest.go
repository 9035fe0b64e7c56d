package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
	"github.com/google/uuid"
)

type digestRepository struct {
	db *database.DB
}

// NewDigestRepository creates a new digest queue repository
func NewDigestRepository(db *database.DB) notification.DigestRepository {
	return &digestRepository{db: db}
}

// Append adds one deferred notification to the digest queue. Entries
// are never updated in place; the external batcher owns draining.
func (r *digestRepository) Append(ctx context.Context, entry *notification.DigestEntry) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO digest_queue (id, user_id, email, subject, body, notification_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Email,
		entry.Subject,
		entry.Body,
		string(entry.Type),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append digest entry: %w", err)
	}

	return nil
}

// List returns pending digest entries, oldest first.
func (r *digestRepository) List(ctx context.Context, limit int) ([]notification.DigestEntry, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, user_id, email, subject, body, notification_type, created_at
		FROM digest_queue
		ORDER BY created_at ASC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query digest queue: %w", err)
	}
	defer rows.Close()

	var entries []notification.DigestEntry
	for rows.Next() {
		var e notification.DigestEntry
		var notifType string

		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Email,
			&e.Subject,
			&e.Body,
			&notifType,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan digest entry: %w", err)
		}

		e.Type = notification.NotificationType(notifType)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read digest queue: %w", err)
	}

	return entries, nil
}
