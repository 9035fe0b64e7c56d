package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-notify-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userLookupRepository struct {
	db *database.DB
}

func NewUserLookupRepository(db *database.DB) notification.UserLookup {
	return &userLookupRepository{db: db}
}

// UserIDByEmail implements notification.UserLookup.
func (r *userLookupRepository) UserIDByEmail(ctx context.Context, email string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL`

	var id string
	err := q.QueryRow(ctx, query, email).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", notification.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user by email: %w", err)
	}

	return id, nil
}
