package notification

import (
	"context"
)

// SettingsRepository reads the persisted key/value settings store.
type SettingsRepository interface {
	Load(ctx context.Context) (map[string]string, error)
}

// DigestRepository persists deferred notifications. The engine only
// appends; draining is owned by the external digest batcher.
type DigestRepository interface {
	Append(ctx context.Context, entry *DigestEntry) error
	List(ctx context.Context, limit int) ([]DigestEntry, error)
}

// UserLookup maps a destination email to the owning user account, for
// preference lookups keyed by person rather than address.
type UserLookup interface {
	UserIDByEmail(ctx context.Context, email string) (string, error)
}
