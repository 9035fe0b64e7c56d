package notification

import "errors"

var (
	ErrDigestEntryNotFound = errors.New("Digest entry not found")
	ErrUserNotFound        = errors.New("User not found")
)
