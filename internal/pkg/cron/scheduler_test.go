package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRunAt(t *testing.T) {
	t.Parallel()

	loc := time.UTC

	// Before the hour: today.
	now := time.Date(2026, time.September, 1, 5, 30, 0, 0, loc)
	next := nextRunAt(now, 7)
	assert.Equal(t, time.Date(2026, time.September, 1, 7, 0, 0, 0, loc), next)

	// After the hour: tomorrow.
	now = time.Date(2026, time.September, 1, 8, 0, 0, 0, loc)
	next = nextRunAt(now, 7)
	assert.Equal(t, time.Date(2026, time.September, 2, 7, 0, 0, 0, loc), next)

	// Exactly on the hour: strictly after, so tomorrow.
	now = time.Date(2026, time.September, 1, 7, 0, 0, 0, loc)
	next = nextRunAt(now, 7)
	assert.Equal(t, time.Date(2026, time.September, 2, 7, 0, 0, 0, loc), next)

	// Midnight hour rolls across month boundaries.
	now = time.Date(2026, time.September, 30, 23, 59, 0, 0, loc)
	next = nextRunAt(now, 0)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, loc), next)
}

func TestRunOnce(t *testing.T) {
	t.Parallel()

	s := NewScheduler()

	var ran []string
	s.AddDailyJob("scan", 7, func(ctx context.Context) error {
		ran = append(ran, "scan")
		return nil
	})
	s.AddJob("poll", time.Minute, func(ctx context.Context) error {
		ran = append(ran, "poll")
		return errors.New("boom")
	})

	// A failing job must not stop the others.
	s.RunOnce(context.Background())
	assert.Equal(t, []string{"scan", "poll"}, ran)
}
