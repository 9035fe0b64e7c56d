package notification

import (
	"context"
)

// Timing is a delivery-timing decision.
type Timing int

const (
	DeliverImmediate Timing = iota
	DeliverDigest
)

// PreferenceFilter decides whether a recipient wants a notification type
// at all. The engine ships a default-allow implementation; stricter
// policies are supplied by composition.
type PreferenceFilter interface {
	Allow(ctx context.Context, userID string, t NotificationType) bool
}

// TimingPolicy decides whether an email goes out now or joins the digest
// queue. SMS is unaffected: it is always immediate.
type TimingPolicy interface {
	Deliver(ctx context.Context, userID string, t NotificationType) Timing
}

// AllowAll is the default PreferenceFilter: every recipient gets every type.
type AllowAll struct{}

func (AllowAll) Allow(ctx context.Context, userID string, t NotificationType) bool {
	return true
}

// AlwaysImmediate is the default TimingPolicy: nothing is deferred.
type AlwaysImmediate struct{}

func (AlwaysImmediate) Deliver(ctx context.Context, userID string, t NotificationType) Timing {
	return DeliverImmediate
}
