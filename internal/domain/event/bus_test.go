package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribersInOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var order []string

	bus.OnLeaveCreated(func(ctx context.Context, ev LeaveCreated) {
		order = append(order, "first:"+ev.RequestID)
	})
	bus.OnLeaveCreated(func(ctx context.Context, ev LeaveCreated) {
		order = append(order, "second:"+ev.RequestID)
	})

	bus.PublishLeaveCreated(context.Background(), LeaveCreated{RequestID: "42"})

	require.Equal(t, []string{"first:42", "second:42"}, order)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	// Nothing registered: publishing must be a harmless no-op.
	bus.PublishBirthday(context.Background(), Birthday{EmployeeID: "emp-1"})
	bus.PublishPayslipReady(context.Background(), PayslipReady{EmployeeID: "emp-1"})
}

func TestBus_PanickingSubscriberIsIsolated(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var delivered bool

	bus.OnAnniversary(func(ctx context.Context, ev Anniversary) {
		panic("subscriber bug")
	})
	bus.OnAnniversary(func(ctx context.Context, ev Anniversary) {
		delivered = true
	})

	assert.NotPanics(t, func() {
		bus.PublishAnniversary(context.Background(), Anniversary{EmployeeID: "emp-1", Years: 5})
	})
	assert.True(t, delivered, "later subscribers still run after an earlier panic")
}

func TestBus_EventsAreTyped(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got ContractExpiring

	bus.OnContractExpiring(func(ctx context.Context, ev ContractExpiring) {
		got = ev
	})

	bus.PublishContractExpiring(context.Background(), ContractExpiring{EmployeeID: "emp-9", DaysUntil: 30})

	assert.Equal(t, "emp-9", got.EmployeeID)
	assert.Equal(t, 30, got.DaysUntil)
}
