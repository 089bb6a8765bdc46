package order_test

import (
	"testing"

	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Pending:     "Pending",
		order.Broadcasted: "Broadcasted",
		order.Confirmed:   "Confirmed",
		order.InProgress:  "In Progress",
		order.Completed:   "Completed",
		order.Cancelled:   "Cancelled",
		order.Unknown:     "Unknown",
		order.Status(42):  "Unknown",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every display name", func(t *testing.T) {
		for _, name := range []string{"Pending", "Broadcasted", "Confirmed", "In Progress", "Completed", "Cancelled"} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects Unknown itself", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Broadcasted, order.Confirmed, order.InProgress, order.Completed, order.Cancelled} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Broadcast(t *testing.T) {
	t.Run("allowed from Pending", func(t *testing.T) {
		next, err := order.Pending.Broadcast()
		require.NoError(t, err)
		assert.Equal(t, order.Broadcasted, next)
	})

	t.Run("allowed from Broadcasted (re-broadcast)", func(t *testing.T) {
		next, err := order.Broadcasted.Broadcast()
		require.NoError(t, err)
		assert.Equal(t, order.Broadcasted, next)
	})

	t.Run("rejected from assignment-terminal states", func(t *testing.T) {
		for _, s := range []order.Status{order.Confirmed, order.InProgress, order.Completed, order.Cancelled} {
			_, err := s.Broadcast()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("allowed from Pending and Broadcasted", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Broadcasted} {
			next, err := s.Confirm()
			require.NoError(t, err)
			assert.Equal(t, order.Confirmed, next)
		}
	})

	t.Run("rejected once confirmed", func(t *testing.T) {
		_, err := order.Confirmed.Confirm()
		require.Error(t, err)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := []struct {
		from, to order.Status
	}{
		{order.Pending, order.Broadcasted},
		{order.Pending, order.Confirmed},
		{order.Pending, order.Cancelled},
		{order.Broadcasted, order.Confirmed},
		{order.Broadcasted, order.Cancelled},
		{order.Confirmed, order.InProgress},
		{order.Confirmed, order.Cancelled},
		{order.InProgress, order.Completed},
		{order.InProgress, order.Cancelled},
	}

	for _, tc := range allowed {
		next, err := tc.from.TransitionTo(tc.to)
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.to, next)
	}

	forbidden := []struct {
		from, to order.Status
	}{
		{order.Pending, order.InProgress},
		{order.Pending, order.Completed},
		{order.Broadcasted, order.Completed},
		{order.Confirmed, order.Pending},
		{order.Completed, order.Cancelled},
		{order.Cancelled, order.Pending},
		{order.Completed, order.InProgress},
	}

	for _, tc := range forbidden {
		_, err := tc.from.TransitionTo(tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}

	t.Run("rejects Unknown target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}
