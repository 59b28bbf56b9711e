package delivery_test

import (
	"testing"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		cases := map[string]delivery.Status{
			"pending":    delivery.Pending,
			"assigned":   delivery.Assigned,
			"in-transit": delivery.InTransit,
			"delayed":    delivery.Delayed,
			"arrived":    delivery.Arrived,
			"delivered":  delivery.Delivered,
			"failed":     delivery.Failed,
			"cancelled":  delivery.Cancelled,
		}

		for input, expected := range cases {
			status, err := delivery.ParseStatus(input)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, input, status.String())
		}
	})

	t.Run("should reject values outside the set", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Pending", "in_transit", "done"} {
			_, err := delivery.ParseStatus(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		valid := []delivery.Status{
			delivery.Pending, delivery.Assigned, delivery.InTransit, delivery.Delayed,
			delivery.Arrived, delivery.Delivered, delivery.Failed, delivery.Cancelled,
		}
		for _, s := range valid {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.ErrorIs(t, delivery.Unknown.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, delivery.Status(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := []delivery.Status{delivery.Delivered, delivery.Failed, delivery.Cancelled}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
	}

	nonTerminal := []delivery.Status{
		delivery.Pending, delivery.Assigned, delivery.InTransit, delivery.Delayed, delivery.Arrived,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unknown", delivery.Unknown.String())
	assert.Equal(t, "unknown", delivery.Status(42).String())
	assert.Equal(t, "in-transit", delivery.InTransit.String())
}
