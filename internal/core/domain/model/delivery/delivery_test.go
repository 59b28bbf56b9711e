package delivery_test

import (
	"bytes"
	"strings"
	"testing"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFingerprint(t *testing.T) kernel.Fingerprint {
	t.Helper()
	fp, err := kernel.FingerprintFromBytes(bytes.Repeat([]byte{0xcd}, kernel.FingerprintLength))
	require.NoError(t, err)
	return fp
}

func testPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint("40.7128", "-74.0060", 100)
	require.NoError(t, err)
	return point
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		2000,
		testFingerprint(t),
		1000,
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create a pending delivery with empty log", func(t *testing.T) {
		id := kernel.NewUUID()
		operator := kernel.NewUUID()
		supplier := kernel.NewUUID()
		recipient := kernel.NewUUID()
		fp := testFingerprint(t)

		d, err := delivery.NewDelivery(id, operator, supplier, recipient, 2000, fp, 1000)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.Operator().IsEqual(operator))
		assert.True(t, d.Supplier().IsEqual(supplier))
		assert.True(t, d.Recipient().IsEqual(recipient))
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Equal(t, uint32(0), d.Sequence())
		assert.False(t, d.IsCompleted())
		assert.Equal(t, uint64(1000), d.StartTime())
		assert.Equal(t, uint64(2000), d.ExpectedArrival())
		assert.Nil(t, d.ActualArrival())
		assert.Nil(t, d.FailureReason())
		assert.True(t, d.PayloadFingerprint().IsEqual(fp))
		assert.NoError(t, d.Validate())
	})

	t.Run("should reject invalid identities", func(t *testing.T) {
		var zero kernel.UUID
		_, err := delivery.NewDelivery(zero, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			2000, testFingerprint(t), 1000)
		require.Error(t, err)
	})

	t.Run("should reject unconstructed fingerprint", func(t *testing.T) {
		var fp kernel.Fingerprint
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), 2000, fp, 1000)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeliveryValidate(t *testing.T) {
	t.Run("nil and zero-value deliveries fail", func(t *testing.T) {
		var d *delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
		require.ErrorIs(t, (&delivery.Delivery{}).Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDeliveryTrack(t *testing.T) {
	t.Run("should append event and advance sequence by one", func(t *testing.T) {
		d := newTestDelivery(t)
		updater := kernel.NewUUID()

		event, err := d.Track(testPoint(t), delivery.InTransit, updater, "started", false, 1100)

		require.NoError(t, err)
		assert.Equal(t, uint32(1), event.Sequence())
		assert.Equal(t, uint32(1), d.Sequence())
		assert.Equal(t, delivery.InTransit, d.Status())
		assert.False(t, d.IsCompleted())
		assert.Nil(t, d.ActualArrival())
		assert.Equal(t, uint64(1100), event.RecordedAt())
		assert.True(t, event.Updater().IsEqual(updater))
		assert.True(t, event.DeliveryID().IsEqual(d.ID()))
		assert.Equal(t, "started", event.Note())
		assert.False(t, event.OracleVerified())
	})

	t.Run("should permit any non-terminal ordering including stage skips", func(t *testing.T) {
		d := newTestDelivery(t)

		for i, status := range []delivery.Status{
			delivery.Arrived, delivery.Pending, delivery.Delayed, delivery.Assigned,
		} {
			event, err := d.Track(testPoint(t), status, kernel.NewUUID(), "", false, 1100)
			require.NoError(t, err)
			assert.Equal(t, uint32(i+1), event.Sequence())
			assert.Equal(t, status, d.Status())
		}
	})

	t.Run("should stamp oracleVerified on the entry", func(t *testing.T) {
		d := newTestDelivery(t)

		event, err := d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), "", true, 1100)
		require.NoError(t, err)
		assert.True(t, event.OracleVerified())
	})

	t.Run("terminal status completes the delivery and sets actual arrival", func(t *testing.T) {
		d := newTestDelivery(t)

		_, err := d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), "started", false, 1100)
		require.NoError(t, err)

		event, err := d.Track(testPoint(t), delivery.Delivered, kernel.NewUUID(), "handover", false, 1200)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), event.Sequence())
		assert.True(t, d.IsCompleted())
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.ActualArrival())
		assert.Equal(t, uint64(1200), *d.ActualArrival())
		assert.Nil(t, d.FailureReason())
	})

	t.Run("failed status records the note as failure reason", func(t *testing.T) {
		d := newTestDelivery(t)

		_, err := d.Track(testPoint(t), delivery.Failed, kernel.NewUUID(), "payload lost", false, 1100)
		require.NoError(t, err)
		assert.True(t, d.IsCompleted())
		require.NotNil(t, d.FailureReason())
		assert.Equal(t, "payload lost", *d.FailureReason())
	})

	t.Run("completed delivery rejects further events", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.Track(testPoint(t), delivery.Cancelled, kernel.NewUUID(), "", false, 1100)
		require.NoError(t, err)

		_, err = d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), "", false, 1200)
		require.ErrorIs(t, err, delivery.ErrDeliveryCompleted)
		assert.Equal(t, uint32(1), d.Sequence())
	})

	t.Run("invalid status leaves the record untouched", func(t *testing.T) {
		d := newTestDelivery(t)

		_, err := d.Track(testPoint(t), delivery.Unknown, kernel.NewUUID(), "", false, 1100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, uint32(0), d.Sequence())
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("overlong note leaves the record untouched", func(t *testing.T) {
		d := newTestDelivery(t)

		note := strings.Repeat("x", delivery.MaxNoteLength+1)
		_, err := d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), note, false, 1100)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, uint32(0), d.Sequence())
	})

	t.Run("exactly MaxTrackingEvents events fit, the next fails", func(t *testing.T) {
		d := newTestDelivery(t)

		for i := 1; i <= delivery.MaxTrackingEvents; i++ {
			event, err := d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), "", false, 1100)
			require.NoError(t, err)
			require.Equal(t, uint32(i), event.Sequence())
		}

		_, err := d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), "", false, 1100)
		require.ErrorIs(t, err, delivery.ErrEventLogFull)
		assert.Equal(t, uint32(delivery.MaxTrackingEvents), d.Sequence())
	})
}

func TestDeliveryFail(t *testing.T) {
	t.Run("should complete the delivery without advancing sequence", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.Track(testPoint(t), delivery.InTransit, kernel.NewUUID(), "", false, 1100)
		require.NoError(t, err)

		err = d.Fail("recipient unreachable")
		require.NoError(t, err)
		assert.True(t, d.IsCompleted())
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, uint32(1), d.Sequence())
		require.NotNil(t, d.FailureReason())
		assert.Equal(t, "recipient unreachable", *d.FailureReason())
		assert.Nil(t, d.ActualArrival())
	})

	t.Run("completed delivery rejects forced failure", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Fail("first"))

		err := d.Fail("second")
		require.ErrorIs(t, err, delivery.ErrDeliveryCompleted)
		assert.Equal(t, "first", *d.FailureReason())
	})
}

func TestDeliveryIsOverdue(t *testing.T) {
	d := newTestDelivery(t)

	assert.False(t, d.IsOverdue(1500))
	assert.False(t, d.IsOverdue(2000))
	assert.True(t, d.IsOverdue(2001))

	require.NoError(t, d.Fail("gave up"))
	assert.False(t, d.IsOverdue(3000))
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore a completed delivery", func(t *testing.T) {
		arrival := uint64(1500)
		reason := "lost"

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			1000, 2000, &arrival, testFingerprint(t), 7, delivery.Failed, true, &reason,
		)

		require.NoError(t, err)
		assert.True(t, d.IsCompleted())
		assert.Equal(t, uint32(7), d.Sequence())
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, &arrival, d.ActualArrival())
		assert.Equal(t, &reason, d.FailureReason())
	})

	t.Run("should reject completed flag inconsistent with status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			1000, 2000, nil, testFingerprint(t), 1, delivery.InTransit, true, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			1000, 2000, nil, testFingerprint(t), 1, delivery.Delivered, false, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
