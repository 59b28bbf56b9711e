package commands_test

import (
	"errors"
	"testing"

	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitializeDeliveryCommand(t *testing.T) {
	caller := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	operator := kernel.NewUUID()
	supplier := kernel.NewUUID()
	recipient := kernel.NewUUID()
	fp := testFingerprint(t)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewInitializeDeliveryCommand(
			caller, deliveryID, operator, supplier, recipient, 5000, fp)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.Caller().IsEqual(caller))
		assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
		assert.True(t, cmd.Operator().IsEqual(operator))
		assert.True(t, cmd.Supplier().IsEqual(supplier))
		assert.True(t, cmd.Recipient().IsEqual(recipient))
		assert.Equal(t, uint64(5000), cmd.ExpectedArrival())
		assert.True(t, cmd.PayloadFingerprint().IsEqual(fp))
	})

	t.Run("rejects zero identities", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewInitializeDeliveryCommand(
			zero, deliveryID, operator, supplier, recipient, 5000, fp)
		require.Error(t, err)
	})

	t.Run("rejects missing fingerprint", func(t *testing.T) {
		var zeroFp kernel.Fingerprint
		_, err := commands.NewInitializeDeliveryCommand(
			caller, deliveryID, operator, supplier, recipient, 5000, zeroFp)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.InitializeDeliveryCommand
		require.True(t, errors.Is(cmd.Validate(), commands.ErrInitializeDeliveryCommandIsNotConstructed))
	})
}
