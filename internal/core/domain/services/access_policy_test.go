package services_test

import (
	"testing"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessPolicy_HasRole(t *testing.T) {
	policy := services.NewAccessPolicy()
	owner := kernel.NewUUID()
	user := kernel.NewUUID()
	deliveryID := kernel.NewUUID()

	ctrl, err := control.NewControl(owner)
	require.NoError(t, err)

	assignment, err := access.NewRoleAssignment(user, deliveryID, access.RoleOperator)
	require.NoError(t, err)

	t.Run("owner bypasses every role check", func(t *testing.T) {
		assert.True(t, policy.HasRole(ctrl, nil, owner, access.RoleAdmin))
		assert.True(t, policy.HasRole(ctrl, assignment, owner, access.RoleRecipient))
	})

	t.Run("assigned role is honored", func(t *testing.T) {
		assert.True(t, policy.HasRole(ctrl, assignment, user, access.RoleOperator))
		assert.False(t, policy.HasRole(ctrl, assignment, user, access.RoleAdmin))
	})

	t.Run("nil assignment means no roles", func(t *testing.T) {
		assert.False(t, policy.HasRole(ctrl, nil, user, access.RoleOperator))
	})
}

func TestAccessPolicy_CanTrack(t *testing.T) {
	policy := services.NewAccessPolicy()
	owner := kernel.NewUUID()
	operator := kernel.NewUUID()
	oracle := kernel.NewUUID()
	stranger := kernel.NewUUID()
	deliveryID := kernel.NewUUID()

	ctrl, err := control.NewControl(owner)
	require.NoError(t, err)
	require.NoError(t, ctrl.AddOracle(owner, oracle))

	assignment, err := access.NewRoleAssignment(operator, deliveryID, access.RoleOperator)
	require.NoError(t, err)

	t.Run("operator role allows unverified updates", func(t *testing.T) {
		allowed, verified := policy.CanTrack(ctrl, assignment, operator)
		assert.True(t, allowed)
		assert.False(t, verified)
	})

	t.Run("allowlisted oracle is allowed and verified", func(t *testing.T) {
		allowed, verified := policy.CanTrack(ctrl, nil, oracle)
		assert.True(t, allowed)
		assert.True(t, verified)
	})

	t.Run("owner bypass allows unverified updates", func(t *testing.T) {
		allowed, verified := policy.CanTrack(ctrl, nil, owner)
		assert.True(t, allowed)
		assert.False(t, verified)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		allowed, verified := policy.CanTrack(ctrl, nil, stranger)
		assert.False(t, allowed)
		assert.False(t, verified)
	})

	t.Run("operator who is also an oracle is verified", func(t *testing.T) {
		require.NoError(t, ctrl.AddOracle(owner, operator))
		allowed, verified := policy.CanTrack(ctrl, assignment, operator)
		assert.True(t, allowed)
		assert.True(t, verified)
	})
}
