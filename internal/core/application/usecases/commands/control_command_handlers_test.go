package commands_test

import (
	"errors"
	"testing"

	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type controlFixture struct {
	controlRepo *MockControlRepository
	uow         *MockUoW
	factory     *MockControlUoWFactory
}

func newControlFixture(t *testing.T) *controlFixture {
	t.Helper()
	f := &controlFixture{
		controlRepo: new(MockControlRepository),
		uow:         new(MockUoW),
		factory:     new(MockControlUoWFactory),
	}
	f.uow.On("ControlRepository").Return(f.controlRepo)
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.factory.On("Create").Return(f.uow)
	return f
}

func TestAddOracleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	identity := kernel.NewUUID()
	cmd, err := commands.NewAddOracleCommand(owner, identity)
	require.NoError(t, err)

	ctrl := testControl(t, owner)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(ctrl, nil).Once()
	f.controlRepo.On("Update", ctx, ctrl).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAddOracleCommandHandler(f.factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, ctrl.IsOracle(identity))
	f.controlRepo.AssertExpectations(t)
}

func TestAddOracleCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddOracleCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(testControl(t, kernel.NewUUID()), nil).Once()

	h := commands.NewAddOracleCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)
	require.True(t, errors.Is(err, errs.ErrUnauthorized))
	f.controlRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAddOracleCommandHandler_Handle_RegistryFull(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewAddOracleCommand(owner, kernel.NewUUID())
	require.NoError(t, err)

	oracles := make([]kernel.UUID, control.MaxTrustedOracles)
	for i := range oracles {
		oracles[i] = kernel.NewUUID()
	}
	ctrl := testControl(t, owner, oracles...)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(ctrl, nil).Once()

	h := commands.NewAddOracleCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)
	require.True(t, errors.Is(err, errs.ErrCapacityExceeded))
}

func TestRemoveOracleCommandHandler_Handle_AbsentIdentityIsNoOp(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewRemoveOracleCommand(owner, kernel.NewUUID())
	require.NoError(t, err)

	ctrl := testControl(t, owner)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(ctrl, nil).Once()
	f.controlRepo.On("Update", ctx, ctrl).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewRemoveOracleCommandHandler(f.factory)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestRemoveOracleCommandHandler_Handle_RemovesIdentity(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	identity := kernel.NewUUID()
	cmd, err := commands.NewRemoveOracleCommand(owner, identity)
	require.NoError(t, err)

	ctrl := testControl(t, owner, identity)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(ctrl, nil).Once()
	f.controlRepo.On("Update", ctx, ctrl).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewRemoveOracleCommandHandler(f.factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.False(t, ctrl.IsOracle(identity))
}

func TestSetPauseCommandHandler_Handle_OwnerTogglesFlag(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewSetPauseCommand(owner, true)
	require.NoError(t, err)

	ctrl := testControl(t, owner)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(ctrl, nil).Once()
	f.controlRepo.On("Update", ctx, ctrl).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSetPauseCommandHandler(f.factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, ctrl.Paused())
}

func TestSetPauseCommandHandler_Handle_UnpauseWhilePaused(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	cmd, err := commands.NewSetPauseCommand(owner, false)
	require.NoError(t, err)

	ctrl := pausedControl(t, owner)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(ctrl, nil).Once()
	f.controlRepo.On("Update", ctx, ctrl).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSetPauseCommandHandler(f.factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.False(t, ctrl.Paused())
}

func TestSetPauseCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetPauseCommand(kernel.NewUUID(), true)
	require.NoError(t, err)

	f := newControlFixture(t)
	f.controlRepo.On("GetForUpdate", ctx).Return(testControl(t, kernel.NewUUID()), nil).Once()

	h := commands.NewSetPauseCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)
	require.True(t, errors.Is(err, errs.ErrUnauthorized))
	f.controlRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
