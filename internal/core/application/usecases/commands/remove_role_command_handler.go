package commands

import (
	"context"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/services"
	"trackledger/internal/pkg/errs"
)

// RemoveRoleCommandHandler revokes a role from a user for one delivery.
// Mirrors the grant handler: admin only, not gated by the pause flag.
// Revoking a role the user does not hold succeeds without changing anything.
type RemoveRoleCommandHandler struct {
	uowFactory RegistryUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveRoleCommandHandler creates a handler for role revocations.
func NewRemoveRoleCommandHandler(uowFactory RegistryUoWFactory) RemoveRoleCommandHandler {
	return RemoveRoleCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the role revocation.
// Every occurrence of the role is removed from the assignment.
func (h RemoveRoleCommandHandler) Handle(ctx context.Context, cmd RemoveRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	roleRepo := uow.RoleAssignmentRepository()

	ctrl, err := uow.ControlRepository().GetForUpdate(ctx)
	if err != nil {
		return err
	}

	callerAssignment, err := roleRepo.Find(ctx, cmd.Caller(), cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !h.policy.HasRole(ctrl, callerAssignment, cmd.Caller(), access.RoleAdmin) {
		return errs.NewUnauthorizedError(cmd.Caller().String(), "remove role")
	}

	exists, err := uow.DeliveryRepository().Exists(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("deliveryId", cmd.DeliveryID().String())
	}

	assignment, err := roleRepo.Find(ctx, cmd.User(), cmd.DeliveryID())
	if err != nil {
		return err
	}

	if assignment != nil {
		if err = assignment.Revoke(cmd.Role()); err != nil {
			return err
		}

		if err = roleRepo.Update(ctx, assignment); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
