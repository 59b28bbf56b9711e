package commands

import (
	"context"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/services"
	"trackledger/internal/pkg/errs"
)

// AssignRoleCommandHandler grants a role to a user for one delivery.
//
// Role administration is deliberately not gated by the pause flag, so an
// owner can still repair access while the ledger is frozen. Authorization is
// checked before record existence, so a non-admin probing random ids cannot
// distinguish known ids from unknown ones.
type AssignRoleCommandHandler struct {
	uowFactory RegistryUoWFactory
	policy     services.AccessPolicy
}

// NewAssignRoleCommandHandler creates a handler for role grants.
func NewAssignRoleCommandHandler(uowFactory RegistryUoWFactory) AssignRoleCommandHandler {
	return AssignRoleCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the role grant.
// Requires the admin role for the delivery (owner bypass applies). Duplicate
// grants are permitted; the per-assignment role set is capped.
func (h AssignRoleCommandHandler) Handle(ctx context.Context, cmd AssignRoleCommand) error {
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

	// The locked control row doubles as the registry mutation lock, so two
	// concurrent grants cannot both pass the capacity check.
	ctrl, err := uow.ControlRepository().GetForUpdate(ctx)
	if err != nil {
		return err
	}

	callerAssignment, err := roleRepo.Find(ctx, cmd.Caller(), cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !h.policy.HasRole(ctrl, callerAssignment, cmd.Caller(), access.RoleAdmin) {
		return errs.NewUnauthorizedError(cmd.Caller().String(), "assign role")
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

	if assignment == nil {
		assignment, err = access.NewRoleAssignment(cmd.User(), cmd.DeliveryID(), cmd.Role())
		if err != nil {
			return err
		}

		if err = roleRepo.Add(ctx, assignment); err != nil {
			return err
		}
	} else {
		if err = assignment.Grant(cmd.Role()); err != nil {
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
