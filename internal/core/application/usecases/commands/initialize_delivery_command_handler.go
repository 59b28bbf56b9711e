package commands

import (
	"context"

	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/core/ports"
	"trackledger/internal/pkg/errs"
)

// InitializeDeliveryCommandHandler handles the business logic for creating a
// delivery record together with its initial role assignments. The record, the
// admin role of the caller, and the participant roles are persisted in one
// transaction, so a rejected initialization writes nothing.
type InitializeDeliveryCommandHandler struct {
	uowFactory RegistryUoWFactory
	clock      ports.Clock
}

// NewInitializeDeliveryCommandHandler creates a handler for delivery
// initialization operations.
func NewInitializeDeliveryCommandHandler(
	uowFactory RegistryUoWFactory, clock ports.Clock,
) InitializeDeliveryCommandHandler {
	return InitializeDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the initialization command.
// Rejects duplicate delivery ids, then rejects while the ledger is paused,
// then creates the record in pending status with an empty event log and
// grants the initial roles: caller as admin, and the operator, supplier, and
// recipient identities their namesake roles. Roles for the same identity are
// merged into a single assignment.
func (h InitializeDeliveryCommandHandler) Handle(ctx context.Context, cmd InitializeDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	exists, err := deliveryRepo.Exists(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("deliveryId", cmd.DeliveryID().String())
	}

	ctrl, err := uow.ControlRepository().Get(ctx)
	if err != nil {
		return err
	}
	if ctrl.Paused() {
		return control.ErrLedgerPaused
	}

	record, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.Operator(),
		cmd.Supplier(),
		cmd.Recipient(),
		cmd.ExpectedArrival(),
		cmd.PayloadFingerprint(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, record); err != nil {
		return err
	}

	roleRepo := uow.RoleAssignmentRepository()
	for _, grant := range initialGrants(cmd) {
		assignment, assignErr := access.NewRoleAssignment(grant.user, cmd.DeliveryID(), grant.roles...)
		if assignErr != nil {
			return assignErr
		}

		if err = roleRepo.Add(ctx, assignment); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

type initialGrant struct {
	user  kernel.UUID
	roles []access.Role
}

// initialGrants merges the bootstrap roles by identity, since the same party
// may play several parts (e.g. the caller acting as operator) and the
// assignment key (user, delivery) must stay unique.
func initialGrants(cmd InitializeDeliveryCommand) []initialGrant {
	pairs := []struct {
		user kernel.UUID
		role access.Role
	}{
		{cmd.Caller(), access.RoleAdmin},
		{cmd.Operator(), access.RoleOperator},
		{cmd.Supplier(), access.RoleSupplier},
		{cmd.Recipient(), access.RoleRecipient},
	}

	grants := make([]initialGrant, 0, len(pairs))
	for _, pair := range pairs {
		merged := false
		for i := range grants {
			if grants[i].user.IsEqual(pair.user) {
				grants[i].roles = append(grants[i].roles, pair.role)
				merged = true
				break
			}
		}
		if !merged {
			grants = append(grants, initialGrant{user: pair.user, roles: []access.Role{pair.role}})
		}
	}

	return grants
}
