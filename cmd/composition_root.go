package cmd

import (
	"trackledger/internal/adapters/out/postgres"
	"trackledger/internal/adapters/out/sysclock"
	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      sysclock.SystemClock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      sysclock.NewSystemClock(),
	}
}

func (c *CompositionRoot) CreateInitializeDeliveryCommandHandler() commands.InitializeDeliveryCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitializeDeliveryCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTrackDeliveryCommandHandler() commands.TrackDeliveryCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTrackDeliveryCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRoleCommandHandler() commands.AssignRoleCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveRoleCommandHandler() commands.RemoveRoleCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOracleCommandHandler() commands.AddOracleCommandHandler {
	var f commands.ControlUoWFactory = FuncControlUoWFactory(func() commands.ControlUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOracleCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOracleCommandHandler() commands.RemoveOracleCommandHandler {
	var f commands.ControlUoWFactory = FuncControlUoWFactory(func() commands.ControlUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOracleCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPauseCommandHandler() commands.SetPauseCommandHandler {
	var f commands.ControlUoWFactory = FuncControlUoWFactory(func() commands.ControlUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPauseCommandHandler(f)
}

func (c *CompositionRoot) CreateFlagOverdueDeliveriesCommandHandler() commands.FlagOverdueDeliveriesCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagOverdueDeliveriesCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetDeliveryDetailsQueryHandler() queries.GetDeliveryDetailsQueryHandler {
	return queries.NewGetDeliveryDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingEventQueryHandler() queries.GetTrackingEventQueryHandler {
	return queries.NewGetTrackingEventQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestSequenceQueryHandler() queries.GetLatestSequenceQueryHandler {
	return queries.NewGetLatestSequenceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsDeliveryCompletedQueryHandler() queries.IsDeliveryCompletedQueryHandler {
	return queries.NewIsDeliveryCompletedQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOraclesQueryHandler() queries.GetOraclesQueryHandler {
	return queries.NewGetOraclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLedgerControlQueryHandler() queries.GetLedgerControlQueryHandler {
	return queries.NewGetLedgerControlQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHasRoleQueryHandler() queries.HasRoleQueryHandler {
	return queries.NewHasRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueDeliveriesQueryHandler() queries.GetOverdueDeliveriesQueryHandler {
	return queries.NewGetOverdueDeliveriesQueryHandler(c.gormDB)
}

type FuncControlUoWFactory func() commands.ControlUoW

func (f FuncControlUoWFactory) Create() commands.ControlUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}
