package cmd

import (
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/filestore"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	storage    *filestore.Storage
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, storage *filestore.Storage) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		storage:    storage,
	}
}

func (c *CompositionRoot) OrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.OrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartDispatchCommandHandler() commands.StartDispatchCommandHandler {
	return commands.NewStartDispatchCommandHandler(c.OrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteDispatchCommandHandler() commands.CompleteDispatchCommandHandler {
	return commands.NewCompleteDispatchCommandHandler(c.OrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.OrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSetSettingCommandHandler() commands.SetSettingCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetSettingCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingQueryHandler() queries.GetSettingQueryHandler {
	return queries.NewGetSettingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer(hub httpin.SubscriberHub) *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateStartDispatchCommandHandler(),
		c.CreateCompleteDispatchCommandHandler(),
		c.CreateReturnOrderCommandHandler(),
		c.CreateSetSettingCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetSettingQueryHandler(),
		hub,
		c.storage,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
