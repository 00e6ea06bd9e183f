package cmd

import (
	"log/slog"

	adapterhttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/filecatalog"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/settlement"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *filecatalog.Provider
	gateway    *settlement.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		catalog:    filecatalog.NewProvider(config.CatalogDataDir),
		gateway:    settlement.NewClient(config.SettlementURL, config.SettlementTimeout),
	}
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeQuantityCommandHandler() commands.ChangeQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.gateway, c.logger)
}

func (c *CompositionRoot) CreatePurgeStaleCartsCommandHandler() commands.PurgeStaleCartsCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeStaleCartsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory.Create().CartRepository())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetArtistsQueryHandler() queries.GetArtistsQueryHandler {
	return queries.NewGetArtistsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateAddItemCommandHandler(),
		c.CreateRemoveItemCommandHandler(),
		c.CreateChangeQuantityCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetArtistsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeStaleCartsCommandHandler(), c.config.CartRetention, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}
