package cmd

import (
	"log/slog"

	"errand/internal/adapters/out/postgres"
	"errand/internal/adapters/out/postgres/draftrepo"
	"errand/internal/adapters/out/postgres/notificationrepo"
	"errand/internal/adapters/out/postgres/sweeprepo"
	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/application/usecases/queries"
	"errand/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.PickupPolicy
	config     Config
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := services.NewPickupPolicy(config.RemindAfter, config.ExpireAfter)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		config:     config,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderEscrowUoWFactory() commands.OrderEscrowUoWFactory {
	return FuncOrderEscrowUoWFactory(func() commands.OrderEscrowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) draftUoWFactory() commands.DraftUoWFactory {
	return FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderEscrowUoWFactory())
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderEscrowUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderEscrowUoWFactory())
}

func (c *CompositionRoot) CreateSettleEscrowCommandHandler() commands.SettleEscrowCommandHandler {
	return commands.NewSettleEscrowCommandHandler(c.orderEscrowUoWFactory())
}

func (c *CompositionRoot) CreateSweepPickupRemindersCommandHandler() commands.SweepPickupRemindersCommandHandler {
	return commands.NewSweepPickupRemindersCommandHandler(
		c.orderUoWFactory(),
		sweeprepo.NewGormSweepLocker(c.gormDB),
		notificationrepo.NewGormNotificationDispatcher(c.gormDB),
		c.policy,
		c.config.SweepMinInterval,
		c.logger,
	)
}

func (c *CompositionRoot) CreateOpenDraftSessionCommandHandler() commands.OpenDraftSessionCommandHandler {
	return commands.NewOpenDraftSessionCommandHandler(c.draftUoWFactory())
}

func (c *CompositionRoot) CreateSaveDraftSessionCommandHandler() commands.SaveDraftSessionCommandHandler {
	return commands.NewSaveDraftSessionCommandHandler(c.draftUoWFactory())
}

func (c *CompositionRoot) CreateDiscardDraftSessionCommandHandler() commands.DiscardDraftSessionCommandHandler {
	return commands.NewDiscardDraftSessionCommandHandler(c.draftUoWFactory())
}

func (c *CompositionRoot) CreateSubmitDraftSessionCommandHandler() commands.SubmitDraftSessionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDraftSessionCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftSessionQueryHandler() queries.GetDraftSessionQueryHandler {
	return queries.NewGetDraftSessionQueryHandler(draftrepo.NewGormDraftSessionRepository(c.gormDB))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderEscrowUoWFactory func() commands.OrderEscrowUoW

func (f FuncOrderEscrowUoWFactory) Create() commands.OrderEscrowUoW {
	return f()
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
