package cmd

import (
	"relomarket/internal/adapters/out/postgres"
	"relomarket/internal/core/application/usecases/commands"
	"relomarket/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateBroadcastOrderCommandHandler() commands.BroadcastOrderCommandHandler {
	var f commands.BroadcastUoWFactory = FuncBroadcastUoWFactory(func() commands.BroadcastUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBroadcastOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDirectAssignCommandHandler() commands.DirectAssignCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDirectAssignCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordResponseCommandHandler() commands.RecordResponseCommandHandler {
	var f commands.NegotiationUoWFactory = FuncNegotiationUoWFactory(func() commands.NegotiationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordResponseCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewResponseCommandHandler() commands.ReviewResponseCommandHandler {
	var f commands.NegotiationUoWFactory = FuncNegotiationUoWFactory(func() commands.NegotiationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewResponseCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireBroadcastsCommandHandler() commands.ExpireBroadcastsCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireBroadcastsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderNegotiationQueryHandler() queries.GetOrderNegotiationQueryHandler {
	return queries.NewGetOrderNegotiationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingResponsesQueryHandler() queries.GetPendingResponsesQueryHandler {
	return queries.NewGetPendingResponsesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncBroadcastUoWFactory func() commands.BroadcastUoW

func (f FuncBroadcastUoWFactory) Create() commands.BroadcastUoW {
	return f()
}

type FuncNegotiationUoWFactory func() commands.NegotiationUoW

func (f FuncNegotiationUoWFactory) Create() commands.NegotiationUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}
