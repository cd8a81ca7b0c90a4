package cmd

import (
	"log/slog"

	adapterhttp "haulage/internal/adapters/in/http"
	"haulage/internal/adapters/out/postgres"
	"haulage/internal/adapters/out/postgres/customerrepo"
	"haulage/internal/adapters/out/postgres/dispatchrepo"
	"haulage/internal/adapters/out/postgres/exceptionrepo"
	"haulage/internal/adapters/out/postgres/materialrepo"
	"haulage/internal/adapters/out/postgres/operatorrepo"
	"haulage/internal/adapters/out/postgres/orderrepo"
	"haulage/internal/adapters/out/postgres/truckrepo"
	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/application/usecases/queries"
	"haulage/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// MigrateDatabase creates or updates the schema for every aggregate DTO.
func (c *CompositionRoot) MigrateDatabase() error {
	return c.gormDB.AutoMigrate(
		&truckrepo.TruckDTO{},
		&orderrepo.OrderDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.AttachmentDTO{},
		&materialrepo.MaterialDTO{},
		&materialrepo.StockMovementDTO{},
		&exceptionrepo.ExceptionDTO{},
		&customerrepo.CustomerDTO{},
		&operatorrepo.OperatorDTO{},
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMaterialCommandHandler() commands.CreateMaterialCommandHandler {
	var f commands.MaterialUoWFactory = FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMaterialCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOperatorCommandHandler() commands.CreateOperatorCommandHandler {
	var f commands.OperatorUoWFactory = FuncOperatorUoWFactory(func() commands.OperatorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOperatorCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocateTrucksCommandHandler() commands.AllocateTrucksCommandHandler {
	return commands.NewAllocateTrucksCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateStartJourneyCommandHandler() commands.StartJourneyCommandHandler {
	return commands.NewStartJourneyCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateWeighInCommandHandler() commands.WeighInCommandHandler {
	return commands.NewWeighInCommandHandler(c.createDispatchUoWFactory())
}

func (c *CompositionRoot) CreateUnloadCommandHandler() commands.UnloadCommandHandler {
	return commands.NewUnloadCommandHandler(c.createDispatchUoWFactory())
}

func (c *CompositionRoot) CreateWeighOutCommandHandler() commands.WeighOutCommandHandler {
	return commands.NewWeighOutCommandHandler(c.createDispatchUoWFactory())
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.createUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelDispatchCommandHandler() commands.CancelDispatchCommandHandler {
	return commands.NewCancelDispatchCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	return commands.NewAssignOperatorCommandHandler(c.createDispatchUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDispatchStatusCommandHandler() commands.UpdateDispatchStatusCommandHandler {
	return commands.NewUpdateDispatchStatusCommandHandler(
		c.CreateStartJourneyCommandHandler(),
		c.CreateWeighInCommandHandler(),
		c.CreateUnloadCommandHandler(),
		c.CreateWeighOutCommandHandler(),
		c.CreateCompleteJobCommandHandler(),
		c.CreateCancelDispatchCommandHandler(),
	)
}

func (c *CompositionRoot) CreateLogExceptionCommandHandler() commands.LogExceptionCommandHandler {
	return commands.NewLogExceptionCommandHandler(c.createExceptionUoWFactory())
}

func (c *CompositionRoot) CreateResolveExceptionCommandHandler() commands.ResolveExceptionCommandHandler {
	return commands.NewResolveExceptionCommandHandler(c.createExceptionUoWFactory())
}

func (c *CompositionRoot) CreateGetKPISummaryQueryHandler() queries.GetKPISummaryQueryHandler {
	return queries.NewGetKPISummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDispatchesQueryHandler() queries.GetActiveDispatchesQueryHandler {
	return queries.NewGetActiveDispatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrucksQueryHandler() queries.GetTrucksQueryHandler {
	return queries.NewGetTrucksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMaterialsQueryHandler() queries.GetMaterialsQueryHandler {
	return queries.NewGetMaterialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperatorsQueryHandler() queries.GetOperatorsQueryHandler {
	return queries.NewGetOperatorsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer(logger *slog.Logger) *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		CreateTruck:      c.CreateCreateTruckCommandHandler(),
		CreateMaterial:   c.CreateCreateMaterialCommandHandler(),
		CreateCustomer:   c.CreateCreateCustomerCommandHandler(),
		CreateOperator:   c.CreateCreateOperatorCommandHandler(),
		AllocateTrucks:   c.CreateAllocateTrucksCommandHandler(),
		StartJourney:     c.CreateStartJourneyCommandHandler(),
		WeighIn:          c.CreateWeighInCommandHandler(),
		Unload:           c.CreateUnloadCommandHandler(),
		WeighOut:         c.CreateWeighOutCommandHandler(),
		CompleteJob:      c.CreateCompleteJobCommandHandler(),
		CancelDispatch:   c.CreateCancelDispatchCommandHandler(),
		AssignOperator:   c.CreateAssignOperatorCommandHandler(),
		UpdateStatus:     c.CreateUpdateDispatchStatusCommandHandler(),
		LogException:     c.CreateLogExceptionCommandHandler(),
		ResolveException: c.CreateResolveExceptionCommandHandler(),
		KPISummary:       c.CreateGetKPISummaryQueryHandler(),
		ActiveDispatches: c.CreateGetActiveDispatchesQueryHandler(),
		Trucks:           c.CreateGetTrucksQueryHandler(),
		Materials:        c.CreateGetMaterialsQueryHandler(),
		Customers:        c.CreateGetCustomersQueryHandler(),
		Operators:        c.CreateGetOperatorsQueryHandler(),
	}, logger)
}

// CreateJobManager wires the background allocation sweep.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAllocateTrucksCommandHandler(), logger)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createDispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createExceptionUoWFactory() commands.ExceptionUoWFactory {
	return FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOperatorUoWFactory func() commands.OperatorUoW

func (f FuncOperatorUoWFactory) Create() commands.OperatorUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
