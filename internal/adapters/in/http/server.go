// Package http exposes the dispatch lifecycle over a REST API built on Echo.
// Handlers translate JSON payloads into commands and queries, and map the
// error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/application/usecases/queries"
	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/exception"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	createTruckHandler      commands.CreateTruckCommandHandler
	createMaterialHandler   commands.CreateMaterialCommandHandler
	createCustomerHandler   commands.CreateCustomerCommandHandler
	createOperatorHandler   commands.CreateOperatorCommandHandler
	allocateTrucksHandler   commands.AllocateTrucksCommandHandler
	startJourneyHandler     commands.StartJourneyCommandHandler
	weighInHandler          commands.WeighInCommandHandler
	unloadHandler           commands.UnloadCommandHandler
	weighOutHandler         commands.WeighOutCommandHandler
	completeJobHandler      commands.CompleteJobCommandHandler
	cancelDispatchHandler   commands.CancelDispatchCommandHandler
	assignOperatorHandler   commands.AssignOperatorCommandHandler
	updateStatusHandler     commands.UpdateDispatchStatusCommandHandler
	logExceptionHandler     commands.LogExceptionCommandHandler
	resolveExceptionHandler commands.ResolveExceptionCommandHandler

	kpiSummaryHandler       queries.GetKPISummaryQueryHandler
	activeDispatchesHandler queries.GetActiveDispatchesQueryHandler
	trucksHandler           queries.GetTrucksQueryHandler
	materialsHandler        queries.GetMaterialsQueryHandler
	customersHandler        queries.GetCustomersQueryHandler
	operatorsHandler        queries.GetOperatorsQueryHandler

	logger *slog.Logger
}

// Handlers bundles the use case handlers the server depends on.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	CreateTruck      commands.CreateTruckCommandHandler
	CreateMaterial   commands.CreateMaterialCommandHandler
	CreateCustomer   commands.CreateCustomerCommandHandler
	CreateOperator   commands.CreateOperatorCommandHandler
	AllocateTrucks   commands.AllocateTrucksCommandHandler
	StartJourney     commands.StartJourneyCommandHandler
	WeighIn          commands.WeighInCommandHandler
	Unload           commands.UnloadCommandHandler
	WeighOut         commands.WeighOutCommandHandler
	CompleteJob      commands.CompleteJobCommandHandler
	CancelDispatch   commands.CancelDispatchCommandHandler
	AssignOperator   commands.AssignOperatorCommandHandler
	UpdateStatus     commands.UpdateDispatchStatusCommandHandler
	LogException     commands.LogExceptionCommandHandler
	ResolveException commands.ResolveExceptionCommandHandler

	KPISummary       queries.GetKPISummaryQueryHandler
	ActiveDispatches queries.GetActiveDispatchesQueryHandler
	Trucks           queries.GetTrucksQueryHandler
	Materials        queries.GetMaterialsQueryHandler
	Customers        queries.GetCustomersQueryHandler
	Operators        queries.GetOperatorsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:      handlers.CreateOrder,
		createTruckHandler:      handlers.CreateTruck,
		createMaterialHandler:   handlers.CreateMaterial,
		createCustomerHandler:   handlers.CreateCustomer,
		createOperatorHandler:   handlers.CreateOperator,
		allocateTrucksHandler:   handlers.AllocateTrucks,
		startJourneyHandler:     handlers.StartJourney,
		weighInHandler:          handlers.WeighIn,
		unloadHandler:           handlers.Unload,
		weighOutHandler:         handlers.WeighOut,
		completeJobHandler:      handlers.CompleteJob,
		cancelDispatchHandler:   handlers.CancelDispatch,
		assignOperatorHandler:   handlers.AssignOperator,
		updateStatusHandler:     handlers.UpdateStatus,
		logExceptionHandler:     handlers.LogException,
		resolveExceptionHandler: handlers.ResolveException,
		kpiSummaryHandler:       handlers.KPISummary,
		activeDispatchesHandler: handlers.ActiveDispatches,
		trucksHandler:           handlers.Trucks,
		materialsHandler:        handlers.Materials,
		customersHandler:        handlers.Customers,
		operatorsHandler:        handlers.Operators,
		logger:                  logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all API routes on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)

	v1.POST("/trucks", s.CreateTruck)
	v1.GET("/trucks", s.GetTrucks)

	v1.POST("/materials", s.CreateMaterial)
	v1.GET("/materials", s.GetMaterials)

	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.GetCustomers)

	v1.POST("/operators", s.CreateOperator)
	v1.GET("/operators", s.GetOperators)

	v1.POST("/dispatches/:id/start_journey", s.StartJourney)
	v1.POST("/dispatches/:id/weigh_in", s.WeighIn)
	v1.POST("/dispatches/:id/unload", s.Unload)
	v1.POST("/dispatches/:id/weigh_out", s.WeighOut)
	v1.POST("/dispatches/:id/complete_job", s.CompleteJob)
	v1.POST("/dispatches/:id/assign_operator", s.AssignOperator)
	v1.POST("/dispatches/:id/update_status", s.UpdateDispatchStatus)
	v1.POST("/dispatches/:id/cancel", s.CancelDispatch)
	v1.GET("/dispatches/active", s.GetActiveDispatches)

	v1.POST("/exceptions", s.LogException)
	v1.POST("/exceptions/:id/resolve", s.ResolveException)

	v1.GET("/dashboard/kpi", s.GetKPISummary)
}

// Error is the JSON error payload returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps the error taxonomy onto HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed", "error", err)
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

// bindError is returned for malformed JSON bodies.
func (s *Server) bindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// triggerAllocation runs a best-effort allocation sweep after operations that
// free a truck or add a pending order. Failures are logged, not surfaced: the
// cron backstop retries shortly.
func (s *Server) triggerAllocation(ctx echo.Context) {
	reqCtx := ctx.Request().Context()
	if _, err := s.allocateTrucksHandler.Handle(reqCtx, commands.NewAllocateTrucksCommand()); err != nil {
		s.logger.WarnContext(reqCtx, "Post-request allocation sweep failed", "error", err)
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// NewOrder is the request body for creating a haulage order.
type NewOrder struct {
	CustomerID   string  `json:"customer_id"`
	MaterialType string  `json:"material_type"`
	Quantity     float64 `json:"quantity"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	quantity, err := kernel.NewWeight(body.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, body.MaterialType, quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	// A fresh pending order may be servable right away.
	s.triggerAllocation(ctx)

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// NewTruck is the request body for registering a truck.
type NewTruck struct {
	Plate      string  `json:"plate"`
	Capacity   float64 `json:"capacity"`
	DriverName string  `json:"driver_name"`
}

// CreateTruck handles POST /api/v1/trucks.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var body NewTruck
	if err := ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	capacity, err := kernel.NewWeight(body.Capacity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	truckID := kernel.NewUUID()
	cmd, err := commands.NewCreateTruckCommand(truckID, body.Plate, capacity, body.DriverName)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	// A new idle truck may unblock waiting orders.
	s.triggerAllocation(ctx)

	return ctx.JSON(http.StatusCreated, map[string]string{"id": truckID.String()})
}

// Truck is one fleet roster row.
type Truck struct {
	ID         string  `json:"id"`
	Plate      string  `json:"plate"`
	Capacity   float64 `json:"capacity"`
	DriverName string  `json:"driver_name"`
	Status     string  `json:"status"`
}

// GetTrucks handles GET /api/v1/trucks.
func (s *Server) GetTrucks(ctx echo.Context) error {
	trucks, err := s.trucksHandler.Handle(ctx.Request().Context(), queries.NewGetTrucksQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Truck, len(trucks))
	for i, t := range trucks {
		response[i] = Truck{
			ID:         t.ID.String(),
			Plate:      t.Plate,
			Capacity:   t.Capacity,
			DriverName: t.DriverName,
			Status:     t.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewMaterial is the request body for registering a material.
type NewMaterial struct {
	Name          string  `json:"name"`
	StockQuantity float64 `json:"stock_quantity"`
	Unit          string  `json:"unit"`
}

// CreateMaterial handles POST /api/v1/materials.
func (s *Server) CreateMaterial(ctx echo.Context) error {
	var body NewMaterial
	if err := ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	materialID := kernel.NewUUID()
	cmd, err := commands.NewCreateMaterialCommand(materialID, body.Name, body.StockQuantity, body.Unit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createMaterialHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": materialID.String()})
}

// Material is one catalog row.
type Material struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StockQuantity float64 `json:"stock_quantity"`
	Unit          string  `json:"unit"`
	LowStock      bool    `json:"low_stock"`
}

// GetMaterials handles GET /api/v1/materials.
func (s *Server) GetMaterials(ctx echo.Context) error {
	materials, err := s.materialsHandler.Handle(ctx.Request().Context(), queries.NewGetMaterialsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Material, len(materials))
	for i, m := range materials {
		response[i] = Material{
			ID:            m.ID.String(),
			Name:          m.Name,
			StockQuantity: m.StockQuantity,
			Unit:          m.Unit,
			LowStock:      m.LowStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewCustomer is the request body for registering a customer.
type NewCustomer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, body.Name, body.Contact)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": customerID.String()})
}

// Customer is one customer list row.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.customersHandler.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{ID: c.ID.String(), Name: c.Name, Contact: c.Contact}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewOperator is the request body for registering a weighbridge operator.
type NewOperator struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// CreateOperator handles POST /api/v1/operators.
func (s *Server) CreateOperator(ctx echo.Context) error {
	var body NewOperator
	if err := ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	operatorID := kernel.NewUUID()
	cmd, err := commands.NewCreateOperatorCommand(operatorID, body.Username, body.FullName)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createOperatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": operatorID.String()})
}

// Operator is one operator roster row.
type Operator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// GetOperators handles GET /api/v1/operators.
func (s *Server) GetOperators(ctx echo.Context) error {
	operators, err := s.operatorsHandler.Handle(ctx.Request().Context(), queries.NewGetOperatorsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Operator, len(operators))
	for i, o := range operators {
		response[i] = Operator{ID: o.ID.String(), Username: o.Username, FullName: o.FullName}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartJourney handles POST /api/v1/dispatches/:id/start_journey.
func (s *Server) StartJourney(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewStartJourneyCommand(dispatchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.startJourneyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WeighRequest is the request body for the weighing steps. The proof image
// reference is an opaque string passed through untouched.
type WeighRequest struct {
	Weight         float64 `json:"weight"`
	ProofReference string  `json:"proof_reference"`
	UploadedBy     string  `json:"uploaded_by"`
}

// WeighIn handles POST /api/v1/dispatches/:id/weigh_in.
func (s *Server) WeighIn(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body WeighRequest
	if err = ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	gross, err := kernel.NewWeight(body.Weight)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewWeighInCommand(dispatchID, gross, body.ProofReference, body.UploadedBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.weighInHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnloadRequest is the request body for the unload step.
type UnloadRequest struct {
	ProofReference string `json:"proof_reference"`
	UploadedBy     string `json:"uploaded_by"`
}

// Unload handles POST /api/v1/dispatches/:id/unload.
func (s *Server) Unload(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body UnloadRequest
	if err = ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	cmd, err := commands.NewUnloadCommand(dispatchID, body.ProofReference, body.UploadedBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.unloadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WeighOut handles POST /api/v1/dispatches/:id/weigh_out.
func (s *Server) WeighOut(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body WeighRequest
	if err = ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	tare, err := kernel.NewWeight(body.Weight)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewWeighOutCommand(dispatchID, tare, body.ProofReference, body.UploadedBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.weighOutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteJob handles POST /api/v1/dispatches/:id/complete_job.
func (s *Server) CompleteJob(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteJobCommand(dispatchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.completeJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	// Completion released a truck.
	s.triggerAllocation(ctx)

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOperatorRequest is the request body for operator assignment.
type AssignOperatorRequest struct {
	OperatorID string `json:"operator_id"`
}

// AssignOperator handles POST /api/v1/dispatches/:id/assign_operator.
func (s *Server) AssignOperator(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body AssignOperatorRequest
	if err = ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	operatorID, err := kernel.UUIDFromString(body.OperatorID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOperatorCommand(dispatchID, operatorID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.assignOperatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStatusRequest is the request body for the legacy status-set endpoint.
// Weights accompany the weighing statuses and are ignored otherwise.
type UpdateStatusRequest struct {
	Status      string   `json:"status"`
	GrossWeight *float64 `json:"gross_weight,omitempty"`
	TareWeight  *float64 `json:"tare_weight,omitempty"`
}

// UpdateDispatchStatus handles POST /api/v1/dispatches/:id/update_status.
func (s *Server) UpdateDispatchStatus(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body UpdateStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	targetStatus, err := dispatch.StatusFromString(body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	gross, err := optionalWeight(body.GrossWeight)
	if err != nil {
		return s.respondError(ctx, err)
	}
	tare, err := optionalWeight(body.TareWeight)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDispatchStatusCommand(dispatchID, targetStatus, gross, tare)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	if targetStatus == dispatch.Completed || targetStatus == dispatch.Cancelled {
		s.triggerAllocation(ctx)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDispatch handles POST /api/v1/dispatches/:id/cancel.
func (s *Server) CancelDispatch(ctx echo.Context) error {
	dispatchID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelDispatchCommand(dispatchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.cancelDispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	// Cancellation released a truck and requeued the order.
	s.triggerAllocation(ctx)

	return ctx.NoContent(http.StatusNoContent)
}

// NewException is the request body for logging an incident.
type NewException struct {
	DispatchID  string `json:"dispatch_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	LoggedBy    string `json:"logged_by"`
}

// LogException handles POST /api/v1/exceptions.
func (s *Server) LogException(ctx echo.Context) error {
	var body NewException
	if err := ctx.Bind(&body); err != nil {
		return s.bindError(ctx)
	}

	dispatchID, err := kernel.UUIDFromString(body.DispatchID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	category, err := exception.CategoryFromString(body.Category)
	if err != nil {
		return s.respondError(ctx, err)
	}

	exceptionID := kernel.NewUUID()
	cmd, err := commands.NewLogExceptionCommand(exceptionID, dispatchID, category, body.Description, body.LoggedBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.logExceptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": exceptionID.String()})
}

// ResolveException handles POST /api/v1/exceptions/:id/resolve.
func (s *Server) ResolveException(ctx echo.Context) error {
	exceptionID, err := pathID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewResolveExceptionCommand(exceptionID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.resolveExceptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActiveDispatch is one operations-board row.
type ActiveDispatch struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	TruckPlate   string     `json:"truck_plate"`
	DriverName   string     `json:"driver_name"`
	MaterialType string     `json:"material_type"`
	Quantity     float64    `json:"quantity"`
	GrossWeight  *float64   `json:"gross_weight,omitempty"`
	TareWeight   *float64   `json:"tare_weight,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
}

// GetActiveDispatches handles GET /api/v1/dispatches/active.
func (s *Server) GetActiveDispatches(ctx echo.Context) error {
	dispatches, err := s.activeDispatchesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDispatchesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ActiveDispatch, len(dispatches))
	for i, d := range dispatches {
		response[i] = ActiveDispatch{
			ID:           d.ID.String(),
			Status:       d.Status,
			TruckPlate:   d.TruckPlate,
			DriverName:   d.DriverName,
			MaterialType: d.MaterialType,
			Quantity:     d.Quantity,
			GrossWeight:  d.GrossWeight,
			TareWeight:   d.TareWeight,
			StartedAt:    d.StartedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MaterialStock is the per-material stock summary on the KPI dashboard.
type MaterialStock struct {
	Name          string  `json:"name"`
	StockQuantity float64 `json:"stock_quantity"`
	Unit          string  `json:"unit"`
	LowStock      bool    `json:"low_stock"`
}

// KPISummary is the dashboard payload.
type KPISummary struct {
	TotalTrucks          int             `json:"total_trucks"`
	ActiveDispatches     int             `json:"active_dispatches"`
	CompletedOrdersToday int             `json:"completed_orders_today"`
	PendingOrders        int             `json:"pending_orders"`
	AverageDeliveryHours *float64        `json:"average_delivery_hours,omitempty"`
	UnresolvedExceptions int             `json:"unresolved_exceptions"`
	MaterialStock        []MaterialStock `json:"material_stock"`
}

// GetKPISummary handles GET /api/v1/dashboard/kpi.
func (s *Server) GetKPISummary(ctx echo.Context) error {
	summary, err := s.kpiSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetKPISummaryQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	stock := make([]MaterialStock, len(summary.MaterialStock))
	for i, m := range summary.MaterialStock {
		stock[i] = MaterialStock{
			Name:          m.Name,
			StockQuantity: m.StockQuantity,
			Unit:          m.Unit,
			LowStock:      m.LowStock,
		}
	}

	return ctx.JSON(http.StatusOK, KPISummary{
		TotalTrucks:          summary.TotalTrucks,
		ActiveDispatches:     summary.ActiveDispatches,
		CompletedOrdersToday: summary.CompletedOrdersToday,
		PendingOrders:        summary.PendingOrders,
		AverageDeliveryHours: summary.AverageDeliveryHours,
		UnresolvedExceptions: summary.UnresolvedExceptions,
		MaterialStock:        stock,
	})
}

// optionalWeight converts an optional request weight into a kernel weight.
func optionalWeight(value *float64) (*kernel.Weight, error) {
	if value == nil {
		return nil, nil
	}

	weight, err := kernel.NewWeight(*value)
	if err != nil {
		return nil, err
	}
	return &weight, nil
}
