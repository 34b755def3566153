// Package http exposes the pizza marketplace over a REST API.
//
// The server is a thin adapter: it binds requests, builds commands and
// queries, and maps application errors to HTTP status codes. All domain
// decisions live in the use case handlers.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/govalues/decimal"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	supplierRespondHandler    commands.SupplierRespondCommandHandler
	customerAcceptHandler     commands.CustomerAcceptCommandHandler
	dispatchOrderHandler      commands.DispatchOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	dispatchEventBatchHandler commands.DispatchEventBatchCommandHandler

	// Query handlers
	allOrdersHandler      queries.GetAllOrdersQueryHandler
	deliveryInfoHandler   queries.GetDeliveryInfoQueryHandler
	trackOrderHandler     queries.TrackOrderQueryHandler
	systemStateHandler    queries.CachedSystemStateQueryHandler
	statisticsHandler     queries.CachedStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	supplierRespondHandler commands.SupplierRespondCommandHandler,
	customerAcceptHandler commands.CustomerAcceptCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	dispatchEventBatchHandler commands.DispatchEventBatchCommandHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	deliveryInfoHandler queries.GetDeliveryInfoQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	systemStateHandler queries.CachedSystemStateQueryHandler,
	statisticsHandler queries.CachedStatisticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		supplierRespondHandler:    supplierRespondHandler,
		customerAcceptHandler:     customerAcceptHandler,
		dispatchOrderHandler:      dispatchOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		dispatchEventBatchHandler: dispatchEventBatchHandler,
		allOrdersHandler:          allOrdersHandler,
		deliveryInfoHandler:       deliveryInfoHandler,
		trackOrderHandler:         trackOrderHandler,
		systemStateHandler:        systemStateHandler,
		statisticsHandler:         statisticsHandler,
	}
}

// RegisterRoutes attaches middleware and all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/supplier-respond", s.SupplierRespond)
	api.POST("/orders/:id/customer-accept", s.CustomerAccept)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/:id/delivery", s.GetDeliveryInfo)
	api.GET("/track/:tracking_id", s.TrackOrder)
	api.GET("/state", s.GetSystemState)
	api.GET("/statistics", s.GetStatistics)
	api.POST("/events/batch", s.DispatchEventBatch)
}

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EventResponse mirrors the notification published for a successful
// mutation, so API callers and channel subscribers see the same shape.
type EventResponse struct {
	EventType string         `json:"event_type"`
	Order     order.Snapshot `json:"order"`
	Timestamp time.Time      `json:"timestamp"`
}

func newEventResponse(eventType string, snapshot order.Snapshot) EventResponse {
	return EventResponse{
		EventType: eventType,
		Order:     snapshot,
		Timestamp: time.Now().UTC(),
	}
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	SupplierName     string   `json:"supplier_name"`
	PizzaName        string   `json:"pizza_name"`
	SupplierPrice    float64  `json:"supplier_price"`
	MarkupPercentage *float64 `json:"markup_percentage"`
}

// SupplierRespondRequest is the body of POST /api/orders/:id/supplier-respond.
type SupplierRespondRequest struct {
	Accept           bool    `json:"accept"`
	Notes            *string `json:"notes"`
	EstimatedMinutes *int    `json:"estimated_time"`
}

// CustomerAcceptRequest is the body of POST /api/orders/:id/customer-accept.
type CustomerAcceptRequest struct {
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
}

// DispatchOrderRequest is the body of POST /api/orders/:id/dispatch.
type DispatchOrderRequest struct {
	DriverName string `json:"driver_name"`
}

// UpdateOrderStatusRequest is the body of POST /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// EventBatchRequest is the body of POST /api/events/batch. Event
// payloads are opaque and forwarded to the channel as supplied.
type EventBatchRequest struct {
	Events        []commands.BatchEvent `json:"events"`
	CorrelationID string                `json:"correlation_id"`
}

// TrackingPendingResponse is returned by GET /api/track/:tracking_id for
// orders that have not been handed to a driver yet.
type TrackingPendingResponse struct {
	OrderID           string    `json:"order_id"`
	TrackingCode      string    `json:"tracking_id"`
	SupplierReference string    `json:"supplier_tracking_id"`
	Status            string    `json:"status"`
	SupplierName      string    `json:"supplier_name"`
	PizzaName         string    `json:"pizza_name"`
	CreatedAt         time.Time `json:"created_at"`
	Message           string    `json:"message"`
}

// Health handles GET /health. It deliberately touches no backing store.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Backend is running",
	})
}

// CreateOrder handles POST /api/orders - places a new order with a supplier.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierPrice, err := decimal.NewFromFloat64(req.SupplierPrice)
	if err != nil {
		return badRequest(ctx, "Invalid supplier price: "+err.Error())
	}

	markup := order.DefaultMarkupPercentage
	if req.MarkupPercentage != nil {
		markup, err = decimal.NewFromFloat64(*req.MarkupPercentage)
		if err != nil {
			return badRequest(ctx, "Invalid markup percentage: "+err.Error())
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.SupplierName, req.PizzaName, supplierPrice, markup)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusOK,
		newEventResponse(order.Created.EventType(), snapshot))
}

// SupplierRespond handles POST /api/orders/:id/supplier-respond.
func (s *Server) SupplierRespond(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SupplierRespondRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSupplierRespondCommand(
		orderID, req.Accept, req.Notes, req.EstimatedMinutes)
	if err != nil {
		return badRequest(ctx, "Invalid supplier response: "+err.Error())
	}

	snapshot, err := s.supplierRespondHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to record supplier response")
	}

	return ctx.JSON(http.StatusOK, snapshotEventResponse(snapshot))
}

// CustomerAccept handles POST /api/orders/:id/customer-accept.
func (s *Server) CustomerAccept(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CustomerAcceptRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCustomerAcceptCommand(
		orderID, req.CustomerName, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid customer acceptance: "+err.Error())
	}

	snapshot, err := s.customerAcceptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to record customer acceptance")
	}

	return ctx.JSON(http.StatusOK, snapshotEventResponse(snapshot))
}

// DispatchOrder handles POST /api/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req DispatchOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, req.DriverName)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch data: "+err.Error())
	}

	snapshot, err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to dispatch order")
	}

	return ctx.JSON(http.StatusOK, snapshotEventResponse(snapshot))
}

// UpdateOrderStatus handles POST /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	snapshot, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, snapshotEventResponse(snapshot))
}

// GetOrders handles GET /api/orders - every order, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	snapshots, err := s.allOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.mapError(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// GetDeliveryInfo handles GET /api/orders/:id/delivery.
func (s *Server) GetDeliveryInfo(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetDeliveryInfoQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery query: "+err.Error())
	}

	info, err := s.deliveryInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to retrieve delivery info")
	}

	return ctx.JSON(http.StatusOK, info)
}

// TrackOrder handles GET /api/track/:tracking_id - looks an order up by
// its customer or supplier tracking code. Dispatched orders answer with
// full delivery info; earlier stages answer with a short summary.
func (s *Server) TrackOrder(ctx echo.Context) error {
	code := ctx.Param("tracking_id")

	query, err := queries.NewTrackOrderQuery(code)
	if err != nil {
		return badRequest(ctx, "Invalid tracking code: "+err.Error())
	}

	snapshot, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to track order")
	}
	if snapshot == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order with tracking ID " + code + " not found",
		})
	}

	status, err := order.ParseStatus(snapshot.Status)
	if err == nil && (status.IsActiveDelivery() || status == order.Delivered) {
		orderID, idErr := kernel.UUIDFromString(snapshot.ID)
		if idErr != nil {
			return s.mapError(ctx, idErr, "Failed to track order")
		}

		deliveryQuery, queryErr := queries.NewGetDeliveryInfoQuery(orderID)
		if queryErr != nil {
			return s.mapError(ctx, queryErr, "Failed to track order")
		}

		info, infoErr := s.deliveryInfoHandler.Handle(ctx.Request().Context(), deliveryQuery)
		if infoErr != nil {
			return s.mapError(ctx, infoErr, "Failed to track order")
		}

		return ctx.JSON(http.StatusOK, info)
	}

	return ctx.JSON(http.StatusOK, TrackingPendingResponse{
		OrderID:           snapshot.ID,
		TrackingCode:      snapshot.TrackingCode,
		SupplierReference: snapshot.SupplierReference,
		Status:            snapshot.Status,
		SupplierName:      snapshot.SupplierName,
		PizzaName:         snapshot.PizzaName,
		CreatedAt:         snapshot.CreatedAt,
		Message:           "Order not yet dispatched. Check back soon!",
	})
}

// GetSystemState handles GET /api/state - the cached aggregate view.
func (s *Server) GetSystemState(ctx echo.Context) error {
	includeCompleted, limit, err := stateParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetSystemStateQuery(includeCompleted, limit)
	if err != nil {
		return badRequest(ctx, "Invalid state parameters: "+err.Error())
	}

	state, err := s.systemStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to get system state")
	}

	return ctx.JSON(http.StatusOK, state)
}

// GetStatistics handles GET /api/statistics - cached order statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.statisticsHandler.Handle(
		ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return s.mapError(ctx, err, "Failed to get statistics")
	}

	return ctx.JSON(http.StatusOK, stats)
}

// DispatchEventBatch handles POST /api/events/batch - atomic event
// publication. A batch that failed mid-way still answers with the batch
// result, under a 500 status, so callers see the correlation id and the
// partial progress.
func (s *Server) DispatchEventBatch(ctx echo.Context) error {
	var req EventBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDispatchEventBatchCommand(req.Events, req.CorrelationID)
	if err != nil {
		return badRequest(ctx, "Invalid event batch: "+err.Error())
	}

	result, err := s.dispatchEventBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to process event batch")
	}

	if !result.Success {
		return ctx.JSON(http.StatusInternalServerError, result)
	}

	return ctx.JSON(http.StatusOK, result)
}

// snapshotEventResponse derives the event type from the snapshot's
// status, matching what the mutation just published.
func snapshotEventResponse(snapshot order.Snapshot) EventResponse {
	eventType := "order." + snapshot.Status

	return newEventResponse(eventType, snapshot)
}

// stateParams reads include_completed (default true) and limit
// (default 0, unlimited) for the state endpoint.
func stateParams(ctx echo.Context) (bool, int, error) {
	includeCompleted := true
	if raw := ctx.QueryParam("include_completed"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return false, 0, errors.New("include_completed must be a boolean")
		}
		includeCompleted = parsed
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return false, 0, errors.New("limit must be an integer")
		}
		limit = parsed
	}

	return includeCompleted, limit, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors into HTTP statuses: missing
// objects answer 404, rejected transitions and not-yet-dispatched
// lookups answer 400, everything else is a 500 with a generic message.
func (s *Server) mapError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, queries.ErrOrderNotDispatched):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
