// Package http exposes the dispatch core as a REST API over echo.
// Identity arrives already validated from the host application: handlers
// trust the courier and customer ids in the payloads and paths, and only
// enforce the domain rules tied to them.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/tracking"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler     commands.PlaceOrderCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	startDeliveryHandler  commands.StartDeliveryCommandHandler
	reportLocationHandler commands.ReportLocationCommandHandler
	finishDeliveryHandler commands.FinishDeliveryCommandHandler
	markPaidHandler       commands.MarkPaidCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	setZoneFeeHandler     commands.SetZoneFeeCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getCourierOrdersHandler  queries.GetCourierOrdersQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getZoneFeesHandler       queries.GetZoneFeesQueryHandler
	getOrderLocationHandler  queries.GetOrderLocationQueryHandler
	getActiveCouriersHandler queries.GetActiveCouriersQueryHandler

	feed *tracking.Feed
}

// ServerHandlers bundles the use case handlers a Server serves.
type ServerHandlers struct {
	PlaceOrder     commands.PlaceOrderCommandHandler
	AssignCourier  commands.AssignCourierCommandHandler
	StartDelivery  commands.StartDeliveryCommandHandler
	ReportLocation commands.ReportLocationCommandHandler
	FinishDelivery commands.FinishDeliveryCommandHandler
	MarkPaid       commands.MarkPaidCommandHandler
	SetOrderStatus commands.SetOrderStatusCommandHandler
	SetZoneFee     commands.SetZoneFeeCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetCourierOrders  queries.GetCourierOrdersQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetZoneFees       queries.GetZoneFeesQueryHandler
	GetOrderLocation  queries.GetOrderLocationQueryHandler
	GetActiveCouriers queries.GetActiveCouriersQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
// The feed backs the live tracking stream endpoint and may be shared
// with the report-location handler.
func NewServer(handlers ServerHandlers, feed *tracking.Feed) *Server {
	return &Server{
		placeOrderHandler:     handlers.PlaceOrder,
		assignCourierHandler:  handlers.AssignCourier,
		startDeliveryHandler:  handlers.StartDelivery,
		reportLocationHandler: handlers.ReportLocation,
		finishDeliveryHandler: handlers.FinishDelivery,
		markPaidHandler:       handlers.MarkPaid,
		setOrderStatusHandler: handlers.SetOrderStatus,
		setZoneFeeHandler:     handlers.SetZoneFee,

		getOrderHandler:          handlers.GetOrder,
		getCustomerOrdersHandler: handlers.GetCustomerOrders,
		getCourierOrdersHandler:  handlers.GetCourierOrders,
		getAllOrdersHandler:      handlers.GetAllOrders,
		getZoneFeesHandler:       handlers.GetZoneFees,
		getOrderLocationHandler:  handlers.GetOrderLocation,
		getActiveCouriersHandler: handlers.GetActiveCouriers,

		feed: feed,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Customer surface.
	api.POST("/orders", s.PlaceOrder)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/location", s.GetOrderLocation)
	api.GET("/orders/:id/track", s.TrackOrder)

	// Courier surface.
	api.GET("/couriers/:id/orders", s.GetCourierOrders)
	api.POST("/orders/:id/start", s.StartDelivery)
	api.POST("/orders/:id/location", s.ReportLocation)
	api.POST("/orders/:id/finish", s.FinishDelivery)

	// Administrator surface.
	api.GET("/orders", s.GetAllOrders)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/status", s.SetOrderStatus)
	api.POST("/orders/:id/paid", s.MarkPaid)
	api.GET("/zone-fees", s.GetZoneFees)
	api.PUT("/zone-fees", s.SetZoneFee)
	api.GET("/couriers/active", s.GetActiveCouriers)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - customer checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "invalid payment method")
	}

	destination, err := kernel.NewGeoPoint(req.Destination.Lat, req.Destination.Lng)
	if err != nil {
		return badRequest(ctx, "invalid destination coordinates")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, idErr := kernel.UUIDFromString(itemReq.ProductID)
		if idErr != nil {
			return badRequest(ctx, "invalid product id")
		}
		item, itemErr := order.NewItem(productID, itemReq.Name, itemReq.UnitPrice, itemReq.Quantity)
		if itemErr != nil {
			return badRequest(ctx, itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID,
		req.CustomerName, req.CustomerPhone, items, destination, paymentMethod)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// GetOrder handles GET /api/v1/orders/:id - one order's detail view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailsToResponse(details))
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summaries, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetCourierOrders handles GET /api/v1/couriers/:id/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summaries, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetAllOrders handles GET /api/v1/orders - the administrator listing.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	summaries, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// AssignCourier handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// StartDelivery handles POST /api/v1/orders/:id/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CourierActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ReportLocation handles POST /api/v1/orders/:id/location - one courier
// position sample. A stale sample is a 200 with accepted=false, not an
// error: devices report on a timer and out-of-order fixes are routine.
func (s *Server) ReportLocation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ReportLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	point, err := kernel.NewGeoPoint(req.Point.Lat, req.Point.Lng)
	if err != nil {
		return badRequest(ctx, "invalid coordinates")
	}

	cmd, err := commands.NewReportLocationCommand(orderID, courierID, point, req.ReportedAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	accepted, err := s.reportLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReportLocationResponse{Accepted: accepted})
}

// FinishDelivery handles POST /api/v1/orders/:id/finish.
func (s *Server) FinishDelivery(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CourierActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewFinishDeliveryCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.finishDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// MarkPaid handles POST /api/v1/orders/:id/paid.
func (s *Server) MarkPaid(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkPaidCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.markPaidHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// SetOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req SetStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetZoneFees handles GET /api/v1/zone-fees.
func (s *Server) GetZoneFees(ctx echo.Context) error {
	fees, err := s.getZoneFeesHandler.Handle(ctx.Request().Context(), queries.NewGetZoneFeesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	result := make([]ZoneFeeResponse, 0, len(fees))
	for _, fee := range fees {
		result = append(result, ZoneFeeResponse{Zone: fee.Zone, Fee: fee.Fee})
	}

	return ctx.JSON(http.StatusOK, result)
}

// SetZoneFee handles PUT /api/v1/zone-fees.
func (s *Server) SetZoneFee(ctx echo.Context) error {
	var req ZoneFeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetZoneFeeCommand(req.Zone, req.Fee)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setZoneFeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderLocation handles GET /api/v1/orders/:id/location.
func (s *Server) GetOrderLocation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderLocationQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	location, err := s.getOrderLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LocationResponse{
		OrderID:    location.OrderID.String(),
		Point:      GeoPointDTO{Lat: location.Point.Lat(), Lng: location.Point.Lng()},
		ReportedAt: location.ReportedAt,
	})
}

// TrackOrder handles GET /api/v1/orders/:id/track - a server-sent event
// stream of accepted position reports. The stream ends when the client
// disconnects.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	reqCtx := ctx.Request().Context()
	updates := s.feed.Subscribe(reqCtx, orderID)

	for point := range updates {
		payload, marshalErr := json.Marshal(LocationResponse{
			OrderID:    orderID.String(),
			Point:      GeoPointDTO{Lat: point.Point().Lat(), Lng: point.Point().Lng()},
			ReportedAt: point.ReportedAt(),
		})
		if marshalErr != nil {
			return marshalErr
		}

		if _, err = fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return nil
		}
		resp.Flush()
	}

	return nil
}

// GetActiveCouriers handles GET /api/v1/couriers/active - the live map.
func (s *Server) GetActiveCouriers(ctx echo.Context) error {
	couriers, err := s.getActiveCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveCouriersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	result := make([]ActiveCourierResponse, 0, len(couriers))
	for _, courier := range couriers {
		result = append(result, ActiveCourierResponse{
			CourierID:  courier.CourierID.String(),
			OrderID:    courier.OrderID.String(),
			Point:      GeoPointDTO{Lat: courier.Point.Lat(), Lng: courier.Point.Lng()},
			ReportedAt: courier.ReportedAt,
		})
	}

	return ctx.JSON(http.StatusOK, result)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures onto HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrNotAssigned):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidState), errors.Is(err, order.ErrNotDelivered):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrFeeUnavailable):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "delivery is not available at this location",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
