// Package http exposes the marketplace workflow over a REST API.
// It coordinates between HTTP handlers and application use cases, mapping
// domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"relomarket/internal/core/application/usecases/commands"
	"relomarket/internal/core/application/usecases/queries"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for incoming request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request body.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server implements the REST handlers for the order assignment workflow.
type Server struct {
	// Command handlers
	broadcastOrderHandler commands.BroadcastOrderCommandHandler
	directAssignHandler   commands.DirectAssignCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	recordResponseHandler commands.RecordResponseCommandHandler
	reviewResponseHandler commands.ReviewResponseCommandHandler

	// Query handlers
	getOrderNegotiationHandler queries.GetOrderNegotiationQueryHandler
	getPendingResponsesHandler queries.GetPendingResponsesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	broadcastOrderHandler commands.BroadcastOrderCommandHandler,
	directAssignHandler commands.DirectAssignCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	recordResponseHandler commands.RecordResponseCommandHandler,
	reviewResponseHandler commands.ReviewResponseCommandHandler,
	getOrderNegotiationHandler queries.GetOrderNegotiationQueryHandler,
	getPendingResponsesHandler queries.GetPendingResponsesQueryHandler,
) *Server {
	return &Server{
		broadcastOrderHandler:      broadcastOrderHandler,
		directAssignHandler:        directAssignHandler,
		updateOrderHandler:         updateOrderHandler,
		recordResponseHandler:      recordResponseHandler,
		reviewResponseHandler:      reviewResponseHandler,
		getOrderNegotiationHandler: getOrderNegotiationHandler,
		getPendingResponsesHandler: getPendingResponsesHandler,
	}
}

// RegisterRoutes attaches all marketplace routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/:id/broadcast", s.BroadcastOrder)
	api.POST("/orders/:id/direct-assign", s.DirectAssign)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.GET("/orders/:id/vendor-responses", s.GetOrderNegotiation)
	api.POST("/broadcasts/:id/respond", s.RecordResponse)
	api.POST("/vendor-responses/:id/review", s.ReviewResponse)
	api.GET("/vendor-responses/pending", s.GetPendingResponses)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// BroadcastOrder handles POST /api/v1/orders/:id/broadcast - fans the order
// out to the highest-rated matching vendors.
func (s *Server) BroadcastOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request BroadcastOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewBroadcastOrderCommand(
		orderID,
		request.City,
		request.MinRating,
		request.OnlineOnly,
		request.ApprovedOnly,
		request.MaxVendors,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	count, err := s.broadcastOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BroadcastOrderResponse{BroadcastCount: count})
}

// DirectAssign handles POST /api/v1/orders/:id/direct-assign - assigns an
// approved vendor to the order without a broadcast.
func (s *Server) DirectAssign(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request DirectAssignRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	cmd, err := commands.NewDirectAssignCommand(orderID, vendorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	assignedOrder, err := s.directAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(assignedOrder))
}

// UpdateOrder handles PUT /api/v1/orders/:id - edits the status and/or price.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	var status *order.Status
	if request.Status != nil {
		parsed, statusErr := order.StatusFromString(*request.Status)
		if statusErr != nil {
			return badRequest(ctx, statusErr.Error())
		}
		status = &parsed
	}

	var approxPrice *kernel.Price
	if request.ApproxPrice != nil {
		price, priceErr := kernel.NewPrice(*request.ApproxPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}
		approxPrice = &price
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, approxPrice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updatedOrder, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updatedOrder))
}

// GetOrderNegotiation handles GET /api/v1/orders/:id/vendor-responses -
// returns the order's broadcasts and responses.
func (s *Server) GetOrderNegotiation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderNegotiationQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	negotiation, err := s.getOrderNegotiationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	result := OrderNegotiationResponse{
		Broadcasts: make([]BroadcastView, len(negotiation.Broadcasts)),
		Responses:  make([]VendorResponseView, len(negotiation.Responses)),
	}
	for i, view := range negotiation.Broadcasts {
		result.Broadcasts[i] = toBroadcastView(view)
	}
	for i, view := range negotiation.Responses {
		result.Responses[i] = toVendorResponseView(view)
	}

	return ctx.JSON(http.StatusOK, result)
}

// RecordResponse handles POST /api/v1/broadcasts/:id/respond - records a
// vendor's reply to a broadcast.
func (s *Server) RecordResponse(ctx echo.Context) error {
	broadcastID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid broadcast id")
	}

	var request RecordResponseRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	responseType, err := response.TypeFromString(request.ResponseType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var proposedPrice *kernel.Price
	if request.ProposedPrice != nil {
		price, priceErr := kernel.NewPrice(*request.ProposedPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}
		proposedPrice = &price
	}

	cmd, err := commands.NewRecordResponseCommand(
		broadcastID, vendorID, responseType, proposedPrice, request.Message,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	recorded, err := s.recordResponseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toRecordedResponse(recorded))
}

// ReviewResponse handles POST /api/v1/vendor-responses/:id/review - records
// the admin verdict and, on approval, assigns the vendor.
func (s *Server) ReviewResponse(ctx echo.Context) error {
	responseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid response id")
	}

	var request ReviewResponseRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	var updateOrderPrice *kernel.Price
	if request.UpdateOrderPrice != nil {
		price, priceErr := kernel.NewPrice(*request.UpdateOrderPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}
		updateOrderPrice = &price
	}

	cmd, err := commands.NewReviewResponseCommand(
		responseID, *request.Approved, request.AdminResponse, updateOrderPrice,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.reviewResponseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReviewResponseResponse{
		Approved:       result.Approved,
		ResponseType:   result.ResponseType.String(),
		VendorAssigned: result.VendorAssigned,
	})
}

// GetPendingResponses handles GET /api/v1/vendor-responses/pending - returns
// the admin review queue, oldest first.
func (s *Server) GetPendingResponses(ctx echo.Context) error {
	query := queries.NewGetPendingResponsesQuery()

	pending, err := s.getPendingResponsesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	result := make([]PendingResponseView, len(pending))
	for i, view := range pending {
		result[i] = PendingResponseView{
			VendorResponseView: toVendorResponseView(view.ResponseView),
			OrderID:            view.OrderID.String(),
			ServiceType:        view.ServiceType,
		}
	}

	return ctx.JSON(http.StatusOK, result)
}

// toRecordedResponse maps a freshly recorded response aggregate to JSON.
func toRecordedResponse(recorded *response.VendorResponse) VendorResponseView {
	var proposedPrice *int64
	if price := recorded.ProposedPrice(); price != nil {
		amount := price.Amount()
		proposedPrice = &amount
	}

	var originalPrice *int64
	if price := recorded.OriginalPrice(); price != nil {
		amount := price.Amount()
		originalPrice = &amount
	}

	return VendorResponseView{
		ID:            recorded.ID().String(),
		BroadcastID:   recorded.BroadcastID().String(),
		VendorID:      recorded.VendorID().String(),
		ResponseType:  recorded.ResponseType().String(),
		ProposedPrice: proposedPrice,
		OriginalPrice: originalPrice,
		Message:       recorded.Message(),
		SubmittedAt:   recorded.SubmittedAt(),
		AdminApproved: recorded.AdminApproved(),
		AdminResponse: recorded.AdminResponse(),
		ReviewedAt:    recorded.ReviewedAt(),
	}
}

// badRequest writes a 400 with the uniform error body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case errors to HTTP status codes: missing objects to
// 404, domain rule and validation failures to 400, everything else to 500.
func domainError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	switch {
	case errors.Is(err, order.ErrPriceRequired),
		errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, response.ErrAlreadyReviewed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
