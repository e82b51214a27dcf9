// Package http exposes the order-taking workflow over HTTP.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"
)

const defaultBacklogLimit = 100

// PlaceOrderHandler processes a place-order command and returns the emitted
// events. Satisfied by *commands.PlaceOrderCommandHandler.
type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) ([]order.PlaceOrderEvent, error)
}

// UnpublishedEventsHandler reads the outbox backlog. Satisfied by
// queries.GetUnpublishedEventsQueryHandler.
type UnpublishedEventsHandler interface {
	Handle(ctx context.Context, query queries.GetUnpublishedEventsQuery,
	) ([]queries.GetUnpublishedEventsQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        PlaceOrderHandler
	unpublishedEventsHandler UnpublishedEventsHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler PlaceOrderHandler,
	unpublishedEventsHandler UnpublishedEventsHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		unpublishedEventsHandler: unpublishedEventsHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/events/unpublished", s.GetUnpublishedEvents)
}

// PlaceOrder handles POST /api/v1/orders - runs the place-order workflow.
// Validation failures come back as 422 with the first violated rule; the
// success response lists the emitted events.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(request.toUnvalidatedOrder())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isValidationError(err) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusOK, PlaceOrderResponse{
		OrderID: request.OrderID,
		Events:  toEventSummaries(events),
	})
}

// GetUnpublishedEvents handles GET /api/v1/events/unpublished - exposes the
// outbox backlog. An optional limit query parameter caps the result size.
func (s *Server) GetUnpublishedEvents(ctx echo.Context) error {
	limit := defaultBacklogLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetUnpublishedEventsQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	pending, err := s.unpublishedEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve events",
		})
	}

	response := make([]UnpublishedEventResponse, 0, len(pending))
	for _, event := range pending {
		response = append(response, UnpublishedEventResponse{
			ID:         event.ID.String(),
			OrderID:    event.OrderID,
			Name:       event.Name,
			OccurredAt: event.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// isValidationError reports whether the error belongs to the workflow's
// validation taxonomy, as opposed to an infrastructure failure.
func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrObjectNotFound)
}
