package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"tracking/internal/core/application/notifications"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// subscriptionHub is the part of the notification hub the stream endpoint needs.
type subscriptionHub interface {
	Subscribe() *notifications.Subscription
	Unsubscribe(sub *notifications.Subscription)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	processEventHandler commands.ProcessEventCommandHandler

	// Query handlers
	getShipmentHandler queries.GetShipmentQueryHandler

	hub    subscriptionHub
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processEventHandler commands.ProcessEventCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	hub subscriptionHub,
	logger *slog.Logger,
) *Server {
	return &Server{
		processEventHandler: processEventHandler,
		getShipmentHandler:  getShipmentHandler,
		hub:                 hub,
		logger:              logger.With("component", "http_server"),
	}
}

// PostUpdate handles POST /update - applies one raw event record.
//
//	@Summary	Submit one event record
//	@Accept		plain
//	@Produce	plain
//	@Param		record	body		string	true	"timestamp,id,operation[,args...]"
//	@Success	202		{string}	string
//	@Failure	400		{string}	string
//	@Failure	406		{string}	string
//	@Failure	422		{string}	string
//	@Router		/update [post]
func (s *Server) PostUpdate(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid data")
	}
	raw := strings.TrimSpace(string(body))

	cmd, err := commands.NewProcessEventCommand(raw)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	if _, err = s.processEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.updateError(ctx, raw, err)
	}

	return ctx.String(http.StatusAccepted, "Update processed: "+raw)
}

func (s *Server) updateError(ctx echo.Context, raw string, err error) error {
	switch {
	case errors.Is(err, shipment.ErrMalformedRecord):
		return ctx.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, shipment.ErrUnknownOperation), errors.Is(err, shipment.ErrUnknownCategory):
		return ctx.String(http.StatusNotAcceptable, "Unable to process "+raw)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.String(http.StatusUnprocessableEntity, fmt.Sprintf("Unable to process %s: shipment not found", raw))
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to process update", "record", raw, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to process update")
	}
}

// GetShipment handles GET /shipment/{id} - returns the current shipment snapshot.
//
//	@Summary	Current state of one shipment
//	@Produce	json
//	@Param		id	path		string	true	"Shipment identifier"
//	@Success	200	{object}	servers.Shipment
//	@Failure	404	{string}	string
//	@Router		/shipment/{id} [get]
func (s *Server) GetShipment(ctx echo.Context, id string) error {
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return ctx.String(http.StatusNotFound, "Shipment not found")
	}

	snapshot, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.String(http.StatusNotFound, "Shipment not found")
		}
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to load shipment", "shipment_id", id, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment",
		})
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(snapshot))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func toShipmentResponse(snapshot shipment.Snapshot) servers.Shipment {
	return servers.Shipment{
		Id:               snapshot.ID,
		Type:             snapshot.Type,
		Status:           snapshot.Status,
		Location:         snapshot.Location,
		ExpectedDelivery: snapshot.ExpectedDelivery,
		Updates:          snapshot.Updates,
		Notes:            snapshot.Notes,
	}
}
