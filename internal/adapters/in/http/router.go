// Package http is the inbound echo adapter: event submission, shipment lookup,
// the Server-Sent Events stream, health, metrics and API docs.
package http

import (
	"log/slog"
	"net/http"

	"tracking/api"
	"tracking/internal/adapters/out/metrics"
	_ "tracking/internal/generated/docs" // registers the swagger document
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// maxRecordSize bounds POST bodies; a record is a single short line.
const maxRecordSize = "64K"

// NewEcho builds the echo instance serving server. m may be nil, in which case
// neither request metrics nor /metrics are installed.
func NewEcho(server *Server, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := NewRequestValidator(api.OpenAPI)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(middleware.BodyLimit(maxRecordSize))
	if m != nil {
		e.Use(MetricsMiddleware(m))
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	e.Use(validator.Middleware())

	servers.RegisterHandlers(e, server)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
