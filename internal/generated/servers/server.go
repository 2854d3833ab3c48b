// Package servers holds the HTTP server contract derived from api/openapi.yaml:
// the transport types, the ServerInterface implemented by the HTTP adapter, and
// the echo wrapper that binds path parameters before calling it.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	ExpectedDelivery string   `json:"expectedDelivery"`
	Id               string   `json:"id"`
	Location         string   `json:"location"`
	Notes            []string `json:"notes"`
	Status           string   `json:"status"`
	Type             string   `json:"type"`
	Updates          []string `json:"updates"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness probe
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// Current state of one shipment
	// (GET /shipment/{id})
	GetShipment(ctx echo.Context, id string) error
	// Stream changed shipment identifiers
	// (GET /subscribe)
	GetSubscribe(ctx echo.Context) error
	// Submit one event record
	// (POST /update)
	PostUpdate(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// GetShipment converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetShipment(ctx, id)
}

// GetSubscribe converts echo context to params.
func (w *ServerInterfaceWrapper) GetSubscribe(ctx echo.Context) error {
	return w.Handler.GetSubscribe(ctx)
}

// PostUpdate converts echo context to params.
func (w *ServerInterfaceWrapper) PostUpdate(ctx echo.Context) error {
	return w.Handler.PostUpdate(ctx)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/shipment/:id", wrapper.GetShipment)
	router.GET(baseURL+"/subscribe", wrapper.GetSubscribe)
	router.POST(baseURL+"/update", wrapper.PostUpdate)
}
