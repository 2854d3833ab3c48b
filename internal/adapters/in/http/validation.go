package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks requests against the OpenAPI document before they
// reach a handler. Routes the document does not describe pass through unchecked.
type RequestValidator struct {
	router routers.Router
}

// NewRequestValidator loads and validates spec.
func NewRequestValidator(spec []byte) (*RequestValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &RequestValidator{router: router}, nil
}

// Middleware returns the echo middleware. A request that fails validation gets
// a 400 with the validation message as plain text.
func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			// the body is read as raw text whatever the client declared
			if plainTextBody(route.Operation) {
				req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.String(http.StatusBadRequest, "Invalid data: "+validationMessage(err))
			}

			return next(c)
		}
	}
}

// plainTextBody reports whether op accepts only a text/plain request body.
func plainTextBody(op *openapi3.Operation) bool {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return false
	}
	content := op.RequestBody.Value.Content
	return len(content) == 1 && content.Get(echo.MIMETextPlain) != nil
}

func validationMessage(err error) string {
	switch e := err.(type) { //nolint:errorlint // openapi3filter returns these types unwrapped
	case *openapi3filter.RequestError:
		if e.Reason != "" {
			return e.Reason
		}
		if e.Err != nil {
			return e.Err.Error()
		}
	case *openapi3filter.SecurityRequirementsError:
		return "security requirements failed"
	}
	return err.Error()
}
