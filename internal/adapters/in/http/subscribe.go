package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetSubscribe handles GET /subscribe - streams changed shipment identifiers
// as Server-Sent Events until the client disconnects or the hub drops the
// subscription.
//
//	@Summary	Stream changed shipment identifiers
//	@Produce	text/event-stream
//	@Success	200	{string}	string
//	@Router		/subscribe [get]
func (s *Server) GetSubscribe(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	s.logger.DebugContext(reqCtx, "Subscriber connected", "subscription_id", sub.ID().String())

	for {
		select {
		case <-reqCtx.Done():
			s.logger.DebugContext(reqCtx, "Subscriber disconnected", "subscription_id", sub.ID().String())
			return nil
		case id, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", id); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
