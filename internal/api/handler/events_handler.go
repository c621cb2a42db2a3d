package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// keepAliveInterval spaces out SSE comment lines so idle proxies do not
// drop the stream.
const keepAliveInterval = 30 * time.Second

// BroadcastSource is the subscription side of the broadcast bus.
type BroadcastSource interface {
	Subscribe() (<-chan domain.Broadcast, func())
}

// EventsHandler streams storage-change broadcasts to listening contexts over
// Server-Sent Events. Delivery is best-effort: a slow consumer misses events
// rather than blocking writers, and a reconnecting consumer re-reads state
// through the regular endpoints instead of replaying.
type EventsHandler struct {
	bus BroadcastSource
	log zerolog.Logger
}

func NewEventsHandler(bus BroadcastSource, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{bus: bus, log: log}
}

// Stream handles GET /v1/events.
//
// @Summary      Subscribe to storage-change broadcasts
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /v1/events [get]
func (h *EventsHandler) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	events, cancel := h.bus.Subscribe()
	defer cancel()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case bc := <-events:
			data, err := json.Marshal(bc)
			if err != nil {
				h.log.Error().Err(err).Msg("marshal broadcast")
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", bc.Action, data); err != nil {
				return nil
			}
			w.Flush()

		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
