package http

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/notify"
)

// EventsHandler streams bill-created events to the client as server-sent
// events. Missing an event here is acceptable; the transaction list is the
// source of truth.
type EventsHandler struct {
	broadcaster *notify.Broadcaster
}

func NewEventsHandler(broadcaster *notify.Broadcaster) *EventsHandler {
	return &EventsHandler{broadcaster: broadcaster}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	id, events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(domain.BillCreatedKind, event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
