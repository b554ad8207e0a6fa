package http

import (
	"strconv"

	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/gofiber/fiber/v2"
)

// ChangesHandler expone el feed de cambios para el sondeo de los clientes:
// ante cualquier evento nuevo, el cliente recarga la colección completa.
type ChangesHandler struct {
	feed *events.Feed
}

// NewChangesHandler construye el handler.
func NewChangesHandler(feed *events.Feed) *ChangesHandler {
	return &ChangesHandler{feed: feed}
}

// changesResponse eventos nuevos + cursor para el siguiente sondeo.
type changesResponse struct {
	Events []events.ChangeEvent `json:"events"`
	Latest int64                `json:"latest"`
}

// List GET /api/changes?after=<seq>
func (h *ChangesHandler) List(c *fiber.Ctx) error {
	after, _ := strconv.ParseInt(c.Query("after", "0"), 10, 64)
	evs, latest := h.feed.Since(after)
	return c.JSON(changesResponse{Events: evs, Latest: latest})
}
