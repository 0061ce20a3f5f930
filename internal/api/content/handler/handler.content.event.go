package contenthdl

import (
	"fmt"
	"strconv"

	basehdl "rf_commerce/internal/api/base/handler"
	contentdto "rf_commerce/internal/api/content/dto"
	contentmodels "rf_commerce/internal/api/content/models"
	contentsvc "rf_commerce/internal/api/content/service"

	"github.com/gofiber/fiber/v3"
)

// EventHandler xử lý CRUD sự kiện.
type EventHandler struct {
	*basehdl.BaseHandler[contentmodels.Event, contentdto.EventCreateInput, contentdto.EventUpdateInput]
	EventService *contentsvc.EventService
}

// NewEventHandler tạo EventHandler mới.
func NewEventHandler() (*EventHandler, error) {
	eventService, err := contentsvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("tạo EventService: %w", err)
	}
	h := &EventHandler{EventService: eventService}
	h.BaseHandler = basehdl.NewBaseHandler[contentmodels.Event, contentdto.EventCreateInput, contentdto.EventUpdateInput](eventService)
	return h, nil
}

// HandleFindUpcoming xử lý GET /events/upcoming?limit=.
func (h *EventHandler) HandleFindUpcoming(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit := int64(20)
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}
		events, err := h.EventService.FindUpcoming(c.Context(), limit)
		if events == nil {
			events = []contentmodels.Event{}
		}
		h.HandleResponse(c, events, err)
		return nil
	})
}
