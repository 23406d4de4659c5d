package get_slots

import (
	"net/http"

	"github.com/parkngo/slot-booking-service/internal/api/handlers"
	"github.com/parkngo/slot-booking-service/internal/service/slots/models"
)

// ListSlotsResponse конверт успешного ответа
type ListSlotsResponse struct {
	Success   bool                  `json:"success"`
	Slots     []models.SlotResponse `json:"slots"`
	Available int                   `json:"available"`
	Total     int                   `json:"total"`
}

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.List(r.Context())

	h.logger.Info("GET /slots - Returned %d slots, %d available", snapshot.Total, snapshot.Available)
	handlers.RespondJSON(w, http.StatusOK, &ListSlotsResponse{
		Success:   true,
		Slots:     snapshot.Slots,
		Available: snapshot.Available,
		Total:     snapshot.Total,
	})
}
