package get_bookings

import (
	"errors"
	"net/http"

	"github.com/parkngo/slot-booking-service/internal/api/handlers"
	"github.com/parkngo/slot-booking-service/internal/service/bookings"
)

const (
	msgInvalidStatus = "invalid status filter, expected 'active' or 'cancelled'"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=&email=&phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := FromQueryParams(r.URL.Query())

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(list))
	handlers.RespondJSON(w, http.StatusOK, &ListBookingsResponse{
		Success:  true,
		Bookings: list,
	})
}
