package health

import (
	"net/http"

	"github.com/parkngo/slot-booking-service/internal/api/handlers"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondMessage(w, http.StatusOK, "API is running")
}
