package get_slots

import (
	"context"

	"github.com/parkngo/slot-booking-service/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context) *models.SlotListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
