package slots

import (
	"github.com/parkngo/slot-booking-service/internal/domain"
)

// SlotRegistry интерфейс реестра слотов
type SlotRegistry interface {
	List() []*domain.Slot
	AvailableCount() int
	TotalCount() int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
