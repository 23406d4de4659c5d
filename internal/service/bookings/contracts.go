package bookings

import (
	"github.com/parkngo/slot-booking-service/internal/domain"
)

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	GetByID(id int64) (*domain.Booking, error)
	List() []*domain.Booking
	MarkCancelled(id int64) (*domain.Booking, error)
}

// SlotRegistry интерфейс реестра слотов
type SlotRegistry interface {
	GetByID(id int64) (*domain.Slot, error)
	Release(id int64) error
	AvailableCount() int
}

// Recorder интерфейс для записи доменных метрик
type Recorder interface {
	BookingCancelled()
	SetSlotsAvailable(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopRecorder заглушка метрик для тестов и выключенного режима
type NopRecorder struct{}

func (NopRecorder) BookingCancelled()       {}
func (NopRecorder) SetSlotsAvailable(n int) {}
