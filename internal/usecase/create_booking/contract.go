package create_booking

import (
	"github.com/parkngo/slot-booking-service/internal/domain"
)

// SlotRegistry интерфейс реестра слотов
type SlotRegistry interface {
	GetByID(id int64) (*domain.Slot, error)
	FindAvailable() (*domain.Slot, error)
	Reserve(id int64) error
	Release(id int64) error
	AvailableCount() int
}

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	Create(b *domain.Booking) (*domain.Booking, error)
}

// Recorder интерфейс для записи доменных метрик
type Recorder interface {
	BookingCreated()
	BookingCreateFailed(reason string)
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

func (NopRecorder) BookingCreated()                   {}
func (NopRecorder) BookingCreateFailed(reason string) {}
func (NopRecorder) SetSlotsAvailable(n int)           {}
