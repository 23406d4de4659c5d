package create_booking

import (
	"time"

	"github.com/parkngo/slot-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
// SlotID == nil означает авто-аллокацию: будет занят свободный слот с наименьшим номером
type Request struct {
	SlotID *int64

	CustomerName  string  `validate:"required,max=100"`
	CustomerEmail string  `validate:"required,email"`
	CustomerPhone string  `validate:"required,phone_digits"`
	VehicleNumber *string `validate:"omitempty,max=20"`
	AadhaarNumber string  `validate:"required,aadhaar"`

	BookingDate time.Time        // дата бронирования (без времени)
	StartTime   types.TimeString // время начала, "HH:MM"
	EndTime     types.TimeString // время окончания, "HH:MM"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	SlotID     int64
	SlotNumber int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VehicleNumber *string
	AadhaarNumber string

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	Status    string
	CreatedAt time.Time
}
