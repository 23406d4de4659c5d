package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда явно указанный слот не существует
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotUnavailable возвращается, когда явно указанный слот уже занят
	ErrSlotUnavailable = errors.New("create_booking: slot is already booked")

	// ErrNoSlotsAvailable возвращается, когда при авто-аллокации нет свободных слотов
	ErrNoSlotsAvailable = errors.New("create_booking: no slots available")

	// ErrValidation возвращается при ошибках валидации полей запроса
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
