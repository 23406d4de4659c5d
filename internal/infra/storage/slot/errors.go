package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с указанным ID не существует
	ErrSlotNotFound = errors.New("slot.registry: slot not found")

	// ErrSlotUnavailable возвращается при попытке зарезервировать занятый слот
	ErrSlotUnavailable = errors.New("slot.registry: slot is already booked")

	// ErrNoSlotsAvailable возвращается, когда в пуле нет свободных слотов
	ErrNoSlotsAvailable = errors.New("slot.registry: no slots available")

	// ErrInvalidPoolSize возвращается при некорректном размере пула
	ErrInvalidPoolSize = errors.New("slot.registry: invalid pool size")
)
