package domain

// Default configuration values
const (
	DefaultTotalSlots = 50
)

// Business validation constants
const (
	MinTotalSlots = 1
	MaxTotalSlots = 10000

	MaxCustomerNameLength  = 100
	MaxVehicleNumberLength = 20
	MinPhoneDigits         = 10
	AadhaarDigits          = 12
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses список допустимых статусов бронирования
// Используется при валидации статуса из query-параметров
var ValidStatuses = []BookingStatus{
	StatusActive,
	StatusCancelled,
}

// ToBookingStatus конвертирует строку в BookingStatus
// Возвращает false, если статус не входит в ValidStatuses
func ToBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range ValidStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
