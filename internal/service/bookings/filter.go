package bookings

import (
	"strings"

	"github.com/parkngo/slot-booking-service/internal/domain"
)

// ApplyFilter применяет критерии фильтра к списку бронирований
//
// Единственная реализация семантики фильтрации в системе - транспортный
// слой и UI не должны её дублировать:
//   - status: точное совпадение
//   - email: регистронезависимое вхождение подстроки
//   - phone: вхождение подстроки после отбрасывания всех нецифровых символов
//     с обеих сторон ("123-456" находит "(123) 456-7890"); критерий без
//     единой цифры сводится к пустой подстроке и не ограничивает выборку
//
// Критерии объединяются по AND, отсутствующий критерий не ограничивает выборку.
// Возвращает новый срез, вход не мутируется, порядок сохраняется.
func ApplyFilter(list []*domain.Booking, filter *domain.BookingsFilter) []*domain.Booking {
	if filter == nil || filter.IsEmpty() {
		return append([]*domain.Booking(nil), list...)
	}

	result := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		if matches(b, filter) {
			result = append(result, b)
		}
	}
	return result
}

func matches(b *domain.Booking, filter *domain.BookingsFilter) bool {
	if filter.Status != nil && b.Status != *filter.Status {
		return false
	}

	if filter.Email != nil {
		email := strings.ToLower(b.CustomerEmail)
		query := strings.ToLower(*filter.Email)
		if !strings.Contains(email, query) {
			return false
		}
	}

	if filter.Phone != nil {
		phone := digitsOnly(b.CustomerPhone)
		query := digitsOnly(*filter.Phone)
		if !strings.Contains(phone, query) {
			return false
		}
	}

	return true
}

// digitsOnly отбрасывает из строки все символы кроме цифр
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
