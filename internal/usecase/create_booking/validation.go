package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/parkngo/slot-booking-service/internal/domain"
)

// newValidator создает validator с кастомными правилами для полей бронирования
func newValidator() *validator.Validate {
	v := validator.New()

	// phone_digits: минимум domain.MinPhoneDigits цифр после отбрасывания форматирования
	// Скобки, дефисы и пробелы в номере допустимы и не учитываются
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		digits := stripNonDigits(fl.Field().String())
		return len(digits) >= domain.MinPhoneDigits
	})

	// aadhaar: ровно domain.AadhaarDigits цифр после нормализации (пробелы и дефисы отбрасываются)
	_ = v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		normalized := normalizeAadhaar(fl.Field().String())
		if len(normalized) != domain.AadhaarDigits {
			return false
		}
		for _, r := range normalized {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return v
}

// validateRequest валидирует поля запроса
// Вызывается ПОСЛЕ резервирования слота: при ошибке вызывающая сторона
// обязана откатить резервирование
func validateRequest(v *validator.Validate, req *Request) error {
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrValidation, formatFieldErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrValidation)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start_time: %v", ErrValidation, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end_time: %v", ErrValidation, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}

	return nil
}

// formatFieldErrors собирает ошибки полей в одну читаемую строку
func formatFieldErrors(verrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return strings.Join(messages, "; ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "phone_digits":
		return fmt.Sprintf("%s must contain at least %d digits", fe.Field(), domain.MinPhoneDigits)
	case "aadhaar":
		return fmt.Sprintf("%s must be exactly %d digits", fe.Field(), domain.AadhaarDigits)
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// normalizeAadhaar отбрасывает пробелы и дефисы из номера Aadhaar
// Номер хранится в нормализованном виде
func normalizeAadhaar(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// stripNonDigits оставляет в строке только цифры
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
