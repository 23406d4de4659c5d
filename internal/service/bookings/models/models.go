package models

import (
	"time"

	"github.com/parkngo/slot-booking-service/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований с фильтрами
// Все критерии опциональны и объединяются по AND
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}

// ToDomainFilter конвертирует запрос в domain-фильтр
// Возвращает false, если указан неизвестный статус
func (r *ListBookingsRequest) ToDomainFilter() (*domain.BookingsFilter, bool) {
	filter := &domain.BookingsFilter{
		Email: r.Email,
		Phone: r.Phone,
	}

	if r.Status != nil {
		status, ok := domain.ToBookingStatus(*r.Status)
		if !ok {
			return nil, false
		}
		filter.Status = &status
	}

	return filter, true
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64 `json:"id"`
	SlotID     int64 `json:"slot_id"`
	SlotNumber int64 `json:"slot_number"`

	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	VehicleNumber *string `json:"vehicle_number,omitempty"`
	AadhaarNumber string  `json:"aadhaar_number"`

	BookingDate string `json:"booking_date"` // "2025-01-01"
	StartTime   string `json:"start_time"`   // "09:00"
	EndTime     string `json:"end_time"`     // "10:00"

	Status    string `json:"status"`
	CreatedAt string `json:"created_at"` // ISO 8601
}

// FromDomainBooking конвертирует domain-модель в DTO
// Номер слота совпадает с его ID, отдельный поход в реестр не нужен
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		SlotID:        b.SlotID,
		SlotNumber:    b.SlotID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		VehicleNumber: b.VehicleNumber,
		AadhaarNumber: b.AadhaarNumber,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain-моделей в DTO
func FromDomainBookingList(list []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		if resp := FromDomainBooking(b); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
