package create_booking

import (
	"fmt"
	"time"

	"github.com/parkngo/slot-booking-service/internal/domain"
	createBooking "github.com/parkngo/slot-booking-service/internal/usecase/create_booking"
	"github.com/parkngo/slot-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
// slot_id == null означает авто-аллокацию свободного слота
type CreateBookingRequest struct {
	SlotID        *int64  `json:"slot_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	VehicleNumber *string `json:"vehicle_number,omitempty"`
	AadhaarNumber string  `json:"aadhaar_number"`
	BookingDate   string  `json:"booking_date"` // "2025-01-01"
	StartTime     string  `json:"start_time"`   // "09:00"
	EndTime       string  `json:"end_time"`     // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	SlotID        int64   `json:"slot_id"`
	SlotNumber    int64   `json:"slot_number"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	VehicleNumber *string `json:"vehicle_number,omitempty"`
	AadhaarNumber string  `json:"aadhaar_number"`
	BookingDate   string  `json:"booking_date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// CreateBookingResponse конверт успешного ответа
type CreateBookingResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Парсит дату и время; ошибки парсинга возвращаются до обращения к реестру слотов
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking_date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end_time: %w", err)
	}

	return &createBooking.Request{
		SlotID:        r.SlotID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		VehicleNumber: r.VehicleNumber,
		AadhaarNumber: r.AadhaarNumber,
		BookingDate:   bookingDate,
		StartTime:     startTime,
		EndTime:       endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		SlotNumber:    resp.SlotNumber,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		VehicleNumber: resp.VehicleNumber,
		AadhaarNumber: resp.AadhaarNumber,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
