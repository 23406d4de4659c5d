package get_bookings

import (
	"net/url"

	"github.com/parkngo/slot-booking-service/internal/service/bookings/models"
)

// ListBookingsResponse конверт успешного ответа
type ListBookingsResponse struct {
	Success  bool                     `json:"success"`
	Bookings []models.BookingResponse `json:"bookings"`
}

// FromQueryParams собирает запрос к сервису из query-параметров
// Отсутствующий или пустой параметр не накладывает ограничения
func FromQueryParams(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("email"); v != "" {
		req.Email = &v
	}
	if v := query.Get("phone"); v != "" {
		req.Phone = &v
	}

	return req
}
