package domain

import (
	"time"

	"github.com/parkngo/slot-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer's reservation of a parking slot
// Bookings are retained permanently with a status flag, never deleted
type Booking struct {
	ID     int64
	SlotID int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VehicleNumber *string
	AadhaarNumber string // normalized, digits only

	BookingDate time.Time        // calendar date, no time component
	StartTime   types.TimeString // "HH:MM"
	EndTime     types.TimeString // "HH:MM", strictly after StartTime

	Status    BookingStatus
	CreatedAt time.Time
}

// IsActive returns true if the booking currently holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// BookingsFilter optional criteria for listing bookings
// Absent (nil) criteria impose no constraint; present criteria combine with AND
type BookingsFilter struct {
	Status *BookingStatus // exact match
	Email  *string        // case-insensitive substring of CustomerEmail
	Phone  *string        // digit-normalized substring of CustomerPhone
}

// IsEmpty returns true if no criterion is set
func (f *BookingsFilter) IsEmpty() bool {
	return f.Status == nil && f.Email == nil && f.Phone == nil
}
