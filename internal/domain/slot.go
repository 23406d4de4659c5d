package domain

import "time"

// SlotStatus represents the occupancy status of a parking slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Slot represents a numbered physical parking space
// A slot is booked iff exactly one active booking references it
type Slot struct {
	ID         int64
	SlotNumber int64 // display label; equals ID in the current pool layout
	Status     SlotStatus
	CreatedAt  time.Time
}

// IsAvailable returns true if the slot can accept a new booking
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBooked returns true if the slot is held by an active booking
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}
