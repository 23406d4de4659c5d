package models

import (
	"github.com/parkngo/slot-booking-service/internal/domain"
)

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID         int64  `json:"id"`
	SlotNumber int64  `json:"slot_number"`
	Status     string `json:"status"`
}

// SlotListResponse ответ со снимком пула слотов
type SlotListResponse struct {
	Slots     []SlotResponse `json:"slots"`
	Available int            `json:"available"`
	Total     int            `json:"total"`
}

// FromDomainSlot конвертирует domain-модель в DTO
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		SlotNumber: s.SlotNumber,
		Status:     string(s.Status),
	}
}

// FromDomainSlotList конвертирует список domain-моделей в DTO
func FromDomainSlotList(list []*domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
