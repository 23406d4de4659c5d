package slots

import (
	"context"

	"github.com/parkngo/slot-booking-service/internal/service/slots/models"
)

// Service сервис чтения состояния парковочного пула
type Service struct {
	registry SlotRegistry
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(registry SlotRegistry, logger Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// List возвращает снимок всех слотов в порядке возрастания номера
func (s *Service) List(ctx context.Context) *models.SlotListResponse {
	list := s.registry.List()

	resp := &models.SlotListResponse{
		Slots:     models.FromDomainSlotList(list),
		Available: s.registry.AvailableCount(),
		Total:     s.registry.TotalCount(),
	}

	s.logger.Info("List: returning %d slots, %d available", resp.Total, resp.Available)
	return resp
}
