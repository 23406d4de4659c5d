package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingLedger "github.com/parkngo/slot-booking-service/internal/infra/storage/booking"
	"github.com/parkngo/slot-booking-service/internal/service/bookings/models"
)

// Service сервис чтения и отмены бронирований
type Service struct {
	ledger   BookingLedger
	slots    SlotRegistry
	recorder Recorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(ledger BookingLedger, slots SlotRegistry, recorder Recorder, logger Logger) *Service {
	return &Service{
		ledger:   ledger,
		slots:    slots,
		recorder: recorder,
		logger:   logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	b, err := s.ledger.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingLedger.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: ledger error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - ledger error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b), nil
}

// List возвращает бронирования в порядке создания с опциональной фильтрацией
// Семантика фильтров описана в ApplyFilter
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.Email != nil {
		logMsg += fmt.Sprintf(", email=%s", *req.Email)
	}
	if req.Phone != nil {
		logMsg += fmt.Sprintf(", phone=%s", *req.Phone)
	}
	s.logger.Info(logMsg)

	filter, ok := req.ToDomainFilter()
	if !ok {
		s.logger.Warn("List: invalid status filter=%s", *req.Status)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}

	list := ApplyFilter(s.ledger.List(), filter)

	s.logger.Info("List: returning %d bookings", len(list))
	return models.FromDomainBookingList(list), nil
}

// Cancel отменяет бронирование и освобождает его слот
//
// Смена статуса в журнале и освобождение слота - одна логическая транзакция:
// MarkCancelled атомарно отсекает повторные отмены, после чего Release
// обязан выполниться (он идемпотентен и не падает на свободном слоте).
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	cancelled, err := s.ledger.MarkCancelled(id)
	if err != nil {
		switch {
		case errors.Is(err, bookingLedger.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingLedger.ErrAlreadyCancelled):
			s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
			return nil, ErrAlreadyCancelled
		default:
			s.logger.Error("Cancel: ledger error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - ledger error: %v", ErrInternal, err)
		}
	}

	if err := s.slots.Release(cancelled.SlotID); err != nil {
		// Статус уже переключен; слот обязан существовать, т.к. пул фиксирован
		s.logger.Error("Cancel: failed to release slot id=%d for booking id=%d: %v",
			cancelled.SlotID, id, err)
		return nil, fmt.Errorf("%w: Cancel - release slot: %v", ErrInternal, err)
	}

	s.recorder.BookingCancelled()
	s.recorder.SetSlotsAvailable(s.slots.AvailableCount())

	s.logger.Info("Cancel: successfully cancelled booking id=%d, slot id=%d released",
		id, cancelled.SlotID)
	return models.FromDomainBooking(cancelled), nil
}
