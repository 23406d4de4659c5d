package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/parkngo/slot-booking-service/internal/domain"
	slotRegistry "github.com/parkngo/slot-booking-service/internal/infra/storage/slot"
)

// Причины отказа для метрики booking_create_failures_total
const (
	failReasonSlotNotFound = "slot_not_found"
	failReasonSlotTaken    = "slot_unavailable"
	failReasonPoolFull     = "no_slots_available"
	failReasonValidation   = "validation"
	failReasonInternal     = "internal"
)

// UseCase use case создания бронирования
//
// Протокол: резервирование слота -> валидация полей -> запись в журнал.
// Валидация выполняется после резервирования намеренно: при отказе слот
// откатывается в available, поэтому отклоненный запрос никогда не оставляет
// слот занятым, а успешный ответ всегда означает реально занятый слот.
// Атомарность Reserve - точка взаимного исключения конкурентных запросов.
type UseCase struct {
	slots    SlotRegistry
	ledger   BookingLedger
	validate *validator.Validate
	recorder Recorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotRegistry, ledger BookingLedger, recorder Recorder, logger Logger) *UseCase {
	return &UseCase{
		slots:    slots,
		ledger:   ledger,
		validate: newValidator(),
		recorder: recorder,
		logger:   logger,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SlotID != nil {
		uc.logger.Info("CreateBooking: email=%s, slot=%d, date=%s, time=%s-%s",
			req.CustomerEmail, *req.SlotID, req.BookingDate.Format(domain.DateFormat), req.StartTime, req.EndTime)
	} else {
		uc.logger.Info("CreateBooking: email=%s, slot=auto, date=%s, time=%s-%s",
			req.CustomerEmail, req.BookingDate.Format(domain.DateFormat), req.StartTime, req.EndTime)
	}

	// 1. Резервируем слот: явно указанный или свободный с наименьшим номером
	slotID, err := uc.reserveSlot(req.SlotID)
	if err != nil {
		return nil, err
	}

	// 2. Валидируем поля запроса; при отказе откатываем резервирование
	if err := validateRequest(uc.validate, req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed, releasing slot id=%d: %v", slotID, err)
		uc.rollbackSlot(slotID)
		uc.recorder.BookingCreateFailed(failReasonValidation)
		return nil, err
	}

	// 3. Фиксируем бронирование в журнале
	b := &domain.Booking{
		SlotID:        slotID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleNumber: req.VehicleNumber,
		AadhaarNumber: normalizeAadhaar(req.AadhaarNumber),
		BookingDate:   req.BookingDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        domain.StatusActive,
	}

	created, err := uc.ledger.Create(b)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to append booking, releasing slot id=%d: %v", slotID, err)
		uc.rollbackSlot(slotID)
		uc.recorder.BookingCreateFailed(failReasonInternal)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	slot, err := uc.slots.GetByID(slotID)
	if err != nil {
		// Слот только что был зарезервирован, отсутствовать не может
		uc.logger.Error("CreateBooking: failed to load reserved slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: failed to load slot: %v", ErrInternal, err)
	}

	uc.recorder.BookingCreated()
	uc.recorder.SetSlotsAvailable(uc.slots.AvailableCount())

	uc.logger.Info("CreateBooking: successfully created booking id=%d, slot=%d", created.ID, slotID)

	return &Response{
		ID:            created.ID,
		SlotID:        created.SlotID,
		SlotNumber:    slot.SlotNumber,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		VehicleNumber: created.VehicleNumber,
		AadhaarNumber: created.AadhaarNumber,
		BookingDate:   created.BookingDate,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}

// reserveSlot резервирует слот и возвращает его ID
// При авто-аллокации пара FindAvailable+Reserve повторяется: между вызовами
// другой запрос мог занять найденный слот
func (uc *UseCase) reserveSlot(explicitID *int64) (int64, error) {
	if explicitID != nil {
		if err := uc.slots.Reserve(*explicitID); err != nil {
			switch {
			case errors.Is(err, slotRegistry.ErrSlotNotFound):
				uc.logger.Warn("CreateBooking: slot id=%d not found", *explicitID)
				uc.recorder.BookingCreateFailed(failReasonSlotNotFound)
				return 0, fmt.Errorf("%w: id=%d", ErrSlotNotFound, *explicitID)
			case errors.Is(err, slotRegistry.ErrSlotUnavailable):
				uc.logger.Warn("CreateBooking: slot id=%d is already booked", *explicitID)
				uc.recorder.BookingCreateFailed(failReasonSlotTaken)
				return 0, fmt.Errorf("%w: id=%d", ErrSlotUnavailable, *explicitID)
			default:
				uc.recorder.BookingCreateFailed(failReasonInternal)
				return 0, fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
			}
		}
		return *explicitID, nil
	}

	for {
		found, err := uc.slots.FindAvailable()
		if err != nil {
			if errors.Is(err, slotRegistry.ErrNoSlotsAvailable) {
				uc.logger.Warn("CreateBooking: no slots available for auto-allocation")
				uc.recorder.BookingCreateFailed(failReasonPoolFull)
				return 0, ErrNoSlotsAvailable
			}
			uc.recorder.BookingCreateFailed(failReasonInternal)
			return 0, fmt.Errorf("%w: find available slot: %v", ErrInternal, err)
		}

		err = uc.slots.Reserve(found.ID)
		if err == nil {
			uc.logger.Info("CreateBooking: auto-allocated slot id=%d", found.ID)
			return found.ID, nil
		}
		if errors.Is(err, slotRegistry.ErrSlotUnavailable) {
			// Слот перехвачен конкурентным запросом, ищем следующий
			continue
		}

		uc.recorder.BookingCreateFailed(failReasonInternal)
		return 0, fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
	}
}

// rollbackSlot возвращает слот в available после неудачного создания
func (uc *UseCase) rollbackSlot(slotID int64) {
	if err := uc.slots.Release(slotID); err != nil {
		uc.logger.Error("CreateBooking: failed to release slot id=%d during rollback: %v", slotID, err)
	}
}
