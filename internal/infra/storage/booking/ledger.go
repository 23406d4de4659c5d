package booking

import (
	"fmt"
	"sync"
	"time"

	"github.com/parkngo/slot-booking-service/internal/domain"
)

// Ledger in-memory журнал бронирований
// Append-only: записи никогда не удаляются, отмена - это смена статуса.
// ID назначаются монотонно, порядок хранения = порядок создания.
type Ledger struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[int64]*domain.Booking
	nextID   int64

	now func() time.Time // подменяется в тестах
}

// NewLedger создает пустой журнал бронирований
func NewLedger() *Ledger {
	return &Ledger{
		bookings: make([]*domain.Booking, 0),
		byID:     make(map[int64]*domain.Booking),
		nextID:   1,
		now:      time.Now,
	}
}

// NewLedgerWithClock создает журнал с внешним источником времени (для тестов)
func NewLedgerWithClock(now func() time.Time) *Ledger {
	l := NewLedger()
	l.now = now
	return l
}

// Create добавляет бронирование в журнал
// Назначает свежий ID и CreatedAt, возвращает копию созданной записи
func (l *Ledger) Create(b *domain.Booking) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *b
	stored.ID = l.nextID
	stored.CreatedAt = l.now()
	l.nextID++

	l.bookings = append(l.bookings, &stored)
	l.byID[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

// GetByID возвращает копию бронирования по ID
func (l *Ledger) GetByID(id int64) (*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
	}

	copied := *b
	return &copied, nil
}

// List возвращает копии всех бронирований в порядке создания
func (l *Ledger) List() []*domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*domain.Booking, len(l.bookings))
	for i, b := range l.bookings {
		copied := *b
		result[i] = &copied
	}
	return result
}

// MarkCancelled переводит бронирование active -> cancelled
// Проверка статуса и его смена атомарны: из двух конкурентных отмен
// одной и той же записи ровно одна получит ErrAlreadyCancelled.
// Возвращает копию обновленной записи
func (l *Ledger) MarkCancelled(id int64) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
	}

	if !b.CanBeCancelled() {
		return nil, fmt.Errorf("%w: id=%d", ErrAlreadyCancelled, id)
	}

	b.Status = domain.StatusCancelled

	copied := *b
	return &copied, nil
}

// ActiveCountBySlot возвращает количество активных бронирований слота
// Инвариант системы: для любого слота результат 0 или 1
func (l *Ledger) ActiveCountBySlot(slotID int64) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, b := range l.bookings {
		if b.SlotID == slotID && b.IsActive() {
			count++
		}
	}
	return count
}
