package slot

import (
	"fmt"
	"sync"
	"time"

	"github.com/parkngo/slot-booking-service/internal/domain"
)

// Registry in-memory реестр парковочных слотов
// Пул фиксированного размера создается при старте процесса и живет до его завершения.
// Все мутации статуса проходят через Reserve/Release под мьютексом -
// проверка и смена статуса атомарны относительно конкурентных вызовов.
type Registry struct {
	mu    sync.RWMutex
	slots []*domain.Slot         // упорядочены по slot_number
	byID  map[int64]*domain.Slot // индекс для O(1) доступа
}

// NewRegistry создает реестр со слотами 1..totalSlots, все available
func NewRegistry(totalSlots int) (*Registry, error) {
	if totalSlots < domain.MinTotalSlots || totalSlots > domain.MaxTotalSlots {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoolSize, totalSlots)
	}

	now := time.Now()
	r := &Registry{
		slots: make([]*domain.Slot, 0, totalSlots),
		byID:  make(map[int64]*domain.Slot, totalSlots),
	}

	for i := 1; i <= totalSlots; i++ {
		s := &domain.Slot{
			ID:         int64(i),
			SlotNumber: int64(i),
			Status:     domain.SlotAvailable,
			CreatedAt:  now,
		}
		r.slots = append(r.slots, s)
		r.byID[s.ID] = s
	}

	return r, nil
}

// List возвращает снимок всех слотов в порядке возрастания slot_number
func (r *Registry) List() []*domain.Slot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Slot, len(r.slots))
	for i, s := range r.slots {
		copied := *s
		result[i] = &copied
	}
	return result
}

// GetByID возвращает копию слота по ID
func (r *Registry) GetByID(id int64) (*domain.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
	}

	copied := *s
	return &copied, nil
}

// FindAvailable возвращает копию свободного слота с наименьшим номером
// Детерминированный выбор (наименьший ID) - контракт, на него опирается авто-аллокация
func (r *Registry) FindAvailable() (*domain.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.slots {
		if s.IsAvailable() {
			copied := *s
			return &copied, nil
		}
	}

	return nil, ErrNoSlotsAvailable
}

// Reserve переводит слот available -> booked
// Проверка статуса и его смена выполняются атомарно - это точка взаимного
// исключения для конкурентных попыток занять один и тот же слот
func (r *Registry) Reserve(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
	}

	if s.IsBooked() {
		return fmt.Errorf("%w: id=%d", ErrSlotUnavailable, id)
	}

	s.Status = domain.SlotBooked
	return nil
}

// Release переводит слот booked -> available
// Если слот уже available - no-op, чтобы повторная отмена не была ошибкой
func (r *Registry) Release(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
	}

	s.Status = domain.SlotAvailable
	return nil
}

// AvailableCount возвращает количество свободных слотов
func (r *Registry) AvailableCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, s := range r.slots {
		if s.IsAvailable() {
			count++
		}
	}
	return count
}

// TotalCount возвращает общий размер пула
func (r *Registry) TotalCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.slots)
}
