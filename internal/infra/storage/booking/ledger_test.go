package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkngo/slot-booking-service/internal/domain"
	"github.com/parkngo/slot-booking-service/pkg/types"
)

func newTestBooking(slotID int64) *domain.Booking {
	return &domain.Booking{
		SlotID:        slotID,
		CustomerName:  "Arun Kumar",
		CustomerEmail: "arun@example.com",
		CustomerPhone: "9876543210",
		AadhaarNumber: "123456789012",
		BookingDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("10:00"),
		Status:        domain.StatusActive,
	}
}

func TestLedger_Create_AssignsMonotonicIDs(t *testing.T) {
	l := NewLedger()

	first, err := l.Create(newTestBooking(1))
	require.NoError(t, err)
	second, err := l.Create(newTestBooking(2))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestLedger_Create_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLedgerWithClock(func() time.Time { return fixed })

	created, err := l.Create(newTestBooking(1))
	require.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)
}

func TestLedger_GetByID(t *testing.T) {
	l := NewLedger()

	created, err := l.Create(newTestBooking(3))
	require.NoError(t, err)

	got, err := l.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(3), got.SlotID)

	_, err = l.GetByID(999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestLedger_List_PreservesInsertionOrder(t *testing.T) {
	l := NewLedger()

	for slotID := int64(1); slotID <= 3; slotID++ {
		_, err := l.Create(newTestBooking(slotID))
		require.NoError(t, err)
	}

	list := l.List()
	require.Len(t, list, 3)
	for i, b := range list {
		assert.Equal(t, int64(i+1), b.ID)
		assert.Equal(t, int64(i+1), b.SlotID)
	}
}

func TestLedger_MarkCancelled(t *testing.T) {
	l := NewLedger()

	created, err := l.Create(newTestBooking(1))
	require.NoError(t, err)

	cancelled, err := l.MarkCancelled(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// Запись осталась в журнале со статусом cancelled
	got, err := l.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	// Повторная отмена - ошибка
	_, err = l.MarkCancelled(created.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	// Неизвестный ID
	_, err = l.MarkCancelled(999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestLedger_ActiveCountBySlot(t *testing.T) {
	l := NewLedger()

	created, err := l.Create(newTestBooking(1))
	require.NoError(t, err)
	assert.Equal(t, 1, l.ActiveCountBySlot(1))
	assert.Equal(t, 0, l.ActiveCountBySlot(2))

	_, err = l.MarkCancelled(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, l.ActiveCountBySlot(1))
}

func TestLedger_ReturnsCopies(t *testing.T) {
	l := NewLedger()

	created, err := l.Create(newTestBooking(1))
	require.NoError(t, err)

	created.Status = domain.StatusCancelled

	got, err := l.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status, "мутация возвращенной копии не должна влиять на журнал")

	list := l.List()
	list[0].CustomerName = "mutated"

	got, err = l.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arun Kumar", got.CustomerName)
}
