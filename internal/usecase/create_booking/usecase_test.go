package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkngo/slot-booking-service/internal/domain"
	bookingLedger "github.com/parkngo/slot-booking-service/internal/infra/storage/booking"
	slotRegistry "github.com/parkngo/slot-booking-service/internal/infra/storage/slot"
	"github.com/parkngo/slot-booking-service/pkg/ptr"
	"github.com/parkngo/slot-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T, totalSlots int) (*UseCase, *slotRegistry.Registry, *bookingLedger.Ledger) {
	t.Helper()

	registry, err := slotRegistry.NewRegistry(totalSlots)
	require.NoError(t, err)
	ledger := bookingLedger.NewLedger()

	uc := NewUseCase(registry, ledger, NopRecorder{}, nopLogger{})
	return uc, registry, ledger
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Arun Kumar",
		CustomerEmail: "arun@example.com",
		CustomerPhone: "(987) 654-3210",
		VehicleNumber: ptr.Ptr("KA-01-AB-1234"),
		AadhaarNumber: "1234 5678 9012",
		BookingDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("11:00"),
	}
}

func TestUseCase_Execute_ExplicitSlot(t *testing.T) {
	uc, registry, _ := newTestUseCase(t, 3)

	req := validRequest()
	req.SlotID = ptr.Ptr(int64(2))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(2), resp.SlotID)
	assert.Equal(t, int64(2), resp.SlotNumber)
	assert.Equal(t, string(domain.StatusActive), resp.Status)

	s, err := registry.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, s.Status)
	assert.Equal(t, 2, registry.AvailableCount())
}

func TestUseCase_Execute_SlotAlreadyBooked(t *testing.T) {
	uc, registry, ledger := newTestUseCase(t, 3)
	require.NoError(t, registry.Reserve(1))

	req := validRequest()
	req.SlotID = ptr.Ptr(int64(1))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Бронирование не создано
	assert.Empty(t, ledger.List())
}

func TestUseCase_Execute_SlotNotFound(t *testing.T) {
	uc, _, ledger := newTestUseCase(t, 3)

	req := validRequest()
	req.SlotID = ptr.Ptr(int64(99))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Empty(t, ledger.List())
}

func TestUseCase_Execute_AutoAllocation(t *testing.T) {
	uc, registry, _ := newTestUseCase(t, 3)
	require.NoError(t, registry.Reserve(1))

	// SlotID == nil: занимается свободный слот с наименьшим номером
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.SlotID)

	resp, err = uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.SlotID)
}

func TestUseCase_Execute_PoolExhausted(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 2)

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoSlotsAvailable)
}

func TestUseCase_Execute_ValidationFailureReleasesSlot(t *testing.T) {
	uc, registry, ledger := newTestUseCase(t, 3)

	req := validRequest()
	req.SlotID = ptr.Ptr(int64(1))
	req.CustomerEmail = "not-an-email"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	// Слот откатился в available, бронирование не создано
	s, err := registry.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, s.Status)
	assert.Empty(t, ledger.List())
}

func TestUseCase_Execute_ValidationCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.CustomerName = "" }},
		{name: "invalid email", mutate: func(r *Request) { r.CustomerEmail = "bad" }},
		{name: "short phone", mutate: func(r *Request) { r.CustomerPhone = "12345" }},
		{name: "aadhaar too short", mutate: func(r *Request) { r.AadhaarNumber = "1234" }},
		{name: "aadhaar with letters", mutate: func(r *Request) { r.AadhaarNumber = "12345678901a" }},
		{name: "zero booking date", mutate: func(r *Request) { r.BookingDate = time.Time{} }},
		{name: "invalid start time", mutate: func(r *Request) { r.StartTime = "9am" }},
		{name: "end equals start", mutate: func(r *Request) { r.EndTime = r.StartTime }},
		{name: "end before start", mutate: func(r *Request) { r.StartTime, r.EndTime = r.EndTime, r.StartTime }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, registry, _ := newTestUseCase(t, 3)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, 3, registry.AvailableCount())
		})
	}
}

func TestUseCase_Execute_NormalizesAadhaar(t *testing.T) {
	uc, _, ledger := newTestUseCase(t, 3)

	req := validRequest()
	req.AadhaarNumber = "1234-5678-9012"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", resp.AadhaarNumber)

	stored, err := ledger.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", stored.AadhaarNumber)
}

func TestUseCase_Execute_DuplicateSubmissionsCreateSeparateBookings(t *testing.T) {
	uc, _, ledger := newTestUseCase(t, 3)

	// Дедупликации нет: два одинаковых запроса дают два бронирования на разных слотах
	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.SlotID, second.SlotID)
	assert.Len(t, ledger.List(), 2)
}
