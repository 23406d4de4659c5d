package get_bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkngo/slot-booking-service/internal/domain"
	bookingLedger "github.com/parkngo/slot-booking-service/internal/infra/storage/booking"
	slotRegistry "github.com/parkngo/slot-booking-service/internal/infra/storage/slot"
	bookingsService "github.com/parkngo/slot-booking-service/internal/service/bookings"
	"github.com/parkngo/slot-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	registry, err := slotRegistry.NewRegistry(3)
	require.NoError(t, err)
	ledger := bookingLedger.NewLedger()

	seed := func(slotID int64, email, phone string, status domain.BookingStatus) {
		require.NoError(t, registry.Reserve(slotID))
		created, err := ledger.Create(&domain.Booking{
			SlotID:        slotID,
			CustomerName:  "Customer",
			CustomerEmail: email,
			CustomerPhone: phone,
			AadhaarNumber: "123456789012",
			BookingDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			StartTime:     types.TimeString("09:00"),
			EndTime:       types.TimeString("10:00"),
			Status:        domain.StatusActive,
		})
		require.NoError(t, err)
		if status == domain.StatusCancelled {
			_, err = ledger.MarkCancelled(created.ID)
			require.NoError(t, err)
		}
	}

	seed(1, "arun@example.com", "(123) 456-7890", domain.StatusActive)
	seed(2, "priya@mail.org", "9876543210", domain.StatusCancelled)

	svc := bookingsService.NewService(ledger, registry, bookingsService.NopRecorder{}, nopLogger{})
	return NewHandler(svc, nopLogger{})
}

func doList(h *Handler, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ListAll(t *testing.T) {
	h := newTestHandler(t)

	rec := doList(h, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, int64(2), resp.Bookings[1].ID)
}

func TestHandler_FilterByStatus(t *testing.T) {
	h := newTestHandler(t)

	rec := doList(h, "status=cancelled")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, "cancelled", resp.Bookings[0].Status)
}

func TestHandler_FilterByPhoneIgnoresFormatting(t *testing.T) {
	h := newTestHandler(t)

	rec := doList(h, "phone=123-456")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestHandler_InvalidStatus(t *testing.T) {
	h := newTestHandler(t)

	rec := doList(h, "status=pending")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "invalid status filter")
}
