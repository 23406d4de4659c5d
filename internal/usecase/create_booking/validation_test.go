package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAadhaar(t *testing.T) {
	assert.Equal(t, "123456789012", normalizeAadhaar("1234 5678 9012"))
	assert.Equal(t, "123456789012", normalizeAadhaar("1234-5678-9012"))
	assert.Equal(t, "123456789012", normalizeAadhaar("123456789012"))
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "9876543210", stripNonDigits("(987) 654-3210"))
	assert.Equal(t, "911234567890", stripNonDigits("+91 12345 67890"))
	assert.Equal(t, "", stripNonDigits("abc"))
}

func TestValidateRequest_FieldMessages(t *testing.T) {
	v := newValidator()

	req := validRequest()
	req.CustomerEmail = "bad"
	err := validateRequest(v, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "CustomerEmail must be a valid email address")

	req = validRequest()
	req.CustomerPhone = "123"
	err = validateRequest(v, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "CustomerPhone must contain at least 10 digits")

	req = validRequest()
	req.AadhaarNumber = "1234"
	err = validateRequest(v, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "AadhaarNumber must be exactly 12 digits")

	req = validRequest()
	req.EndTime = "08:00"
	err = validateRequest(v, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "end_time must be after start_time")
}

func TestValidateRequest_AcceptsFormattedInput(t *testing.T) {
	v := newValidator()

	// Форматирование в телефоне и Aadhaar допустимо
	req := validRequest()
	req.CustomerPhone = "(987) 654-3210"
	req.AadhaarNumber = "1234-5678-9012"

	assert.NoError(t, validateRequest(v, req))
}
