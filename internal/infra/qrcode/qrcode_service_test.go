package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://kindred.example.com/donate"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_DonationURL(t *testing.T) {
	ngoID := uuid.New()

	service := NewQRCodeService(256, "M", testBaseURL)
	assert.Equal(t, testBaseURL+"/"+ngoID.String(), service.DonationURL(ngoID))

	// Trailing slash on the base URL must not double up.
	slashed := NewQRCodeService(256, "M", testBaseURL+"/")
	assert.Equal(t, testBaseURL+"/"+ngoID.String(), slashed.DonationURL(ngoID))
}

func TestQRCodeService_GenerateDonationQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)
	ngoID := uuid.New()

	qrBytes, err := service.GenerateDonationQR(ngoID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateDonationQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", testBaseURL)

			qrBytes, err := service.GenerateDonationQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_Deterministic(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)
	ngoID := uuid.New()

	first, err := service.GenerateDonationQR(ngoID)
	require.NoError(t, err)

	second, err := service.GenerateDonationQR(ngoID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
