package qrcode

import (
	"encoding/json"
	"testing"

	"mesa/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQRConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              baseURL,
		},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newQRConfig(256, tt.errorCorrectionLevel, ""))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateMenuQR(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", ""))
	locationID := uuid.New()

	qrBytes, err := service.GenerateMenuQR(locationID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateMenuQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(newQRConfig(tt.size, "M", ""))

			qrBytes, err := service.GenerateMenuQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateMenuQR_WithBaseURL(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", "https://order.example.com"))

	qrBytes, err := service.GenerateMenuQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_ParseMenuQR(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", ""))
	locationID := uuid.New()

	data := QRCodeData{
		LocationID: locationID.String(),
		Type:       "menu",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseMenuQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, locationID, parsedID)
}

func TestQRCodeService_ParseMenuQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", ""))

	_, err := service.ParseMenuQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseMenuQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", ""))

	data := QRCodeData{
		LocationID: uuid.New().String(),
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseMenuQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseMenuQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(newQRConfig(256, "M", ""))

	data := QRCodeData{
		LocationID: "not-a-valid-uuid",
		Type:       "menu",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseMenuQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse location ID")
}
