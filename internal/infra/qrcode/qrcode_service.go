package qrcode

import (
	"encoding/json"
	"fmt"

	"mesa/config"
	"mesa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const menuQRType = "menu"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	LocationID string `json:"location_id"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "M"
	baseURL := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateMenuQR generates a QR code pointing customers at a location's menu.
// With a configured base URL the code carries a browsable link; otherwise it
// carries a JSON payload the mobile apps decode themselves.
func (s *qrcodeService) GenerateMenuQR(locationID uuid.UUID) ([]byte, error) {
	content, err := s.menuQRContent(locationID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseMenuQR parses QR code data and returns the location ID.
func (s *qrcodeService) ParseMenuQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != menuQRType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	locationID, err := uuid.Parse(data.LocationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse location ID: %w", err)
	}

	return locationID, nil
}

func (s *qrcodeService) menuQRContent(locationID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/locations/%s/menu", s.baseURL, locationID), nil
	}

	data := QRCodeData{
		LocationID: locationID.String(),
		Type:       menuQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(jsonData), nil
}
