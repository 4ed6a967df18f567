package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMenuQR generates a QR code pointing customers at a location's menu.
	GenerateMenuQR(locationID uuid.UUID) ([]byte, error)

	// ParseMenuQR parses QR code data and returns the location ID.
	ParseMenuQR(qrData string) (uuid.UUID, error)
}
