package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateDonationQR generates a QR code pointing at an NGO's donation page
	GenerateDonationQR(ngoID uuid.UUID) ([]byte, error)

	// DonationURL returns the donation page URL encoded into the QR code
	DonationURL(ngoID uuid.UUID) string
}
