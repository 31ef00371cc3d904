// Package qrcode renders donation QR codes for NGO profile pages.
package qrcode

import (
	"fmt"
	"strings"

	"kindred/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The base URL is the
// public donation page prefix; the NGO ID is appended as the last path segment.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// DonationURL returns the donation page URL encoded into the QR code.
func (s *qrcodeService) DonationURL(ngoID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", s.baseURL, ngoID.String())
}

// GenerateDonationQR generates a PNG QR code pointing at an NGO's donation page.
func (s *qrcodeService) GenerateDonationQR(ngoID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.DonationURL(ngoID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
