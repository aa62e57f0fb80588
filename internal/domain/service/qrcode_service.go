package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReceiptQR generates a QR code image encoding a payment receipt reference.
	GenerateReceiptQR(paymentID uuid.UUID, receiptNo string) ([]byte, error)

	// ParseReceiptQR parses QR code data and returns the payment ID it references.
	ParseReceiptQR(qrData string) (uuid.UUID, error)
}
