package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseReceiptQR(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	paymentID := uuid.New()

	png, err := svc.GenerateReceiptQR(paymentID, "RCPT-2026-0042")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// The encoded payload round-trips back to the payment ID.
	parsed, err := svc.ParseReceiptQR(`{"payment_id":"` + paymentID.String() + `","receipt_no":"RCPT-2026-0042","type":"receipt"}`)
	require.NoError(t, err)
	assert.Equal(t, paymentID, parsed)
}

func TestParseReceiptQRRejectsWrongType(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseReceiptQR(`{"payment_id":"` + uuid.New().String() + `","type":"subscription"}`)
	assert.Error(t, err)
}
