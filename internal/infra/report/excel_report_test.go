package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"comfortstay/internal/domain/entity"
)

func TestPaymentReport(t *testing.T) {
	t.Parallel()

	svc := NewExcelReportService()

	residentID := uuid.New()
	payments := []*entity.Payment{
		{
			ID:            uuid.New(),
			ResidentID:    residentID,
			Amount:        8500,
			Months:        []string{"January 2026", "February 2026"},
			PaymentDate:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Status:        entity.PaymentStatusPaid,
			Method:        entity.PaymentMethodUPI,
			ReceiptNumber: "RCPT-2026-0001",
		},
	}
	residents := map[string]*entity.Resident{
		residentID.String(): {ID: residentID, Name: "Jane Doe", PGID: "PG-JD1234"},
	}

	data, err := svc.PaymentReport(context.Background(), payments, residents)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payments")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Receipt No", rows[0][0])
	assert.Equal(t, "RCPT-2026-0001", rows[1][0])
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "PG-JD1234", rows[1][2])
	assert.Equal(t, "January 2026, February 2026", rows[1][4])
}

func TestPaymentReportUnknownResident(t *testing.T) {
	t.Parallel()

	svc := NewExcelReportService()

	payments := []*entity.Payment{
		{
			ID:            uuid.New(),
			ResidentID:    uuid.New(),
			Amount:        500,
			PaymentDate:   time.Now(),
			Status:        entity.PaymentStatusPaid,
			Method:        entity.PaymentMethodCash,
			ReceiptNumber: "RCPT-2026-0002",
			IsDeposit:     true,
		},
	}

	data, err := svc.PaymentReport(context.Background(), payments, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
