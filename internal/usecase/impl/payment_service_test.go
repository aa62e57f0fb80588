package impl

import (
	"context"
	"testing"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	mockRepo "comfortstay/internal/mocks/repository"
	mockSvc "comfortstay/internal/mocks/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	service      usecase.PaymentUsecase
	paymentRepo  *mockRepo.MockPaymentRepository
	residentRepo *mockRepo.MockResidentRepository
	qrcodeSvc    *mockSvc.MockQRCodeService
	reportSvc    *mockSvc.MockReportService
	publisher    *mockSvc.MockEventPublisher
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	f := &paymentFixture{
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
		residentRepo: mockRepo.NewMockResidentRepository(t),
		qrcodeSvc:    mockSvc.NewMockQRCodeService(t),
		reportSvc:    mockSvc.NewMockReportService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewPaymentService(PaymentServiceParams{
		PaymentRepo:  f.paymentRepo,
		ResidentRepo: f.residentRepo,
		QRCodeSvc:    f.qrcodeSvc,
		ReportSvc:    f.reportSvc,
		Publisher:    f.publisher,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestPaymentService_RecordPayment_Success(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{
		ID:    uuid.New(),
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		PGID:  "PG-JD4821",
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.paymentRepo.EXPECT().
		CoveredMonths(ctx, resident.ID).
		Return([]string{"January 2026"}, nil)
	f.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(nil)

	payment, err := f.service.RecordPayment(ctx, &usecase.PaymentInput{
		ResidentID: resident.ID,
		Amount:     8000,
		Months:     []string{"February 2026"},
		Method:     entity.PaymentMethodUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, payment.Status)
	assert.Regexp(t, `^RCPT-\d{8}-\d{6}$`, payment.ReceiptNumber)
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestPaymentService_RecordPayment_MonthOverlap(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New()}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.paymentRepo.EXPECT().
		CoveredMonths(ctx, resident.ID).
		Return([]string{"January 2026", "February 2026"}, nil)

	payment, err := f.service.RecordPayment(ctx, &usecase.PaymentInput{
		ResidentID: resident.ID,
		Amount:     16000,
		Months:     []string{"February 2026", "March 2026"},
		Method:     entity.PaymentMethodCash,
	})
	assert.Nil(t, payment)
	require.ErrorIs(t, err, domainerrors.ErrPaymentMonthOverlap)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "February 2026")
}

func TestPaymentService_RecordPayment_DepositSkipsOverlapCheck(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New()}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(nil)

	payment, err := f.service.RecordPayment(ctx, &usecase.PaymentInput{
		ResidentID: resident.ID,
		Amount:     5000,
		Method:     entity.PaymentMethodCash,
		IsDeposit:  true,
	})
	require.NoError(t, err)
	assert.True(t, payment.IsDeposit)
	f.paymentRepo.AssertNotCalled(t, "CoveredMonths", mock.Anything, mock.Anything)
}

func TestPaymentService_RecordPayment_UnknownMethod(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New()}
	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)

	payment, err := f.service.RecordPayment(ctx, &usecase.PaymentInput{
		ResidentID: resident.ID,
		Amount:     8000,
		Method:     "Barter",
	})
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_UpdatePayment_MonthsImmutable(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment := &entity.Payment{
		ID:     uuid.New(),
		Amount: 8000,
		Months: []string{"February 2026"},
		Status: entity.PaymentStatusDue,
	}

	f.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)
	f.paymentRepo.EXPECT().Update(ctx, payment).Return(nil)

	paid := entity.PaymentStatusPaid
	remarks := "settled in cash"
	updated, err := f.service.UpdatePayment(ctx, payment.ID, &usecase.PaymentUpdateInput{
		Status:  &paid,
		Remarks: &remarks,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.Status)
	assert.Equal(t, "settled in cash", updated.Remarks)
	assert.Equal(t, []string{"February 2026"}, updated.Months)
}

func TestPaymentService_ReceiptQR(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment := &entity.Payment{ID: uuid.New(), ReceiptNumber: "RCPT-20260105-000042"}
	png := []byte("png-bytes")

	f.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)
	f.qrcodeSvc.EXPECT().
		GenerateReceiptQR(payment.ID, payment.ReceiptNumber).
		Return(png, nil)

	got, err := f.service.ReceiptQR(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPaymentService_ExportReport_SkipsMissingResidents(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	known := &entity.Resident{ID: uuid.New(), Name: "Jane Doe"}
	goneID := uuid.New()
	payments := []*entity.Payment{
		{ID: uuid.New(), ResidentID: known.ID},
		{ID: uuid.New(), ResidentID: goneID},
	}
	workbook := []byte("xlsx-bytes")

	f.paymentRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PaymentFilter")).
		Return(payments, nil)
	f.residentRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	f.residentRepo.EXPECT().
		FindByID(ctx, goneID).
		Return(nil, domainerrors.ErrResidentNotFound)

	f.reportSvc.EXPECT().
		PaymentReport(ctx, payments, map[string]*entity.Resident{
			known.ID.String(): known,
		}).
		Return(workbook, nil)

	got, err := f.service.ExportReport(ctx, repository.PaymentFilter{})
	require.NoError(t, err)
	assert.Equal(t, workbook, got)
}
