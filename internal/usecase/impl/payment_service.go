package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	residentRepo repository.ResidentRepository
	qrcodeSvc    service.QRCodeService
	reportSvc    service.ReportService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo  repository.PaymentRepository
	ResidentRepo repository.ResidentRepository
	QRCodeSvc    service.QRCodeService
	ReportSvc    service.ReportService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo:  params.PaymentRepo,
		residentRepo: params.ResidentRepo,
		qrcodeSvc:    params.QRCodeSvc,
		reportSvc:    params.ReportSvc,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// RecordPayment creates a payment after checking for month overlap. The
// check covers non-deposit payments only: deposits carry no months.
func (s *paymentService) RecordPayment(ctx context.Context, input *usecase.PaymentInput) (*entity.Payment, error) {
	resident, err := s.residentRepo.FindByID(ctx, input.ResidentID)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to load resident")
	}

	status := input.Status
	if status == "" {
		status = entity.PaymentStatusPaid
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment status")
	}
	if !input.Method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
	}

	if !input.IsDeposit && len(input.Months) > 0 {
		covered, err := s.paymentRepo.CoveredMonths(ctx, input.ResidentID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load covered months")
		}

		if overlap := entity.OverlappingMonths(input.Months, covered); len(overlap) > 0 {
			return nil, domainerrors.ErrPaymentMonthOverlap.WithDetails(
				"already covered: " + strings.Join(overlap, ", "),
			)
		}
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment := &entity.Payment{
		ID:            uuid.New(),
		ResidentID:    input.ResidentID,
		Amount:        input.Amount,
		Months:        input.Months,
		PaymentDate:   paymentDate,
		DueDate:       input.DueDate,
		Status:        status,
		Method:        input.Method,
		ReceiptNumber: generateReceiptNumber(),
		TransactionID: input.TransactionID,
		Remarks:       input.Remarks,
		IsDeposit:     input.IsDeposit,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	event := &service.HostelEvent{
		Type:         service.EventPaymentRecorded,
		ResidentID:   resident.ID.String(),
		ResidentName: resident.Name,
		Email:        resident.Email,
		PGID:         resident.PGID,
		Amount:       payment.Amount,
		Months:       payment.Months,
		ReceiptNo:    payment.ReceiptNumber,
	}
	if err := s.publisher.PublishHostelEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to publish payment event",
			slog.String("paymentId", payment.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return payment, nil
}

// UpdatePayment applies an admin edit. Months are immutable after creation.
func (s *paymentService) UpdatePayment(ctx context.Context, id uuid.UUID, input *usecase.PaymentUpdateInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment status")
		}
		payment.Status = *input.Status
	}
	if input.Method != nil {
		if !input.Method.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
		}
		payment.Method = *input.Method
	}
	if input.TransactionID != nil {
		payment.TransactionID = *input.TransactionID
	}
	if input.Remarks != nil {
		payment.Remarks = *input.Remarks
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to update payment")
	}

	return payment, nil
}

// GetPayment retrieves a single payment.
func (s *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	return payment, nil
}

// ListPayments retrieves payments matching the filter.
func (s *paymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// ResidentPayments retrieves all payments of one resident.
func (s *paymentService) ResidentPayments(ctx context.Context, residentID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindByResident(ctx, residentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load resident payments")
	}

	return payments, nil
}

// ReceiptQR renders a payment's receipt reference as a QR code PNG.
func (s *paymentService) ReceiptQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	png, err := s.qrcodeSvc.GenerateReceiptQR(payment.ID, payment.ReceiptNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR")
	}

	return png, nil
}

// ExportReport renders payments matching the filter as an xlsx workbook.
func (s *paymentService) ExportReport(ctx context.Context, filter repository.PaymentFilter) ([]byte, error) {
	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments for report")
	}

	residents := make(map[string]*entity.Resident)
	for _, payment := range payments {
		key := payment.ResidentID.String()
		if _, ok := residents[key]; ok {
			continue
		}

		resident, err := s.residentRepo.FindByID(ctx, payment.ResidentID)
		if err != nil {
			// Archived residents may be gone; the report renders them blank.
			continue
		}
		residents[key] = resident
	}

	report, err := s.reportSvc.PaymentReport(ctx, payments, residents)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment report")
	}

	return report, nil
}

// generateReceiptNumber produces a receipt identifier of the form
// RCPT-20260105-483920. Uniqueness is enforced by the receipt column's
// unique index; the random suffix keeps collisions rare.
func generateReceiptNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		n = big.NewInt(time.Now().UnixNano() % 1_000_000)
	}

	return fmt.Sprintf("RCPT-%s-%06d", time.Now().Format("20060102"), n.Int64())
}
