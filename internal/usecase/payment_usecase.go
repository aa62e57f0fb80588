package usecase

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
)

// PaymentInput carries the admin payment entry form.
type PaymentInput struct {
	ResidentID    uuid.UUID            `json:"resident_id" validate:"required"`
	Amount        float64              `json:"amount" validate:"required,gt=0"`
	Months        []string             `json:"months"`
	PaymentDate   time.Time            `json:"payment_date"`
	DueDate       *time.Time           `json:"due_date,omitempty"`
	Status        entity.PaymentStatus `json:"status"`
	Method        entity.PaymentMethod `json:"method" validate:"required"`
	TransactionID string               `json:"transaction_id"`
	Remarks       string               `json:"remarks"`
	IsDeposit     bool                 `json:"is_deposit"`
}

// PaymentUpdateInput carries an admin edit of an existing payment.
type PaymentUpdateInput struct {
	Amount        *float64              `json:"amount,omitempty"`
	Status        *entity.PaymentStatus `json:"status,omitempty"`
	Method        *entity.PaymentMethod `json:"method,omitempty"`
	TransactionID *string               `json:"transaction_id,omitempty"`
	Remarks       *string               `json:"remarks,omitempty"`
}

// PaymentUsecase manages rent and deposit payments.
type PaymentUsecase interface {
	// RecordPayment creates a payment after checking the resident's covered
	// months for overlap. Deposits skip the overlap check.
	RecordPayment(ctx context.Context, input *PaymentInput) (*entity.Payment, error)

	// UpdatePayment applies an admin edit. Months are immutable after
	// creation; record a correction as a remark instead.
	UpdatePayment(ctx context.Context, id uuid.UUID, input *PaymentUpdateInput) (*entity.Payment, error)

	// GetPayment retrieves a single payment.
	GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// ListPayments retrieves payments matching the filter.
	ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error)

	// ResidentPayments retrieves all payments of one resident.
	ResidentPayments(ctx context.Context, residentID uuid.UUID) ([]*entity.Payment, error)

	// ReceiptQR renders a payment's receipt reference as a QR code PNG.
	ReceiptQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ExportReport renders payments matching the filter as an xlsx workbook.
	ExportReport(ctx context.Context, filter repository.PaymentFilter) ([]byte, error)
}
