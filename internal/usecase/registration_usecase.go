// Package usecase defines the application-layer interfaces that the HTTP
// handlers depend on. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries a prospective resident's self-registration form.
type RegisterInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// DepositInput carries the optional deposit collected during approval.
type DepositInput struct {
	Amount        float64              `json:"amount" validate:"required,gt=0"`
	Method        entity.PaymentMethod `json:"method" validate:"required"`
	TransactionID string               `json:"transaction_id"`
	Remarks       string               `json:"remarks"`
}

// ConfirmInput carries the admin's approval decision for a pending registration.
type ConfirmInput struct {
	RoomID      uuid.UUID     `json:"room_id" validate:"required"`
	CheckInDate time.Time     `json:"check_in_date"`
	Deposit     *DepositInput `json:"deposit,omitempty"`
	KeyIssued   bool          `json:"key_issued"`
}

// ConfirmResult reports the outcome of an approval: the allocated bed and
// the generated pgId. The temporary password travels only through the
// credential email, never through the API response.
type ConfirmResult struct {
	Resident  *entity.Resident `json:"resident"`
	BedNumber int              `json:"bed_number"`
	PGID      string           `json:"pg_id"`
}

// RegistrationUsecase drives the self-registration and approval pipeline.
type RegistrationUsecase interface {
	// Register creates a Pending resident from a public registration form.
	Register(ctx context.Context, input *RegisterInput) (*entity.Resident, error)

	// ListPending retrieves registrations awaiting an admin decision.
	ListPending(ctx context.Context) ([]*entity.Resident, error)

	// Confirm approves a pending registration: allocates the lowest free bed
	// in the requested room, issues credentials, optionally records a deposit
	// payment, and publishes the approval event.
	Confirm(ctx context.Context, registrationID uuid.UUID, input *ConfirmInput) (*ConfirmResult, error)

	// Reject marks a pending registration as rejected. Terminal.
	Reject(ctx context.Context, registrationID uuid.UUID, reason string) error
}
