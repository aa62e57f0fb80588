package usecase

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
)

// ExitSurveyInput is the optional structured survey collected at checkout.
type ExitSurveyInput struct {
	Rating           int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comments         string `json:"comments"`
	WouldRecommend   bool   `json:"would_recommend"`
	ReasonForLeaving string `json:"reason_for_leaving"`
}

// CheckoutInput carries the admin-side checkout form.
type CheckoutInput struct {
	ArchiveReason entity.ArchiveReason `json:"archive_reason"`
	ExitSurvey    *ExitSurveyInput     `json:"exit_survey,omitempty"`
	SkipSurvey    bool                 `json:"skip_survey"`
	RefundAmount  float64              `json:"refund_amount"`
	RefundMethod  string               `json:"refund_method"`
	AdminComments string               `json:"admin_comments"`
}

// DeactivateInput carries the admin-initiated deactivation form. Unlike a
// full checkout it captures only key return and deposit refund details.
type DeactivateInput struct {
	KeyIssued     *bool                 `json:"key_issued,omitempty"`
	DepositReturn *entity.DepositReturn `json:"deposit_return,omitempty"`
}

// CheckoutUsecase drives resident departure: archival, deallocation and the
// post-checkout exit survey.
type CheckoutUsecase interface {
	// Checkout archives a resident, frees their bed, decrements room
	// occupancy and deactivates the account. Repeating a checkout for the
	// same resident fails with an already-checked-out conflict.
	Checkout(ctx context.Context, residentID uuid.UUID, input *CheckoutInput) (*entity.ResidentArchive, error)

	// Deactivate is the admin-initiated departure path. It converges on the
	// same archive row as Checkout (keyed by resident ID), updating it in
	// place when one already exists.
	Deactivate(ctx context.Context, residentID uuid.UUID, input *DeactivateInput) error

	// GetExitSurvey retrieves the archive record holding a resident's
	// exit-survey data.
	GetExitSurvey(ctx context.Context, residentID uuid.UUID) (*entity.ResidentArchive, error)

	// UpdateExitSurvey amends the exit survey after checkout.
	UpdateExitSurvey(ctx context.Context, residentID uuid.UUID, input *ExitSurveyInput) (*entity.ResidentArchive, error)

	// ListArchives retrieves all archive records, most recent first.
	ListArchives(ctx context.Context) ([]*entity.ResidentArchive, error)
}
