// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArchiveReason records why a resident left the hostel.
type ArchiveReason string

const (
	ArchiveReasonCompletedStay  ArchiveReason = "Completed Stay"
	ArchiveReasonEarlyDeparture ArchiveReason = "Early Departure"
	ArchiveReasonRuleViolation  ArchiveReason = "Rule Violation"
	ArchiveReasonPaymentIssues  ArchiveReason = "Payment Issues"
	ArchiveReasonOther          ArchiveReason = "Other"
)

// IsValid reports whether the reason is one of the known archive reasons.
func (r ArchiveReason) IsValid() bool {
	switch r {
	case ArchiveReasonCompletedStay, ArchiveReasonEarlyDeparture,
		ArchiveReasonRuleViolation, ArchiveReasonPaymentIssues, ArchiveReasonOther:
		return true
	}

	return false
}

// ExitFeedback is the optional structured survey collected at checkout.
type ExitFeedback struct {
	Rating           int    `json:"rating"`             // Overall stay rating, 1..5.
	Comments         string `json:"comments"`           // Free-form comments.
	WouldRecommend   bool   `json:"would_recommend"`    // Whether the resident would recommend the hostel.
	ReasonForLeaving string `json:"reason_for_leaving"` // The resident's own words on why they left.
}

// ResidentArchive is the historical snapshot of a resident's stay, created
// at checkout. There is exactly one archive row per resident, keyed by
// ResidentID: a later admin deactivation of the same resident updates the
// existing row rather than inserting a second one. StayDuration is always
// derived from the move-in and move-out dates, never edited independently.
type ResidentArchive struct {
	ID                  uuid.UUID      `json:"id"`                       // The Global Unique Identifier (GUID) for the archive record.
	ResidentID          uuid.UUID      `json:"resident_id"`              // Stable reference to the archived resident.
	Name                string         `json:"name"`                     // Snapshot of the resident's name.
	Email               string         `json:"email"`                    // Snapshot of the resident's email.
	Phone               string         `json:"phone"`                    // Snapshot of the resident's phone.
	PGID                string         `json:"pg_id"`                    // Snapshot of the generated PG ID.
	RoomID              *uuid.UUID     `json:"room_id,omitempty"`        // The room occupied at checkout time, if any.
	BedNumber           *int           `json:"bed_number,omitempty"`     // The bed held at checkout time, if any.
	MoveInDate          *time.Time     `json:"move_in_date,omitempty"`   // Snapshot of the move-in date.
	MoveOutDate         time.Time      `json:"move_out_date"`            // When the resident moved out.
	StayDuration        int            `json:"stay_duration"`            // Whole days between move-in (or account creation) and move-out.
	ArchiveReason       ArchiveReason  `json:"archive_reason"`           // Why the resident left.
	ArchiveDate         time.Time      `json:"archive_date"`             // When the archive record was written.
	ExitSurveyCompleted bool           `json:"exit_survey_completed"`    // True when a survey was provided or explicitly skipped.
	ExitFeedback        *ExitFeedback  `json:"exit_feedback,omitempty"`  // The structured survey, when provided.
	DepositFees         float64        `json:"deposit_fees"`             // Snapshot of the deposit collected.
	DepositReturn       *DepositReturn `json:"deposit_return,omitempty"` // Refund metadata, when recorded.
	RefundAmount        float64        `json:"refund_amount"`            // Refund issued at checkout; recorded, not deducted from any ledger.
	RefundMethod        string         `json:"refund_method,omitempty"`  // How the refund was paid out.
	KeyIssued           bool           `json:"key_issued"`               // Whether the key was still issued at checkout.
	AdminComments       string         `json:"admin_comments,omitempty"` // Free-form admin notes taken at checkout.
	CreatedAt           time.Time      `json:"created_at"`               // Timestamp of when this record was created.
	UpdatedAt           time.Time      `json:"updated_at"`               // Timestamp of the last modification.
}

// StayDurationDays computes the whole-day difference between the start of a
// stay and its end. A stay from 2024-01-01 to 2024-01-31 lasts 30 days.
// Never negative.
func StayDurationDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}
