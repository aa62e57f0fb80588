// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is a free-assignment enum: the source system exposes no
// transition guards for it, and Overdue is set manually by admins rather
// than computed by a background job.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusDue     PaymentStatus = "Due"
	PaymentStatusOverdue PaymentStatus = "Overdue"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPending PaymentStatus = "Pending"
)

// IsValid reports whether the status is one of the known payment states.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusDue, PaymentStatusOverdue,
		PaymentStatusPartial, PaymentStatusPending:
		return true
	}

	return false
}

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodOther        PaymentMethod = "Other"
)

// IsValid reports whether the method is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBankTransfer,
		PaymentMethodCard, PaymentMethodOther:
		return true
	}

	return false
}

// Payment is a rent or deposit payment recorded against a resident. The set
// of months covered by non-deposit payments of one resident must not
// overlap across records. Payments are never deleted.
type Payment struct {
	ID            uuid.UUID     `json:"id"`                       // The Global Unique Identifier (GUID) for the payment.
	ResidentID    uuid.UUID     `json:"resident_id"`              // The resident the payment belongs to.
	Amount        float64       `json:"amount"`                   // Paid amount.
	Months        []string      `json:"months"`                   // Rent months covered, as "January 2024" strings. Empty for deposits.
	PaymentDate   time.Time     `json:"payment_date"`             // When the payment was made.
	DueDate       *time.Time    `json:"due_date,omitempty"`       // When the payment was due, if tracked.
	Status        PaymentStatus `json:"status"`                   // Free-assignment payment state.
	Method        PaymentMethod `json:"method"`                   // How the payment was made.
	ReceiptNumber string        `json:"receipt_number"`           // Generated receipt identifier.
	TransactionID string        `json:"transaction_id,omitempty"` // External transaction reference, if any.
	Remarks       string        `json:"remarks,omitempty"`        // Free-form notes.
	IsDeposit     bool          `json:"is_deposit"`               // True for the one-time security deposit.
	CreatedAt     time.Time     `json:"created_at"`               // Timestamp of when this record was created.
	UpdatedAt     time.Time     `json:"updated_at"`               // Timestamp of the last modification.
}

// OverlappingMonths returns the months present in both lists, preserving the
// order of the first list. Used to reject rent payments that double-cover a
// month already paid.
func OverlappingMonths(requested, existing []string) []string {
	taken := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		taken[m] = struct{}{}
	}

	var overlap []string
	for _, m := range requested {
		if _, ok := taken[m]; ok {
			overlap = append(overlap, m)
		}
	}

	return overlap
}
