// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus tracks the approval pipeline of a self-registration.
// The pipeline is forward-only: Pending may move to Approved or Rejected,
// and both of those are terminal.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "Pending"
	RegistrationApproved RegistrationStatus = "Approved"
	RegistrationRejected RegistrationStatus = "Rejected"
)

// IsTerminal reports whether the registration can no longer change state.
func (s RegistrationStatus) IsTerminal() bool {
	return s == RegistrationApproved || s == RegistrationRejected
}

// DepositReturn records a deposit refund issued at or after checkout.
type DepositReturn struct {
	Amount float64   `json:"amount"` // Refunded amount.
	Date   time.Time `json:"date"`   // When the refund was issued.
}

// Resident is the core person entity: an account that may hold a bed in a
// room. RoomID and BedNumber are both set or both nil — a resident is either
// fully allocated or fully unallocated, never half-assigned. While IsActive
// is true and RoomID is set, the resident occupies exactly one bed slot in
// that room.
type Resident struct {
	ID                 uuid.UUID          `json:"id"`                          // The Global Unique Identifier (GUID) for the resident.
	Name               string             `json:"name"`                        // The resident's display name.
	Email              string             `json:"email"`                       // Primary contact email, used as the login identifier.
	Phone              string             `json:"phone"`                       // Contact phone number.
	PGID               string             `json:"pg_id"`                       // Generated human-readable ID (e.g. PG-JD4821), assigned on approval.
	PasswordHash       string             `json:"-"`                           // bcrypt hash of the login password; empty until approval.
	Role               Role               `json:"role"`                        // admin or resident.
	RegistrationStatus RegistrationStatus `json:"registration_status"`         // Approval pipeline state.
	RoomID             *uuid.UUID         `json:"room_id,omitempty"`           // The room holding the resident's bed; nil when unallocated.
	BedNumber          *int               `json:"bed_number,omitempty"`        // The assigned bed number; nil when unallocated.
	MoveInDate         *time.Time         `json:"move_in_date,omitempty"`      // When the resident moved in; set on approval.
	MoveOutDate        *time.Time         `json:"move_out_date,omitempty"`     // When the resident moved out; set on checkout.
	IsActive           bool               `json:"is_active"`                   // Whether the resident currently lives in the hostel.
	IsOnNoticePeriod   bool               `json:"is_on_notice_period"`         // Whether a departure has been scheduled.
	LastStayingDate    *time.Time         `json:"last_staying_date,omitempty"` // Planned final day, relevant only during notice period.
	DepositFees        float64            `json:"deposit_fees"`                // Security deposit collected at approval.
	KeyIssued          bool               `json:"key_issued"`                  // Whether a room key was handed over.
	DepositReturn      *DepositReturn     `json:"deposit_return,omitempty"`    // Refund metadata recorded at deactivation, if any.
	CreatedAt          time.Time          `json:"created_at"`                  // Timestamp of when this account was created.
	UpdatedAt          time.Time          `json:"updated_at"`                  // Timestamp of the last modification.
}

// IsAllocated reports whether the resident currently holds a bed.
func (r *Resident) IsAllocated() bool {
	return r.RoomID != nil && r.BedNumber != nil
}

// IsCheckedOut reports whether the resident has already completed checkout.
// Both conditions are required: an account can be inactive without ever
// having moved in.
func (r *Resident) IsCheckedOut() bool {
	return !r.IsActive && r.MoveOutDate != nil
}

// StayStart returns the date the stay is measured from: the move-in date
// when known, otherwise the account creation date.
func (r *Resident) StayStart() time.Time {
	if r.MoveInDate != nil {
		return *r.MoveInDate
	}

	return r.CreatedAt
}
