// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintStatus is deliberately a free-assignment enum: admins may move a
// complaint from any state to any other. The original workflow exposed no
// transition guards, only UI button groupings.
type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "Open"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
	ComplaintStatusClosed     ComplaintStatus = "Closed"
)

// IsValid reports whether the status is one of the known complaint states.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress,
		ComplaintStatusResolved, ComplaintStatusClosed:
		return true
	}

	return false
}

// Complaint is a maintenance or service issue raised by a resident.
type Complaint struct {
	ID          uuid.UUID       `json:"id"`                     // The Global Unique Identifier (GUID) for the complaint.
	ResidentID  uuid.UUID       `json:"resident_id"`            // The resident who raised the complaint.
	Category    string          `json:"category"`               // Free-form category (plumbing, electrical, ...).
	Subject     string          `json:"subject"`                // Short summary.
	Description string          `json:"description"`            // Full description.
	Status      ComplaintStatus `json:"status"`                 // Current state; freely assignable.
	AdminNotes  string          `json:"admin_notes,omitempty"`  // Notes added while handling the complaint.
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`  // When the complaint was resolved, if it was.
	CreatedAt   time.Time       `json:"created_at"`             // Timestamp of when this record was created.
	UpdatedAt   time.Time       `json:"updated_at"`             // Timestamp of the last modification.
}
