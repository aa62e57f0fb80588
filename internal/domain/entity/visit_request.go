// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus tracks a prospective resident's visit request. Unlike
// complaints, this is a guarded forward-only pipeline:
//
//	Pending -> Scheduled -> Completed
//	Pending/Scheduled -> Cancelled
type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "Pending"
	VisitStatusScheduled VisitStatus = "Scheduled"
	VisitStatusCompleted VisitStatus = "Completed"
	VisitStatusCancelled VisitStatus = "Cancelled"
)

// visitTransitions is the allowed-transition table for visit requests.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitStatusPending:   {VisitStatusScheduled, VisitStatusCancelled},
	VisitStatusScheduled: {VisitStatusCompleted, VisitStatusCancelled},
}

// CanTransitionTo reports whether moving to next is allowed from s.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsValid reports whether the status is one of the known visit states.
func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusPending, VisitStatusScheduled, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}

	return false
}

// VisitRequest is a request by a prospective resident to tour the hostel.
type VisitRequest struct {
	ID            uuid.UUID   `json:"id"`                       // The Global Unique Identifier (GUID) for the request.
	Name          string      `json:"name"`                     // Visitor's name.
	Email         string      `json:"email"`                    // Visitor's contact email.
	Phone         string      `json:"phone"`                    // Visitor's contact phone.
	PreferredDate *time.Time  `json:"preferred_date,omitempty"` // The date the visitor asked for.
	ScheduledAt   *time.Time  `json:"scheduled_at,omitempty"`   // The slot the admin scheduled, once confirmed.
	Status        VisitStatus `json:"status"`                   // Current pipeline state.
	Notes         string      `json:"notes,omitempty"`          // Free-form notes.
	CreatedAt     time.Time   `json:"created_at"`               // Timestamp of when this record was created.
	UpdatedAt     time.Time   `json:"updated_at"`               // Timestamp of the last modification.
}
