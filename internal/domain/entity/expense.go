// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense is an operating cost recorded by an admin (groceries, repairs,
// utilities). Plain bookkeeping rows with no cross-entity invariants.
type Expense struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the expense.
	Category    string    `json:"category"`    // Expense category.
	Amount      float64   `json:"amount"`      // Spent amount.
	Description string    `json:"description"` // What the money was spent on.
	SpentAt     time.Time `json:"spent_at"`    // When the expense occurred.
	RecordedBy  uuid.UUID `json:"recorded_by"` // The admin who entered the record.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
