package service

import (
	"context"
)

// EventType names the hostel lifecycle events published to the message queue.
type EventType string

const (
	// EventResidentApproved is emitted after an admin confirms a registration.
	EventResidentApproved EventType = "resident.approved"
	// EventResidentCheckedOut is emitted after a resident is checked out and archived.
	EventResidentCheckedOut EventType = "resident.checked_out"
	// EventPaymentRecorded is emitted after a rent payment is saved.
	EventPaymentRecorded EventType = "payment.recorded"
)

// HostelEvent is the envelope consumed by the notification worker. Only the
// fields relevant to the event type are populated.
type HostelEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	Type         EventType `json:"type"`
	ResidentID   string    `json:"resident_id"`
	ResidentName string    `json:"resident_name"`
	Email        string    `json:"email"`
	PGID         string    `json:"pg_id,omitempty"`
	TempPassword string    `json:"temp_password,omitempty"` // resident.approved only, mailed once
	RoomNumber   string    `json:"room_number,omitempty"`
	BedNumber    int       `json:"bed_number,omitempty"`
	Amount       float64   `json:"amount,omitempty"`
	Months       []string  `json:"months,omitempty"`
	ReceiptNo    string    `json:"receipt_no,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishHostelEvent publishes a lifecycle event for async processing
	PublishHostelEvent(ctx context.Context, event *HostelEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
