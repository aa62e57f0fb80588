// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeRegistration NotificationType = "registration"
	NotificationTypePayment      NotificationType = "payment"
	NotificationTypeCheckout     NotificationType = "checkout"
	NotificationTypeComplaint    NotificationType = "complaint"
	NotificationTypeGeneral      NotificationType = "general"
)

// Notification is an in-app notification row. Rows are written by the event
// worker as a best-effort side effect and never block the primary workflow.
type Notification struct {
	ID           uuid.UUID        `json:"id"`                      // The Global Unique Identifier (GUID) for the notification.
	UserID       uuid.UUID        `json:"user_id"`                 // The account the notification is addressed to.
	Title        string           `json:"title"`                   // Short title shown in the notification list.
	Message      string           `json:"message"`                 // Full notification text.
	Type         NotificationType `json:"type"`                    // Notification category.
	RelatedID    *uuid.UUID       `json:"related_id,omitempty"`    // Optional reference to the record this is about.
	RelatedModel string           `json:"related_model,omitempty"` // The entity kind RelatedID points at.
	IsRead       bool             `json:"is_read"`                 // Whether the user has opened the notification.
	CreatedAt    time.Time        `json:"created_at"`              // Timestamp of when this record was created.
}
