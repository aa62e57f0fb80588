// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the standard operations for in-app notification persistence.
type NotificationRepository interface {
	// FindByUser retrieves notifications addressed to a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create persists a new notification entity to the storage.
	Create(ctx context.Context, notification *entity.Notification) error

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
