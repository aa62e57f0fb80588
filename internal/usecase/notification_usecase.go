package usecase

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase serves per-user in-app notifications.
type NotificationUsecase interface {
	// ListNotifications retrieves a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks all of a user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
