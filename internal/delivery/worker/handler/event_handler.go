// Package handler processes hostel lifecycle events consumed from the queue.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "comfortstay/internal/delivery/context"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ErrBadEvent marks payloads that can never be processed. The worker drops
// these instead of requeueing them.
var ErrBadEvent = errors.New("malformed event payload")

// EventHandlerParams defines the dependencies for the event handler.
type EventHandlerParams struct {
	fx.In

	Logger           *slog.Logger
	Mailer           service.Mailer
	NotificationRepo repository.NotificationRepository
}

// EventHandler turns queue events into transactional email and in-app
// notification rows. All side effects are best effort: a failed email never
// fails the event, and only notification persistence errors requeue it.
type EventHandler struct {
	logger           *slog.Logger
	mailer           service.Mailer
	notificationRepo repository.NotificationRepository
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger:           params.Logger,
		mailer:           params.Mailer,
		notificationRepo: params.NotificationRepo,
	}
}

// Handle processes one raw queue message.
func (h *EventHandler) Handle(ctx context.Context, body []byte) error {
	var event service.HostelEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errors.Wrap(ErrBadEvent, err.Error())
	}

	// Carry the publisher's request ID through for tracing; mint one for
	// events published before the HTTP middleware stamped it.
	requestID := event.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("event_type", string(event.Type)))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	residentID, err := uuid.Parse(event.ResidentID)
	if err != nil {
		return errors.Wrap(ErrBadEvent, "invalid resident id")
	}

	switch event.Type {
	case service.EventResidentApproved:
		return h.handleApproved(ctx, residentID, &event)
	case service.EventResidentCheckedOut:
		return h.handleCheckedOut(ctx, residentID, &event)
	case service.EventPaymentRecorded:
		return h.handlePaymentRecorded(ctx, residentID, &event)
	default:
		logger.LogAttrs(ctx, slog.LevelWarn, "dropping event of unknown type")

		return errors.Wrap(ErrBadEvent, "unknown event type")
	}
}

// handleApproved mails the one-time credentials and records the welcome
// notification. The temporary password exists only inside this email.
func (h *EventHandler) handleApproved(ctx context.Context, residentID uuid.UUID, event *service.HostelEvent) error {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your registration has been approved. You have been allocated bed %d in room %s.\n\n"+
			"Login details:\n"+
			"  Resident ID: %s\n"+
			"  Temporary password: %s\n\n"+
			"Please log in and change your password right away.\n",
		event.ResidentName, event.BedNumber, event.RoomNumber, event.PGID, event.TempPassword,
	)
	h.sendMail(ctx, &service.Mail{
		To:      event.Email,
		Subject: "Welcome to ComfortStay: your login details",
		Body:    body,
	})

	return h.createNotification(ctx, &entity.Notification{
		UserID:  residentID,
		Title:   "Registration approved",
		Message: fmt.Sprintf("Welcome aboard! You are in room %s, bed %d. Credentials were sent to %s.", event.RoomNumber, event.BedNumber, event.Email),
		Type:    entity.NotificationTypeRegistration,
	})
}

// handleCheckedOut mails a farewell note and records the checkout notification.
func (h *EventHandler) handleCheckedOut(ctx context.Context, residentID uuid.UUID, event *service.HostelEvent) error {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your checkout has been processed and your account is now closed.\n"+
			"Thank you for staying with us. We hope to see you again.\n",
		event.ResidentName,
	)
	h.sendMail(ctx, &service.Mail{
		To:      event.Email,
		Subject: "Your checkout is complete",
		Body:    body,
	})

	return h.createNotification(ctx, &entity.Notification{
		UserID:  residentID,
		Title:   "Checkout complete",
		Message: "Your checkout has been processed and your account is closed.",
		Type:    entity.NotificationTypeCheckout,
	})
}

// handlePaymentRecorded mails the receipt confirmation and records the
// payment notification.
func (h *EventHandler) handlePaymentRecorded(ctx context.Context, residentID uuid.UUID, event *service.HostelEvent) error {
	months := strings.Join(event.Months, ", ")
	if months == "" {
		months = "deposit"
	}
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"We received your payment of %.2f for %s.\n"+
			"Receipt number: %s\n",
		event.ResidentName, event.Amount, months, event.ReceiptNo,
	)
	h.sendMail(ctx, &service.Mail{
		To:      event.Email,
		Subject: fmt.Sprintf("Payment received, receipt %s", event.ReceiptNo),
		Body:    body,
	})

	return h.createNotification(ctx, &entity.Notification{
		UserID:  residentID,
		Title:   "Payment received",
		Message: fmt.Sprintf("Payment of %.2f recorded under receipt %s.", event.Amount, event.ReceiptNo),
		Type:    entity.NotificationTypePayment,
	})
}

// sendMail delivers best effort; failures are logged, never returned.
func (h *EventHandler) sendMail(ctx context.Context, mail *service.Mail) {
	if mail.To == "" {
		return
	}
	if err := h.mailer.Send(ctx, mail); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
		logger.LogAttrs(ctx, slog.LevelError, "failed to send email",
			slog.String("to", mail.To),
			slog.Any("error", err),
		)
	}
}

func (h *EventHandler) createNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	return errors.WithStack(h.notificationRepo.Create(ctx, notification))
}
