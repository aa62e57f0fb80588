package handler

import (
	"log/slog"
	"net/http"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordPayment creates a payment entry. Admin only.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var input *usecase.PaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded")
}

// UpdatePayment applies an admin edit to an existing payment.
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	var input *usecase.PaymentUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	payment, err := h.uc.UpdatePayment(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment updated")
}

// GetPayment returns a single payment.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	payment, err := h.uc.GetPayment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "")
}

// ListPayments returns payments matching the query filters. Admin only.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	filter, err := paymentFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident_id filter")
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// MyPayments returns the authenticated resident's own payments.
func (h *PaymentHandler) MyPayments(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	payments, err := h.uc.ResidentPayments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// ReceiptQR streams a payment receipt reference as a QR code PNG.
func (h *PaymentHandler) ReceiptQR(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	png, err := h.uc.ReceiptQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ExportReport streams payments matching the filters as an xlsx workbook.
func (h *PaymentHandler) ExportReport(c echo.Context) error {
	filter, err := paymentFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident_id filter")
	}

	workbook, err := h.uc.ExportReport(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="payments.xlsx"`)

	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func paymentFilterFromQuery(c echo.Context) (repository.PaymentFilter, error) {
	filter := repository.PaymentFilter{
		Status: entity.PaymentStatus(c.QueryParam("status")),
		Month:  c.QueryParam("month"),
	}
	if raw := c.QueryParam("resident_id"); raw != "" {
		residentID, err := uuid.Parse(raw)
		if err != nil {
			return repository.PaymentFilter{}, err
		}
		filter.ResidentID = &residentID
	}

	return filter, nil
}
