package handler

import (
	"log/slog"
	"net/http"
	"time"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitHandler holds dependencies for visit request handlers.
type VisitHandler struct {
	uc     usecase.VisitUsecase
	logger *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		uc:     uc,
		logger: logger,
	}
}

// RequestVisit files a public visit request.
func (h *VisitHandler) RequestVisit(c echo.Context) error {
	var input *usecase.VisitRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.RequestVisit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Visit request submitted")
}

// ListVisits returns visit requests, optionally filtered by status. Admin only.
func (h *VisitHandler) ListVisits(c echo.Context) error {
	status := entity.VisitStatus(c.QueryParam("status"))

	requests, err := h.uc.ListVisits(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// ScheduleVisit confirms a pending request for a concrete slot. Admin only.
func (h *VisitHandler) ScheduleVisit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit request ID")
	}

	var input struct {
		ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
		Notes       string    `json:"notes"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.ScheduleVisit(c.Request().Context(), id, input.ScheduledAt, input.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Visit scheduled")
}

// CompleteVisit marks a scheduled visit as completed. Admin only.
func (h *VisitHandler) CompleteVisit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit request ID")
	}

	request, err := h.uc.CompleteVisit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Visit completed")
}

// CancelVisit cancels a pending or scheduled visit. Admin only.
func (h *VisitHandler) CancelVisit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit request ID")
	}

	request, err := h.uc.CancelVisit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Visit cancelled")
}
