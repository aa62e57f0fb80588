package handler

import (
	"log/slog"
	"net/http"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for resident departure handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout archives a resident, frees their bed and deactivates the account.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident ID")
	}

	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	archive, err := h.uc.Checkout(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, archive, "Resident checked out")
}

// Deactivate is the admin-initiated departure path.
func (h *CheckoutHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident ID")
	}

	var input *usecase.DeactivateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deactivation input")
	}

	if err := h.uc.Deactivate(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Resident deactivated")
}

// GetExitSurvey returns the archive record holding a resident's exit survey.
func (h *CheckoutHandler) GetExitSurvey(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident ID")
	}

	archive, err := h.uc.GetExitSurvey(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, archive, "")
}

// UpdateExitSurvey amends the exit survey after checkout.
func (h *CheckoutHandler) UpdateExitSurvey(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident ID")
	}

	var input *usecase.ExitSurveyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid survey input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	archive, err := h.uc.UpdateExitSurvey(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, archive, "Exit survey updated")
}

// ListArchives returns all archive records, most recent first.
func (h *CheckoutHandler) ListArchives(c echo.Context) error {
	archives, err := h.uc.ListArchives(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, archives, "")
}
