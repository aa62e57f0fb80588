package handler

import (
	"log/slog"
	"net/http"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationHandler holds dependencies for the registration pipeline handlers.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the public self-registration request.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	resident, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, resident, "Registration submitted for review")
}

// ListPending returns registrations awaiting an admin decision.
func (h *RegistrationHandler) ListPending(c echo.Context) error {
	pending, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pending, "")
}

// Confirm approves a pending registration and allocates a bed.
func (h *RegistrationHandler) Confirm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration ID")
	}

	var input *usecase.ConfirmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Confirm(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The temporary password is mailed, never returned here.
	return response.Success(c, http.StatusOK, result, "Registration approved")
}

// Reject marks a pending registration as rejected.
func (h *RegistrationHandler) Reject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration ID")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := h.uc.Reject(c.Request().Context(), id, input.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Registration rejected")
}
