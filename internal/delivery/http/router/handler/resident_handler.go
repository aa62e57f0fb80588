package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResidentHandler holds dependencies for resident profile handlers.
type ResidentHandler struct {
	uc     usecase.ResidentUsecase
	logger *slog.Logger
}

// NewResidentHandler is the constructor for ResidentHandler, injected by Fx.
func NewResidentHandler(uc usecase.ResidentUsecase, logger *slog.Logger) *ResidentHandler {
	return &ResidentHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated resident's own profile.
func (h *ResidentHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	resident, err := h.uc.GetResident(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "")
}

// UpdateProfile applies the authenticated resident's own profile edits.
func (h *ResidentHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.ResidentUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	resident, err := h.uc.UpdateResident(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "Profile updated")
}

// StartNoticePeriod lets the authenticated resident give notice.
func (h *ResidentHandler) StartNoticePeriod(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.NoticeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notice input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	resident, err := h.uc.StartNoticePeriod(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "Notice period started")
}

// CancelNoticePeriod withdraws the authenticated resident's notice.
func (h *ResidentHandler) CancelNoticePeriod(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	resident, err := h.uc.CancelNoticePeriod(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "Notice period cancelled")
}

// GetResident returns a single resident. Admin only.
func (h *ResidentHandler) GetResident(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident ID")
	}

	resident, err := h.uc.GetResident(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "")
}

// ListResidents returns residents matching the query filters. Admin only.
func (h *ResidentHandler) ListResidents(c echo.Context) error {
	filter := repository.ResidentFilter{
		RegistrationStatus: entity.RegistrationStatus(c.QueryParam("registration_status")),
		Search:             c.QueryParam("search"),
	}
	if raw := c.QueryParam("room_id"); raw != "" {
		roomID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid room_id filter")
		}
		filter.RoomID = &roomID
	}
	if raw := c.QueryParam("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid is_active filter")
		}
		filter.IsActive = &active
	}

	residents, err := h.uc.ListResidents(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residents, "")
}

// UpdateResident applies profile edits to any resident. Admin only.
func (h *ResidentHandler) UpdateResident(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resident ID")
	}

	var input *usecase.ResidentUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	resident, err := h.uc.UpdateResident(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "Resident updated")
}
