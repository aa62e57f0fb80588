package handler

import (
	"log/slog"
	"net/http"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ComplaintHandler holds dependencies for complaint handlers.
type ComplaintHandler struct {
	uc     usecase.ComplaintUsecase
	logger *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler, injected by Fx.
func NewComplaintHandler(uc usecase.ComplaintUsecase, logger *slog.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateComplaint files a complaint for the authenticated resident.
func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.ComplaintInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}

	// Complaints are always filed on the caller's own behalf.
	input.ResidentID = userID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	complaint, err := h.uc.CreateComplaint(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, complaint, "Complaint filed")
}

// MyComplaints returns the authenticated resident's own complaints.
func (h *ComplaintHandler) MyComplaints(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	complaints, err := h.uc.ListComplaints(c.Request().Context(), repository.ComplaintFilter{
		ResidentID: &userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaints, "")
}

// GetComplaint returns a single complaint. Admin only.
func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid complaint ID")
	}

	complaint, err := h.uc.GetComplaint(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaint, "")
}

// ListComplaints returns complaints matching the query filters. Admin only.
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	filter := repository.ComplaintFilter{
		Status:   entity.ComplaintStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
	}

	complaints, err := h.uc.ListComplaints(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaints, "")
}

// UpdateComplaint applies an admin update to a complaint.
func (h *ComplaintHandler) UpdateComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid complaint ID")
	}

	var input *usecase.ComplaintUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}

	complaint, err := h.uc.UpdateComplaint(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complaint, "Complaint updated")
}

// DeleteComplaint removes a complaint. Admin only.
func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid complaint ID")
	}

	if err := h.uc.DeleteComplaint(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Complaint deleted")
}
