package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoomHandler holds dependencies for room management handlers.
type RoomHandler struct {
	uc     usecase.RoomUsecase
	logger *slog.Logger
}

// NewRoomHandler is the constructor for RoomHandler, injected by Fx.
func NewRoomHandler(uc usecase.RoomUsecase, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRoom handles the admin room creation request.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var input *usecase.RoomInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	room, err := h.uc.CreateRoom(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, room, "Room created")
}

// UpdateRoom handles the admin room update request.
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid room ID")
	}

	var input *usecase.RoomInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	room, err := h.uc.UpdateRoom(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, room, "Room updated")
}

// DeleteRoom removes an empty room.
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid room ID")
	}

	if err := h.uc.DeleteRoom(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room deleted")
}

// GetRoom returns a room together with its derived bed layout.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid room ID")
	}

	detail, err := h.uc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// ListRooms returns rooms matching the query filters.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	filter := repository.RoomFilter{
		Building: c.QueryParam("building"),
		Status:   entity.RoomStatus(c.QueryParam("status")),
	}
	if raw := c.QueryParam("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid is_active filter")
		}
		filter.IsActive = &active
	}

	rooms, err := h.uc.ListRooms(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "")
}

// AvailableRooms returns active rooms with at least one free bed. Public.
func (h *RoomHandler) AvailableRooms(c echo.Context) error {
	rooms, err := h.uc.AvailableRooms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "")
}
