package handler

import (
	"log/slog"
	"net/http"
	"time"

	"comfortstay/internal/delivery/http/response"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExpenseHandler holds dependencies for operating expense handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateExpense records a new expense against the acting admin.
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.ExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	expense, err := h.uc.CreateExpense(c.Request().Context(), adminID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, expense, "Expense recorded")
}

// ListExpenses returns expenses matching the query filters.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	filter := repository.ExpenseFilter{
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid from filter, want RFC3339")
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid to filter, want RFC3339")
		}
		filter.To = &to
	}

	expenses, err := h.uc.ListExpenses(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, expenses, "")
}

// UpdateExpense modifies an existing expense.
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid expense ID")
	}

	var input *usecase.ExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	expense, err := h.uc.UpdateExpense(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, expense, "Expense updated")
}

// DeleteExpense removes an expense.
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid expense ID")
	}

	if err := h.uc.DeleteExpense(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Expense deleted")
}
