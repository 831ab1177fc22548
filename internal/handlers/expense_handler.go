package handlers

import (
	"errors"
	"net/http"

	"receipt-ledger/internal/dto"
	apierrors "receipt-ledger/internal/errors"
	"receipt-ledger/internal/repositories"
	"receipt-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler serves the owner-scoped expense routes
type ExpenseHandler struct {
	expenseService   services.ExpenseServiceInterface
	dashboardService services.DashboardServiceInterface
	environment      string
}

func NewExpenseHandler(
	expenseService services.ExpenseServiceInterface,
	dashboardService services.DashboardServiceInterface,
	environment string,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService:   expenseService,
		dashboardService: dashboardService,
		environment:      environment,
	}
}

// ListExpenses returns every expense the caller owns, newest date first
//
// Method: GET /api/expenses
// Authentication: Required (Bearer)
//
// Success Response: 200 OK
//   - expenses: array of expenses
//
// Error Responses:
//   - 401: missing or invalid token
//   - 500: EXPENSE_002
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenses, err := h.expenseService.ListExpenses(c.Request().Context(), userID)
	if err != nil {
		return SendError(c, apierrors.ExpenseListFailed, DetailsOutsideProduction(h.environment, err.Error()))
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{Expenses: dto.NewExpenseResponses(expenses)})
}

// ListFlagged returns the caller's expenses with a leakage risk of 7 or more,
// newest first. The body is a bare array.
//
// Method: GET /api/expenses/flagged
// Authentication: Required (Bearer)
//
// Error Responses:
//   - 401: missing or invalid token
//   - 500: EXPENSE_003
func (h *ExpenseHandler) ListFlagged(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenses, err := h.expenseService.ListFlagged(c.Request().Context(), userID)
	if err != nil {
		return SendError(c, apierrors.ExpenseFlaggedFailed, DetailsOutsideProduction(h.environment, err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewExpenseResponses(expenses))
}

// Dashboard returns the caller's calendar-year aggregates
//
// Method: GET /api/expenses/dashboard
// Authentication: Required (Bearer)
//
// Error Responses:
//   - 401: missing or invalid token
//   - 500: EXPENSE_004 when any aggregate query fails
func (h *ExpenseHandler) Dashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	summary, err := h.dashboardService.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return SendError(c, apierrors.ExpenseDashboardFailed, DetailsOutsideProduction(h.environment, err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(summary))
}

// DeleteExpense removes one of the caller's expenses
//
// Method: DELETE /api/expenses/:id
// Authentication: Required (Bearer)
//
// Success Response: 204 No Content
//
// Error Responses:
//   - 401: missing or invalid token
//   - 404: EXPENSE_001 for a malformed id, an unknown id, or an id owned by someone else
//   - 500: EXPENSE_005
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseNotFound)
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), userID, expenseID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendError(c, apierrors.ExpenseDeleteFailed, DetailsOutsideProduction(h.environment, err.Error()))
	}

	return c.NoContent(http.StatusNoContent)
}
