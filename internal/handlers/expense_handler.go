package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/models"
	"spendtrack/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
// Field order matters: binding reports the first violated field, which keeps
// the amount -> description -> category/date failure order.
type CreateExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"required,gt=0,minor_units"`
	Description string   `json:"description" binding:"required,expense_description"`
	Category    string   `json:"category" binding:"required,expense_category"`
	Date        string   `json:"date" binding:"required,ledger_date"`
}

// ExpenseResponse represents an expense in the response
type ExpenseResponse struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

// CreateExpense handles recording a new expense
// @Summary     Record an expense
// @Description Record a new expense. Resubmitting an identical amount/description pair within the dedup window is rejected as a duplicate.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details (amount in minor currency units)"
// @Success     201 {object} ExpenseResponse "Expense recorded"
// @Failure     400 {object} ErrorResponse "Malformed payload or invalid field"
// @Failure     409 {object} ErrorResponse "Duplicate submission inside the dedup window"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(int64(*req.Amount), req.Category, req.Description, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"amount": expense.Amount, "category": expense.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses handles listing the recorded expenses
// @Summary     List expenses
// @Description List all recorded expenses, optionally filtered by category and sorted by date. Without a sort the list keeps insertion order.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category; 'All' or absent means no filter"
// @Param       sort     query string false "Sort order (date_desc or date_asc); any other value keeps insertion order"
// @Success     200 {array} ExpenseResponse "Expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	opts := services.ListOptions{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	expenses, err := h.expenseService.ListExpenses(opts)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete an expense
// @Description Delete an expense by ID. Deleting an already-absent expense reports not-found.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Missing identifier"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EXPENSE", "expense", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// GetCategorySummary handles the per-category spending summary
// @Summary     Category summary
// @Description Total spending per category, in canonical category order, omitting empty categories.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Success     200 {array} services.CategoryTotal "Per-category totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/summary [get]
func (h *ExpenseHandler) GetCategorySummary(c *gin.Context) {
	totals, err := h.expenseService.CategorySummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": totals})
}

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
