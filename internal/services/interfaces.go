package services

import (
	"spendtrack/internal/models"
)

// Sort orders accepted by the list operation. Any other value leaves the
// store's natural insertion order untouched.
const (
	SortDateDesc = "date_desc"
	SortDateAsc  = "date_asc"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "All"

// ListOptions holds optional shaping parameters for listing expenses.
type ListOptions struct {
	Category string
	Sort     string
}

// CategoryTotal is one row of the per-category spending summary.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    int64           `json:"total"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(amount int64, category, description, date string) (*models.Expense, error)
	ListExpenses(opts ListOptions) ([]models.Expense, error)
	DeleteExpense(id string) error
	CategorySummary() ([]CategoryTotal, error)
}

// AuditServicer defines the contract for recording audit events.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, details map[string]any)
}
