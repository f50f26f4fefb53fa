package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/store"
)

// expenseService handles expense-related business logic. It shapes queries
// and translates store outcomes; the ledger store itself never filters,
// sorts, or re-validates.
type expenseService struct {
	ledger *store.Ledger
}

// NewExpenseService creates a new ExpenseServicer backed by the given ledger.
func NewExpenseService(ledger *store.Ledger) ExpenseServicer {
	return &expenseService{ledger: ledger}
}

// CreateExpense validates the candidate and inserts it into the ledger.
// Checks fail fast in a fixed order: amount, description, presence of
// category/date, then category membership and date shape.
func (s *expenseService) CreateExpense(amount int64, category, description, date string) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if len(strings.TrimSpace(description)) < 3 {
		return nil, apperrors.ErrInvalidDescription
	}
	if category == "" || date == "" {
		return nil, apperrors.ErrMissingField
	}
	if !models.ValidCategory(category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown category: "+category)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	expense, err := s.ledger.Insert(store.Candidate{
		Amount:      amount,
		Category:    models.Category(category),
		Description: description,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateSubmission, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListExpenses returns the ledger's records shaped by the given options.
// An empty result set is valid output, never an error.
func (s *expenseService) ListExpenses(opts ListOptions) ([]models.Expense, error) {
	expenses, err := s.ledger.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if opts.Category != "" && opts.Category != CategoryAll {
		filtered := make([]models.Expense, 0, len(expenses))
		for _, e := range expenses {
			if string(e.Category) == opts.Category {
				filtered = append(filtered, e)
			}
		}
		expenses = filtered
	}

	switch opts.Sort {
	case SortDateDesc:
		sortByDate(expenses, false)
	case SortDateAsc:
		sortByDate(expenses, true)
	}

	return expenses, nil
}

// sortByDate orders expenses by calendar date, not lexicographically. The
// sort is stable: records on the same date keep their insertion order.
func sortByDate(expenses []models.Expense, ascending bool) {
	sort.SliceStable(expenses, func(i, j int) bool {
		di := parseDate(expenses[i].Date)
		dj := parseDate(expenses[j].Date)
		if ascending {
			return di.Before(dj)
		}
		return dj.Before(di)
	})
}

// parseDate maps unparseable dates to the zero time so ordering stays
// deterministic. Stored dates were validated at the boundary.
func parseDate(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DeleteExpense removes an expense by id. A missing identifier is a client
// error; an absent record maps to a not-found outcome.
func (s *expenseService) DeleteExpense(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.ErrMissingIdentifier
	}

	removed, err := s.ledger.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !removed {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// CategorySummary totals spending per category, in canonical category
// order, omitting categories with nothing recorded.
func (s *expenseService) CategorySummary() ([]CategoryTotal, error) {
	expenses, err := s.ledger.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sums := make(map[models.Category]int64, len(models.Categories))
	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(models.Categories))
	for _, c := range models.Categories {
		if sums[c] > 0 {
			totals = append(totals, CategoryTotal{Category: c, Total: sums[c]})
		}
	}
	return totals, nil
}
