package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"spendtrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense inserts an expense row directly, bypassing the ledger's
// dedup logic. The description is unique per call so fixtures never collide
// with the dedup window.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount int64, category models.Category, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("fixture expense %d", nextID()),
		Date:        date,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// BackdateExpense rewinds an expense's created_at stamp, moving it outside
// the dedup window without sleeping in tests.
func BackdateExpense(t *testing.T, db *gorm.DB, id string, age time.Duration) {
	t.Helper()

	result := db.Model(&models.Expense{}).
		Where("id = ?", id).
		Update("created_at", time.Now().Add(-age))
	if result.Error != nil {
		t.Fatalf("failed to backdate expense: %v", result.Error)
	}
	if result.RowsAffected != 1 {
		t.Fatalf("expected to backdate 1 expense, affected %d", result.RowsAffected)
	}
}

// CountExpenses returns the number of rows in the expense table.
func CountExpenses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}
