// Package store owns the authoritative expense collection. All mutations
// go through the Ledger; no other component touches the expense table.
package store

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"spendtrack/internal/models"
)

// ErrDuplicate is returned by Insert when a matching record was created
// within the dedup window. No record is created in that case.
var ErrDuplicate = errors.New("duplicate submission within dedup window")

// Candidate is a validated expense awaiting insertion. The caller performs
// semantic validation before handing it to the store; the store applies only
// the dedup rule.
type Candidate struct {
	Amount      int64
	Category    models.Category
	Description string
	Date        string
}

// Ledger is the process-wide expense store. Insert and Delete serialize on
// mu so the dedup check-then-insert sequence is atomic: two concurrent
// inserts with identical (amount, description) can never both pass the
// duplicate check. List is a single consistent read and takes no lock.
type Ledger struct {
	db     *gorm.DB
	window time.Duration
	mu     sync.Mutex
	now    func() time.Time
}

// NewLedger creates a Ledger with the given dedup window.
func NewLedger(db *gorm.DB, window time.Duration) *Ledger {
	return &Ledger{db: db, window: window, now: time.Now}
}

// List returns every current expense in insertion order. Filtering and
// sorting are request-shaping concerns and happen upstream.
func (l *Ledger) List() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := l.db.Order("seq asc").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Insert applies the dedup rule and appends the candidate. A candidate is a
// duplicate when an existing record matches on (amount, description) and was
// created strictly less than the dedup window ago. Category and date are
// deliberately not part of the dedup key.
//
// On success the record gets a fresh UUID, a created_at stamp, and the next
// insertion-order slot.
func (l *Ledger) Insert(c Candidate) (*models.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	var count int64
	err := l.db.Model(&models.Expense{}).
		Where("amount = ? AND description = ? AND created_at > ?", c.Amount, c.Description, cutoff).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	expense := &models.Expense{
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		Date:        c.Date,
		CreatedAt:   now,
	}
	if err := l.db.Create(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes the expense with the given id and reports whether a record
// was actually removed. Absence is a normal outcome, not an error; deleting
// the same id twice succeeds once, then reports false.
func (l *Ledger) Delete(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := l.db.Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
