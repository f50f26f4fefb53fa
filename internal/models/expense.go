package models

import (
	"time"

	"gorm.io/gorm"

	"spendtrack/internal/uuid"
)

// Category is a closed set of expense category tags. Free-text categories
// are rejected at the request boundary.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category in canonical display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryOther,
}

// ValidCategory reports whether s is a member of the closed category set.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// DateLayout is the wire format for expense dates.
const DateLayout = "2006-01-02"

// Expense represents one immutable monetary transaction entry. Amount is an
// integer count of minor currency units (cents); conversion to major units
// is a presentation concern and never happens server-side.
//
// Seq is a hidden auto-incrementing column that records insertion order and
// is never reused, even after deletion. The public identity is the UUID.
type Expense struct {
	Seq         int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          string    `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Category    Category  `gorm:"not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Date        string    `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate hook assigns a UUIDv7 to new records.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New()
	}
	return nil
}
