// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendtrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("minor_units", validateMinorUnits)
		_ = v.RegisterValidation("expense_description", validateExpenseDescription)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	}
}

// validateMinorUnits accepts only whole numbers: amounts are integer counts
// of minor currency units (cents), never floating-point major units.
func validateMinorUnits(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v == math.Trunc(v)
}

func validateExpenseDescription(fl validator.FieldLevel) bool {
	return len(strings.TrimSpace(fl.Field().String())) >= 3
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(fl.Field().String())
}

func validateLedgerDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}
