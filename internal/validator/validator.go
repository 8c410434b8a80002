// Package validator provides request-struct validation with domain rules for
// the fixed expense category set and the canonical month labels.
package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator instance with all custom rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("expense_category", validateExpenseCategory)
		_ = validate.RegisterValidation("month_name", validateMonthName)
	})
	return validate
}

// Struct validates v and maps any violation to an INVALID_INPUT AppError.
func Struct(v any) error {
	if err := Get().Struct(v); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	return nil
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateMonthName(fl validator.FieldLevel) bool {
	return models.IsValidMonth(fl.Field().String())
}
