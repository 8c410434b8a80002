package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/logger"
	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
)

// expenseService handles expense recording and listing.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// RecordExpense validates the input, resolves the owning budget period and
// inserts the expense, all inside one transaction so a failed insert never
// leaves a just-created period in doubt.
func (s *expenseService) RecordExpense(userID uint, category string, amount int64, date time.Time) (*models.Expense, error) {
	if !models.IsValidCategory(category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expense category")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	// Default date to today if not provided
	if date.IsZero() {
		date = time.Now()
	}
	date = models.Day(date)

	var expense *models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		period, txErr := NewBudgetService(tx).ResolveOrCreate(userID, date)
		if txErr != nil {
			return txErr
		}

		expense = &models.Expense{
			BudgetPeriodID: period.ID,
			Date:           date,
			Category:       category,
			Amount:         amount,
		}
		if txErr := tx.Create(expense).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrStorage, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("expense recorded",
		"user_id", userID, "category", category, "amount", amount, "date", date.Format("2006-01-02"))
	return expense, nil
}

// GetExpenseByID retrieves an expense by ID
func (s *expenseService) GetExpenseByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &expense, nil
}

// PeriodExpenses returns a paginated list of the expenses recorded against a
// budget period, oldest first.
func (s *expenseService) PeriodExpenses(periodID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var period models.BudgetPeriod
	if err := s.db.First(&period, periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	base := s.db.Model(&models.Expense{}).Where("budget_period_id = ?", periodID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var expenses []models.Expense
	if err := base.Order("date, id").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}
