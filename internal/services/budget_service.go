package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/logger"
	"budgetbook/internal/models"
)

// budgetService resolves the monthly budget period an expense belongs to.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// ResolveOrCreate returns the (user, month, year) period for date, creating
// it on first use. The created period snapshots the user's current monthly
// income as its budget and records the creation day-of-month in TotalDays;
// neither value is revised afterwards. An existing period is returned
// unchanged. A missing user fails with USER_NOT_FOUND and leaves no period
// row behind.
func (s *budgetService) ResolveOrCreate(userID uint, date time.Time) (*models.BudgetPeriod, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	month := models.MonthOf(date)
	year := date.Year()

	period, err := s.FindPeriod(userID, month, year)
	if err != nil {
		return nil, err
	}
	if period != nil {
		return period, nil
	}

	period = &models.BudgetPeriod{
		UserID:        userID,
		Month:         month,
		Year:          year,
		TotalDays:     date.Day(),
		MonthlyBudget: user.MonthlyIncome,
	}
	if err := s.db.Create(period).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	logger.Get().Infow("budget period created",
		"user_id", userID, "month", month, "year", year, "monthly_budget", period.MonthlyBudget)
	return period, nil
}

// FindPeriod looks up a budget period by (user, month, year). A missing
// period is expected control flow and returns (nil, nil).
func (s *budgetService) FindPeriod(userID uint, month string, year int) (*models.BudgetPeriod, error) {
	var period models.BudgetPeriod
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &period, nil
}

// GetPeriodByID retrieves a budget period by ID
func (s *budgetService) GetPeriodByID(id uint) (*models.BudgetPeriod, error) {
	var period models.BudgetPeriod
	if err := s.db.First(&period, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &period, nil
}
