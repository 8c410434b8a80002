package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetbook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique name and a default income.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithIncome(t, db, fmt.Sprintf("User %d", nextID()), 1000)
}

// CreateTestUserWithIncome creates a user with the given name and monthly income.
func CreateTestUserWithIncome(t *testing.T, db *gorm.DB, name string, monthlyIncome int64) *models.User {
	t.Helper()

	user := &models.User{
		Name:          name,
		MonthlyIncome: monthlyIncome,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPeriod creates a budget period for the given user and month.
func CreateTestPeriod(t *testing.T, db *gorm.DB, userID uint, month string, year int) *models.BudgetPeriod {
	t.Helper()

	period := &models.BudgetPeriod{
		UserID:        userID,
		Month:         month,
		Year:          year,
		TotalDays:     1,
		MonthlyBudget: 1000,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test budget period: %v", err)
	}
	return period
}

// CreateTestExpense creates an expense against the given period. The date is
// normalized the way the expense service stores it.
func CreateTestExpense(t *testing.T, db *gorm.DB, periodID uint, category string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		BudgetPeriodID: periodID,
		Date:           models.Day(date),
		Category:       category,
		Amount:         amount,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
