package services

import (
	"time"

	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
)

// UserServicer defines the contract for user profile management.
type UserServicer interface {
	CreateUser(name string, monthlyIncome int64) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	// ListUsers returns every user ordered by name, for selection lists.
	ListUsers() ([]models.User, error)
	// UpdateUser applies a partial update; nil fields are left unchanged.
	// Existing budget period snapshots are not touched.
	UpdateUser(id uint, name *string, monthlyIncome *int64) (*models.User, error)
	// DeleteUser removes the user and, through the store's cascades, every
	// budget period and expense the user owns.
	DeleteUser(id uint) error
}

// BudgetServicer defines the contract for budget period resolution.
type BudgetServicer interface {
	// ResolveOrCreate returns the budget period covering date for the given
	// user, creating it if this is the first expense of that month. Repeated
	// calls within one (month, year) always return the same period.
	ResolveOrCreate(userID uint, date time.Time) (*models.BudgetPeriod, error)
	// FindPeriod looks up a period by (user, month, year). Absence is a
	// normal branch: it returns (nil, nil), never an error.
	FindPeriod(userID uint, month string, year int) (*models.BudgetPeriod, error)
	GetPeriodByID(id uint) (*models.BudgetPeriod, error)
}

// ExpenseServicer defines the contract for recording and listing expenses.
type ExpenseServicer interface {
	// RecordExpense resolves the user's budget period for date and inserts
	// the expense against it in a single transaction. A zero date means
	// today.
	RecordExpense(userID uint, category string, amount int64, date time.Time) (*models.Expense, error)
	GetExpenseByID(id uint) (*models.Expense, error)
	PeriodExpenses(periodID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
}

// MonthlyReport carries the data for the income-versus-expense comparison of
// one calendar month. TotalIncome sums the current monthly income of all
// users regardless of the window; it is a present-day snapshot, not a
// historical value.
type MonthlyReport struct {
	ByUser        map[string]map[string]int64 `json:"by_user"`
	TotalIncome   int64                       `json:"total_income"`
	TotalExpenses int64                       `json:"total_expenses"`
}

// ReportServicer defines the contract for the aggregation queries behind the
// reporting views. Results are plain nested mappings ready to be turned into
// chart series; no rendering concerns live here. Zero matching rows yield
// empty mappings, never an error.
type ReportServicer interface {
	// DailyExpenses sums expenses on exactly the given calendar date,
	// grouped by user name and category.
	DailyExpenses(date time.Time) (map[string]map[string]int64, error)
	// MonthlyExpenses sums expenses attached to the (month, year) budget
	// periods, grouped by user name and category.
	MonthlyExpenses(month string, year int) (*MonthlyReport, error)
	// YearlyExpenses returns per-user totals for each of the twelve months
	// of year. The result always has exactly twelve keys; months without
	// expenses map to an empty inner mapping.
	YearlyExpenses(year int) (map[string]map[string]int64, error)
}
