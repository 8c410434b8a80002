package models

import "time"

// Expense is a single recorded spend tied to a budget period. Amount is a
// positive integer in the currency's minor unit. Expenses are never updated;
// they disappear only when their period is deleted through the user cascade.
type Expense struct {
	Base
	BudgetPeriodID uint      `gorm:"not null" json:"budget_period_id"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	Category       string    `gorm:"not null" json:"category"`
	Amount         int64     `gorm:"not null" json:"amount"`
}

// Day truncates t to midnight UTC. Expense dates are stored normalized so
// that day-equality queries behave the same regardless of time-of-day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
