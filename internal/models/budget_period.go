package models

// BudgetPeriod is one user's budget scope for a single calendar month.
// Periods are created lazily by the resolver on the first expense of a month
// and there is at most one per (user, month, year).
type BudgetPeriod struct {
	Base
	UserID uint   `gorm:"not null;index:idx_budget_periods_user_month_year" json:"user_id"`
	Month  string `gorm:"not null;index:idx_budget_periods_user_month_year" json:"month"`
	Year   int    `gorm:"not null;index:idx_budget_periods_user_month_year" json:"year"`

	// TotalDays records the day-of-month on which the period was first
	// created, not the length of the month.
	TotalDays int `gorm:"not null" json:"total_days"`

	// MonthlyBudget is a snapshot of the owner's monthly income taken at
	// creation time. It is never re-synced if the income changes later.
	MonthlyBudget int64 `gorm:"not null" json:"monthly_budget"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:BudgetPeriodID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
}
