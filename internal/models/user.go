package models

// User represents a profile that owns budget periods and their expenses.
// MonthlyIncome is an integer amount in the currency's minor unit.
type User struct {
	Base
	Name          string `gorm:"not null" json:"name"`
	MonthlyIncome int64  `gorm:"not null;default:0" json:"monthly_income"`

	// Relationships
	BudgetPeriods []BudgetPeriod `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"budget_periods,omitempty"`
}
