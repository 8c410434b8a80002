package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// reportService computes the grouped expense sums behind the reporting
// views. Every query joins expenses through their budget period to the
// owning user so results can be keyed by user name.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// categoryRow is one (user, category) bucket of a grouped-sum query.
type categoryRow struct {
	UserName string
	Category string
	Total    int64
}

// monthRow is one (month, user) bucket of the yearly query.
type monthRow struct {
	Month    string
	UserName string
	Total    int64
}

func (s *reportService) joined() *gorm.DB {
	return s.db.Model(&models.Expense{}).
		Joins("JOIN budget_periods ON budget_periods.id = expenses.budget_period_id").
		Joins("JOIN users ON users.id = budget_periods.user_id")
}

// DailyExpenses sums expenses on the given calendar date grouped by user and
// category. A date with no expenses yields an empty mapping.
func (s *reportService) DailyExpenses(date time.Time) (map[string]map[string]int64, error) {
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidWindow, "date is required")
	}

	var rows []categoryRow
	err := s.joined().
		Select("users.name AS user_name, expenses.category AS category, SUM(expenses.amount) AS total").
		Where("date(expenses.date) = ?", date.Format("2006-01-02")).
		Group("users.name, expenses.category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return nestByUser(rows), nil
}

// MonthlyExpenses sums the expenses attached to (month, year) budget periods
// grouped by user and category, alongside the scalar totals for the income
// versus expense comparison.
func (s *reportService) MonthlyExpenses(month string, year int) (*MonthlyReport, error) {
	if !models.IsValidMonth(month) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidWindow, fmt.Sprintf("unrecognized month %q", month))
	}

	var rows []categoryRow
	err := s.joined().
		Select("users.name AS user_name, expenses.category AS category, SUM(expenses.amount) AS total").
		Where("budget_periods.month = ? AND budget_periods.year = ?", month, year).
		Group("users.name, expenses.category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	// Income is summed over every user's current monthly income, not
	// filtered by the window.
	var totalIncome int64
	err = s.db.Model(&models.User{}).
		Select("COALESCE(SUM(monthly_income), 0)").
		Scan(&totalIncome).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	report := &MonthlyReport{
		ByUser:      nestByUser(rows),
		TotalIncome: totalIncome,
	}
	for _, row := range rows {
		report.TotalExpenses += row.Total
	}
	return report, nil
}

// YearlyExpenses returns each user's total per calendar month of year. All
// twelve months are present in the result; sparse months map to an empty
// inner mapping.
func (s *reportService) YearlyExpenses(year int) (map[string]map[string]int64, error) {
	var rows []monthRow
	err := s.joined().
		Select("budget_periods.month AS month, users.name AS user_name, SUM(expenses.amount) AS total").
		Where("budget_periods.year = ?", year).
		Group("budget_periods.month, users.name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	byMonth := make(map[string]map[string]int64, 12)
	for _, month := range models.Months() {
		byMonth[month] = map[string]int64{}
	}
	for _, row := range rows {
		byMonth[row.Month][row.UserName] += row.Total
	}
	return byMonth, nil
}

func nestByUser(rows []categoryRow) map[string]map[string]int64 {
	byUser := make(map[string]map[string]int64)
	for _, row := range rows {
		if byUser[row.UserName] == nil {
			byUser[row.UserName] = make(map[string]int64)
		}
		byUser[row.UserName][row.Category] += row.Total
	}
	return byUser
}
