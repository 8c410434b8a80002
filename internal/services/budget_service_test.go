package services

import (
	"testing"
	"time"

	"budgetbook/internal/models"
	"budgetbook/internal/testutil"
)

func TestResolveOrCreate(t *testing.T) {
	t.Run("creates_period_on_first_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUserWithIncome(t, db, "Alice", 3000)

		date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		period, err := svc.ResolveOrCreate(user.ID, date)
		testutil.AssertNoError(t, err)

		if period.ID == 0 {
			t.Fatal("expected non-zero period ID")
		}
		if period.Month != "March" || period.Year != 2024 {
			t.Errorf("expected March 2024, got %s %d", period.Month, period.Year)
		}
		if period.MonthlyBudget != 3000 {
			t.Errorf("expected budget snapshot 3000, got %d", period.MonthlyBudget)
		}
		if period.TotalDays != 5 {
			t.Errorf("expected total_days 5 (creation day-of-month), got %d", period.TotalDays)
		}
	})

	t.Run("idempotent_within_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.ResolveOrCreate(user.ID, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		second, err := svc.ResolveOrCreate(user.ID, time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected the same period for both dates, got %d and %d", first.ID, second.ID)
		}

		var count int64
		if err := db.Model(&models.BudgetPeriod{}).Count(&count).Error; err != nil {
			t.Fatalf("count periods: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly one period row, got %d", count)
		}
	})

	t.Run("distinct_periods_across_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		march, err := svc.ResolveOrCreate(user.ID, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		april, err := svc.ResolveOrCreate(user.ID, time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		nextYear, err := svc.ResolveOrCreate(user.ID, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)

		if march.ID == april.ID || march.ID == nextYear.ID {
			t.Error("expected distinct periods for different months and years")
		}
	})

	t.Run("keeps_budget_snapshot_after_income_change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		users := NewUserService(db)
		user := testutil.CreateTestUserWithIncome(t, db, "Bob", 2000)

		date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		period, err := svc.ResolveOrCreate(user.ID, date)
		testutil.AssertNoError(t, err)

		newIncome := int64(9000)
		_, err = users.UpdateUser(user.ID, nil, &newIncome)
		testutil.AssertNoError(t, err)

		again, err := svc.ResolveOrCreate(user.ID, date)
		testutil.AssertNoError(t, err)
		if again.MonthlyBudget != 2000 {
			t.Errorf("expected existing period to keep snapshot 2000, got %d", again.MonthlyBudget)
		}
		if again.ID != period.ID {
			t.Errorf("expected same period, got %d and %d", period.ID, again.ID)
		}

		// A new month picks up the income current at creation time.
		april, err := svc.ResolveOrCreate(user.ID, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		if april.MonthlyBudget != 9000 {
			t.Errorf("expected new period snapshot 9000, got %d", april.MonthlyBudget)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.ResolveOrCreate(9999, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")

		// The failed resolve must not leave a period row behind.
		var count int64
		if err := db.Model(&models.BudgetPeriod{}).Count(&count).Error; err != nil {
			t.Fatalf("count periods: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no period rows, got %d", count)
		}
	})
}

func TestFindPeriod(t *testing.T) {
	t.Run("absence_is_not_an_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		period, err := svc.FindPeriod(user.ID, "March", 2024)
		testutil.AssertNoError(t, err)
		if period != nil {
			t.Errorf("expected nil period, got %+v", period)
		}
	})

	t.Run("finds_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestPeriod(t, db, user.ID, "March", 2024)

		found, err := svc.FindPeriod(user.ID, "March", 2024)
		testutil.AssertNoError(t, err)
		if found == nil || found.ID != created.ID {
			t.Errorf("expected period %d, got %+v", created.ID, found)
		}
	})
}

func TestGetPeriodByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.GetPeriodByID(42)
		testutil.AssertAppError(t, err, "PERIOD_NOT_FOUND")
	})
}
