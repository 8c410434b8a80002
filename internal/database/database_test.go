package database

import (
	"path/filepath"
	"testing"

	"budgetbook/internal/models"
)

func TestManagerLifecycle(t *testing.T) {
	config := &Config{Path: filepath.Join(t.TempDir(), "budget_test.db")}

	manager, err := NewManager(config)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := manager.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}()

	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	// A second run against an up-to-date schema must be a no-op.
	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("expected repeat migration to be a no-op, got: %v", err)
	}

	db := manager.DB()
	user := &models.User{Name: "Alice", MonthlyIncome: 3000}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to insert into migrated schema: %v", err)
	}

	period := &models.BudgetPeriod{UserID: user.ID, Month: "March", Year: 2024, TotalDays: 5, MonthlyBudget: 3000}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to insert budget period: %v", err)
	}

	// Cascades are enforced by the schema itself, not application code.
	if err := db.Delete(user).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}
	var periods int64
	if err := db.Model(&models.BudgetPeriod{}).Count(&periods).Error; err != nil {
		t.Fatalf("failed to count periods: %v", err)
	}
	if periods != 0 {
		t.Errorf("expected user delete to cascade, %d periods remain", periods)
	}
}
