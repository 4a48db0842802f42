package testutil_test

import (
	"io"
	"testing"
	"time"

	"smartguider/internal/errors"
	"smartguider/internal/models"
	"smartguider/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "expenses", "savings_goals", "investments", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, a)
	b := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, b)

	testutil.CreateTestUser(t, a)

	var count int64
	if err := b.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected an empty second database, got %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUserWithSalary(t, db, 60000)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	var stored models.User
	if err := db.Where("id = ?", user.ID).First(&stored).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Salary != 60000 {
		t.Errorf("expected salary 60000, got %v", stored.Salary)
	}
	if stored.Budget == nil || *stored.Budget != models.DefaultBudgetSplit() {
		t.Errorf("expected default budget split to round-trip, got %+v", stored.Budget)
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, models.ExpenseTypeNeed, 1200, time.Now())
	if expense.Amount != 1200 || expense.Type != models.ExpenseTypeNeed {
		t.Errorf("unexpected expense %+v", expense)
	}

	goal := testutil.CreateTestGoal(t, db, user.ID, 50000)
	if goal.CurrentAmount != 0 {
		t.Errorf("expected new goal to start at zero, got %v", goal.CurrentAmount)
	}

	inv := testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentTypeStocks, 1000, 1500)
	if inv.CurrentValue != 1500 {
		t.Errorf("expected current value 1500, got %v", inv.CurrentValue)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrGoalNotFound, "GOAL_NOT_FOUND")
	testutil.AssertAppError(t, errors.Wrap(errors.ErrInternalServer, nil), "INTERNAL_ERROR")
	testutil.AssertNoError(t, nil)
	testutil.AssertWraps(t, errors.Wrap(errors.ErrAIUnavailable, io.EOF), errors.ErrAIUnavailable, io.EOF)
	testutil.AssertAmount(t, "sum", 0.1+0.2, 0.3)
}
