package services

import (
	"context"
	"testing"
	"time"

	"smartguider/internal/finance"
	"smartguider/internal/models"
	"smartguider/internal/pagination"
	"smartguider/internal/testutil"
)

var june10 = time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

func TestCreateExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db, finance.FixedClock(june10))
	user := testutil.CreateTestUser(t, db)

	t.Run("defaults_date_to_now", func(t *testing.T) {
		exp, err := svc.CreateExpense(user.ID, models.CategoryFood, 450, models.ExpenseTypeNeed, nil, "Groceries", "🛒")
		testutil.AssertNoError(t, err)

		if exp.ID == "" {
			t.Fatal("expected an ID")
		}
		if !exp.Date.Equal(june10) {
			t.Errorf("expected date %v, got %v", june10, exp.Date)
		}
		if exp.Emoji != "🛒" || exp.Description != "Groceries" {
			t.Errorf("unexpected expense %+v", exp)
		}
	})

	t.Run("explicit_date", func(t *testing.T) {
		when := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
		exp, err := svc.CreateExpense(user.ID, models.CategoryTransport, 120, models.ExpenseTypeWant, &when, "Cab", "")
		testutil.AssertNoError(t, err)
		if !exp.Date.Equal(when) {
			t.Errorf("expected date %v, got %v", when, exp.Date)
		}
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		_, err := svc.CreateExpense(user.ID, models.CategoryFood, 0, models.ExpenseTypeNeed, nil, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := svc.CreateExpense(user.ID, models.CategoryFood, 10, models.ExpenseType("luxury"), nil, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db, finance.FixedClock(june10))

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	may := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestExpenseInCategory(t, db, user.ID, models.CategoryFood, models.ExpenseTypeNeed, 100, may)
	testutil.CreateTestExpenseInCategory(t, db, user.ID, models.CategoryShopping, models.ExpenseTypeWant, 200, june10)
	testutil.CreateTestExpenseInCategory(t, db, user.ID, models.CategoryFood, models.ExpenseTypeWant, 300, june10.AddDate(0, 0, -1))
	testutil.CreateTestExpense(t, db, other.ID, models.ExpenseTypeNeed, 999, june10)

	t.Run("newest_first", func(t *testing.T) {
		page, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 {
			t.Fatalf("expected 3 expenses, got %d", page.TotalItems)
		}
		amounts := []float64{page.Data[0].Amount, page.Data[1].Amount, page.Data[2].Amount}
		if amounts[0] != 200 || amounts[1] != 300 || amounts[2] != 100 {
			t.Errorf("expected order 200,300,100, got %v", amounts)
		}
	})

	t.Run("filters", func(t *testing.T) {
		want := models.ExpenseTypeWant
		food := models.CategoryFood
		from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

		tests := []struct {
			name   string
			filter ExpenseFilter
			count  int64
		}{
			{"by_type", ExpenseFilter{Type: &want}, 2},
			{"by_category", ExpenseFilter{Category: &food}, 2},
			{"by_date", ExpenseFilter{FromDate: &from}, 2},
			{"combined", ExpenseFilter{Type: &want, Category: &food, FromDate: &from}, 1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				page, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, tt.filter)
				testutil.AssertNoError(t, err)
				if page.TotalItems != tt.count {
					t.Errorf("expected %d, got %d", tt.count, page.TotalItems)
				}
			})
		}
	})

	t.Run("paginates", func(t *testing.T) {
		page, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{Page: 2, PageSize: 2}, ExpenseFilter{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.TotalPages != 2 {
			t.Errorf("expected 1 item on page 2 of 2, got %d items of %d pages", len(page.Data), page.TotalPages)
		}
	})
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db, finance.FixedClock(june10))

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	exp := testutil.CreateTestExpense(t, db, user.ID, models.ExpenseTypeNeed, 100, june10)

	amount := 250.0
	want := models.ExpenseTypeWant
	updated, err := svc.UpdateExpense(user.ID, exp.ID, ExpenseUpdate{Amount: &amount, Type: &want})
	testutil.AssertNoError(t, err)
	if updated.Amount != 250 || updated.Type != models.ExpenseTypeWant {
		t.Errorf("unexpected update result %+v", updated)
	}

	zero := 0.0
	_, err = svc.UpdateExpense(user.ID, exp.ID, ExpenseUpdate{Amount: &zero})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.UpdateExpense(other.ID, exp.ID, ExpenseUpdate{Amount: &amount})
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

	err = svc.DeleteExpense(other.ID, exp.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteExpense(user.ID, exp.ID))
	_, err = svc.GetExpenseByID(user.ID, exp.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestListAllExpensesAndBreakdown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db, finance.FixedClock(june10))

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestExpenseInCategory(t, db, user.ID, models.CategoryFood, models.ExpenseTypeNeed, 100, june10)
	testutil.CreateTestExpenseInCategory(t, db, user.ID, models.CategoryFood, models.ExpenseTypeWant, 50, june10)
	testutil.CreateTestExpenseInCategory(t, db, user.ID, models.CategoryHousing, models.ExpenseTypeNeed, 400, june10)

	all, err := svc.ListAllExpenses(context.Background(), user.ID)
	testutil.AssertNoError(t, err)
	if len(all) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(all))
	}

	breakdown, err := svc.GetCategoryBreakdown(user.ID)
	testutil.AssertNoError(t, err)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(breakdown))
	}
	if breakdown[0].Category != models.CategoryHousing || breakdown[0].Total != 400 {
		t.Errorf("expected Housing first with 400, got %+v", breakdown[0])
	}
	if breakdown[1].Category != models.CategoryFood || breakdown[1].Total != 150 {
		t.Errorf("expected Food with 150, got %+v", breakdown[1])
	}
}
