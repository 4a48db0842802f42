package services

import (
	"testing"
	"time"

	"smartguider/internal/models"
	"smartguider/internal/pagination"
	"smartguider/internal/testutil"
)

func TestCreateInvestment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestmentService(db)
	user := testutil.CreateTestUser(t, db)
	bought := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)

	qty := 10.0
	inv, err := svc.CreateInvestment(user.ID, "Nifty index fund", models.InvestmentTypeMutualFunds, bought, &qty, 10000, 12500)
	testutil.AssertNoError(t, err)
	if inv.GainLoss != 2500 {
		t.Errorf("expected gain 2500, got %v", inv.GainLoss)
	}

	tests := []struct {
		name  string
		qty   *float64
		price float64
		value float64
	}{
		{"zero_price", nil, 0, 100},
		{"negative_value", nil, 100, -1},
		{"zero_quantity", new(float64), 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateInvestment(user.ID, "x", models.InvestmentTypeStocks, bought, tt.qty, tt.price, tt.value)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}

func TestUpdateAndDeleteInvestment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestmentService(db)

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	inv := testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentTypeStocks, 5000, 5000)

	value := 4200.0
	updated, err := svc.UpdateInvestment(user.ID, inv.ID, InvestmentUpdate{CurrentValue: &value})
	testutil.AssertNoError(t, err)
	if updated.GainLoss != -800 {
		t.Errorf("expected loss of 800, got %v", updated.GainLoss)
	}

	_, err = svc.UpdateInvestment(other.ID, inv.ID, InvestmentUpdate{CurrentValue: &value})
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteInvestment(user.ID, inv.ID))
	_, err = svc.GetInvestmentByID(user.ID, inv.ID)
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
}

func TestGetPortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestmentService(db)

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentTypeStocks, 10000, 15000)
	testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentTypeStocks, 5000, 4000)
	testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentTypeBonds, 5000, 5500)

	portfolio, err := svc.GetPortfolio(user.ID)
	testutil.AssertNoError(t, err)

	if portfolio.TotalInvested != 20000 || portfolio.TotalCurrentValue != 24500 {
		t.Errorf("unexpected totals %+v", portfolio)
	}
	testutil.AssertAmount(t, "total gain", portfolio.TotalGainLoss, 4500)
	testutil.AssertAmount(t, "gain percent", portfolio.GainLossPercent, 22.5)

	page, err := svc.GetUserInvestments(user.ID, pagination.PageRequest{PageSize: 2})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 3 || len(page.Data) != 2 {
		t.Errorf("expected 2 of 3 holdings, got %d of %d", len(page.Data), page.TotalItems)
	}
}
