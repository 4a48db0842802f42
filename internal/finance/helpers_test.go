package finance

import (
	"math"
	"testing"
	"time"

	"smartguider/internal/models"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}

func expense(category string, amount float64, typ models.ExpenseType, date time.Time) models.Expense {
	return models.Expense{Category: category, Amount: amount, Type: typ, Date: date}
}
