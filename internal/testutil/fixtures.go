package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"smartguider/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, unique email and
// the default 50/30/20 profile.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	split := models.DefaultBudgetSplit()
	user := &models.User{
		Email:     email,
		Password:  string(hash),
		Name:      "Test User",
		TaxRegime: models.TaxRegimeNew,
		Budget:    &split,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestUserWithSalary creates a user with the given monthly salary.
func CreateTestUserWithSalary(t *testing.T, db *gorm.DB, salary float64) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("salary", salary).Error; err != nil {
		t.Fatalf("failed to set salary: %v", err)
	}
	user.Salary = salary
	return user
}

// CreateTestExpense creates an expense of the given type and amount on date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, expenseType models.ExpenseType, amount float64, date time.Time) *models.Expense {
	t.Helper()
	return CreateTestExpenseInCategory(t, db, userID, models.CategoryOther, expenseType, amount, date)
}

// CreateTestExpenseInCategory creates an expense in the given category.
func CreateTestExpenseInCategory(t *testing.T, db *gorm.DB, userID, category string, expenseType models.ExpenseType, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Type:        expenseType,
		Description: fmt.Sprintf("Test Expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestGoal creates a savings goal with the given target.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target float64) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		Category:     models.GoalCategoryTravel,
		TargetAmount: target,
		Deadline:     time.Now().AddDate(1, 0, 0),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestInvestment creates a holding bought at price and now worth value.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, investmentType models.InvestmentType, price, value float64) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Investment %d", nextID()),
		Type:          investmentType,
		PurchaseDate:  time.Now().AddDate(0, -3, 0),
		PurchasePrice: price,
		CurrentValue:  value,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
