package services

import (
	"context"
	"time"

	"smartguider/internal/ai"
	"smartguider/internal/finance"
	"smartguider/internal/models"
	"smartguider/internal/pagination"
)

// SettingsUpdate carries a partial profile update. Nil fields keep their
// stored value; ClearBonus removes a previously set bonus.
type SettingsUpdate struct {
	Name       *string
	PhotoURL   *string
	Salary     *float64
	TaxRegime  *models.TaxRegime
	Budget     *models.BudgetSplit
	Bonus      *models.Bonus
	ClearBonus bool
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	UpdateSettings(userID string, update SettingsUpdate) (*models.User, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.ExpenseType
	Category *string
}

// ExpenseUpdate carries a partial expense update.
type ExpenseUpdate struct {
	Category    *string
	Amount      *float64
	Date        *time.Time
	Type        *models.ExpenseType
	Description *string
	Emoji       *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, category string, amount float64, expenseType models.ExpenseType, date *time.Time, description, emoji string) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	ListAllExpenses(ctx context.Context, userID string) ([]models.Expense, error)
	GetCategoryBreakdown(userID string) ([]finance.CategoryTotal, error)
}

// SavingsGoalView is a savings goal with its derived progress.
type SavingsGoalView struct {
	models.SavingsGoal
	Progress float64 `json:"progress"`
}

// GoalUpdate carries a partial savings goal update.
type GoalUpdate struct {
	Name          *string
	Category      *models.GoalCategory
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID, name string, category models.GoalCategory, targetAmount float64, deadline time.Time) (*SavingsGoalView, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[SavingsGoalView], error)
	GetGoalByID(userID, goalID string) (*SavingsGoalView, error)
	UpdateGoal(userID, goalID string, update GoalUpdate) (*SavingsGoalView, error)
	DeleteGoal(userID, goalID string) error
	ListAllGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error)
}

// InvestmentView is an investment with its derived gain or loss.
type InvestmentView struct {
	models.Investment
	GainLoss float64 `json:"gain_loss"`
}

// InvestmentUpdate carries a partial investment update.
type InvestmentUpdate struct {
	Name          *string
	Type          *models.InvestmentType
	PurchaseDate  *time.Time
	Quantity      *float64
	PurchasePrice *float64
	CurrentValue  *float64
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	CreateInvestment(userID, name string, investmentType models.InvestmentType, purchaseDate time.Time, quantity *float64, purchasePrice, currentValue float64) (*InvestmentView, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[InvestmentView], error)
	GetInvestmentByID(userID, investmentID string) (*InvestmentView, error)
	UpdateInvestment(userID, investmentID string, update InvestmentUpdate) (*InvestmentView, error)
	DeleteInvestment(userID, investmentID string) error
	GetPortfolio(userID string) (*finance.Portfolio, error)
}

// DashboardServicer assembles the derived monthly figures for a user.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
	GetHistory(ctx context.Context, userID string) (*finance.MonthlyComparison, error)
}

// InsightServicer runs the AI flows against a user's data.
type InsightServicer interface {
	AnalyzeSpending(ctx context.Context, userID string) (*ai.SpendingAnalysis, error)
	SummarizeMonth(ctx context.Context, userID string) (*ai.MonthlySummary, error)
	ParseExpenseText(ctx context.Context, userID, text string) (*ai.ParsedExpense, error)
	SuggestAdvice(ctx context.Context, userID, goals, spendingAnalysis string) (*ai.Advice, error)
	ListInsights(ctx context.Context, userID string, limit int) ([]models.Insight, error)
}

// InsightStore keeps a history of AI results.
type InsightStore interface {
	Save(ctx context.Context, insight *models.Insight) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Insight, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
