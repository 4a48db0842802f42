package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/finance"
	"smartguider/internal/models"
)

const recentExpenseCount = 10

// ProfileSummary is the income side of the dashboard.
type ProfileSummary struct {
	Name         string             `json:"name"`
	Income       float64            `json:"income"`
	TaxRegime    models.TaxRegime   `json:"tax_regime,omitempty"`
	Bonus        *models.Bonus      `json:"bonus,omitempty"`
	AnnualIncome float64            `json:"annual_income"`
	Budget       models.BudgetSplit `json:"budget"`
}

// Dashboard is every figure derived for the current month.
type Dashboard struct {
	AsOf           time.Time                 `json:"as_of"`
	Month          string                    `json:"month"`
	Profile        ProfileSummary            `json:"profile"`
	Spending       finance.TypeTotals        `json:"spending"`
	TotalSpent     float64                   `json:"total_spent"`
	SpentShare     float64                   `json:"spent_share_of_income"`
	Budget         finance.BudgetResult      `json:"budget"`
	Report         finance.Report            `json:"report"`
	Risk           finance.RiskProjection    `json:"risk"`
	Comparison     finance.MonthlyComparison `json:"comparison"`
	Categories     []finance.CategoryTotal   `json:"categories"`
	RecentExpenses []models.Expense          `json:"recent_expenses"`
	Goals          []SavingsGoalView         `json:"goals"`
}

// dashboardService derives the monthly figures from stored records.
type dashboardService struct {
	db    *gorm.DB
	clock finance.Clock
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, clock finance.Clock) DashboardServicer {
	return &dashboardService{db: db, clock: clock}
}

type dashboardData struct {
	user     models.User
	expenses []models.Expense
	goals    []models.SavingsGoal
}

// fetch loads the profile, expenses and goals concurrently. The first
// failure cancels the other queries.
func (s *dashboardService) fetch(ctx context.Context, userID string, withGoals bool) (*dashboardData, error) {
	var data dashboardData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.db.WithContext(gctx).Where("id = ?", userID).First(&data.user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(models.OwnedBy(userID)).
			Order("date DESC").Order("id DESC").Find(&data.expenses).Error
	})
	if withGoals {
		g.Go(func() error {
			return s.db.WithContext(gctx).Scopes(models.OwnedBy(userID)).
				Order("deadline ASC").Find(&data.goals).Error
		})
	}

	if err := g.Wait(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &data, nil
}

// GetDashboard computes the current month's budget, risk and comparison.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	data, err := s.fetch(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	windows := finance.SelectWindows(now)
	user := &data.user
	income := user.Income()

	spending := finance.AggregateByTypeAndWindow(data.expenses, windows.Current())
	totalSpent := spending.Spent()
	budget := finance.ComputeBudget(income, spending.Needs, spending.Wants, user.Budget)

	recent := data.expenses
	if len(recent) > recentExpenseCount {
		recent = recent[:recentExpenseCount]
	}
	if recent == nil {
		recent = []models.Expense{}
	}

	goals := make([]SavingsGoalView, 0, len(data.goals))
	for _, g := range data.goals {
		goals = append(goals, newGoalView(g))
	}

	return &Dashboard{
		AsOf:  now,
		Month: finance.MonthLabel(windows.CurrentStart),
		Profile: ProfileSummary{
			Name:         user.Name,
			Income:       income,
			TaxRegime:    user.TaxRegime,
			Bonus:        user.Bonus,
			AnnualIncome: finance.AnnualIncome(user),
			Budget:       models.SplitOrDefault(user.Budget),
		},
		Spending:       spending,
		TotalSpent:     totalSpent,
		SpentShare:     finance.SpentShareOfIncome(totalSpent, income),
		Budget:         budget,
		Report:         finance.BuildReport(budget),
		Risk:           finance.ProjectMonthEndRisk(income, totalSpent, user.Budget, now),
		Comparison:     finance.CompareMonths(data.expenses, windows, income),
		Categories:     finance.CategoryBreakdown(data.expenses),
		RecentExpenses: recent,
		Goals:          goals,
	}, nil
}

// GetHistory returns only the month-over-month comparison.
func (s *dashboardService) GetHistory(ctx context.Context, userID string) (*finance.MonthlyComparison, error) {
	data, err := s.fetch(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	comparison := finance.CompareMonths(data.expenses, finance.SelectWindows(s.clock.Now()), data.user.Income())
	return &comparison, nil
}
