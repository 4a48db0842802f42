package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"smartguider/internal/ai"
	apperrors "smartguider/internal/errors"
	"smartguider/internal/finance"
	"smartguider/internal/logger"
	"smartguider/internal/models"
	"smartguider/internal/uuid"
)

const (
	minGoalsLength      = 10
	maxParseTextLength  = 500
	defaultInsightLimit = 20
)

// insightService runs the AI flows and keeps their history.
type insightService struct {
	db      *gorm.DB
	advisor ai.Advisor
	store   InsightStore
	clock   finance.Clock
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB, advisor ai.Advisor, store InsightStore, clock finance.Clock) InsightServicer {
	return &insightService{db: db, advisor: advisor, store: store, clock: clock}
}

func (s *insightService) loadUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// AnalyzeSpending sends every expense of the user for review.
func (s *insightService) AnalyzeSpending(ctx context.Context, userID string) (*ai.SpendingAnalysis, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := listExpenses(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientData, "Add at least one expense to analyze your spending")
	}

	in := finance.BuildSpendingAnalysisInput(expenses, user.Income())
	out, err := s.advisor.AnalyzeSpending(ctx, in)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}

	s.record(ctx, userID, models.InsightSpendingAnalysis, out.Summary, in, out)
	return out, nil
}

// SummarizeMonth summarizes the current month against the budget rule.
func (s *insightService) SummarizeMonth(ctx context.Context, userID string) (*ai.MonthlySummary, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := listExpenses(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	windows := finance.SelectWindows(s.clock.Now())
	totals := finance.AggregateByTypeAndWindow(expenses, windows.Current())
	budget := finance.ComputeBudget(user.Income(), totals.Needs, totals.Wants, user.Budget)
	if budget.Income == 0 && budget.TotalSpent == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientData, "Set your income or add expenses for this month first")
	}

	in := finance.BuildMonthlySummaryInput(budget)
	out, err := s.advisor.SummarizeMonth(ctx, in)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}

	s.record(ctx, userID, models.InsightMonthlySummary, out.Summary, in, out)
	return out, nil
}

// ParseExpenseText extracts a draft expense from free text.
func (s *insightService) ParseExpenseText(ctx context.Context, userID, text string) (*ai.ParsedExpense, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "text is required")
	}
	if utf8.RuneCountInString(text) > maxParseTextLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("text must be at most %d characters", maxParseTextLength))
	}

	out, err := s.advisor.ParseExpense(ctx, text)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}

	s.record(ctx, userID, models.InsightExpenseParse, out.Description, map[string]string{"text": text}, out)
	return out, nil
}

// SuggestAdvice asks for advice toward goals. Without a supplied
// analysis the current budget report and top categories stand in.
func (s *insightService) SuggestAdvice(ctx context.Context, userID, goals, spendingAnalysis string) (*ai.Advice, error) {
	goals = strings.TrimSpace(goals)
	if utf8.RuneCountInString(goals) < minGoalsLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("financial goals must be at least %d characters", minGoalsLength))
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	analysis := strings.TrimSpace(spendingAnalysis)
	if analysis == "" {
		expenses, err := listExpenses(s.db.WithContext(ctx), userID)
		if err != nil {
			return nil, err
		}
		analysis = s.describeSpending(user, expenses)
	}

	in := finance.BuildAdviceInput(analysis, goals, user.TaxRegime, user.Income())
	out, err := s.advisor.SuggestAdvice(ctx, in)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAIUnavailable, err)
	}

	s.record(ctx, userID, models.InsightAdvice, goals, in, out)
	return out, nil
}

// describeSpending renders a plain-language spending note from the
// current month's figures.
func (s *insightService) describeSpending(user *models.User, expenses []models.Expense) string {
	windows := finance.SelectWindows(s.clock.Now())
	totals := finance.AggregateByTypeAndWindow(expenses, windows.Current())
	budget := finance.ComputeBudget(user.Income(), totals.Needs, totals.Wants, user.Budget)

	var b strings.Builder
	b.WriteString(finance.BuildReport(budget).Message)
	fmt.Fprintf(&b, " This month: needs %.2f, wants %.2f, savings %.2f.",
		budget.Needs.Amount, budget.Wants.Amount, budget.Savings.Amount)

	categories := finance.CategoryBreakdown(expenses)
	if len(categories) > 3 {
		categories = categories[:3]
	}
	if len(categories) > 0 {
		parts := make([]string, 0, len(categories))
		for _, c := range categories {
			parts = append(parts, fmt.Sprintf("%s %.2f", c.Category, c.Total))
		}
		b.WriteString(" Largest categories overall: " + strings.Join(parts, ", ") + ".")
	}
	return b.String()
}

// ListInsights returns the user's most recent AI results.
func (s *insightService) ListInsights(ctx context.Context, userID string, limit int) ([]models.Insight, error) {
	if limit <= 0 {
		limit = defaultInsightLimit
	}
	insights, err := s.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return insights, nil
}

// record saves a result to the history. Failures are logged only.
func (s *insightService) record(ctx context.Context, userID string, kind models.InsightKind, summary string, input, output any) {
	in, err := json.Marshal(input)
	if err != nil {
		logger.Get().Warnw("failed to encode insight input", "error", err, "kind", kind)
		return
	}
	out, err := json.Marshal(output)
	if err != nil {
		logger.Get().Warnw("failed to encode insight output", "error", err, "kind", kind)
		return
	}

	insight := &models.Insight{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Summary:   summary,
		Input:     string(in),
		Output:    string(out),
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.store.Save(ctx, insight); err != nil {
		logger.Get().Errorw("failed to save insight", "error", err, "user_id", userID, "kind", kind)
	}
}
