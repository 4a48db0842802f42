// Package ai talks to an OpenAI-compatible chat completion API to produce
// spending analysis, budget summaries, expense parsing and advice. Every
// flow asks the model for a JSON object and decodes it into a typed result.
package ai

import (
	"context"
	"errors"

	"smartguider/internal/finance"
	"smartguider/internal/models"
)

// ErrDisabled is returned by Disabled for every call.
var ErrDisabled = errors.New("ai: advisor not configured")

// ErrEmptyResponse means the model returned no usable content.
var ErrEmptyResponse = errors.New("ai: empty response")

// SpendingAnalysis describes a user's spending behaviour.
type SpendingAnalysis struct {
	Summary              string   `json:"summary"`
	Insights             []string `json:"insights"`
	FinancialHealthScore int      `json:"financialHealthScore"`
}

// MonthlySummary is a short read of the month against the budget rule.
type MonthlySummary struct {
	Summary string `json:"summary"`
}

// ParsedExpense is an expense extracted from free text. Fields the model
// could not determine are left empty.
type ParsedExpense struct {
	Description string             `json:"description,omitempty"`
	Amount      *float64           `json:"amount,omitempty"`
	Category    string             `json:"category,omitempty"`
	Type        models.ExpenseType `json:"type,omitempty"`
}

// Advice is personalised financial advice.
type Advice struct {
	Advice string `json:"advice"`
}

// Advisor is the set of AI flows the service depends on.
type Advisor interface {
	AnalyzeSpending(ctx context.Context, in finance.SpendingAnalysisInput) (*SpendingAnalysis, error)
	SummarizeMonth(ctx context.Context, in finance.MonthlySummaryInput) (*MonthlySummary, error)
	ParseExpense(ctx context.Context, text string) (*ParsedExpense, error)
	SuggestAdvice(ctx context.Context, in finance.AdviceInput) (*Advice, error)
}

// Disabled is the Advisor used when no API key is configured.
type Disabled struct{}

func (Disabled) AnalyzeSpending(context.Context, finance.SpendingAnalysisInput) (*SpendingAnalysis, error) {
	return nil, ErrDisabled
}

func (Disabled) SummarizeMonth(context.Context, finance.MonthlySummaryInput) (*MonthlySummary, error) {
	return nil, ErrDisabled
}

func (Disabled) ParseExpense(context.Context, string) (*ParsedExpense, error) {
	return nil, ErrDisabled
}

func (Disabled) SuggestAdvice(context.Context, finance.AdviceInput) (*Advice, error) {
	return nil, ErrDisabled
}
