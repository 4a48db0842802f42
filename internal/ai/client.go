package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"smartguider/internal/finance"
	"smartguider/internal/models"
)

// Config configures Client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client implements Advisor on the chat completion API.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Client. An empty BaseURL targets OpenAI.
func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{api: openai.NewClientWithConfig(oc), model: model, timeout: timeout}
}

// AnalyzeSpending reviews the user's expenses. The health score is
// clamped to [0,100].
func (c *Client) AnalyzeSpending(ctx context.Context, in finance.SpendingAnalysisInput) (*SpendingAnalysis, error) {
	var out SpendingAnalysis
	if err := c.complete(ctx, analyzeSpendingPrompt, in, 0.4, &out); err != nil {
		return nil, err
	}
	if out.FinancialHealthScore < 0 {
		out.FinancialHealthScore = 0
	}
	if out.FinancialHealthScore > 100 {
		out.FinancialHealthScore = 100
	}
	if out.Insights == nil {
		out.Insights = []string{}
	}
	return &out, nil
}

// SummarizeMonth explains the month against the budget rule.
func (c *Client) SummarizeMonth(ctx context.Context, in finance.MonthlySummaryInput) (*MonthlySummary, error) {
	var out MonthlySummary
	if err := c.complete(ctx, summarizeMonthPrompt, in, 0.4, &out); err != nil {
		return nil, err
	}
	if out.Summary == "" {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}

// ParseExpense extracts an expense from text. A category outside the
// accepted list, a non-positive amount or an unknown type is dropped.
func (c *Client) ParseExpense(ctx context.Context, text string) (*ParsedExpense, error) {
	var out ParsedExpense
	if err := c.complete(ctx, parseExpensePrompt(), map[string]string{"text": text}, 0, &out); err != nil {
		return nil, err
	}
	if out.Category != "" && !models.IsExpenseCategory(out.Category) {
		out.Category = ""
	}
	if out.Amount != nil && *out.Amount <= 0 {
		out.Amount = nil
	}
	if out.Type != "" && !out.Type.Valid() {
		out.Type = ""
	}
	return &out, nil
}

// SuggestAdvice produces advice for the user's goals.
func (c *Client) SuggestAdvice(ctx context.Context, in finance.AdviceInput) (*Advice, error) {
	var out Advice
	if err := c.complete(ctx, advicePrompt, in, 0.7, &out); err != nil {
		return nil, err
	}
	if out.Advice == "" {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}

func (c *Client) complete(ctx context.Context, system string, input any, temperature float32, out any) error {
	payload, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("ai: encode input: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return fmt.Errorf("ai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ErrEmptyResponse
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)
	if content == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("ai: decode response: %w", err)
	}
	return nil
}

// stripCodeFence removes a ```json fence some models wrap around output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
