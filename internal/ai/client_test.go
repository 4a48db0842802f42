package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartguider/internal/finance"
	"smartguider/internal/models"
)

type capturedRequest struct {
	Model          string `json:"model"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newTestServer answers every chat completion with content and records
// the last request it saw.
func newTestServer(t *testing.T, content string, last *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if last != nil {
			if err := json.NewDecoder(r.Body).Decode(last); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model", Timeout: 5 * time.Second})
}

func TestAnalyzeSpending(t *testing.T) {
	var req capturedRequest
	srv := newTestServer(t, `{"summary":"Mostly rent.","insights":["Rent dominates"],"financialHealthScore":140}`, &req)
	c := newTestClient(srv)

	in := finance.SpendingAnalysisInput{
		Expenses: []finance.ExpenseSample{{Category: "Housing", Amount: 15000, Date: "2024-06-01T00:00:00.000Z"}},
		Income:   50000,
	}
	out, err := c.AnalyzeSpending(context.Background(), in)
	if err != nil {
		t.Fatalf("AnalyzeSpending: %v", err)
	}
	if out.Summary != "Mostly rent." || len(out.Insights) != 1 {
		t.Errorf("unexpected result %+v", out)
	}
	if out.FinancialHealthScore != 100 {
		t.Errorf("expected score clamped to 100, got %d", out.FinancialHealthScore)
	}

	if req.Model != "test-model" {
		t.Errorf("expected model test-model, got %s", req.Model)
	}
	if req.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %q", req.ResponseFormat.Type)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[1].Content, `"income":50000`) {
		t.Errorf("expected income in user message, got %s", req.Messages[1].Content)
	}
}

func TestParseExpense_DropsUnknownValues(t *testing.T) {
	srv := newTestServer(t, "```json\n{\"description\":\"Coffee\",\"amount\":-3,\"category\":\"Cafe\",\"type\":\"treat\"}\n```", nil)
	c := newTestClient(srv)

	out, err := c.ParseExpense(context.Background(), "coffee this morning")
	if err != nil {
		t.Fatalf("ParseExpense: %v", err)
	}
	if out.Description != "Coffee" {
		t.Errorf("expected description Coffee, got %q", out.Description)
	}
	if out.Amount != nil || out.Category != "" || out.Type != "" {
		t.Errorf("expected invalid fields dropped, got %+v", out)
	}
}

func TestParseExpense_KeepsValidValues(t *testing.T) {
	srv := newTestServer(t, `{"description":"Uber to office","amount":320,"category":"Transport","type":"need"}`, nil)
	out, err := newTestClient(srv).ParseExpense(context.Background(), "uber 320")
	if err != nil {
		t.Fatalf("ParseExpense: %v", err)
	}
	if out.Amount == nil || *out.Amount != 320 || out.Category != "Transport" || out.Type != models.ExpenseTypeNeed {
		t.Errorf("unexpected result %+v", out)
	}
}

func TestSummarizeMonthAndAdvice(t *testing.T) {
	srv := newTestServer(t, `{"summary":"On budget.","advice":"Keep going."}`, nil)
	c := newTestClient(srv)

	sum, err := c.SummarizeMonth(context.Background(), finance.MonthlySummaryInput{Needs: 1, TotalIncome: 10})
	if err != nil || sum.Summary != "On budget." {
		t.Errorf("SummarizeMonth: %+v, %v", sum, err)
	}
	adv, err := c.SuggestAdvice(context.Background(), finance.BuildAdviceInput("ok", "retire early at fifty", "", 1))
	if err != nil || adv.Advice != "Keep going." {
		t.Errorf("SuggestAdvice: %+v, %v", adv, err)
	}
}

func TestComplete_Errors(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		srv := newTestServer(t, "   ", nil)
		_, err := newTestClient(srv).SummarizeMonth(context.Background(), finance.MonthlySummaryInput{})
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("not json", func(t *testing.T) {
		srv := newTestServer(t, "sure, here you go", nil)
		_, err := newTestClient(srv).SummarizeMonth(context.Background(), finance.MonthlySummaryInput{})
		if err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		}))
		defer srv.Close()
		_, err := newTestClient(srv).SuggestAdvice(context.Background(), finance.AdviceInput{})
		if err == nil {
			t.Error("expected error from failing server")
		}
	})
}

func TestDisabled(t *testing.T) {
	var a Advisor = Disabled{}
	if _, err := a.ParseExpense(context.Background(), "x"); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}
