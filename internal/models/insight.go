package models

import "time"

// InsightKind names the AI flow that produced an insight.
type InsightKind string

const (
	InsightSpendingAnalysis InsightKind = "spending_analysis"
	InsightMonthlySummary   InsightKind = "monthly_summary"
	InsightExpenseParse     InsightKind = "expense_parse"
	InsightAdvice           InsightKind = "advice"
)

// Insight is an AI result kept in the document store. Input and Output
// hold the JSON encoded request and response of the flow.
type Insight struct {
	ID        string      `bson:"_id" json:"id"`
	UserID    string      `bson:"user_id" json:"user_id"`
	Kind      InsightKind `bson:"kind" json:"kind"`
	Summary   string      `bson:"summary" json:"summary"`
	Input     string      `bson:"input" json:"input"`
	Output    string      `bson:"output" json:"output"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}
