package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/services"
)

const maxInsightLimit = 100

// InsightHandler exposes the AI flows.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// ParseExpenseRequest carries free text describing an expense.
type ParseExpenseRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// AdviceRequest carries the user's goals and, optionally, a spending
// analysis to base the advice on.
type AdviceRequest struct {
	FinancialGoals   string `json:"financial_goals" binding:"required,min=10,max=1000"`
	SpendingAnalysis string `json:"spending_analysis" binding:"max=4000"`
}

// AnalyzeSpending reviews every expense of the user
// @Summary     Analyze spending
// @Description Summary, insights and a 0-100 financial health score based on all expenses
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{analysis=ai.SpendingAnalysis} "Analysis"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "No expenses to analyze"
// @Failure     503 {object} ErrorResponse "AI service unavailable"
// @Router      /insights/analyze [post]
func (h *InsightHandler) AnalyzeSpending(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	analysis, err := h.insightService.AnalyzeSpending(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// SummarizeMonth summarizes this month against the budget
// @Summary     Monthly summary
// @Description A short read of this month's needs, wants and savings against the budget rule
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{summary=ai.MonthlySummary} "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "No income or expenses this month"
// @Failure     503 {object} ErrorResponse "AI service unavailable"
// @Router      /insights/summary [post]
func (h *InsightHandler) SummarizeMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.insightService.SummarizeMonth(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ParseExpense extracts a draft expense from free text
// @Summary     Parse expense text
// @Description Turns text such as "lunch 250" into a draft expense. Nothing is saved.
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ParseExpenseRequest true "Text to parse"
// @Success     200 {object} object{expense=ai.ParsedExpense} "Draft expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "AI service unavailable"
// @Router      /insights/parse-expense [post]
func (h *InsightHandler) ParseExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ParseExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	parsed, err := h.insightService.ParseExpenseText(c.Request.Context(), userID, req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": parsed})
}

// SuggestAdvice returns advice toward the user's goals
// @Summary     Financial advice
// @Description Advice based on goals, tax regime, salary and either the supplied analysis or this month's figures
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AdviceRequest true "Goals and optional analysis"
// @Success     200 {object} object{advice=ai.Advice} "Advice"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "AI service unavailable"
// @Router      /insights/advice [post]
func (h *InsightHandler) SuggestAdvice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	advice, err := h.insightService.SuggestAdvice(c.Request.Context(), userID, req.FinancialGoals, req.SpendingAnalysis)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// ListInsights returns recent AI results
// @Summary     Insight history
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum entries (default 20, max 100)"
// @Success     200 {object} object{insights=[]models.Insight} "Most recent first"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightHandler) ListInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxInsightLimit {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	insights, err := h.insightService.ListInsights(c.Request.Context(), userID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
