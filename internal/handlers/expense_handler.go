package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/export"
	"smartguider/internal/finance"
	"smartguider/internal/models"
	"smartguider/internal/pagination"
	"smartguider/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
	loc            *time.Location
	clock          finance.Clock
}

// NewExpenseHandler creates a new ExpenseHandler. Plain dates in requests
// and exports are read in loc. A nil clock reads the wall clock in loc.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer, loc *time.Location, clock finance.Clock) *ExpenseHandler {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = finance.SystemClock{Location: loc}
	}
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService, loc: loc, clock: clock}
}

// CreateExpenseRequest represents the request payload for creating an expense
type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required,expense_category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,expense_type"`
	Date        *string `json:"date"`
	Description string  `json:"description" binding:"max=200"`
	Emoji       string  `json:"emoji" binding:"max=16"`
}

// UpdateExpenseRequest represents a partial expense update
type UpdateExpenseRequest struct {
	Category    *string  `json:"category" binding:"omitempty,expense_category"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Type        *string  `json:"type" binding:"omitempty,expense_type"`
	Date        *string  `json:"date"`
	Description *string  `json:"description" binding:"omitempty,max=200"`
	Emoji       *string  `json:"emoji" binding:"omitempty,max=16"`
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Record an expense classified as a need or a want. The date defaults to now.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} object{expense=models.Expense} "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	date, err := parseOptionalTime(req.Date, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(
		userID,
		req.Category,
		req.Amount,
		models.ExpenseType(req.Type),
		date,
		req.Description,
		req.Emoji,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": req.Amount, "type": req.Type})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetUserExpenses lists the user's expenses
// @Summary     List expenses
// @Description Get a paginated list of expenses, newest first, with optional filters
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       from_date query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type      query string false "Filter by type (need, want)"
// @Param       category  query string false "Filter by category"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter, err := h.parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ExpenseHandler) parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v, h.loc)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseRangeEnd(v, h.loc)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		expenseType := models.ExpenseType(v)
		if !expenseType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be need or want")
		}
		filter.Type = &expenseType
	}

	if v := c.Query("category"); v != "" {
		if !models.IsExpenseCategory(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category")
		}
		filter.Category = &v
	}

	return filter, nil
}

// GetExpenseByID returns a single expense
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} object{expense=models.Expense} "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense applies a partial update to an expense
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} object{expense=models.Expense} "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	date, err := parseOptionalTime(req.Date, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	update := services.ExpenseUpdate{
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		Emoji:       req.Emoji,
	}
	if req.Type != nil {
		expenseType := models.ExpenseType(*req.Type)
		update.Type = &expenseType
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdate, "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense deletes an expense
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}

// GetCategoryBreakdown totals the user's expenses by category
// @Summary     Expense totals by category
// @Description Totals across all of the user's expenses, largest first
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{categories=[]finance.CategoryTotal} "Category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/categories [get]
func (h *ExpenseHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.expenseService.GetCategoryBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ExportExpenses downloads every expense as a spreadsheet
// @Summary     Export expenses
// @Description Download all expenses as an Excel workbook (default) or CSV
// @Tags        expenses
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce     text/csv
// @Security    BearerAuth
// @Param       format query string false "xlsx or csv"
// @Success     200 {file} file "Spreadsheet"
// @Failure     400 {object} ErrorResponse "Unknown format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	if format != "xlsx" && format != "csv" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "format must be xlsx or csv"))
		return
	}

	expenses, err := h.expenseService.ListAllExpenses(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	contentType := export.ContentTypeXLSX
	if format == "csv" {
		contentType = export.ContentTypeCSV
		err = export.WriteCSV(&buf, expenses, h.loc)
	} else {
		err = export.WriteXLSX(&buf, expenses, h.loc)
	}
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(userID, services.AuditActionExport, "expense", "", c.ClientIP(),
		map[string]interface{}{"format": format, "count": len(expenses)})

	filename := export.Filename(h.clock.Now().In(h.loc), format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
