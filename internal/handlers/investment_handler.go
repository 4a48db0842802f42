package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartguider/internal/models"
	"smartguider/internal/pagination"
	"smartguider/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
	loc               *time.Location
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer, loc *time.Location) *InvestmentHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService, loc: loc}
}

// AddInvestmentRequest represents the request payload for adding an investment.
type AddInvestmentRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=200"`
	Type          string   `json:"type" binding:"required,investment_type"`
	PurchaseDate  string   `json:"purchase_date" binding:"required"`
	Quantity      *float64 `json:"quantity" binding:"omitempty,gt=0"`
	PurchasePrice float64  `json:"purchase_price" binding:"required,gt=0"`
	CurrentValue  float64  `json:"current_value" binding:"gte=0"`
}

// UpdateInvestmentRequest represents a partial investment update.
type UpdateInvestmentRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Type          *string  `json:"type" binding:"omitempty,investment_type"`
	PurchaseDate  *string  `json:"purchase_date"`
	Quantity      *float64 `json:"quantity" binding:"omitempty,gt=0"`
	PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,gt=0"`
	CurrentValue  *float64 `json:"current_value" binding:"omitempty,gte=0"`
}

// AddInvestment handles adding a holding
// @Summary     Add an investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddInvestmentRequest true "Investment details"
// @Success     201 {object} object{investment=services.InvestmentView} "Investment added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) AddInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	purchaseDate, err := parseOptionalTime(&req.PurchaseDate, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	inv, err := h.investmentService.CreateInvestment(
		userID,
		req.Name,
		models.InvestmentType(req.Type),
		*purchaseDate,
		req.Quantity,
		req.PurchasePrice,
		req.CurrentValue,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "investment", inv.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type, "purchase_price": req.PurchasePrice})

	c.JSON(http.StatusCreated, gin.H{"investment": inv})
}

// GetUserInvestments lists the user's holdings
// @Summary     List investments
// @Description Holdings ordered by purchase date, most recent first, each with its gain or loss
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.InvestmentView] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetUserInvestments(c *gin.Context) {
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

	result, err := h.investmentService.GetUserInvestments(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvestmentByID returns a single holding
// @Summary     Get an investment
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} object{investment=services.InvestmentView} "Investment"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestmentByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	inv, err := h.investmentService.GetInvestmentByID(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// UpdateInvestment applies a partial update to a holding
// @Summary     Update an investment
// @Description Typically used to record a new current value
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Fields to change"
// @Success     200 {object} object{investment=services.InvestmentView} "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	purchaseDate, err := parseOptionalTime(req.PurchaseDate, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	update := services.InvestmentUpdate{
		Name:          req.Name,
		PurchaseDate:  purchaseDate,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
	}
	if req.Type != nil {
		investmentType := models.InvestmentType(*req.Type)
		update.Type = &investmentType
	}

	inv, err := h.investmentService.UpdateInvestment(userID, investmentID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.CurrentValue != nil {
		changes["current_value"] = *req.CurrentValue
	}
	h.auditService.Log(userID, services.AuditActionUpdate, "investment", investmentID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// DeleteInvestment deletes a holding
// @Summary     Delete an investment
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "investment", investmentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Investment deleted successfully"})
}

// GetPortfolio summarizes all holdings
// @Summary     Portfolio summary
// @Description Total invested, current value, gain or loss and a per-type breakdown
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{portfolio=finance.Portfolio} "Portfolio summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.investmentService.GetPortfolio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}
