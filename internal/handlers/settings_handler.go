package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartguider/internal/finance"
	"smartguider/internal/models"
	"smartguider/internal/services"
)

// SettingsHandler serves the user's financial profile.
type SettingsHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(userService services.UserServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{userService: userService, auditService: auditService}
}

// BudgetSplitRequest is a needs/wants/savings split in whole percent.
type BudgetSplitRequest struct {
	Needs   int `json:"needs" binding:"min=0,max=100"`
	Wants   int `json:"wants" binding:"min=0,max=100"`
	Savings int `json:"savings" binding:"min=0,max=100"`
}

// BonusRequest is a one-time bonus.
type BonusRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,bonus_type"`
}

// UpdateSettingsRequest is a partial profile update. Omitted fields keep
// their stored value.
type UpdateSettingsRequest struct {
	Name       *string             `json:"name" binding:"omitempty,max=100"`
	PhotoURL   *string             `json:"photo_url" binding:"omitempty,max=500"`
	Salary     *float64            `json:"salary" binding:"omitempty,gte=0"`
	TaxRegime  *string             `json:"tax_regime" binding:"omitempty,tax_regime"`
	Budget     *BudgetSplitRequest `json:"budget"`
	Bonus      *BonusRequest       `json:"bonus"`
	ClearBonus bool                `json:"clear_bonus"`
}

// SettingsResponse is the stored financial profile.
type SettingsResponse struct {
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	PhotoURL     string             `json:"photo_url,omitempty"`
	Salary       float64            `json:"salary"`
	TaxRegime    models.TaxRegime   `json:"tax_regime"`
	Budget       models.BudgetSplit `json:"budget"`
	Bonus        *models.Bonus      `json:"bonus,omitempty"`
	AnnualIncome float64            `json:"annual_income"`
}

func newSettingsResponse(user *models.User) SettingsResponse {
	regime := user.TaxRegime
	if regime == "" {
		regime = models.TaxRegimeNew
	}
	return SettingsResponse{
		Email:        user.Email,
		Name:         user.Name,
		PhotoURL:     user.PhotoURL,
		Salary:       user.Income(),
		TaxRegime:    regime,
		Budget:       models.SplitOrDefault(user.Budget),
		Bonus:        user.Bonus,
		AnnualIncome: finance.AnnualIncome(user),
	}
}

// GetSettings returns the financial profile
// @Summary     Get settings
// @Description Get salary, tax regime, budget split and bonus. A missing budget split is reported as 50/30/20.
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{settings=SettingsResponse} "Current settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": newSettingsResponse(user)})
}

// UpdateSettings merges a partial update into the financial profile
// @Summary     Update settings
// @Description Update any of name, photo, salary, tax regime, budget split and bonus. The split must add up to 100.
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Fields to change"
// @Success     200 {object} object{settings=SettingsResponse} "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input, budget split or bonus"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	update := services.SettingsUpdate{
		Name:       req.Name,
		PhotoURL:   req.PhotoURL,
		Salary:     req.Salary,
		ClearBonus: req.ClearBonus,
	}
	changes := map[string]interface{}{}
	if req.Salary != nil {
		changes["salary"] = *req.Salary
	}
	if req.TaxRegime != nil {
		regime := models.TaxRegime(*req.TaxRegime)
		update.TaxRegime = &regime
		changes["tax_regime"] = regime
	}
	if req.Budget != nil {
		update.Budget = &models.BudgetSplit{Needs: req.Budget.Needs, Wants: req.Budget.Wants, Savings: req.Budget.Savings}
		changes["budget"] = *update.Budget
	}
	if req.Bonus != nil {
		update.Bonus = &models.Bonus{Amount: req.Bonus.Amount, Type: models.BonusType(req.Bonus.Type)}
		changes["bonus"] = *update.Bonus
	} else if req.ClearBonus {
		changes["bonus"] = nil
	}

	user, err := h.userService.UpdateSettings(userID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdateSettings, "user", userID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"settings": newSettingsResponse(user)})
}
