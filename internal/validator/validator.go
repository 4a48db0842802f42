// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"smartguider/internal/models"
)

var goalCategories = map[string]bool{
	string(models.GoalCategoryEmergency):     true,
	string(models.GoalCategoryGold):          true,
	string(models.GoalCategoryInvestments):   true,
	string(models.GoalCategoryTravel):        true,
	string(models.GoalCategoryGadget):        true,
	string(models.GoalCategoryEmergencyFund): true,
	string(models.GoalCategoryInvestment):    true,
	string(models.GoalCategoryDownPayment):   true,
	string(models.GoalCategoryEducation):     true,
	string(models.GoalCategoryOther):         true,
}

var investmentTypes = map[string]bool{
	string(models.InvestmentTypeStocks):      true,
	string(models.InvestmentTypeMutualFunds): true,
	string(models.InvestmentTypeETFs):        true,
	string(models.InvestmentTypeCrypto):      true,
	string(models.InvestmentTypeBonds):       true,
	string(models.InvestmentTypeRealEstate):  true,
	string(models.InvestmentTypeOther):       true,
}

var bonusTypes = map[string]bool{
	string(models.BonusTypePromotionHike):    true,
	string(models.BonusTypePerformanceBonus): true,
	string(models.BonusTypeJoiningBonus):     true,
	string(models.BonusTypeOther):            true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("expense_type", validateExpenseType)
		_ = v.RegisterValidation("goal_category", validateGoalCategory)
		_ = v.RegisterValidation("investment_type", validateInvestmentType)
		_ = v.RegisterValidation("tax_regime", validateTaxRegime)
		_ = v.RegisterValidation("bonus_type", validateBonusType)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsExpenseCategory(fl.Field().String())
}

func validateExpenseType(fl validator.FieldLevel) bool {
	return models.ExpenseType(fl.Field().String()).Valid()
}

func validateGoalCategory(fl validator.FieldLevel) bool {
	return goalCategories[fl.Field().String()]
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	return investmentTypes[fl.Field().String()]
}

func validateTaxRegime(fl validator.FieldLevel) bool {
	switch models.TaxRegime(fl.Field().String()) {
	case models.TaxRegimeOld, models.TaxRegimeNew:
		return true
	}
	return false
}

func validateBonusType(fl validator.FieldLevel) bool {
	return bonusTypes[fl.Field().String()]
}
