package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/finance"
	"smartguider/internal/models"
	"smartguider/internal/pagination"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

func newInvestmentView(inv models.Investment) InvestmentView {
	return InvestmentView{Investment: inv, GainLoss: finance.GainLoss(inv)}
}

// CreateInvestment records a holding.
func (s *investmentService) CreateInvestment(
	userID, name string,
	investmentType models.InvestmentType,
	purchaseDate time.Time,
	quantity *float64,
	purchasePrice, currentValue float64,
) (*InvestmentView, error) {
	if purchasePrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase price must be greater than zero")
	}
	if currentValue < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current value cannot be negative")
	}
	if quantity != nil && *quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}

	inv := &models.Investment{
		UserID:        userID,
		Name:          name,
		Type:          investmentType,
		PurchaseDate:  purchaseDate,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentValue:  currentValue,
	}

	if err := s.db.Create(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := newInvestmentView(*inv)
	return &view, nil
}

// GetUserInvestments returns a page of holdings, most recent purchase first.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[InvestmentView], error) {
	page.Defaults()

	base := s.db.Model(&models.Investment{}).Scopes(models.OwnedBy(userID))

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := base.Order("purchase_date DESC").Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]InvestmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, newInvestmentView(inv))
	}

	result := pagination.NewPageResponse(views, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *investmentService) findInvestment(userID, investmentID string) (*models.Investment, error) {
	var inv models.Investment
	if err := s.db.Scopes(models.OwnedRecord(investmentID, userID)).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &inv, nil
}

// GetInvestmentByID returns a holding if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*InvestmentView, error) {
	inv, err := s.findInvestment(userID, investmentID)
	if err != nil {
		return nil, err
	}
	view := newInvestmentView(*inv)
	return &view, nil
}

// UpdateInvestment applies the non-nil fields of update.
func (s *investmentService) UpdateInvestment(userID, investmentID string, update InvestmentUpdate) (*InvestmentView, error) {
	inv, err := s.findInvestment(userID, investmentID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.PurchaseDate != nil {
		updates["purchase_date"] = *update.PurchaseDate
	}
	if update.Quantity != nil {
		if *update.Quantity <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
		}
		updates["quantity"] = *update.Quantity
	}
	if update.PurchasePrice != nil {
		if *update.PurchasePrice <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase price must be greater than zero")
		}
		updates["purchase_price"] = *update.PurchasePrice
	}
	if update.CurrentValue != nil {
		if *update.CurrentValue < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current value cannot be negative")
		}
		updates["current_value"] = *update.CurrentValue
	}

	if len(updates) > 0 {
		if err := s.db.Model(inv).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetInvestmentByID(userID, investmentID)
}

// DeleteInvestment soft-deletes a holding.
func (s *investmentService) DeleteInvestment(userID, investmentID string) error {
	inv, err := s.findInvestment(userID, investmentID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(inv).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetPortfolio summarizes all of the user's holdings.
func (s *investmentService) GetPortfolio(userID string) (*finance.Portfolio, error) {
	var investments []models.Investment
	if err := s.db.Scopes(models.OwnedBy(userID)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio := finance.SummarizePortfolio(investments)
	return &portfolio, nil
}
