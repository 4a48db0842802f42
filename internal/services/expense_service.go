package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/finance"
	"smartguider/internal/models"
	"smartguider/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db    *gorm.DB
	clock finance.Clock
}

// NewExpenseService creates a new ExpenseServicer. Expenses created
// without a date are stamped with clock's current time.
func NewExpenseService(db *gorm.DB, clock finance.Clock) ExpenseServicer {
	return &expenseService{db: db, clock: clock}
}

// CreateExpense records a new expense.
func (s *expenseService) CreateExpense(
	userID, category string,
	amount float64,
	expenseType models.ExpenseType,
	date *time.Time,
	description, emoji string,
) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !expenseType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be need or want")
	}

	when := s.clock.Now()
	if date != nil {
		when = *date
	}

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Date:        when,
		Type:        expenseType,
		Description: description,
		Emoji:       emoji,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses returns a page of the user's expenses, newest first.
func (s *expenseService) GetUserExpenses(
	userID string,
	page pagination.PageRequest,
	filter ExpenseFilter,
) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Scopes(models.OwnedBy(userID))
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC").Order("id DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Scopes(models.OwnedRecord(expenseID, userID)).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies the non-nil fields of update.
func (s *expenseService) UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *update.Amount
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be need or want")
		}
		updates["type"] = *update.Type
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Emoji != nil {
		updates["emoji"] = *update.Emoji
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetExpenseByID(userID, expenseID)
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListAllExpenses returns every expense of the user, newest first.
func (s *expenseService) ListAllExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	return listExpenses(s.db.WithContext(ctx), userID)
}

// GetCategoryBreakdown totals all of the user's expenses by category.
func (s *expenseService) GetCategoryBreakdown(userID string) ([]finance.CategoryTotal, error) {
	expenses, err := listExpenses(s.db, userID)
	if err != nil {
		return nil, err
	}
	return finance.CategoryBreakdown(expenses), nil
}

func listExpenses(db *gorm.DB, userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := db.Scopes(models.OwnedBy(userID)).Order("date DESC").Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
