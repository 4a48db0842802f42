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

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

func newGoalView(goal models.SavingsGoal) SavingsGoalView {
	return SavingsGoalView{SavingsGoal: goal, Progress: finance.GoalProgress(goal)}
}

// CreateGoal creates a savings goal with nothing saved yet.
func (s *goalService) CreateGoal(
	userID, name string,
	category models.GoalCategory,
	targetAmount float64,
	deadline time.Time,
) (*SavingsGoalView, error) {
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          name,
		Category:      category,
		TargetAmount:  targetAmount,
		CurrentAmount: 0,
		Deadline:      deadline,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := newGoalView(*goal)
	return &view, nil
}

// GetUserGoals returns a page of the user's goals ordered by deadline.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[SavingsGoalView], error) {
	page.Defaults()

	base := s.db.Model(&models.SavingsGoal{}).Scopes(models.OwnedBy(userID))

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingsGoal
	if err := base.Order("deadline ASC").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]SavingsGoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, newGoalView(g))
	}

	result := pagination.NewPageResponse(views, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *goalService) findGoal(userID, goalID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Scopes(models.OwnedRecord(goalID, userID)).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// GetGoalByID returns a goal if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID string) (*SavingsGoalView, error) {
	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	view := newGoalView(*goal)
	return &view, nil
}

// UpdateGoal applies the non-nil fields of update, including progress.
func (s *goalService) UpdateGoal(userID, goalID string, update GoalUpdate) (*SavingsGoalView, error) {
	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.TargetAmount != nil {
		if *update.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
		}
		updates["target_amount"] = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		if *update.CurrentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
		}
		updates["current_amount"] = *update.CurrentAmount
	}
	if update.Deadline != nil {
		updates["deadline"] = *update.Deadline
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetGoalByID(userID, goalID)
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListAllGoals returns every goal of the user ordered by deadline.
func (s *goalService) ListAllGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := s.db.WithContext(ctx).Scopes(models.OwnedBy(userID)).Order("deadline ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}
