package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/models"
	"smartguider/internal/pagination"
	"smartguider/internal/services"
)

const testGoalID = "0190a3b2-7c4d-7e5f-8a6b-bbbbbbbbbbbb"

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn   func(userID, name string, category models.GoalCategory, targetAmount float64, deadline time.Time) (*services.SavingsGoalView, error)
	getUserGoalsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[services.SavingsGoalView], error)
	getGoalByIDFn  func(userID, goalID string) (*services.SavingsGoalView, error)
	updateGoalFn   func(userID, goalID string, update services.GoalUpdate) (*services.SavingsGoalView, error)
	deleteGoalFn   func(userID, goalID string) error
}

func (m *mockGoalService) CreateGoal(userID, name string, category models.GoalCategory, targetAmount float64, deadline time.Time) (*services.SavingsGoalView, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, category, targetAmount, deadline)
	}
	return &services.SavingsGoalView{}, nil
}

func (m *mockGoalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[services.SavingsGoalView], error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]services.SavingsGoalView{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockGoalService) GetGoalByID(userID, goalID string) (*services.SavingsGoalView, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(userID, goalID)
	}
	return &services.SavingsGoalView{}, nil
}

func (m *mockGoalService) UpdateGoal(userID, goalID string, update services.GoalUpdate) (*services.SavingsGoalView, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(userID, goalID, update)
	}
	return &services.SavingsGoalView{}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

func (m *mockGoalService) ListAllGoals(context.Context, string) ([]models.SavingsGoal, error) {
	return nil, nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/goals", handler.CreateGoal)
	auth.GET("/goals", handler.GetUserGoals)
	auth.GET("/goals/:id", handler.GetGoalByID)
	auth.PUT("/goals/:id", handler.UpdateGoal)
	auth.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 with progress", func(t *testing.T) {
		var gotDeadline time.Time
		goalSvc := &mockGoalService{
			createGoalFn: func(userID, name string, category models.GoalCategory, target float64, deadline time.Time) (*services.SavingsGoalView, error) {
				gotDeadline = deadline
				return &services.SavingsGoalView{
					SavingsGoal: models.SavingsGoal{Base: models.Base{ID: testGoalID}, UserID: userID, Name: name, Category: category, TargetAmount: target, Deadline: deadline},
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(goalSvc, audit, time.UTC))

		rec := doRequest(r, "POST", "/goals",
			`{"name":"Goa trip","category":"Travel","target_amount":40000,"deadline":"2024-12-31"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["name"] != "Goa trip" || goal["progress"].(float64) != 0 {
			t.Errorf("unexpected goal %v", goal)
		}
		if !gotDeadline.Equal(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected deadline %v", gotDeadline)
		}
		if entry := audit.last(t); entry.resourceType != "savings_goal" || entry.resourceID != testGoalID {
			t.Errorf("unexpected audit entry %+v", entry)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing deadline", `{"name":"Goa trip","category":"Travel","target_amount":40000}`},
		{"unknown category", `{"name":"Goa trip","category":"Yacht","target_amount":40000,"deadline":"2024-12-31"}`},
		{"zero target", `{"name":"Goa trip","category":"Travel","target_amount":0,"deadline":"2024-12-31"}`},
		{"malformed deadline", `{"name":"Goa trip","category":"Travel","target_amount":40000,"deadline":"soon"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}, time.UTC))

			rec := doRequest(r, "POST", "/goals", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestGoalHandler_GetUserGoals(t *testing.T) {
	goalSvc := &mockGoalService{
		getUserGoalsFn: func(string, pagination.PageRequest) (*pagination.PageResponse[services.SavingsGoalView], error) {
			resp := pagination.NewPageResponse([]services.SavingsGoalView{
				{SavingsGoal: models.SavingsGoal{Name: "Laptop", TargetAmount: 80000, CurrentAmount: 20000}, Progress: 25},
			}, 1, 20, 1)
			return &resp, nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}, time.UTC))

	rec := doRequest(r, "GET", "/goals", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 || data[0].(map[string]interface{})["progress"].(float64) != 25 {
		t.Errorf("unexpected goals %v", data)
	}
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	t.Run("records progress", func(t *testing.T) {
		var got services.GoalUpdate
		goalSvc := &mockGoalService{
			updateGoalFn: func(_, _ string, update services.GoalUpdate) (*services.SavingsGoalView, error) {
				got = update
				return &services.SavingsGoalView{Progress: 50}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}, time.UTC))

		rec := doRequest(r, "PUT", "/goals/"+testGoalID, `{"current_amount":20000,"category":"Gadget"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.CurrentAmount == nil || *got.CurrentAmount != 20000 {
			t.Errorf("expected current amount 20000, got %v", got.CurrentAmount)
		}
		if got.Category == nil || *got.Category != models.GoalCategoryGadget {
			t.Errorf("expected Gadget, got %v", got.Category)
		}
	})

	t.Run("returns 400 on negative progress", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}, time.UTC))

		rec := doRequest(r, "PUT", "/goals/"+testGoalID, `{"current_amount":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for another user's goal", func(t *testing.T) {
		goalSvc := &mockGoalService{
			updateGoalFn: func(_, _ string, _ services.GoalUpdate) (*services.SavingsGoalView, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}, time.UTC))

		rec := doRequest(r, "PUT", "/goals/"+testGoalID, `{"name":"x"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	audit := &mockAuditService{}
	r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, audit, time.UTC))

	rec := doRequest(r, "DELETE", "/goals/"+testGoalID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if audit.last(t).action != services.AuditActionDelete {
		t.Error("expected a delete audit entry")
	}

	rec = doRequest(r, "DELETE", "/goals/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}
