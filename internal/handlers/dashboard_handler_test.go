package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/finance"
	"smartguider/internal/services"
)

type mockDashboardService struct {
	getDashboardFn func(ctx context.Context, userID string) (*services.Dashboard, error)
	getHistoryFn   func(ctx context.Context, userID string) (*finance.MonthlyComparison, error)
}

func (m *mockDashboardService) GetDashboard(ctx context.Context, userID string) (*services.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(ctx, userID)
	}
	return &services.Dashboard{}, nil
}

func (m *mockDashboardService) GetHistory(ctx context.Context, userID string) (*finance.MonthlyComparison, error) {
	if m.getHistoryFn != nil {
		return m.getHistoryFn(ctx, userID)
	}
	return &finance.MonthlyComparison{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/dashboard", handler.GetDashboard)
	auth.GET("/dashboard/history", handler.GetHistory)
	return r
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("returns the dashboard", func(t *testing.T) {
		var gotUser string
		dashboardSvc := &mockDashboardService{
			getDashboardFn: func(_ context.Context, userID string) (*services.Dashboard, error) {
				gotUser = userID
				return &services.Dashboard{
					Month:    "June 2024",
					Spending: finance.TypeTotals{Needs: 30000, Wants: 10000, Total: 40000},
					Report:   finance.Report{Kind: finance.ReportAligned, Message: "On track"},
					Risk:     finance.RiskProjection{State: finance.RiskOnTrack},
				}, nil
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(dashboardSvc))

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != testUserID {
			t.Errorf("expected user %s, got %s", testUserID, gotUser)
		}
		body := parseJSON(t, rec)
		if body["month"] != "June 2024" {
			t.Errorf("unexpected month %v", body["month"])
		}
		if body["spending"].(map[string]interface{})["needs"].(float64) != 30000 {
			t.Errorf("unexpected spending %v", body["spending"])
		}
		if body["risk"].(map[string]interface{})["state"] != string(finance.RiskOnTrack) {
			t.Errorf("unexpected risk %v", body["risk"])
		}
	})

	t.Run("returns 404 for unknown user", func(t *testing.T) {
		dashboardSvc := &mockDashboardService{
			getDashboardFn: func(context.Context, string) (*services.Dashboard, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(dashboardSvc))

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "USER_NOT_FOUND")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		r := gin.New()
		r.GET("/dashboard", NewDashboardHandler(&mockDashboardService{}).GetDashboard)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestDashboardHandler_GetHistory(t *testing.T) {
	dashboardSvc := &mockDashboardService{
		getHistoryFn: func(context.Context, string) (*finance.MonthlyComparison, error) {
			return &finance.MonthlyComparison{
				HasPriorData:  true,
				CurrentLabel:  "Jan 2024",
				PreviousLabel: "Dec 2023",
				Series: []finance.SeriesPoint{
					{Name: "Needs", Current: 9000, Previous: 8000},
				},
			}, nil
		},
	}
	r := setupDashboardRouter(NewDashboardHandler(dashboardSvc))

	rec := doRequest(r, "GET", "/dashboard/history", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	comparison := parseJSON(t, rec)["comparison"].(map[string]interface{})
	if comparison["previous_label"] != "Dec 2023" || comparison["has_prior_data"] != true {
		t.Errorf("unexpected comparison %v", comparison)
	}
	series := comparison["series"].([]interface{})
	if series[0].(map[string]interface{})["previous"].(float64) != 8000 {
		t.Errorf("unexpected series %v", series)
	}
}
