package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/models"
	"smartguider/internal/services"
)

func setupSettingsRouter(handler *SettingsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/settings", handler.GetSettings)
	auth.PUT("/settings", handler.UpdateSettings)
	return r
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	t.Run("fills defaults for an unset profile", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "a@example.com", Salary: 50000}, nil
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/settings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		settings := parseJSON(t, rec)["settings"].(map[string]interface{})
		if settings["tax_regime"] != "new" {
			t.Errorf("expected new regime, got %v", settings["tax_regime"])
		}
		budget := settings["budget"].(map[string]interface{})
		if budget["needs"].(float64) != 50 || budget["wants"].(float64) != 30 || budget["savings"].(float64) != 20 {
			t.Errorf("expected 50/30/20, got %v", budget)
		}
		if settings["annual_income"].(float64) != 600000 {
			t.Errorf("expected annual income 600000, got %v", settings["annual_income"])
		}
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("passes the partial update through", func(t *testing.T) {
		var got services.SettingsUpdate
		userSvc := &mockUserService{
			updateSettingsFn: func(id string, update services.SettingsUpdate) (*models.User, error) {
				got = update
				return &models.User{Base: models.Base{ID: id}, Salary: *update.Salary, Budget: update.Budget, Bonus: update.Bonus}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupSettingsRouter(NewSettingsHandler(userSvc, audit))

		rec := doRequest(r, "PUT", "/settings",
			`{"salary":85000,"tax_regime":"old","budget":{"needs":60,"wants":20,"savings":20},"bonus":{"amount":100000,"type":"Joining Bonus"}}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Name != nil || got.TaxRegime == nil || *got.TaxRegime != models.TaxRegimeOld {
			t.Errorf("unexpected update %+v", got)
		}
		if got.Budget == nil || *got.Budget != (models.BudgetSplit{Needs: 60, Wants: 20, Savings: 20}) {
			t.Errorf("unexpected budget %+v", got.Budget)
		}
		if got.Bonus == nil || got.Bonus.Type != models.BonusTypeJoiningBonus {
			t.Errorf("unexpected bonus %+v", got.Bonus)
		}

		settings := parseJSON(t, rec)["settings"].(map[string]interface{})
		if settings["annual_income"].(float64) != 1120000 {
			t.Errorf("expected annual income 1120000, got %v", settings["annual_income"])
		}

		entry := audit.last(t)
		if entry.action != services.AuditActionUpdateSettings || entry.changes["salary"] != 85000.0 {
			t.Errorf("unexpected audit entry %+v", entry)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"negative salary", `{"salary":-1}`},
		{"unknown regime", `{"tax_regime":"flat"}`},
		{"bucket over 100", `{"budget":{"needs":120,"wants":0,"savings":0}}`},
		{"bonus without type", `{"bonus":{"amount":1000}}`},
		{"unknown bonus type", `{"bonus":{"amount":1000,"type":"Gift"}}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupSettingsRouter(NewSettingsHandler(&mockUserService{}, &mockAuditService{}))

			rec := doRequest(r, "PUT", "/settings", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 400 when the split does not add up", func(t *testing.T) {
		userSvc := &mockUserService{
			updateSettingsFn: func(string, services.SettingsUpdate) (*models.User, error) {
				return nil, apperrors.ErrInvalidBudgetSplit
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/settings", `{"budget":{"needs":50,"wants":30,"savings":30}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_BUDGET_SPLIT")
	})
}
