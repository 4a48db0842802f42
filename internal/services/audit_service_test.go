package services

import (
	"testing"

	"smartguider/internal/models"
	"smartguider/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	user := testutil.CreateTestUser(t, db)

	svc.Log(user.ID, AuditActionUpdateSettings, "user", user.ID, "127.0.0.1", map[string]interface{}{"salary": 50000})
	svc.Log(user.ID, AuditActionExport, "expense", "", "127.0.0.1", nil)

	var count int64
	db.Model(&models.AuditLog{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 entries, got %d", count)
	}

	var settings models.AuditLog
	if err := db.Where("action = ?", AuditActionUpdateSettings).First(&settings).Error; err != nil {
		t.Fatalf("expected a settings entry: %v", err)
	}
	if settings.ResourceID != user.ID || settings.Changes["salary"] != 50000.0 {
		t.Errorf("unexpected settings entry %+v", settings)
	}

	var export models.AuditLog
	if err := db.Where("action = ?", AuditActionExport).First(&export).Error; err != nil {
		t.Fatalf("expected an export entry: %v", err)
	}
	if export.ResourceID != "" || len(export.Changes) != 0 {
		t.Errorf("unexpected export entry %+v", export)
	}
}

func TestAuditLog_StorageFailureIsSwallowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAuditService(db)
	testutil.TeardownTestDB(t, db)

	// must not panic or block on a closed database
	svc.Log("0190a3b2-7c4d-7e5f-8a6b-1c2d3e4f5a6b", AuditActionDelete, "goal", "x", "", nil)
}
