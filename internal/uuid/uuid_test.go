package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	id := New()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestParseAndIsValid(t *testing.T) {
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected parse error")
	}
	got, err := Parse("0190A3B2-7C4D-7E5F-8A6B-1C2D3E4F5A6B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != "0190a3b2-7c4d-7e5f-8a6b-1c2d3e4f5a6b" {
		t.Errorf("expected lower-case form, got %s", got)
	}
	if !IsValid(got) || IsValid("") {
		t.Error("IsValid mismatch")
	}
}
