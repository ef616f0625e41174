// ABOUTME: Tests for activity MCP tool handlers
// ABOUTME: Validates logging, listing limits, and toggle behavior
package handlers

import (
	"context"
	"testing"

	"github.com/dirmacs/dcrm/models"
)

func TestLogActivityHandler(t *testing.T) {
	s := setupTestStore(t)
	handler := NewActivityHandlers(s)

	_, out, err := handler.LogActivity(context.Background(), nil, LogActivityInput{
		Type:  "Call",
		Title: "Discovery call",
	})
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}

	if out.ID == "" {
		t.Error("ID was not set")
	}
	if out.Type != "Call" {
		t.Errorf("Expected type 'Call', got %v", out.Type)
	}
	if out.Completed {
		t.Error("New activity should start incomplete")
	}
}

func TestLogActivityRejectsUnknownType(t *testing.T) {
	s := setupTestStore(t)
	handler := NewActivityHandlers(s)

	if _, _, err := handler.LogActivity(context.Background(), nil, LogActivityInput{Type: "Fax", Title: "x"}); err == nil {
		t.Error("expected error for unknown activity type")
	}
}

func TestFindActivitiesRespectsLimit(t *testing.T) {
	s := setupTestStore(t)
	handler := NewActivityHandlers(s)

	for i := 0; i < 5; i++ {
		s.AddActivity(&models.Activity{ActivityType: models.ActivityNote, Title: "note"})
	}

	_, out, err := handler.FindActivities(context.Background(), nil, FindActivitiesInput{Limit: 3})
	if err != nil {
		t.Fatalf("FindActivities failed: %v", err)
	}
	if len(out.Activities) != 3 {
		t.Errorf("Expected 3 activities, got %d", len(out.Activities))
	}
}

func TestFindActivitiesNegativeLimitUsesDefault(t *testing.T) {
	s := setupTestStore(t)
	handler := NewActivityHandlers(s)

	s.AddActivity(&models.Activity{ActivityType: models.ActivityNote, Title: "only one"})

	_, out, err := handler.FindActivities(context.Background(), nil, FindActivitiesInput{Limit: -1})
	if err != nil {
		t.Fatalf("FindActivities failed: %v", err)
	}
	if len(out.Activities) != 1 {
		t.Errorf("Expected 1 activity, got %d", len(out.Activities))
	}
}

func TestToggleActivityHandler(t *testing.T) {
	s := setupTestStore(t)
	handler := NewActivityHandlers(s)

	activity := models.Activity{ActivityType: models.ActivityTask, Title: "Send proposal"}
	s.AddActivity(&activity)

	_, out, err := handler.ToggleActivity(context.Background(), nil, ToggleActivityInput{ID: activity.ID})
	if err != nil {
		t.Fatalf("ToggleActivity failed: %v", err)
	}
	if !out.Completed {
		t.Error("Expected activity to be completed after toggle")
	}
}
