// ABOUTME: Tests for search and pipeline statistics MCP tools
// ABOUTME: Validates result shape, caps, and aggregate math
package handlers

import (
	"context"
	"testing"
)

func TestSearchCRMHandler(t *testing.T) {
	s := setupTestStore(t)

	contactHandler := NewContactHandlers(s)
	dealHandler := NewDealHandlers(s)

	if _, _, err := contactHandler.AddContact(context.Background(), nil, AddContactInput{
		FirstName: "Sarah", LastName: "Chen", Email: "sarah@novatech.io", Company: "NovaTech",
	}); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}
	if _, _, err := dealHandler.CreateDeal(context.Background(), nil, CreateDealInput{
		Title: "NovaTech License", Company: "NovaTech", Value: 85000,
	}); err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	handler := NewQueryHandlers(s)

	_, out, err := handler.SearchCRM(context.Background(), nil, SearchCRMInput{Query: "nova"})
	if err != nil {
		t.Fatalf("SearchCRM failed: %v", err)
	}

	if out.Count == 0 {
		t.Fatal("expected matches")
	}
	if out.Count > 10 {
		t.Errorf("result cap exceeded: %d", out.Count)
	}
	for _, r := range out.Results {
		if r.ID == "" {
			t.Error("result missing entity ID")
		}
	}

	if _, _, err := handler.SearchCRM(context.Background(), nil, SearchCRMInput{}); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestPipelineStatsHandler(t *testing.T) {
	s := setupTestStore(t)
	dealHandler := NewDealHandlers(s)

	for _, input := range []CreateDealInput{
		{Title: "A", Company: "Acme", Value: 100, Stage: "Lead"},
		{Title: "B", Company: "Acme", Value: 200, Stage: "Won"},
		{Title: "C", Company: "Acme", Value: 300, Stage: "Qualified"},
	} {
		if _, _, err := dealHandler.CreateDeal(context.Background(), nil, input); err != nil {
			t.Fatalf("CreateDeal failed: %v", err)
		}
	}

	handler := NewQueryHandlers(s)
	_, out, err := handler.PipelineStats(context.Background(), nil, PipelineStatsInput{})
	if err != nil {
		t.Fatalf("PipelineStats failed: %v", err)
	}

	if out.TotalPipelineValue != 400 {
		t.Errorf("Expected pipeline value 400, got %.0f", out.TotalPipelineValue)
	}
	if out.WonDealsValue != 200 {
		t.Errorf("Expected won value 200, got %.0f", out.WonDealsValue)
	}
	if out.ActiveDealsCount != 2 {
		t.Errorf("Expected 2 active deals, got %d", out.ActiveDealsCount)
	}
	if len(out.ByStage) != 6 {
		t.Errorf("Expected 6 stage rows, got %d", len(out.ByStage))
	}
}
