// ABOUTME: Tests for deal MCP tool handlers
// ABOUTME: Covers creation, stage moves, and probability resets
package handlers

import (
	"context"
	"testing"
)

func TestCreateDealHandler(t *testing.T) {
	s := setupTestStore(t)
	handler := NewDealHandlers(s)

	_, out, err := handler.CreateDeal(context.Background(), nil, CreateDealInput{
		Title:   "Platform License",
		Company: "NovaTech",
		Value:   85000,
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	if out.ID == "" {
		t.Error("ID was not set")
	}
	if out.Stage != "Lead" {
		t.Errorf("Expected default stage Lead, got %v", out.Stage)
	}
	if out.Probability != 10 {
		t.Errorf("Expected default probability 10, got %d", out.Probability)
	}
}

func TestCreateDealRejectsNegativeValue(t *testing.T) {
	s := setupTestStore(t)
	handler := NewDealHandlers(s)

	_, _, err := handler.CreateDeal(context.Background(), nil, CreateDealInput{
		Title:   "Bad Deal",
		Company: "Acme",
		Value:   -5,
	})
	if err == nil {
		t.Error("expected error for negative value")
	}
}

func TestMoveDealStageHandler(t *testing.T) {
	s := setupTestStore(t)
	handler := NewDealHandlers(s)

	_, created, err := handler.CreateDeal(context.Background(), nil, CreateDealInput{
		Title:   "Platform License",
		Company: "NovaTech",
		Value:   85000,
	})
	if err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}

	// Manually boost probability, then move: the stage table wins
	prob := 90
	if _, _, err := handler.UpdateDeal(context.Background(), nil, UpdateDealInput{ID: created.ID, Probability: &prob}); err != nil {
		t.Fatalf("UpdateDeal failed: %v", err)
	}

	_, moved, err := handler.MoveDealStage(context.Background(), nil, MoveDealStageInput{
		ID:    created.ID,
		Stage: "Won",
	})
	if err != nil {
		t.Fatalf("MoveDealStage failed: %v", err)
	}

	if moved.Stage != "Won" {
		t.Errorf("Expected stage Won, got %v", moved.Stage)
	}
	if moved.Probability != 100 {
		t.Errorf("Expected probability 100, got %d", moved.Probability)
	}

	if _, _, err := handler.MoveDealStage(context.Background(), nil, MoveDealStageInput{ID: created.ID, Stage: "Backlog"}); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestFindDealsByStage(t *testing.T) {
	s := setupTestStore(t)
	handler := NewDealHandlers(s)

	for _, input := range []CreateDealInput{
		{Title: "One", Company: "Acme", Stage: "Lead"},
		{Title: "Two", Company: "Acme", Stage: "Won"},
		{Title: "Three", Company: "Acme", Stage: "Lead"},
	} {
		if _, _, err := handler.CreateDeal(context.Background(), nil, input); err != nil {
			t.Fatalf("CreateDeal failed: %v", err)
		}
	}

	_, out, err := handler.FindDeals(context.Background(), nil, FindDealsInput{Stage: "Lead"})
	if err != nil {
		t.Fatalf("FindDeals failed: %v", err)
	}
	if len(out.Deals) != 2 {
		t.Errorf("Expected 2 lead deals, got %d", len(out.Deals))
	}
}
