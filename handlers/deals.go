// ABOUTME: Deal MCP tool handlers
// ABOUTME: Implements create_deal, find_deals, update_deal, and move_deal_stage tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

type DealHandlers struct {
	store *store.Store
}

func NewDealHandlers(s *store.Store) *DealHandlers {
	return &DealHandlers{store: s}
}

type CreateDealInput struct {
	Title     string  `json:"title" jsonschema:"Deal title (required)"`
	Company   string  `json:"company" jsonschema:"Company name (required)"`
	Value     float64 `json:"value,omitempty" jsonschema:"Monetary value (non-negative)"`
	Stage     string  `json:"stage,omitempty" jsonschema:"Stage name (Lead, Qualified, Proposal, Negotiation, Won, Lost); defaults to Lead"`
	ContactID string  `json:"contact_id,omitempty" jsonschema:"Linked contact ID"`
	Notes     string  `json:"notes,omitempty" jsonschema:"Initial notes"`
}

type DealOutput struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	ContactID     string  `json:"contact_id,omitempty"`
	Company       string  `json:"company"`
	Value         float64 `json:"value"`
	WeightedValue float64 `json:"weighted_value"`
	Stage         string  `json:"stage"`
	Probability   int     `json:"probability"`
	ExpectedClose string  `json:"expected_close,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func dealToOutput(d *models.Deal) DealOutput {
	out := DealOutput{
		ID:            d.ID,
		Title:         d.Title,
		ContactID:     d.ContactID,
		Company:       d.Company,
		Value:         d.Value,
		WeightedValue: d.WeightedValue(),
		Stage:         string(d.Stage),
		Probability:   d.Probability,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
	if d.ExpectedClose != nil {
		out.ExpectedClose = d.ExpectedClose.Format(time.RFC3339)
	}
	return out
}

func (h *DealHandlers) CreateDeal(_ context.Context, request *mcp.CallToolRequest, input CreateDealInput) (*mcp.CallToolResult, DealOutput, error) {
	if input.Title == "" {
		return nil, DealOutput{}, fmt.Errorf("title is required")
	}
	if input.Company == "" {
		return nil, DealOutput{}, fmt.Errorf("company is required")
	}
	if input.Value < 0 {
		return nil, DealOutput{}, fmt.Errorf("value must be non-negative")
	}

	stage := models.StageLead
	if input.Stage != "" {
		parsed, err := models.ParseStage(input.Stage)
		if err != nil {
			return nil, DealOutput{}, err
		}
		stage = parsed
	}

	deal := &models.Deal{
		Title:       input.Title,
		ContactID:   input.ContactID,
		Company:     input.Company,
		Value:       input.Value,
		Stage:       stage,
		Probability: stage.DefaultProbability(),
		Notes:       input.Notes,
	}

	h.store.AddDeal(deal)

	return nil, dealToOutput(deal), nil
}

type FindDealsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Fuzzy search query (matches title and company); empty lists all deals"`
	Stage string `json:"stage,omitempty" jsonschema:"Filter by stage name"`
}

type FindDealsOutput struct {
	Deals []DealOutput `json:"deals"`
}

func (h *DealHandlers) FindDeals(_ context.Context, request *mcp.CallToolRequest, input FindDealsInput) (*mcp.CallToolResult, FindDealsOutput, error) {
	var deals []models.Deal
	if input.Query != "" {
		for _, result := range h.store.Search(input.Query) {
			if result.Kind == store.KindDeal {
				deals = append(deals, *result.Deal)
			}
		}
	} else {
		deals = h.store.Data().Deals
	}

	if input.Stage != "" {
		stage, err := models.ParseStage(input.Stage)
		if err != nil {
			return nil, FindDealsOutput{}, err
		}
		var filtered []models.Deal
		for _, d := range deals {
			if d.Stage == stage {
				filtered = append(filtered, d)
			}
		}
		deals = filtered
	}

	result := make([]DealOutput, len(deals))
	for i := range deals {
		result[i] = dealToOutput(&deals[i])
	}

	return nil, FindDealsOutput{Deals: result}, nil
}

type UpdateDealInput struct {
	ID          string   `json:"id" jsonschema:"Deal ID (required)"`
	Title       string   `json:"title,omitempty" jsonschema:"New title"`
	Company     string   `json:"company,omitempty" jsonschema:"New company name"`
	Value       *float64 `json:"value,omitempty" jsonschema:"New monetary value"`
	Probability *int     `json:"probability,omitempty" jsonschema:"New probability percentage (0-100)"`
	Notes       string   `json:"notes,omitempty" jsonschema:"New notes"`
}

func (h *DealHandlers) UpdateDeal(_ context.Context, request *mcp.CallToolRequest, input UpdateDealInput) (*mcp.CallToolResult, DealOutput, error) {
	if input.ID == "" {
		return nil, DealOutput{}, fmt.Errorf("id is required")
	}

	deal := h.store.DealByID(input.ID)
	if deal == nil {
		return nil, DealOutput{}, fmt.Errorf("deal not found: %s", input.ID)
	}

	if input.Title != "" {
		deal.Title = input.Title
	}
	if input.Company != "" {
		deal.Company = input.Company
	}
	if input.Value != nil {
		if *input.Value < 0 {
			return nil, DealOutput{}, fmt.Errorf("value must be non-negative")
		}
		deal.Value = *input.Value
	}
	if input.Probability != nil {
		if *input.Probability < 0 || *input.Probability > 100 {
			return nil, DealOutput{}, fmt.Errorf("probability must be 0-100")
		}
		deal.Probability = *input.Probability
	}
	if input.Notes != "" {
		deal.Notes = input.Notes
	}
	deal.UpdatedAt = time.Now()

	h.store.UpdateDeal(*deal)

	return nil, dealToOutput(deal), nil
}

type MoveDealStageInput struct {
	ID    string `json:"id" jsonschema:"Deal ID (required)"`
	Stage string `json:"stage" jsonschema:"Target stage name (required); probability resets to the stage default"`
}

func (h *DealHandlers) MoveDealStage(_ context.Context, request *mcp.CallToolRequest, input MoveDealStageInput) (*mcp.CallToolResult, DealOutput, error) {
	if input.ID == "" {
		return nil, DealOutput{}, fmt.Errorf("id is required")
	}

	stage, err := models.ParseStage(input.Stage)
	if err != nil {
		return nil, DealOutput{}, err
	}

	if h.store.DealByID(input.ID) == nil {
		return nil, DealOutput{}, fmt.Errorf("deal not found: %s", input.ID)
	}

	h.store.UpdateDealStage(input.ID, stage)

	return nil, dealToOutput(h.store.DealByID(input.ID)), nil
}

type DeleteDealInput struct {
	ID string `json:"id" jsonschema:"Deal ID (required)"`
}

type DeleteDealOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *DealHandlers) DeleteDeal(_ context.Context, request *mcp.CallToolRequest, input DeleteDealInput) (*mcp.CallToolResult, DeleteDealOutput, error) {
	if input.ID == "" {
		return nil, DeleteDealOutput{}, fmt.Errorf("id is required")
	}

	if h.store.DealByID(input.ID) == nil {
		return nil, DeleteDealOutput{Deleted: false}, nil
	}

	h.store.DeleteDeal(input.ID)
	return nil, DeleteDealOutput{Deleted: true}, nil
}
