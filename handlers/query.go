// ABOUTME: Search and pipeline statistics MCP tool handlers
// ABOUTME: Implements search_crm and pipeline_stats tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

type QueryHandlers struct {
	store *store.Store
}

func NewQueryHandlers(s *store.Store) *QueryHandlers {
	return &QueryHandlers{store: s}
}

type SearchCRMInput struct {
	Query string `json:"query" jsonschema:"Fuzzy search query across contacts, deals, and activities (required)"`
}

type SearchResultOutput struct {
	Kind     string `json:"kind"`
	Score    int    `json:"score"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type SearchCRMOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

func (h *QueryHandlers) SearchCRM(_ context.Context, request *mcp.CallToolRequest, input SearchCRMInput) (*mcp.CallToolResult, SearchCRMOutput, error) {
	if input.Query == "" {
		return nil, SearchCRMOutput{}, fmt.Errorf("query is required")
	}

	results := h.store.Search(input.Query)

	out := make([]SearchResultOutput, len(results))
	for i, r := range results {
		id := ""
		switch r.Kind {
		case store.KindContact:
			id = r.Contact.ID
		case store.KindDeal:
			id = r.Deal.ID
		case store.KindActivity:
			id = r.Activity.ID
		}
		out[i] = SearchResultOutput{
			Kind:     string(r.Kind),
			Score:    r.Score,
			ID:       id,
			Title:    r.Title,
			Subtitle: r.Subtitle,
		}
	}

	return nil, SearchCRMOutput{Results: out, Count: len(out)}, nil
}

type PipelineStatsInput struct{}

type StageStatsOutput struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type PipelineStatsOutput struct {
	TotalPipelineValue    float64            `json:"total_pipeline_value"`
	WeightedPipelineValue float64            `json:"weighted_pipeline_value"`
	WonDealsValue         float64            `json:"won_deals_value"`
	ActiveDealsCount      int                `json:"active_deals_count"`
	PendingTasksCount     int                `json:"pending_tasks_count"`
	TotalContacts         int                `json:"total_contacts"`
	ByStage               []StageStatsOutput `json:"by_stage"`
}

func (h *QueryHandlers) PipelineStats(_ context.Context, request *mcp.CallToolRequest, input PipelineStatsInput) (*mcp.CallToolResult, PipelineStatsOutput, error) {
	out := PipelineStatsOutput{
		TotalPipelineValue:    h.store.TotalPipelineValue(),
		WeightedPipelineValue: h.store.WeightedPipelineValue(),
		WonDealsValue:         h.store.WonDealsValue(),
		ActiveDealsCount:      h.store.ActiveDealsCount(),
		PendingTasksCount:     h.store.PendingTasksCount(),
		TotalContacts:         len(h.store.Data().Contacts),
	}

	for _, stage := range models.AllStages() {
		deals := h.store.DealsByStage(stage)
		value := 0.0
		for _, d := range deals {
			value += d.Value
		}
		out.ByStage = append(out.ByStage, StageStatsOutput{
			Stage: string(stage),
			Count: len(deals),
			Value: value,
		})
	}

	return nil, out, nil
}
