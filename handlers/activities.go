// ABOUTME: Activity MCP tool handlers
// ABOUTME: Implements log_activity, find_activities, and toggle_activity tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

type ActivityHandlers struct {
	store *store.Store
}

func NewActivityHandlers(s *store.Store) *ActivityHandlers {
	return &ActivityHandlers{store: s}
}

type LogActivityInput struct {
	Type        string `json:"type" jsonschema:"Activity type (Note, Call, Email, Meeting, Task) (required)"`
	Title       string `json:"title" jsonschema:"Activity title (required)"`
	Description string `json:"description,omitempty" jsonschema:"Longer description"`
	ContactID   string `json:"contact_id,omitempty" jsonschema:"Linked contact ID"`
	DealID      string `json:"deal_id,omitempty" jsonschema:"Linked deal ID"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"Due date in RFC 3339 format (chiefly for tasks)"`
}

type ActivityOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ContactID   string `json:"contact_id,omitempty"`
	DealID      string `json:"deal_id,omitempty"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func activityToOutput(a *models.Activity) ActivityOutput {
	out := ActivityOutput{
		ID:          a.ID,
		Type:        string(a.ActivityType),
		Title:       a.Title,
		Description: a.Description,
		ContactID:   a.ContactID,
		DealID:      a.DealID,
		Completed:   a.Completed,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
	if a.DueDate != nil {
		out.DueDate = a.DueDate.Format(time.RFC3339)
	}
	return out
}

func (h *ActivityHandlers) LogActivity(_ context.Context, request *mcp.CallToolRequest, input LogActivityInput) (*mcp.CallToolResult, ActivityOutput, error) {
	if input.Title == "" {
		return nil, ActivityOutput{}, fmt.Errorf("title is required")
	}

	activityType, err := models.ParseActivityType(input.Type)
	if err != nil {
		return nil, ActivityOutput{}, err
	}

	activity := &models.Activity{
		ActivityType: activityType,
		Title:        input.Title,
		Description:  input.Description,
		ContactID:    input.ContactID,
		DealID:       input.DealID,
	}

	if input.DueDate != "" {
		due, err := time.Parse(time.RFC3339, input.DueDate)
		if err != nil {
			return nil, ActivityOutput{}, fmt.Errorf("invalid due_date: %w", err)
		}
		activity.DueDate = &due
	}

	h.store.AddActivity(activity)

	return nil, activityToOutput(activity), nil
}

type FindActivitiesInput struct {
	ContactID string `json:"contact_id,omitempty" jsonschema:"Only activities linked to this contact"`
	DealID    string `json:"deal_id,omitempty" jsonschema:"Only activities linked to this deal"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum results, newest first (default 20)"`
}

type FindActivitiesOutput struct {
	Activities []ActivityOutput `json:"activities"`
}

func (h *ActivityHandlers) FindActivities(_ context.Context, request *mcp.CallToolRequest, input FindActivitiesInput) (*mcp.CallToolResult, FindActivitiesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	var activities []models.Activity
	switch {
	case input.ContactID != "":
		activities = h.store.ActivitiesForContact(input.ContactID)
	case input.DealID != "":
		activities = h.store.ActivitiesForDeal(input.DealID)
	default:
		activities = h.store.RecentActivities(limit)
	}

	if len(activities) > limit {
		activities = activities[:limit]
	}

	result := make([]ActivityOutput, len(activities))
	for i := range activities {
		result[i] = activityToOutput(&activities[i])
	}

	return nil, FindActivitiesOutput{Activities: result}, nil
}

type ToggleActivityInput struct {
	ID string `json:"id" jsonschema:"Activity ID (required)"`
}

func (h *ActivityHandlers) ToggleActivity(_ context.Context, request *mcp.CallToolRequest, input ToggleActivityInput) (*mcp.CallToolResult, ActivityOutput, error) {
	if input.ID == "" {
		return nil, ActivityOutput{}, fmt.Errorf("id is required")
	}

	if h.store.ActivityByID(input.ID) == nil {
		return nil, ActivityOutput{}, fmt.Errorf("activity not found: %s", input.ID)
	}

	h.store.ToggleActivityCompleted(input.ID)

	return nil, activityToOutput(h.store.ActivityByID(input.ID)), nil
}

type DeleteActivityInput struct {
	ID string `json:"id" jsonschema:"Activity ID (required)"`
}

type DeleteActivityOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *ActivityHandlers) DeleteActivity(_ context.Context, request *mcp.CallToolRequest, input DeleteActivityInput) (*mcp.CallToolResult, DeleteActivityOutput, error) {
	if input.ID == "" {
		return nil, DeleteActivityOutput{}, fmt.Errorf("id is required")
	}

	if h.store.ActivityByID(input.ID) == nil {
		return nil, DeleteActivityOutput{Deleted: false}, nil
	}

	h.store.DeleteActivity(input.ID)
	return nil, DeleteActivityOutput{Deleted: true}, nil
}
