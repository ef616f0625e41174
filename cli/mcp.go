// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the CRM store as stdio tools for assistant integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dirmacs/dcrm/handlers"
	"github.com/dirmacs/dcrm/store"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(s *store.Store) error {
	log.Println("Starting DCRM MCP Server...")

	contactHandlers := handlers.NewContactHandlers(s)
	dealHandlers := handlers.NewDealHandlers(s)
	activityHandlers := handlers.NewActivityHandlers(s)
	queryHandlers := handlers.NewQueryHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dcrm",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a new contact to the CRM",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Fuzzy-search contacts by name, email, or company",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact's information",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact by ID",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_deal",
		Description: "Create a new deal with company, value, and optional contact",
	}, dealHandlers.CreateDeal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_deals",
		Description: "List or fuzzy-search deals, optionally filtered by stage",
	}, dealHandlers.FindDeals)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_deal",
		Description: "Update an existing deal's title, value, probability, or notes",
	}, dealHandlers.UpdateDeal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_deal_stage",
		Description: "Move a deal to a new pipeline stage, resetting probability to the stage default",
	}, dealHandlers.MoveDealStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_deal",
		Description: "Delete a deal by ID",
	}, dealHandlers.DeleteDeal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a note, call, email, meeting, or task, optionally linked to a contact and deal",
	}, activityHandlers.LogActivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_activities",
		Description: "List recent activities or those linked to a contact or deal",
	}, activityHandlers.FindActivities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_activity",
		Description: "Toggle an activity's completed flag",
	}, activityHandlers.ToggleActivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_activity",
		Description: "Delete an activity by ID",
	}, activityHandlers.DeleteActivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_crm",
		Description: "Fuzzy search across contacts, deals, and activities, ranked by match score",
	}, queryHandlers.SearchCRM)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pipeline_stats",
		Description: "Pipeline totals, weighted value, won revenue, and per-stage breakdown",
	}, queryHandlers.PipelineStats)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
