// ABOUTME: Entry point for the dcrm desktop CRM
// ABOUTME: Routes to the TUI, MCP server, or CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/dirmacs/dcrm/cli"
	"github.com/dirmacs/dcrm/store"
	"github.com/dirmacs/dcrm/tui"
)

const version = "0.1.0"

func main() {
	// Loads .env if present; env vars are optional
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataPath := flag.String("data-path", "", "Data file path (default: ~/.local/share/dcrm/data.json)")
	initOnly := flag.Bool("init", false, "Initialize the data file and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("dcrm version %s\n", version)
		os.Exit(0)
	}

	s := store.Open(getDataPath(*dataPath))

	if *initOnly {
		s.Save()
		log.Printf("Data file initialized: %s", s.Path())
		os.Exit(0)
	}

	args := flag.Args()

	// No command means the full-screen TUI
	if len(args) == 0 {
		if err := tui.Run(s); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}
		return
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tui":
		if err := tui.Run(s); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "mcp":
		if err := cli.MCPCommand(s); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "dashboard":
		if err := cli.DashboardCommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "search":
		if err := cli.SearchCommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		switch crmCommand {
		// Contact commands
		case "add-contact":
			if err := cli.AddContactCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-contacts":
			if err := cli.ListContactsCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update-contact":
			if err := cli.UpdateContactCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-contact":
			if err := cli.DeleteContactCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Deal commands
		case "add-deal":
			if err := cli.AddDealCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-deals":
			if err := cli.ListDealsCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update-deal":
			if err := cli.UpdateDealCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "move-deal":
			if err := cli.MoveDealCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-deal":
			if err := cli.DeleteDealCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Activity commands
		case "add-activity":
			if err := cli.AddActivityCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-activities":
			if err := cli.ListActivitiesCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "complete-activity":
			if err := cli.CompleteActivityCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-activity":
			if err := cli.DeleteActivityCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDataPath(dataPath string) string {
	if dataPath != "" {
		return dataPath
	}
	if env := os.Getenv("DCRM_DATA_PATH"); env != "" {
		return env
	}
	return filepath.Join(xdg.DataHome, "dcrm", "data.json")
}

func printUsage() {
	fmt.Printf(`dcrm v%s - Desktop CRM

USAGE:
  dcrm [global flags] [command] [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-path <path>     Data file path (default: ~/.local/share/dcrm/data.json)
  --init                 Initialize the data file and exit

COMMANDS:
  (none)                 Launch the full-screen TUI
  tui                    Launch the full-screen TUI
  mcp                    Start MCP server (for assistant integration)
  dashboard              Print the ASCII pipeline dashboard
  search <query>         Fuzzy search across contacts, deals, and activities
  crm                    CRM management commands

CRM COMMANDS:
  dcrm crm add-contact      Add a new contact
    --first <name>            First name (required)
    --last <name>             Last name (required)
    --email <email>           Email address (required)
    --phone <phone>           Phone number
    --company <company>       Company name
    --position <title>        Job title
    --tags <a,b,c>            Comma-separated tags
    --notes <notes>           Notes about contact

  dcrm crm list-contacts    List contacts

  dcrm crm update-contact [flags] <id>  Update an existing contact
    Same flags as add-contact; flags must come before the contact ID

  dcrm crm delete-contact <id>  Delete a contact

  dcrm crm add-deal         Add a new deal
    --title <title>           Deal title (required)
    --company <company>       Company name (required)
    --value <amount>          Deal value in dollars
    --stage <stage>           Stage (Lead, Qualified, Proposal, Negotiation, Won, Lost)
    --contact <id>            Linked contact ID
    --close <YYYY-MM-DD>      Expected close date
    --notes <notes>           Notes

  dcrm crm list-deals       List deals
    --stage <stage>           Filter by stage

  dcrm crm update-deal [flags] <id>  Update an existing deal
  dcrm crm move-deal <id> <stage>    Move a deal to a new stage
  dcrm crm delete-deal <id>          Delete a deal

  dcrm crm add-activity     Log an activity
    --type <type>             Note, Call, Email, Meeting, or Task (default: Note)
    --title <title>           Activity title (required)
    --description <text>      Details
    --contact <id>            Linked contact ID
    --deal <id>               Linked deal ID
    --due <YYYY-MM-DD>        Due date (tasks)

  dcrm crm list-activities  List activities, newest first
    --pending                 Only incomplete tasks

  dcrm crm complete-activity <id>  Toggle an activity's completed flag
  dcrm crm delete-activity <id>    Delete an activity

EXAMPLES:
  # Launch the TUI
  dcrm

  # Add a contact
  dcrm crm add-contact --first "John" --last "Smith" --email "john@acme.com" --company "Acme Corp"

  # Add a deal and move it along the pipeline
  dcrm crm add-deal --title "Enterprise License" --company "Acme Corp" --value 50000
  dcrm crm move-deal <id> Proposal

  # Search everything
  dcrm search acme

`, version)
}
