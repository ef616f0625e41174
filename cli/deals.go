// ABOUTME: Deal CLI commands
// ABOUTME: Human-friendly commands for managing the deal pipeline
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

// AddDealCommand adds a new deal.
func AddDealCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-deal", flag.ExitOnError)
	title := fs.String("title", "", "Deal title (required)")
	company := fs.String("company", "", "Company name (required)")
	value := fs.Float64("value", 0, "Deal value")
	stage := fs.String("stage", string(models.StageLead), "Stage (Lead, Qualified, Proposal, Negotiation, Won, Lost)")
	contactID := fs.String("contact", "", "Contact ID to link")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if *company == "" {
		return fmt.Errorf("--company is required")
	}
	if *value < 0 {
		return fmt.Errorf("--value must be non-negative")
	}

	parsedStage, err := models.ParseStage(*stage)
	if err != nil {
		return err
	}

	deal := &models.Deal{
		Title:       *title,
		Company:     *company,
		Value:       *value,
		Stage:       parsedStage,
		Probability: parsedStage.DefaultProbability(),
		Notes:       *notes,
	}

	if *contactID != "" {
		if contact := resolveContact(s, *contactID); contact != nil {
			deal.ContactID = contact.ID
		} else {
			fmt.Printf("  Warning: contact %s not found, leaving deal unlinked\n", *contactID)
		}
	}

	s.AddDeal(deal)

	fmt.Printf("✓ Deal created: %s (ID: %s)\n", deal.Title, deal.ID)
	fmt.Printf("  Company: %s\n", deal.Company)
	fmt.Printf("  Value: %s\n", deal.FormatValue())
	fmt.Printf("  Stage: %s (%d%%)\n", deal.Stage.DisplayName(), deal.Probability)

	return nil
}

// ListDealsCommand lists deals, optionally filtered by stage.
func ListDealsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-deals", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by stage")
	_ = fs.Parse(args)

	deals := s.Data().Deals
	if *stage != "" {
		parsedStage, err := models.ParseStage(*stage)
		if err != nil {
			return err
		}
		deals = s.DealsByStage(parsedStage)
	}

	if len(deals) == 0 {
		fmt.Println("No deals found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TITLE\tCOMPANY\tVALUE\tSTAGE\tPROB\tCONTACT\tID")
	_, _ = fmt.Fprintln(w, "-----\t-------\t-----\t-----\t----\t-------\t--")

	for _, deal := range deals {
		contactName := "-"
		if contact := s.ContactByID(deal.ContactID); contact != nil {
			contactName = contact.FullName()
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\t%s\n",
			deal.Title, deal.Company, deal.FormatValue(),
			deal.Stage.DisplayName(), deal.Probability, contactName,
			shortID(deal.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d deal(s)  pipeline %s  weighted %s\n",
		len(deals),
		models.FormatCurrency(s.TotalPipelineValue()),
		models.FormatCurrency(s.WeightedPipelineValue()))
	return nil
}

// UpdateDealCommand updates an existing deal's fields.
func UpdateDealCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-deal", flag.ExitOnError)
	title := fs.String("title", "", "Deal title")
	company := fs.String("company", "", "Company name")
	value := fs.Float64("value", -1, "Deal value")
	probability := fs.Int("probability", -1, "Probability percentage (0-100)")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("deal ID is required")
	}

	deal := resolveDeal(s, fs.Arg(0))
	if deal == nil {
		return fmt.Errorf("deal not found: %s", fs.Arg(0))
	}

	if *title != "" {
		deal.Title = *title
	}
	if *company != "" {
		deal.Company = *company
	}
	if *value >= 0 {
		deal.Value = *value
	}
	if *probability >= 0 {
		if *probability > 100 {
			return fmt.Errorf("--probability must be 0-100")
		}
		deal.Probability = *probability
	}
	if *notes != "" {
		deal.Notes = *notes
	}
	deal.UpdatedAt = time.Now()

	s.UpdateDeal(*deal)

	fmt.Printf("✓ Deal updated: %s\n", deal.Title)
	return nil
}

// MoveDealCommand moves a deal to a new stage, resetting its probability
// to the stage default.
func MoveDealCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("move-deal", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: move-deal <id> <stage>")
	}

	deal := resolveDeal(s, fs.Arg(0))
	if deal == nil {
		return fmt.Errorf("deal not found: %s", fs.Arg(0))
	}

	stage, err := models.ParseStage(fs.Arg(1))
	if err != nil {
		return err
	}

	s.UpdateDealStage(deal.ID, stage)

	moved := s.DealByID(deal.ID)
	fmt.Printf("✓ Deal moved: %s → %s (%d%%)\n",
		moved.Title, moved.Stage.DisplayName(), moved.Probability)
	return nil
}

// DeleteDealCommand deletes a deal by ID.
func DeleteDealCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-deal", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("deal ID is required")
	}

	deal := resolveDeal(s, fs.Arg(0))
	if deal == nil {
		return fmt.Errorf("deal not found: %s", fs.Arg(0))
	}

	s.DeleteDeal(deal.ID)
	fmt.Printf("✓ Deal deleted: %s\n", deal.Title)
	return nil
}

// resolveDeal finds a deal by full or 8-char short ID.
func resolveDeal(s *store.Store, id string) *models.Deal {
	if deal := s.DealByID(id); deal != nil {
		return deal
	}
	for _, deal := range s.Data().Deals {
		if strings.HasPrefix(deal.ID, id) {
			d := deal
			return &d
		}
	}
	return nil
}
