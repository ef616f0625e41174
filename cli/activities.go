// ABOUTME: Activity CLI commands
// ABOUTME: Logging interactions and managing tasks from the command line
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

// AddActivityCommand logs a new activity.
func AddActivityCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-activity", flag.ExitOnError)
	activityType := fs.String("type", string(models.ActivityNote), "Type (Note, Call, Email, Meeting, Task)")
	title := fs.String("title", "", "Activity title (required)")
	description := fs.String("description", "", "Description")
	contactID := fs.String("contact", "", "Contact ID to link")
	dealID := fs.String("deal", "", "Deal ID to link")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	parsedType, err := models.ParseActivityType(*activityType)
	if err != nil {
		return err
	}

	activity := &models.Activity{
		ActivityType: parsedType,
		Title:        *title,
		Description:  *description,
	}

	if *contactID != "" {
		if contact := resolveContact(s, *contactID); contact != nil {
			activity.ContactID = contact.ID
		} else {
			fmt.Printf("  Warning: contact %s not found, leaving activity unlinked\n", *contactID)
		}
	}
	if *dealID != "" {
		if deal := resolveDeal(s, *dealID); deal != nil {
			activity.DealID = deal.ID
		} else {
			fmt.Printf("  Warning: deal %s not found, leaving activity unlinked\n", *dealID)
		}
	}

	s.AddActivity(activity)

	fmt.Printf("✓ %s logged: %s (ID: %s)\n",
		activity.ActivityType.DisplayName(), activity.Title, activity.ID)
	return nil
}

// ListActivitiesCommand lists activities, optionally filtered.
func ListActivitiesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-activities", flag.ExitOnError)
	activityType := fs.String("type", "", "Filter by type")
	pending := fs.Bool("pending", false, "Only incomplete activities")
	limit := fs.Int("limit", 50, "Maximum results, newest first")
	_ = fs.Parse(args)

	activities := s.RecentActivities(*limit)

	if *activityType != "" {
		parsedType, err := models.ParseActivityType(*activityType)
		if err != nil {
			return err
		}
		filtered := activities[:0]
		for _, a := range activities {
			if a.ActivityType == parsedType {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}
	if *pending {
		filtered := activities[:0]
		for _, a := range activities {
			if !a.Completed {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}

	if len(activities) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, " \tTYPE\tTITLE\tRELATED TO\tDATE\tID")
	_, _ = fmt.Fprintln(w, " \t----\t-----\t----------\t----\t--")

	for _, activity := range activities {
		marker := " "
		if activity.Completed {
			marker = "✓"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, activity.ActivityType.DisplayName(), activity.Title,
			relatedNames(s, &activity), activity.FormatDate(),
			shortID(activity.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d activity(s), %d pending task(s)\n",
		len(activities), s.PendingTasksCount())
	return nil
}

// CompleteActivityCommand toggles an activity's completed flag.
func CompleteActivityCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("complete-activity", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("activity ID is required")
	}

	activity := resolveActivity(s, fs.Arg(0))
	if activity == nil {
		return fmt.Errorf("activity not found: %s", fs.Arg(0))
	}

	s.ToggleActivityCompleted(activity.ID)

	toggled := s.ActivityByID(activity.ID)
	state := "reopened"
	if toggled.Completed {
		state = "completed"
	}
	fmt.Printf("✓ Activity %s: %s\n", state, toggled.Title)
	return nil
}

// DeleteActivityCommand deletes an activity by ID.
func DeleteActivityCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-activity", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("activity ID is required")
	}

	activity := resolveActivity(s, fs.Arg(0))
	if activity == nil {
		return fmt.Errorf("activity not found: %s", fs.Arg(0))
	}

	s.DeleteActivity(activity.ID)
	fmt.Printf("✓ Activity deleted: %s\n", activity.Title)
	return nil
}

// resolveActivity finds an activity by full or 8-char short ID.
func resolveActivity(s *store.Store, id string) *models.Activity {
	if activity := s.ActivityByID(id); activity != nil {
		return activity
	}
	for _, activity := range s.Data().Activities {
		if strings.HasPrefix(activity.ID, id) {
			a := activity
			return &a
		}
	}
	return nil
}

// relatedNames renders the resolved weak references of an activity.
func relatedNames(s *store.Store, activity *models.Activity) string {
	var parts []string
	if contact := s.ContactByID(activity.ContactID); contact != nil {
		parts = append(parts, contact.FullName())
	}
	if deal := s.DealByID(activity.DealID); deal != nil {
		parts = append(parts, deal.Title)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " · ")
}
