// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts
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

// AddContactCommand adds a new contact.
func AddContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	firstName := fs.String("first", "", "First name (required)")
	lastName := fs.String("last", "", "Last name (required)")
	email := fs.String("email", "", "Email address (required)")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	tags := fs.String("tags", "", "Comma-separated tags")
	notes := fs.String("notes", "", "Notes about the contact")
	_ = fs.Parse(args)

	if *firstName == "" || *lastName == "" {
		return fmt.Errorf("--first and --last are required")
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	contact := &models.Contact{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Phone:     *phone,
		Company:   *company,
		Position:  *position,
		Tags:      splitTags(*tags),
		Notes:     *notes,
	}

	s.AddContact(contact)

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", contact.FullName(), contact.ID)
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	if contact.Company != "" {
		fmt.Printf("  Company: %s\n", contact.Company)
	}

	return nil
}

// ListContactsCommand lists contacts, optionally filtered by a fuzzy query.
func ListContactsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	query := fs.String("query", "", "Fuzzy search by name, email, or company")
	_ = fs.Parse(args)

	contacts := s.SearchContacts(*query)

	if len(contacts) == 0 {
		fmt.Println("No contacts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tCOMPANY\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t-----\t-------\t--")

	for _, contact := range contacts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			contact.FullName(), dash(contact.Email), dash(contact.Phone),
			dash(contact.Company), shortID(contact.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d contact(s)\n", len(contacts))
	return nil
}

// UpdateContactCommand updates an existing contact.
func UpdateContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	firstName := fs.String("first", "", "First name")
	lastName := fs.String("last", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	tags := fs.String("tags", "", "Comma-separated tags (replaces existing)")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("contact ID is required")
	}

	contact := resolveContact(s, fs.Arg(0))
	if contact == nil {
		return fmt.Errorf("contact not found: %s", fs.Arg(0))
	}

	if *firstName != "" {
		contact.FirstName = *firstName
	}
	if *lastName != "" {
		contact.LastName = *lastName
	}
	if *email != "" {
		contact.Email = *email
	}
	if *phone != "" {
		contact.Phone = *phone
	}
	if *company != "" {
		contact.Company = *company
	}
	if *position != "" {
		contact.Position = *position
	}
	if *tags != "" {
		contact.Tags = splitTags(*tags)
	}
	if *notes != "" {
		contact.Notes = *notes
	}
	contact.UpdatedAt = time.Now()

	s.UpdateContact(*contact)

	fmt.Printf("✓ Contact updated: %s\n", contact.FullName())
	return nil
}

// DeleteContactCommand deletes a contact by ID.
func DeleteContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-contact", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("contact ID is required")
	}

	contact := resolveContact(s, fs.Arg(0))
	if contact == nil {
		return fmt.Errorf("contact not found: %s", fs.Arg(0))
	}

	s.DeleteContact(contact.ID)
	fmt.Printf("✓ Contact deleted: %s\n", contact.FullName())
	return nil
}

// resolveContact finds a contact by full or 8-char short ID.
func resolveContact(s *store.Store, id string) *models.Contact {
	if contact := s.ContactByID(id); contact != nil {
		return contact
	}
	for _, contact := range s.Data().Contacts {
		if strings.HasPrefix(contact.ID, id) {
			c := contact
			return &c
		}
	}
	return nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
