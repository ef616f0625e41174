// ABOUTME: Tests for contact CLI commands
// ABOUTME: Verifies command flows against a temp-file store
package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

func setupTestCLI(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	doc, err := json.Marshal(models.AppData{})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}
	return store.Open(path)
}

func TestAddContactCommand(t *testing.T) {
	s := setupTestCLI(t)

	err := AddContactCommand(s, []string{
		"--first", "Jane", "--last", "Doe", "--email", "jane@example.com",
		"--company", "Acme", "--tags", "vip, lead",
	})
	if err != nil {
		t.Fatalf("AddContactCommand failed: %v", err)
	}

	contacts := s.Data().Contacts
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].FullName() != "Jane Doe" {
		t.Errorf("Unexpected name %q", contacts[0].FullName())
	}
	if len(contacts[0].Tags) != 2 {
		t.Errorf("Expected 2 tags, got %v", contacts[0].Tags)
	}
}

func TestAddContactCommandRequiresEmail(t *testing.T) {
	s := setupTestCLI(t)

	err := AddContactCommand(s, []string{"--first", "Jane", "--last", "Doe"})
	if err == nil {
		t.Error("Expected error when --email is missing")
	}
}

func TestListContactsCommand(t *testing.T) {
	s := setupTestCLI(t)
	s.AddContact(&models.Contact{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"})

	if err := ListContactsCommand(s, []string{}); err != nil {
		t.Errorf("ListContactsCommand failed: %v", err)
	}
}

func TestDeleteContactCommandByShortID(t *testing.T) {
	s := setupTestCLI(t)
	contact := models.Contact{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	s.AddContact(&contact)

	err := DeleteContactCommand(s, []string{contact.ID[:8]})
	if err != nil {
		t.Fatalf("DeleteContactCommand failed: %v", err)
	}
	if len(s.Data().Contacts) != 0 {
		t.Error("Contact should be deleted via short ID")
	}
}

func TestMoveDealCommand(t *testing.T) {
	s := setupTestCLI(t)
	deal := models.Deal{Title: "Deal", Company: "Acme", Value: 100, Stage: models.StageLead, Probability: 10}
	s.AddDeal(&deal)

	if err := MoveDealCommand(s, []string{deal.ID, "Proposal"}); err != nil {
		t.Fatalf("MoveDealCommand failed: %v", err)
	}

	moved := s.DealByID(deal.ID)
	if moved.Stage != models.StageProposal {
		t.Errorf("Expected Proposal, got %s", moved.Stage)
	}
	if moved.Probability != 50 {
		t.Errorf("Expected probability 50, got %d", moved.Probability)
	}
}
