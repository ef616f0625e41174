// ABOUTME: Tests for TUI model behavior
// ABOUTME: Verifies view rendering, navigation, and overlay modes
package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	doc, err := json.Marshal(models.AppData{})
	if err != nil {
		t.Fatalf("Failed to marshal empty data: %v", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("Failed to write test data: %v", err)
	}
	return store.Open(path)
}

func key(k string) tea.KeyMsg {
	if len(k) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func TestTabNavigation(t *testing.T) {
	m := NewModel(setupTestStore(t))

	updated, _ := m.Update(key("3"))
	m = updated.(Model)
	if m.view != ViewDeals {
		t.Errorf("Expected deals view after pressing 3, got %v", m.view)
	}

	updated, _ = m.Update(key("1"))
	m = updated.(Model)
	if m.view != ViewDashboard {
		t.Errorf("Expected dashboard view after pressing 1, got %v", m.view)
	}
}

func TestDashboardRendering(t *testing.T) {
	s := setupTestStore(t)
	s.AddContact(&models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	s.AddDeal(&models.Deal{Title: "Engine Contract", Company: "Analytical", Value: 1000, Stage: models.StageLead, Probability: 10})

	m := NewModel(s)
	output := m.View()

	if output == "" {
		t.Fatal("Dashboard rendered empty")
	}
	if !strings.Contains(output, "Dashboard") {
		t.Error("Dashboard should show the tab bar")
	}
	if !strings.Contains(output, "$1K") {
		t.Errorf("Dashboard should show pipeline value, got:\n%s", output)
	}
}

func TestPipelineViewShowsDeals(t *testing.T) {
	s := setupTestStore(t)
	s.AddDeal(&models.Deal{Title: "Big Deal", Company: "Acme", Value: 5000, Stage: models.StageProposal, Probability: 50})

	m := NewModel(s)
	m.view = ViewDeals
	output := m.View()

	if !strings.Contains(output, "Big Deal") {
		t.Error("Pipeline view should list the deal")
	}
	if !strings.Contains(output, "Proposal") {
		t.Error("Pipeline view should show stage columns")
	}
}

func TestSearchOverlayOpensAndCloses(t *testing.T) {
	m := NewModel(setupTestStore(t))

	updated, _ := m.Update(key("/"))
	m = updated.(Model)
	if m.mode != ModeSearch {
		t.Fatalf("Expected search mode, got %v", m.mode)
	}

	output := m.View()
	if !strings.Contains(output, "SEARCH") {
		t.Error("Search overlay should render its title")
	}

	updated, _ = m.Update(key("esc"))
	m = updated.(Model)
	if m.mode != ModeBrowse {
		t.Errorf("Expected browse mode after esc, got %v", m.mode)
	}
}

func TestSearchFindsContact(t *testing.T) {
	s := setupTestStore(t)
	s.AddContact(&models.Contact{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"})

	m := NewModel(s)
	updated, _ := m.Update(key("/"))
	m = updated.(Model)
	updated, _ = m.Update(key("g"))
	m = updated.(Model)

	if len(m.searchResults) == 0 {
		t.Fatal("Expected search results for 'g'")
	}
	if m.searchResults[0].Kind != store.KindContact {
		t.Errorf("Expected contact result, got %v", m.searchResults[0].Kind)
	}
}

func TestContactFormSaves(t *testing.T) {
	s := setupTestStore(t)
	m := NewModel(s)
	m.view = ViewContacts

	m.startContactForm(nil)
	if m.mode != ModeEdit {
		t.Fatalf("Expected edit mode, got %v", m.mode)
	}

	m.formInputs[0].SetValue("Alan")
	m.formInputs[1].SetValue("Turing")
	m.formInputs[2].SetValue("alan@example.com")

	if err := m.saveContact(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	contacts := s.Data().Contacts
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].FullName() != "Alan Turing" {
		t.Errorf("Unexpected contact name %q", contacts[0].FullName())
	}
}

func TestContactFormRequiresEmail(t *testing.T) {
	m := NewModel(setupTestStore(t))
	m.view = ViewContacts
	m.startContactForm(nil)
	m.formInputs[0].SetValue("Alan")
	m.formInputs[1].SetValue("Turing")

	if err := m.saveContact(); err == nil {
		t.Error("Expected error when email is missing")
	}
}

func TestDeleteConfirmation(t *testing.T) {
	s := setupTestStore(t)
	contact := models.Contact{FirstName: "Del", LastName: "Me", Email: "del@example.com"}
	s.AddContact(&contact)

	m := NewModel(s)
	m.view = ViewContacts
	m.mode = ModeConfirmDelete
	m.deleteID = contact.ID
	m.deleteLabel = contact.FullName()

	updated, _ := m.Update(key("y"))
	m = updated.(Model)
	if m.mode != ModeBrowse {
		t.Errorf("Expected browse mode after confirm, got %v", m.mode)
	}
	if len(s.Data().Contacts) != 0 {
		t.Error("Contact should be deleted after confirming")
	}
}

func TestStageMoveFromBoard(t *testing.T) {
	s := setupTestStore(t)
	deal := models.Deal{Title: "Movable", Company: "Acme", Value: 100, Stage: models.StageLead, Probability: 10}
	s.AddDeal(&deal)

	m := NewModel(s)
	m.view = ViewDeals
	m.stageCol = 0

	updated, _ := m.Update(key("]"))
	m = updated.(Model)

	moved := s.DealByID(deal.ID)
	if moved.Stage != models.StageQualified {
		t.Errorf("Expected Qualified after ], got %s", moved.Stage)
	}
	if moved.Probability != 25 {
		t.Errorf("Expected probability 25, got %d", moved.Probability)
	}
	if m.stageCol != 1 {
		t.Errorf("Expected board cursor to follow the deal, got column %d", m.stageCol)
	}
}
