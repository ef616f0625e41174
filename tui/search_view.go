// ABOUTME: Fuzzy search overlay reachable from any page
// ABOUTME: Live results across contacts, deals, and activities
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirmacs/dcrm/store"
)

var kindBadgeStyles = map[store.ResultKind]lipgloss.Style{
	store.KindContact:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	store.KindDeal:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	store.KindActivity: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
}

func kindBadge(kind store.ResultKind) string {
	return kindBadgeStyles[kind].Render(fmt.Sprintf("[%-8s]", string(kind)))
}

func (m Model) renderSearchView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SEARCH"))
	s.WriteString("\n")
	s.WriteString(m.searchInput.View())
	s.WriteString("\n\n")

	if len(m.searchResults) == 0 {
		if strings.TrimSpace(m.searchInput.Value()) != "" {
			s.WriteString(mutedStyle.Render("No matches"))
			s.WriteString("\n")
		}
	}

	for i, result := range m.searchResults {
		cursor := "  "
		if i == m.searchCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s", cursor, kindBadge(result.Kind), result.Title)
		if result.Subtitle != "" {
			line += mutedStyle.Render("  " + result.Subtitle)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("↑/↓: Navigate • Enter: Open • Esc: Close"))
	return s.String()
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.searchInput.Blur()
		return m, nil
	case "up", "ctrl+k":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case "down", "ctrl+j":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil
	case "enter":
		if m.searchCursor < len(m.searchResults) {
			m = m.openSearchResult(m.searchResults[m.searchCursor])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchResults = m.store.Search(m.searchInput.Value())
	if m.searchCursor >= len(m.searchResults) {
		m.searchCursor = 0
	}
	return m, cmd
}

// openSearchResult jumps to the detail page of the selected entity.
func (m Model) openSearchResult(result store.SearchResult) Model {
	m.searchInput.Blur()
	m.mode = ModeDetail

	switch result.Kind {
	case store.KindContact:
		m.view = ViewContacts
		m.selectedID = result.Contact.ID
	case store.KindDeal:
		m.view = ViewDeals
		m.selectedID = result.Deal.ID
	case store.KindActivity:
		// Activities have no detail page of their own; land on the list.
		m.view = ViewActivities
		m.mode = ModeBrowse
	}
	return m
}
