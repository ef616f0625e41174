// ABOUTME: Delete confirmation overlay
// ABOUTME: Guards destructive operations behind a y/n prompt
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderConfirmDeleteView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DELETE"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Delete %q? This cannot be undone.\n\n", m.deleteLabel))
	s.WriteString(helpStyle.Render("y: Delete • n/Esc: Cancel"))

	return s.String()
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.view {
		case ViewContacts:
			m.store.DeleteContact(m.deleteID)
			m.contactRow = 0
		case ViewDeals:
			m.store.DeleteDeal(m.deleteID)
			m.dealRow = 0
		case ViewActivities:
			m.store.DeleteActivity(m.deleteID)
			m.activityRow = 0
		}
		m.status = fmt.Sprintf("Deleted %q", m.deleteLabel)
		m.deleteID = ""
		m.deleteLabel = ""
		m.selectedID = ""
		m.mode = ModeBrowse
	case "n", "N", "esc":
		m.deleteID = ""
		m.deleteLabel = ""
		m.mode = ModeBrowse
	}
	return m, nil
}
