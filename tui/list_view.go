// ABOUTME: Contacts and activities list pages
// ABOUTME: Table rendering and browse-mode key handling
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirmacs/dcrm/models"
)

func (m Model) renderContactsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DCRM"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	contacts := m.store.Data().Contacts
	if len(contacts) == 0 {
		s.WriteString(mutedStyle.Render("No contacts yet. Press n to add your first contact."))
		s.WriteString("\n")
	} else {
		columns := []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 28},
			{Title: "Company", Width: 18},
			{Title: "Position", Width: 18},
		}

		var rows []table.Row
		for _, contact := range contacts {
			rows = append(rows, table.Row{
				contact.FullName(),
				contact.Email,
				contact.Company,
				contact.Position,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(true),
			table.WithHeight(m.height-12),
		)
		if m.contactRow < len(rows) {
			t.SetCursor(m.contactRow)
		}
		s.WriteString(t.View())
		s.WriteString("\n")
	}

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("j/k: Move • Enter: Detail • n: New • e: Edit • d: Delete • /: Search • q: Quit"))
	return s.String()
}

func (m Model) handleContactsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contacts := m.store.Data().Contacts
	m.status = ""

	switch msg.String() {
	case "j", "down":
		if m.contactRow < len(contacts)-1 {
			m.contactRow++
		}
	case "k", "up":
		if m.contactRow > 0 {
			m.contactRow--
		}
	case "enter":
		if m.contactRow < len(contacts) {
			m.selectedID = contacts[m.contactRow].ID
			m.mode = ModeDetail
		}
	case "n":
		m.startContactForm(nil)
		return m, nil
	case "e":
		if m.contactRow < len(contacts) {
			contact := contacts[m.contactRow]
			m.startContactForm(&contact)
		}
		return m, nil
	case "d":
		if m.contactRow < len(contacts) {
			m.deleteID = contacts[m.contactRow].ID
			m.deleteLabel = contacts[m.contactRow].FullName()
			m.mode = ModeConfirmDelete
		}
	}

	return m, nil
}

func (m Model) renderActivitiesView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DCRM"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	activities := m.visibleActivities()
	pending := m.store.PendingTasksCount()
	if m.pendingOnly {
		s.WriteString(statLabelStyle.Render("Showing pending tasks only"))
		s.WriteString("\n\n")
	} else if pending > 0 {
		s.WriteString(statLabelStyle.Render(fmt.Sprintf("%d pending task(s)", pending)))
		s.WriteString("\n\n")
	}

	if len(activities) == 0 {
		s.WriteString(mutedStyle.Render("No activities yet. Press n to log one."))
		s.WriteString("\n")
	} else {
		columns := []table.Column{
			{Title: " ", Width: 2},
			{Title: "Type", Width: 8},
			{Title: "Title", Width: 34},
			{Title: "Related To", Width: 26},
			{Title: "Date", Width: 12},
		}

		var rows []table.Row
		for _, activity := range activities {
			marker := " "
			if activity.Completed {
				marker = "✓"
			}
			rows = append(rows, table.Row{
				marker,
				activity.ActivityType.DisplayName(),
				activity.Title,
				m.relatedLabel(&activity),
				activity.FormatDate(),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(true),
			table.WithHeight(m.height-12),
		)
		if m.activityRow < len(rows) {
			t.SetCursor(m.activityRow)
		}
		s.WriteString(t.View())
		s.WriteString("\n")
	}

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("j/k: Move • Space: Toggle done • p: Pending only • n: New • d: Delete • /: Search • q: Quit"))
	return s.String()
}

// visibleActivities applies the pending-only filter to the recency-ordered list.
func (m Model) visibleActivities() []models.Activity {
	activities := m.store.RecentActivities(-1)
	if !m.pendingOnly {
		return activities
	}
	var pending []models.Activity
	for _, a := range activities {
		if a.ActivityType == models.ActivityTask && !a.Completed {
			pending = append(pending, a)
		}
	}
	return pending
}

func (m Model) handleActivitiesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	activities := m.visibleActivities()
	m.status = ""

	switch msg.String() {
	case "j", "down":
		if m.activityRow < len(activities)-1 {
			m.activityRow++
		}
	case "k", "up":
		if m.activityRow > 0 {
			m.activityRow--
		}
	case " ", "x":
		if m.activityRow < len(activities) {
			m.store.ToggleActivityCompleted(activities[m.activityRow].ID)
		}
	case "p":
		m.pendingOnly = !m.pendingOnly
		m.activityRow = 0
	case "n":
		m.startActivityForm()
		return m, nil
	case "d":
		if m.activityRow < len(activities) {
			m.deleteID = activities[m.activityRow].ID
			m.deleteLabel = activities[m.activityRow].Title
			m.mode = ModeConfirmDelete
		}
	}

	return m, nil
}

// relatedLabel resolves an activity's weak references for display.
func (m Model) relatedLabel(activity *models.Activity) string {
	var parts []string
	if contact := m.store.ContactByID(activity.ContactID); contact != nil {
		parts = append(parts, contact.FullName())
	}
	if deal := m.store.DealByID(activity.DealID); deal != nil {
		parts = append(parts, deal.Title)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " • ")
}
