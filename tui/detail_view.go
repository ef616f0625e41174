// ABOUTME: Contact and deal detail pages
// ABOUTME: Shows linked deals, activities, tags, and notes
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirmacs/dcrm/models"
)

func (m Model) renderDetailView() string {
	if m.view == ViewDeals {
		return m.renderDealDetail()
	}
	return m.renderContactDetail()
}

func (m Model) renderContactDetail() string {
	contact := m.store.ContactByID(m.selectedID)
	if contact == nil {
		return mutedStyle.Render("Contact no longer exists. Press esc.")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(contact.FullName()))
	s.WriteString("\n")
	if contact.Position != "" {
		s.WriteString(mutedStyle.Render(contact.Position))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("Email    %s\n", contact.Email))
	if contact.Phone != "" {
		s.WriteString(fmt.Sprintf("Phone    %s\n", contact.Phone))
	}
	if contact.Company != "" {
		s.WriteString(fmt.Sprintf("Company  %s\n", contact.Company))
	}
	s.WriteString("\n")

	if len(contact.Tags) > 0 {
		var tags []string
		for _, tag := range contact.Tags {
			tags = append(tags, tabInactiveStyle.Render(tag))
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tags...))
		s.WriteString("\n\n")
	}

	deals := m.store.DealsForContact(contact.ID)
	if len(deals) > 0 {
		s.WriteString(statLabelStyle.Render(fmt.Sprintf("DEALS (%d)", len(deals))))
		s.WriteString("\n")
		for _, deal := range deals {
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(deal.Stage.Color())).Render("●")
			s.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
				dot, deal.Title, deal.FormatValue(),
				mutedStyle.Render(deal.Stage.DisplayName())))
		}
		s.WriteString("\n")
	}

	activities := m.store.ActivitiesForContact(contact.ID)
	s.WriteString(statLabelStyle.Render(fmt.Sprintf("ACTIVITY (%d)", len(activities))))
	s.WriteString("\n")
	if len(activities) == 0 {
		s.WriteString(mutedStyle.Render("  No activities recorded"))
		s.WriteString("\n")
	} else {
		shown := activities
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, a := range shown {
			s.WriteString(fmt.Sprintf("  %s %s  %s\n",
				a.ActivityType.Icon(), a.Title, mutedStyle.Render(a.FormatDate())))
		}
	}

	if contact.Notes != "" {
		s.WriteString("\n")
		s.WriteString(statLabelStyle.Render("NOTES"))
		s.WriteString("\n")
		s.WriteString("  " + contact.Notes + "\n")
	}

	s.WriteString(helpStyle.Render("e: Edit • d: Delete • Esc: Back"))
	return s.String()
}

func (m Model) renderDealDetail() string {
	deal := m.store.DealByID(m.selectedID)
	if deal == nil {
		return mutedStyle.Render("Deal no longer exists. Press esc.")
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(deal.Title))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render(deal.Company))
	s.WriteString("\n\n")

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(deal.Stage.Color())).Render("●")
	s.WriteString(fmt.Sprintf("Stage        %s %s\n", dot, deal.Stage.DisplayName()))
	s.WriteString(fmt.Sprintf("Value        %s\n", deal.FormatValue()))
	s.WriteString(fmt.Sprintf("Probability  %d%%\n", deal.Probability))
	s.WriteString(fmt.Sprintf("Weighted     %s\n", models.FormatCurrency(deal.WeightedValue())))
	if deal.ExpectedClose != nil {
		s.WriteString(fmt.Sprintf("Close date   %s\n", deal.ExpectedClose.Format("Jan 2, 2006")))
	}

	if contact := m.store.ContactByID(deal.ContactID); contact != nil {
		s.WriteString(fmt.Sprintf("Contact      %s\n", contact.FullName()))
	}
	s.WriteString("\n")

	activities := m.store.ActivitiesForDeal(deal.ID)
	s.WriteString(statLabelStyle.Render(fmt.Sprintf("ACTIVITY (%d)", len(activities))))
	s.WriteString("\n")
	if len(activities) == 0 {
		s.WriteString(mutedStyle.Render("  No activities recorded"))
		s.WriteString("\n")
	} else {
		for _, a := range activities {
			s.WriteString(fmt.Sprintf("  %s %s  %s\n",
				a.ActivityType.Icon(), a.Title, mutedStyle.Render(a.FormatDate())))
		}
	}

	if deal.Notes != "" {
		s.WriteString("\n")
		s.WriteString(statLabelStyle.Render("NOTES"))
		s.WriteString("\n")
		s.WriteString("  " + deal.Notes + "\n")
	}

	s.WriteString(helpStyle.Render("e: Edit • d: Delete • Esc: Back"))
	return s.String()
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = ModeBrowse
		m.selectedID = ""
	case "e":
		if m.view == ViewDeals {
			if deal := m.store.DealByID(m.selectedID); deal != nil {
				m.startDealForm(deal)
			}
		} else {
			if contact := m.store.ContactByID(m.selectedID); contact != nil {
				m.startContactForm(contact)
			}
		}
	case "d":
		if m.view == ViewDeals {
			if deal := m.store.DealByID(m.selectedID); deal != nil {
				m.deleteID = deal.ID
				m.deleteLabel = deal.Title
				m.mode = ModeConfirmDelete
			}
		} else {
			if contact := m.store.ContactByID(m.selectedID); contact != nil {
				m.deleteID = contact.ID
				m.deleteLabel = contact.FullName()
				m.mode = ModeConfirmDelete
			}
		}
	}
	return m, nil
}
