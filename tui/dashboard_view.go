// ABOUTME: Dashboard page rendering
// ABOUTME: Stat cards, pipeline overview bars, recent activity, pending tasks
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirmacs/dcrm/models"
)

func (m Model) renderDashboard() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DCRM"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	// Stat cards
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Contacts", fmt.Sprintf("%d", len(m.store.Data().Contacts))),
		statCard("Active Deals", fmt.Sprintf("%d", m.store.ActiveDealsCount())),
		statCard("Pipeline Value", models.FormatCurrency(m.store.TotalPipelineValue())),
		statCard("Won Revenue", models.FormatCurrency(m.store.WonDealsValue())),
	)
	s.WriteString(cards)
	s.WriteString("\n\n")

	// Pipeline overview
	s.WriteString(statLabelStyle.Render("PIPELINE OVERVIEW"))
	s.WriteString("\n")
	s.WriteString(m.renderPipelineOverview())
	s.WriteString("\n")

	// Recent activity
	s.WriteString(statLabelStyle.Render("RECENT ACTIVITY"))
	s.WriteString("\n")
	recent := m.store.RecentActivities(5)
	if len(recent) == 0 {
		s.WriteString(mutedStyle.Render("  No activities yet"))
		s.WriteString("\n")
	} else {
		for _, a := range recent {
			line := fmt.Sprintf("  %s %s  %s", a.ActivityType.Icon(), a.Title, mutedStyle.Render(a.FormatDate()))
			if a.Completed {
				line = mutedStyle.Render(line)
			}
			s.WriteString(line)
			s.WriteString("\n")
		}
	}
	s.WriteString("\n")

	// Pending tasks
	pending := m.store.PendingTasksCount()
	s.WriteString(statLabelStyle.Render(fmt.Sprintf("PENDING TASKS (%d)", pending)))
	s.WriteString("\n")
	if pending == 0 {
		s.WriteString(mutedStyle.Render("  All caught up!"))
		s.WriteString("\n")
	} else {
		shown := 0
		for _, a := range m.store.Data().Activities {
			if a.ActivityType != models.ActivityTask || a.Completed {
				continue
			}
			due := ""
			if a.DueDate != nil {
				due = mutedStyle.Render("  due " + a.DueDate.Format("Jan 2"))
			}
			s.WriteString(fmt.Sprintf("  ☐ %s%s\n", a.Title, due))
			shown++
			if shown == 5 {
				break
			}
		}
	}

	s.WriteString(helpStyle.Render("1-4: Switch view • /: Search • q: Quit"))
	return s.String()
}

func statCard(label, value string) string {
	content := statLabelStyle.Render(label) + "\n" + statValueStyle.Render(value)
	return statCardStyle.Render(content)
}

func (m Model) renderPipelineOverview() string {
	var s strings.Builder

	maxCount := 0
	for _, stage := range models.ActiveStages() {
		if n := len(m.store.DealsByStage(stage)); n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, stage := range models.ActiveStages() {
		deals := m.store.DealsByStage(stage)
		value := 0.0
		for _, d := range deals {
			value += d.Value
		}

		barLength := (len(deals) * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(stage.Color())).Render("●")
		s.WriteString(fmt.Sprintf("  %s %-12s %s  %2d  %s\n",
			dot, stage.DisplayName(), bar, len(deals),
			mutedStyle.Render(models.FormatCurrency(value))))
	}

	return s.String()
}
