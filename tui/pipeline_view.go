// ABOUTME: Deal pipeline board page
// ABOUTME: Stage columns with deal cards and stage-move key handling
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirmacs/dcrm/models"
)

func (m Model) renderPipelineView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DCRM"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		statLabelStyle.Render("Pipeline ")+statValueStyle.Render(models.FormatCurrency(m.store.TotalPipelineValue())),
		statLabelStyle.Render("Weighted ")+statValueStyle.Render(models.FormatCurrency(m.store.WeightedPipelineValue())),
		statLabelStyle.Render("Active ")+statValueStyle.Render(fmt.Sprintf("%d", m.store.ActiveDealsCount()))))

	var columns []string
	for i, stage := range models.AllStages() {
		columns = append(columns, m.renderStageColumn(stage, i == m.stageCol))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("h/l: Column • j/k: Deal • [/]: Move stage • Enter: Detail • n: New • e: Edit • d: Delete • q: Quit"))
	return s.String()
}

func (m Model) renderStageColumn(stage models.DealStage, focused bool) string {
	deals := m.store.DealsByStage(stage)

	value := 0.0
	for _, d := range deals {
		value += d.Value
	}

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(stage.Color())).Render("●")
	header := fmt.Sprintf("%s %s %s", dot, stage.DisplayName(),
		mutedStyle.Render(fmt.Sprintf("%d · %s", len(deals), models.FormatCurrency(value))))

	var body []string
	body = append(body, header, "")

	for i, deal := range deals {
		card := deal.Title + "\n" + mutedStyle.Render(deal.Company) + "\n" +
			mutedStyle.Render(fmt.Sprintf("%s · %d%%", deal.FormatValue(), deal.Probability))
		if focused && i == m.dealRow {
			body = append(body, selectedCardStyle.Render(card), "")
		} else {
			body = append(body, cardStyle.Render(card), "")
		}
	}
	if len(deals) == 0 {
		body = append(body, mutedStyle.Render("  (empty)"))
	}

	style := columnStyle.Width(22)
	if focused {
		style = style.BorderForeground(lipgloss.Color("170"))
	}
	return style.Render(strings.Join(body, "\n"))
}

// focusedDeal returns the deal under the board cursor, or nil.
func (m Model) focusedDeal() *models.Deal {
	stages := models.AllStages()
	if m.stageCol >= len(stages) {
		return nil
	}
	deals := m.store.DealsByStage(stages[m.stageCol])
	if m.dealRow >= len(deals) {
		return nil
	}
	d := deals[m.dealRow]
	return &d
}

func (m Model) handlePipelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stages := models.AllStages()
	m.status = ""

	switch msg.String() {
	case "h", "left":
		if m.stageCol > 0 {
			m.stageCol--
			m.dealRow = 0
		}
	case "l", "right":
		if m.stageCol < len(stages)-1 {
			m.stageCol++
			m.dealRow = 0
		}
	case "j", "down":
		if deals := m.store.DealsByStage(stages[m.stageCol]); m.dealRow < len(deals)-1 {
			m.dealRow++
		}
	case "k", "up":
		if m.dealRow > 0 {
			m.dealRow--
		}
	case "[":
		if deal := m.focusedDeal(); deal != nil && m.stageCol > 0 {
			target := stages[m.stageCol-1]
			m.store.UpdateDealStage(deal.ID, target)
			m.stageCol--
			m.dealRow = 0
			m.status = fmt.Sprintf("Moved %q to %s", deal.Title, target.DisplayName())
		}
	case "]":
		if deal := m.focusedDeal(); deal != nil && m.stageCol < len(stages)-1 {
			target := stages[m.stageCol+1]
			m.store.UpdateDealStage(deal.ID, target)
			m.stageCol++
			m.dealRow = 0
			m.status = fmt.Sprintf("Moved %q to %s", deal.Title, target.DisplayName())
		}
	case "enter":
		if deal := m.focusedDeal(); deal != nil {
			m.selectedID = deal.ID
			m.mode = ModeDetail
		}
	case "n":
		m.startDealForm(nil)
		return m, nil
	case "e":
		if deal := m.focusedDeal(); deal != nil {
			m.startDealForm(deal)
		}
		return m, nil
	case "d":
		if deal := m.focusedDeal(); deal != nil {
			m.deleteID = deal.ID
			m.deleteLabel = deal.Title
			m.mode = ModeConfirmDelete
		}
	}

	return m, nil
}
