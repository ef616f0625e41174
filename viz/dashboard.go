// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII dashboard for CRM pipeline overview
package viz

import (
	"fmt"
	"strings"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

type DashboardStats struct {
	// Pipeline overview
	PipelineByStage []PipelineStageStats

	// Overall stats
	TotalContacts  int
	ActiveDeals    int
	PipelineValue  float64
	WeightedValue  float64
	WonValue       float64
	PendingTasks   int
	RecentActivity []models.Activity
}

type PipelineStageStats struct {
	Stage models.DealStage
	Count int
	Value float64
}

func GenerateDashboardStats(s *store.Store) *DashboardStats {
	stats := &DashboardStats{
		TotalContacts:  len(s.Data().Contacts),
		ActiveDeals:    s.ActiveDealsCount(),
		PipelineValue:  s.TotalPipelineValue(),
		WeightedValue:  s.WeightedPipelineValue(),
		WonValue:       s.WonDealsValue(),
		PendingTasks:   s.PendingTasksCount(),
		RecentActivity: s.RecentActivities(5),
	}

	for _, stage := range models.AllStages() {
		deals := s.DealsByStage(stage)
		value := 0.0
		for _, d := range deals {
			value += d.Value
		}
		stats.PipelineByStage = append(stats.PipelineByStage, PipelineStageStats{
			Stage: stage,
			Count: len(deals),
			Value: value,
		})
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  DCRM DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("PIPELINE OVERVIEW\n")
	renderPipeline(&out, stats.PipelineByStage)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  %d contacts  %d active deals  %d pending tasks\n",
		stats.TotalContacts, stats.ActiveDeals, stats.PendingTasks))
	out.WriteString(fmt.Sprintf("  Pipeline %s  weighted %s  won %s\n\n",
		models.FormatCurrency(stats.PipelineValue),
		models.FormatCurrency(stats.WeightedValue),
		models.FormatCurrency(stats.WonValue)))

	if len(stats.RecentActivity) > 0 {
		out.WriteString("RECENT ACTIVITY\n")
		for _, a := range stats.RecentActivity {
			marker := " "
			if a.Completed {
				marker = "✓"
			}
			out.WriteString(fmt.Sprintf("  %s %s %s  (%s)\n",
				marker, a.ActivityType.Icon(), a.Title, a.FormatDate()))
		}
	}

	return out.String()
}

func renderPipeline(out *strings.Builder, pipeline []PipelineStageStats) {
	// Find max count for scaling
	maxCount := 0
	for _, pstats := range pipeline {
		if pstats.Count > maxCount {
			maxCount = pstats.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, pstats := range pipeline {
		// Bar length scaled to 0-10 blocks
		barLength := (pstats.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-12s %s  %2d (%s)\n",
			pstats.Stage.DisplayName(), bar, pstats.Count,
			models.FormatCurrency(pstats.Value)))
	}
}
