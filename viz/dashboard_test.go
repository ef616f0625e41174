// ABOUTME: Tests for the ASCII dashboard renderer
// ABOUTME: Validates stats generation against a seeded store
package viz

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

func TestGenerateDashboardStats(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "data.json")) // seeded

	stats := GenerateDashboardStats(s)

	if stats.TotalContacts != 5 {
		t.Errorf("expected 5 contacts, got %d", stats.TotalContacts)
	}
	if stats.ActiveDeals != 5 {
		t.Errorf("expected 5 active deals, got %d", stats.ActiveDeals)
	}
	if stats.WonValue != 50000 {
		t.Errorf("expected won value 50000, got %.0f", stats.WonValue)
	}
	if len(stats.PipelineByStage) != len(models.AllStages()) {
		t.Errorf("expected one row per stage, got %d", len(stats.PipelineByStage))
	}
}

func TestRenderDashboard(t *testing.T) {
	s := store.Open(filepath.Join(t.TempDir(), "data.json"))

	out := RenderDashboard(GenerateDashboardStats(s))

	if !strings.Contains(out, "DCRM DASHBOARD") {
		t.Error("missing dashboard header")
	}
	if !strings.Contains(out, "PIPELINE OVERVIEW") {
		t.Error("missing pipeline section")
	}
	for _, stage := range models.AllStages() {
		if !strings.Contains(out, stage.DisplayName()) {
			t.Errorf("missing stage %s in output", stage)
		}
	}
}
