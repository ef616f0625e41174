// ABOUTME: Dashboard CLI command
// ABOUTME: Renders the ASCII pipeline dashboard
package cli

import (
	"fmt"

	"github.com/dirmacs/dcrm/store"
	"github.com/dirmacs/dcrm/viz"
)

// DashboardCommand prints the pipeline dashboard.
func DashboardCommand(s *store.Store, args []string) error {
	stats := viz.GenerateDashboardStats(s)
	fmt.Print(viz.RenderDashboard(stats))
	return nil
}
