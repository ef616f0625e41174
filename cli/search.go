// ABOUTME: Cross-entity search CLI command
// ABOUTME: Prints fuzzy-ranked matches across contacts, deals, and activities
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dirmacs/dcrm/store"
)

// SearchCommand runs a fuzzy search and prints the ranked results.
func SearchCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("search query is required")
	}

	results := s.Search(fs.Arg(0))
	if len(results) == 0 {
		fmt.Println("No matches")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tTITLE\tDETAIL\tSCORE")
	_, _ = fmt.Fprintln(w, "----\t-----\t------\t-----")

	for _, result := range results {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			result.Kind, result.Title, result.Subtitle, result.Score)
	}
	_ = w.Flush()

	return nil
}
