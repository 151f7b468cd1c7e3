package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/report"
	"github.com/pable/go-cricket-stats/internal/snapshot"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the cross-format team summary from the written snapshot",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	summary, err := snapshot.ReadSummary(outDir)
	if err != nil {
		return fmt.Errorf("read summary (run 'cricstats stats' first): %w", err)
	}

	formats := make([]string, 0, len(summary))
	for f := range summary {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	for _, format := range formats {
		if len(summary[format]) == 0 {
			continue
		}
		report.PrintTeamSummary(os.Stdout, format, summary[format])
	}
	return nil
}
