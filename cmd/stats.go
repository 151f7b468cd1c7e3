package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/aggregator"
	"github.com/pable/go-cricket-stats/internal/config"
	"github.com/pable/go-cricket-stats/internal/parser"
	"github.com/pable/go-cricket-stats/internal/report"
	"github.com/pable/go-cricket-stats/internal/snapshot"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run the full per-format aggregation and write the stats snapshot",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runStatsPass(cfg)
}

// runStatsPass walks every format directory, folds each parsable match into
// the accumulator, finalizes, and writes the snapshot. A malformed document
// is logged and skipped; it never stops the batch.
func runStatsPass(cfg *config.Config) error {
	acc := aggregator.New()
	processed, skipped := 0, 0

	for _, format := range cfg.Formats {
		files, err := parser.ListMatchFiles(filepath.Join(dataDir, format))
		if err != nil {
			return err
		}
		for _, file := range files {
			m, err := parser.Read(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", file, err)
				skipped++
				continue
			}
			acc.RecordMatch(format, m)
			processed++
		}
	}

	acc.Finalize()
	fmt.Fprintf(os.Stdout, "Processed %d matches (%d skipped)\n", processed, skipped)

	for _, format := range cfg.Formats {
		if err := snapshot.WriteFormatStats(outDir, format, acc.Format(format)); err != nil {
			return err
		}
	}
	summary := acc.Summary()
	if err := snapshot.WriteSummary(outDir, summary); err != nil {
		return err
	}
	if err := snapshot.Stamp(outDir, snapshot.StatsMarker); err != nil {
		return err
	}

	for _, format := range cfg.Formats {
		if teams := summary[format]; len(teams) > 0 {
			report.PrintTeamSummary(os.Stdout, format, teams)
		}
	}
	return nil
}
