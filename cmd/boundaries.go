package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/config"
	"github.com/pable/go-cricket-stats/internal/leaderboard"
	"github.com/pable/go-cricket-stats/internal/parser"
	"github.com/pable/go-cricket-stats/internal/report"
	"github.com/pable/go-cricket-stats/internal/snapshot"
)

var boundariesCmd = &cobra.Command{
	Use:   "boundaries",
	Short: "Build the boundary-hitter leaderboard across all in-scope matches",
	Args:  cobra.NoArgs,
	RunE:  runBoundaries,
}

func runBoundaries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runBoundariesPass(cfg)
}

// runBoundariesPass is the independent boundary aggregation: same input tree
// and normalizer as the stats pass, gated by the relevance filter, format
// ignored.
func runBoundariesPass(cfg *config.Config) error {
	filter := leaderboard.NewFilter(cfg.Leaderboard.AllTeams(), cfg.Leaderboard.EventKeywords)
	tracker := leaderboard.NewTracker(filter)
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
			if tracker.RecordMatch(m) {
				processed++
			}
		}
	}

	top := tracker.Finalize(cfg.Leaderboard.Size)
	fmt.Fprintf(os.Stdout, "Processed %d in-scope matches (%d skipped)\n", processed, skipped)

	if err := snapshot.WriteLeaderboard(outDir, top); err != nil {
		return err
	}
	if err := snapshot.Stamp(outDir, snapshot.BoundariesMarker); err != nil {
		return err
	}

	report.PrintLeaderboard(os.Stdout, top)
	return nil
}
