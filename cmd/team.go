package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/report"
	"github.com/pable/go-cricket-stats/internal/snapshot"
)

var teamCmd = &cobra.Command{
	Use:   "team <format> <name>",
	Short: "Show one team's player statistics from a format snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runTeam,
}

func runTeam(cmd *cobra.Command, args []string) error {
	format, name := args[0], args[1]

	teams, err := snapshot.ReadFormatStats(outDir, format)
	if err != nil {
		return fmt.Errorf("read %s stats (run 'cricstats stats' first): %w", format, err)
	}
	t, ok := teams[name]
	if !ok {
		return fmt.Errorf("team %q not found in %s stats", name, format)
	}

	fmt.Fprintf(os.Stdout, "\n%s (%s)  matches: %d  won: %d  win%%: %.2f\n",
		name, strings.ToUpper(format), t.MatchesPlayed, t.MatchesWon, t.WinPercentage)
	if len(t.Strengths) > 0 {
		fmt.Fprintf(os.Stdout, "Strengths: %s\n", strings.Join(t.Strengths, ", "))
	}

	fmt.Fprintf(os.Stdout, "\n--- Batting ---\n\n")
	report.PrintBattingTable(os.Stdout, t.Players)
	fmt.Fprintf(os.Stdout, "\n--- Bowling ---\n\n")
	report.PrintBowlingTable(os.Stdout, t.Players)
	return nil
}
