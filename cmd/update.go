package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/snapshot"
)

var updateForce bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh stale snapshots",
	Long: `Run the stats and boundary passes only when their timestamp markers are
older than the configured refresh windows (30 and 7 days by default).`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "refresh regardless of marker age")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if updateForce || snapshot.Stale(outDir, snapshot.StatsMarker, cfg.Refresh.StatsDays) {
		fmt.Fprintln(os.Stdout, "Refreshing team statistics...")
		if err := runStatsPass(cfg); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(os.Stdout, "Team statistics are up to date. Skipping.")
	}

	if updateForce || snapshot.Stale(outDir, snapshot.BoundariesMarker, cfg.Refresh.LeaderboardDays) {
		fmt.Fprintln(os.Stdout, "Refreshing boundary leaderboard...")
		if err := runBoundariesPass(cfg); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(os.Stdout, "Boundary leaderboard is up to date. Skipping.")
	}
	return nil
}
