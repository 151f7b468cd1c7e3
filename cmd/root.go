package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/config"
)

var (
	dataDir string
	outDir  string
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "cricstats",
	Short: "Cricket match statistics tool",
	Long:  "Process ball-by-ball cricket match documents and compute per-format team/player statistics, role classifications, and a boundary-hitter leaderboard.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "input directory tree, one subdirectory per format")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "stats", "output directory for snapshot files")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config (built-in defaults when empty)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(boundariesCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func defaultDBPath() string {
	return filepath.Join(outDir, "cricstats.db")
}
