package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/snapshot"
	"github.com/pable/go-cricket-stats/internal/storage"
)

var exportDBPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the JSON snapshot into a queryable SQLite file",
	Long: `Load the written snapshot files and rebuild the SQLite export from them.
Existing rows are replaced; the export always mirrors the latest snapshot.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "SQLite file path (default <out>/cricstats.db)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbPath := exportDBPath
	if dbPath == "" {
		dbPath = defaultDBPath()
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	exported := 0
	for _, format := range cfg.Formats {
		teams, err := snapshot.ReadFormatStats(outDir, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "no %s snapshot, skipping: %v\n", format, err)
			continue
		}
		if err := db.ReplaceFormatStats(format, teams); err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		exported++
	}

	if top, err := snapshot.ReadLeaderboard(outDir); err == nil {
		if err := db.ReplaceLeaderboard(top); err != nil {
			return fmt.Errorf("export leaderboard: %w", err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "no leaderboard snapshot, skipping: %v\n", err)
	}

	fmt.Fprintf(os.Stdout, "Exported %d format(s) to %s\n", exported, dbPath)
	return nil
}
