package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-stats/internal/storage"
)

var sqlDBPath string

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the exported database",
	Long: `Run an arbitrary SQL query against the SQLite export and print results as a table.

Schema overview:
  teams(format, name, matches_played, matches_won, win_percentage,
    total_runs_scored, total_wickets_taken, total_runs_conceded,
    total_wickets_lost, strengths)
  players(format, team, name, role, bat_innings, bat_runs, balls_faced,
    dismissals, bat_average, bat_strike_rate, fours, sixes, bowl_overs,
    runs_conceded, wickets, economy, bowl_average, bowl_strike_rate, balls_bowled)
  leaderboard(rank, player_id, name, team, matches, runs, average,
    strike_rate, fours, sixes)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func init() {
	sqlCmd.Flags().StringVar(&sqlDBPath, "db", "", "SQLite file path (default <out>/cricstats.db)")
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	dbPath := sqlDBPath
	if dbPath == "" {
		dbPath = defaultDBPath()
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
