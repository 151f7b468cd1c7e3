package storage

import (
	"fmt"
	"strings"

	"github.com/pable/go-cricket-stats/internal/model"
)

// ReplaceFormatStats replaces all stored rows for one format with the given
// team table. The export is rebuilt from the snapshot every run.
func (db *DB) ReplaceFormatStats(format string, teams map[string]*model.TeamRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM teams WHERE format = ?", format); err != nil {
		return fmt.Errorf("clear teams for %s: %w", format, err)
	}
	if _, err := tx.Exec("DELETE FROM players WHERE format = ?", format); err != nil {
		return fmt.Errorf("clear players for %s: %w", format, err)
	}

	teamStmt, err := tx.Prepare(`
		INSERT INTO teams(
			format, name, matches_played, matches_won, win_percentage,
			total_runs_scored, total_wickets_taken, total_runs_conceded,
			total_wickets_lost, strengths
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer teamStmt.Close()

	playerStmt, err := tx.Prepare(`
		INSERT INTO players(
			format, team, name, role,
			bat_innings, bat_runs, balls_faced, dismissals,
			bat_average, bat_strike_rate, fours, sixes,
			bowl_overs, runs_conceded, wickets, economy,
			bowl_average, bowl_strike_rate, balls_bowled
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer playerStmt.Close()

	for name, t := range teams {
		_, err := teamStmt.Exec(
			format, name, t.MatchesPlayed, t.MatchesWon, t.WinPercentage,
			t.TotalRunsScored, t.TotalWicketsTaken, t.TotalRunsConceded,
			t.TotalWicketsLost, strings.Join(t.Strengths, ", "),
		)
		if err != nil {
			return fmt.Errorf("insert team %s/%s: %w", format, name, err)
		}
		for playerName, p := range t.Players {
			_, err := playerStmt.Exec(
				format, name, playerName, string(p.Role),
				p.Batting.Innings, p.Batting.Runs, p.Batting.BallsFaced, p.Batting.Dismissals,
				p.Batting.Average, p.Batting.StrikeRate, p.Batting.Fours, p.Batting.Sixes,
				p.Bowling.Overs, p.Bowling.RunsConceded, p.Bowling.Wickets, p.Bowling.Economy,
				p.Bowling.Average, p.Bowling.StrikeRate, p.Bowling.BallsBowled,
			)
			if err != nil {
				return fmt.Errorf("insert player %s/%s/%s: %w", format, name, playerName, err)
			}
		}
	}
	return tx.Commit()
}

// ReplaceLeaderboard replaces the stored boundary leaderboard.
func (db *DB) ReplaceLeaderboard(top []model.BoundaryPlayer) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO leaderboard(
			rank, player_id, name, team, matches, runs,
			average, strike_rate, fours, sixes
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range top {
		_, err := stmt.Exec(
			i+1, p.ID, p.Name, p.Team, p.Matches, p.Runs,
			p.Average, p.StrikeRate, p.Fours, p.Sixes,
		)
		if err != nil {
			return fmt.Errorf("insert leaderboard rank %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// TeamCount returns the number of stored teams for a format.
func (db *DB) TeamCount(format string) (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM teams WHERE format = ?", format).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// QueryRaw runs an arbitrary query and returns column names plus stringified
// rows, for the sql command's table output.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(val)
			default:
				row[i] = fmt.Sprintf("%v", val)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
