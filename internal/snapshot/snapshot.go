// Package snapshot reads and writes the serialized output of a run: the
// per-format stat files, the summary view, the boundary leaderboard, and the
// timestamp markers used by the freshness check. Every write fully replaces
// prior content; there is no incremental merge.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pable/go-cricket-stats/internal/model"
)

const (
	// StatsMarker stamps the main aggregation run.
	StatsMarker = "last_updated.txt"
	// BoundariesMarker stamps the boundary-leaderboard run.
	BoundariesMarker = "boundaries_last_updated.txt"

	summaryFile     = "summary.json"
	leaderboardFile = "top_players.json"
)

// FormatStatsFile returns the snapshot file name for a format.
func FormatStatsFile(format string) string {
	return format + "_stats.json"
}

// WriteFormatStats writes the full team table for one format.
func WriteFormatStats(dir, format string, teams map[string]*model.TeamRecord) error {
	return writeJSON(dir, FormatStatsFile(format), teams)
}

// ReadFormatStats loads the team table for one format.
func ReadFormatStats(dir, format string) (map[string]*model.TeamRecord, error) {
	var teams map[string]*model.TeamRecord
	if err := readJSON(filepath.Join(dir, FormatStatsFile(format)), &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// WriteSummary writes the cross-format summary view.
func WriteSummary(dir string, summary map[string]map[string]model.TeamSummary) error {
	return writeJSON(dir, summaryFile, summary)
}

// ReadSummary loads the cross-format summary view.
func ReadSummary(dir string) (map[string]map[string]model.TeamSummary, error) {
	var summary map[string]map[string]model.TeamSummary
	if err := readJSON(filepath.Join(dir, summaryFile), &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// WriteLeaderboard writes the ranked boundary-hitter list.
func WriteLeaderboard(dir string, top []model.BoundaryPlayer) error {
	return writeJSON(dir, leaderboardFile, model.Leaderboard{TopPlayers: top})
}

// ReadLeaderboard loads the ranked boundary-hitter list.
func ReadLeaderboard(dir string) ([]model.BoundaryPlayer, error) {
	var lb model.Leaderboard
	if err := readJSON(filepath.Join(dir, leaderboardFile), &lb); err != nil {
		return nil, err
	}
	return lb.TopPlayers, nil
}

// Stamp writes the current time to the named marker file.
func Stamp(dir, marker string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	ts := time.Now().Format(time.RFC3339)
	if err := os.WriteFile(filepath.Join(dir, marker), []byte(ts), 0644); err != nil {
		return fmt.Errorf("write %s: %w", marker, err)
	}
	return nil
}

// Stale reports whether the named marker is missing, unreadable, or at least
// the given number of days old. Unparsable markers count as stale so a
// damaged file triggers a refresh instead of blocking one.
func Stale(dir, marker string, days int) bool {
	data, err := os.ReadFile(filepath.Join(dir, marker))
	if err != nil {
		return true
	}
	last, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		return true
	}
	return time.Since(last) >= time.Duration(days)*24*time.Hour
}

func writeJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
