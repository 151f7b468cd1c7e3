// Package report renders aggregated statistics as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-cricket-stats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintTeamSummary prints one format's team summary, ordered by win
// percentage then matches played.
func PrintTeamSummary(w io.Writer, format string, teams map[string]model.TeamSummary) {
	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := teams[names[i]], teams[names[j]]
		if a.WinPercentage != b.WinPercentage {
			return a.WinPercentage > b.WinPercentage
		}
		if a.MatchesPlayed != b.MatchesPlayed {
			return a.MatchesPlayed > b.MatchesPlayed
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(w, "\n--- %s ---\n\n", strings.ToUpper(format))
	table := newTable(w)
	table.Header("TEAM", "MATCHES", "WON", "WIN%", "STRENGTHS")
	for _, name := range names {
		t := teams[name]
		table.Append(
			name,
			strconv.Itoa(t.MatchesPlayed),
			strconv.Itoa(t.MatchesWon),
			fmt.Sprintf("%.2f%%", t.WinPercentage),
			strings.Join(t.Strengths, ", "),
		)
	}
	table.Render()
}

// PrintBattingTable prints a team's batting card, ordered by runs scored.
func PrintBattingTable(w io.Writer, players map[string]*model.PlayerRecord) {
	names := sortedPlayers(players, func(a, b *model.PlayerRecord) bool {
		return a.Batting.Runs > b.Batting.Runs
	})

	table := newTable(w)
	table.Header("PLAYER", "ROLE", "INN", "RUNS", "BALLS", "OUT", "AVG", "SR", "4s", "6s")
	for _, name := range names {
		p := players[name]
		if p.Batting.BallsFaced == 0 {
			continue
		}
		table.Append(
			name,
			string(p.Role),
			strconv.Itoa(p.Batting.Innings),
			strconv.Itoa(p.Batting.Runs),
			strconv.Itoa(p.Batting.BallsFaced),
			strconv.Itoa(p.Batting.Dismissals),
			fmt.Sprintf("%.2f", p.Batting.Average),
			fmt.Sprintf("%.2f", p.Batting.StrikeRate),
			strconv.Itoa(p.Batting.Fours),
			strconv.Itoa(p.Batting.Sixes),
		)
	}
	table.Render()
}

// PrintBowlingTable prints a team's bowling card, ordered by wickets taken.
func PrintBowlingTable(w io.Writer, players map[string]*model.PlayerRecord) {
	names := sortedPlayers(players, func(a, b *model.PlayerRecord) bool {
		return a.Bowling.Wickets > b.Bowling.Wickets
	})

	table := newTable(w)
	table.Header("PLAYER", "ROLE", "OVERS", "RUNS", "WKTS", "ECON", "AVG", "SR")
	for _, name := range names {
		p := players[name]
		if p.Bowling.BallsBowled == 0 {
			continue
		}
		table.Append(
			name,
			string(p.Role),
			fmt.Sprintf("%.1f", p.Bowling.Overs),
			strconv.Itoa(p.Bowling.RunsConceded),
			strconv.Itoa(p.Bowling.Wickets),
			fmt.Sprintf("%.2f", p.Bowling.Economy),
			fmt.Sprintf("%.2f", p.Bowling.Average),
			fmt.Sprintf("%.2f", p.Bowling.StrikeRate),
		)
	}
	table.Render()
}

// PrintLeaderboard prints the ranked boundary-hitter list.
func PrintLeaderboard(w io.Writer, top []model.BoundaryPlayer) {
	table := newTable(w)
	table.Header("#", "PLAYER", "TEAM", "MATCHES", "RUNS", "AVG", "SR", "4s", "6s", "TOTAL")
	for i, p := range top {
		table.Append(
			strconv.Itoa(i+1),
			p.Name,
			p.Team,
			strconv.Itoa(p.Matches),
			strconv.Itoa(p.Runs),
			fmt.Sprintf("%.2f", p.Average),
			fmt.Sprintf("%.2f", p.StrikeRate),
			strconv.Itoa(p.Fours),
			strconv.Itoa(p.Sixes),
			strconv.Itoa(p.Boundaries()),
		)
	}
	table.Render()
}

func sortedPlayers(players map[string]*model.PlayerRecord, less func(a, b *model.PlayerRecord) bool) []string {
	names := make([]string, 0, len(players))
	for name := range players {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := players[names[i]], players[names[j]]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
