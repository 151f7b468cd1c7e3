// Package aggregator owns all per-format aggregation state for a run: raw
// counters folded in one match at a time, then a finalize pass that derives
// rate metrics, classifies player roles, and tags team strengths.
package aggregator

import (
	"math"
	"sort"

	"github.com/pable/go-cricket-stats/internal/model"
)

// Accumulator is a mutable per-format table of team and player counters.
// It is exclusively owned by the single run goroutine for the run's duration.
type Accumulator struct {
	formats map[string]map[string]*model.TeamRecord
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{formats: make(map[string]map[string]*model.TeamRecord)}
}

// Format returns the team table for a format, creating it on first use.
func (a *Accumulator) Format(format string) map[string]*model.TeamRecord {
	teams, ok := a.formats[format]
	if !ok {
		teams = make(map[string]*model.TeamRecord)
		a.formats[format] = teams
	}
	return teams
}

// Formats lists the formats seen so far, sorted.
func (a *Accumulator) Formats() []string {
	names := make([]string, 0, len(a.formats))
	for f := range a.formats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

func (a *Accumulator) team(format, name string) *model.TeamRecord {
	teams := a.Format(format)
	t, ok := teams[name]
	if !ok {
		t = model.NewTeamRecord()
		teams[name] = t
	}
	return t
}

// RecordMatch folds every delivery of every innings of one match into the
// format's team and player counters. Calling it twice for the same document
// double-counts; the driver feeds each file exactly once per run.
func (a *Accumulator) RecordMatch(format string, m *model.Match) {
	team1, team2 := m.Info.Teams[0], m.Info.Teams[1]
	winner := m.Info.Outcome.Winner

	a.team(format, team1).MatchesPlayed++
	a.team(format, team2).MatchesPlayed++
	switch winner {
	case team1:
		a.team(format, team1).MatchesWon++
	case team2:
		a.team(format, team2).MatchesWon++
	}
	for _, name := range []string{team1, team2} {
		t := a.team(format, name)
		if t.MatchesPlayed > 0 {
			t.WinPercentage = round2(float64(t.MatchesWon) / float64(t.MatchesPlayed) * 100)
		}
	}

	for _, innings := range m.Innings {
		battingTeam := innings.Team
		var bowlingTeam string
		switch battingTeam {
		case team1:
			bowlingTeam = team2
		case team2:
			bowlingTeam = team1
		default:
			// Innings attributed to a team outside the match pair; skip it.
			continue
		}

		totalRuns := 0
		totalWickets := 0

		for _, over := range innings.Overs {
			for _, d := range over.Deliveries {
				runs := d.Runs.Batter
				deliveryRuns := runs + d.Runs.Extras
				totalRuns += deliveryRuns

				for _, wk := range d.Wickets {
					totalWickets++
					if wk.PlayerOut != "" {
						a.team(format, battingTeam).Player(wk.PlayerOut).Batting.Dismissals++
					}
					if d.Bowler != "" && model.BowlerCredited(wk.Kind) {
						a.team(format, bowlingTeam).Player(d.Bowler).Bowling.Wickets++
					}
				}

				if d.Batter != "" {
					bat := &a.team(format, battingTeam).Player(d.Batter).Batting
					bat.Innings++
					bat.Runs += runs
					bat.BallsFaced++
					if runs == 4 {
						bat.Fours++
					} else if runs == 6 {
						bat.Sixes++
					}
				}

				if d.Bowler != "" {
					bowl := &a.team(format, bowlingTeam).Player(d.Bowler).Bowling
					bowl.Overs += 1.0 / 6.0
					bowl.RunsConceded += deliveryRuns
					bowl.BallsBowled++
				}
			}
		}

		// Team aggregate totals are applied once per innings from the
		// innings' accumulated runs and wickets.
		a.team(format, battingTeam).TotalRunsScored += totalRuns
		a.team(format, battingTeam).TotalWicketsLost += totalWickets
		a.team(format, bowlingTeam).TotalRunsConceded += totalRuns
		a.team(format, bowlingTeam).TotalWicketsTaken += totalWickets
	}
}

// Finalize derives rate metrics, classifies every player's role, and tags
// team strengths. It must run after the last match has been recorded; the
// metrics are whole-run aggregates.
func (a *Accumulator) Finalize() {
	for _, teams := range a.formats {
		for _, t := range teams {
			for _, p := range t.Players {
				computeDerived(p)
				p.Role = classifyRole(p)
			}
			t.Strengths = teamStrengths(t)
		}
	}
}

// Summary collapses the full tables into the per-team summary view.
func (a *Accumulator) Summary() map[string]map[string]model.TeamSummary {
	out := make(map[string]map[string]model.TeamSummary, len(a.formats))
	for format, teams := range a.formats {
		out[format] = make(map[string]model.TeamSummary, len(teams))
		for name, t := range teams {
			out[format][name] = model.TeamSummary{
				MatchesPlayed: t.MatchesPlayed,
				MatchesWon:    t.MatchesWon,
				WinPercentage: t.WinPercentage,
				Strengths:     t.Strengths,
			}
		}
	}
	return out
}

// computeDerived fills the rate fields of a finalized player record. A metric
// whose denominator is zero stays at its initialized zero value.
func computeDerived(p *model.PlayerRecord) {
	bat := &p.Batting
	if bat.Dismissals > 0 {
		bat.Average = round2(float64(bat.Runs) / float64(bat.Dismissals))
	}
	if bat.BallsFaced > 0 {
		bat.StrikeRate = round2(float64(bat.Runs) / float64(bat.BallsFaced) * 100)
	}

	bowl := &p.Bowling
	if bowl.Wickets > 0 {
		bowl.Average = round2(float64(bowl.RunsConceded) / float64(bowl.Wickets))
	}
	if bowl.BallsBowled > 0 {
		bowl.Economy = round2(float64(bowl.RunsConceded) / float64(bowl.BallsBowled) * 6)
		if bowl.Wickets > 0 {
			bowl.StrikeRate = round2(float64(bowl.BallsBowled) / float64(bowl.Wickets))
		}
	}
}

// classifyRole assigns a role from batting/bowling contribution thresholds,
// with specialist overrides applied only to base All-rounders. The batting
// override is evaluated before the bowling one.
func classifyRole(p *model.PlayerRecord) model.Role {
	bat := p.Batting
	bowl := p.Bowling

	isBattingContributor := bat.BallsFaced >= 5
	isBowlingContributor := bowl.BallsBowled >= 6

	battingScore := float64(bat.Runs + bat.Fours*2 + bat.Sixes*3)
	bowlingScore := float64(bowl.Wickets*15) + float64(bowl.BallsBowled)/2

	var role model.Role
	switch {
	case isBattingContributor && isBowlingContributor:
		role = model.RoleAllRounder
	case isBattingContributor:
		role = model.RoleBatsman
	case isBowlingContributor:
		role = model.RoleBowler
	default:
		role = model.RoleUnknown
	}

	if role == model.RoleAllRounder {
		if battingScore > bowlingScore*5 && bat.Innings >= 2 {
			role = model.RoleBatsman
		} else if bowlingScore > battingScore*3 && bowl.Overs >= 2 {
			role = model.RoleBowler
		}
	}
	return role
}

// teamStrengths derives the qualitative tag set for a finalized team record.
// Each tag is gated independently.
func teamStrengths(t *model.TeamRecord) []string {
	strengths := []string{}

	if t.WinPercentage >= 60 {
		strengths = append(strengths, "High win rate")
	}

	topBatsmen := 0
	topBowlers := 0
	allRounders := 0
	totalSixes := 0
	for _, p := range t.Players {
		if (p.Role == model.RoleBatsman || p.Role == model.RoleAllRounder) && p.Batting.Average >= 30 {
			topBatsmen++
		}
		if (p.Role == model.RoleBowler || p.Role == model.RoleAllRounder) && p.Bowling.Economy <= 7 {
			topBowlers++
		}
		if p.Role == model.RoleAllRounder {
			allRounders++
		}
		totalSixes += p.Batting.Sixes
	}

	if topBatsmen >= 3 {
		strengths = append(strengths, "Strong batting lineup")
	}
	if topBowlers >= 3 {
		strengths = append(strengths, "Strong bowling attack")
	}
	if allRounders >= 2 {
		strengths = append(strengths, "Good all-rounders")
	}
	if totalSixes >= 20 {
		strengths = append(strengths, "Strong six-hitting ability")
	}

	return strengths
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
