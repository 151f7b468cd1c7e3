// Package leaderboard is the boundary-hitter pass: a coarse relevance filter
// over matches plus a per-player four/six tracker that produces a ranked
// top-N list across all in-scope matches, regardless of format.
package leaderboard

import (
	"math"
	"sort"
	"strings"

	"github.com/pable/go-cricket-stats/internal/model"
)

// estimatedBallsPerMatch backs the strike-rate estimate; this pass does not
// track balls actually faced.
const estimatedBallsPerMatch = 20

// Filter gates matches into the boundary pass. It is a relevance check, not
// identity matching: a match passes when either team is a roster member or
// the event name contains a configured keyword.
type Filter struct {
	teams    map[string]struct{}
	keywords []string
}

// NewFilter builds a filter from roster team names and lowercase event
// keywords.
func NewFilter(teams []string, keywords []string) *Filter {
	set := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		set[t] = struct{}{}
	}
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		kw = append(kw, strings.ToLower(k))
	}
	return &Filter{teams: set, keywords: kw}
}

// TeamInScope reports whether a team name is a roster member.
func (f *Filter) TeamInScope(name string) bool {
	_, ok := f.teams[name]
	return ok
}

// MatchInScope reports whether a match with the given team pair and optional
// event name belongs in the boundary pass.
func (f *Filter) MatchInScope(teams []string, eventName string) bool {
	for _, t := range teams {
		if f.TeamInScope(t) {
			return true
		}
	}
	if eventName != "" {
		lower := strings.ToLower(eventName)
		for _, kw := range f.keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// Tracker accumulates boundary stats per player across matches.
type Tracker struct {
	filter  *Filter
	players map[string]*model.BoundaryPlayer
	order   []string // insertion order, for stable ranking ties
}

// NewTracker returns an empty tracker gated by the given filter.
func NewTracker(f *Filter) *Tracker {
	return &Tracker{filter: f, players: make(map[string]*model.BoundaryPlayer)}
}

func (t *Tracker) player(id string) *model.BoundaryPlayer {
	p, ok := t.players[id]
	if !ok {
		p = &model.BoundaryPlayer{ID: id, Name: id, Shots: []model.Shot{}}
		t.players[id] = p
		t.order = append(t.order, id)
	}
	return p
}

// RecordMatch folds one match into the tracker. It returns false when the
// match fails the relevance filter and contributed nothing.
func (t *Tracker) RecordMatch(m *model.Match) bool {
	if !t.filter.MatchInScope(m.Info.Teams, m.Info.Event.Name) {
		return false
	}

	// A player is credited at most one match per document, even across
	// multiple innings of the same match.
	credited := make(map[string]struct{})

	for _, innings := range m.Innings {
		if !t.filter.TeamInScope(innings.Team) {
			continue
		}
		for _, over := range innings.Overs {
			for _, d := range over.Deliveries {
				if d.Batter == "" {
					continue
				}
				p := t.player(d.Batter)
				if p.Team == "" {
					p.Team = innings.Team
				}
				if _, ok := credited[d.Batter]; !ok {
					credited[d.Batter] = struct{}{}
					p.Matches++
				}

				runs := d.Runs.Batter
				p.Runs += runs
				switch runs {
				case 4:
					p.Fours++
					p.Shots = append(p.Shots, model.Shot{Type: "four"})
				case 6:
					p.Sixes++
					p.Shots = append(p.Shots, model.Shot{Type: "six"})
				}
			}
		}
	}
	return true
}

// Finalize computes the derived estimates and returns the players ranked by
// total boundary count, descending, truncated to n. Ties keep insertion
// order.
func (t *Tracker) Finalize(n int) []model.BoundaryPlayer {
	out := make([]model.BoundaryPlayer, 0, len(t.order))
	for _, id := range t.order {
		p := *t.players[id]
		if p.Matches > 0 {
			p.Average = round2(float64(p.Runs) / float64(p.Matches))
			estimatedBalls := p.Matches * estimatedBallsPerMatch
			p.StrikeRate = round2(float64(p.Runs) / float64(estimatedBalls) * 100)
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Boundaries() > out[j].Boundaries()
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
