package model

import (
	"bytes"
	"encoding/json"
)

// Role is the categorical classification assigned to a player after a run.
type Role string

const (
	RoleUnknown    Role = "Unknown"
	RoleBatsman    Role = "Batsman"
	RoleBowler     Role = "Bowler"
	RoleAllRounder Role = "All-rounder"
)

// ---- Raw match documents (Cricsheet JSON shape) ----

// Match is one ball-by-ball match document as read from disk.
type Match struct {
	Info    Info      `json:"info"`
	Innings []Innings `json:"innings"`
}

type Info struct {
	Teams     []string `json:"teams"`
	Outcome   Outcome  `json:"outcome"`
	Dates     []string `json:"dates"`
	Event     Event    `json:"event"`
	TeamType  string   `json:"team_type"`
	MatchType string   `json:"match_type"`
	Venue     string   `json:"venue"`
	Registry  Registry `json:"registry"`
}

type Outcome struct {
	Winner string `json:"winner"`
}

type Event struct {
	Name string `json:"name"`
}

// Registry maps player identifiers to registry ids when the document carries one.
type Registry struct {
	People map[string]string `json:"people"`
}

type Innings struct {
	Team  string `json:"team"`
	Overs []Over `json:"overs"`
}

type Over struct {
	Over       int        `json:"over"`
	Deliveries []Delivery `json:"deliveries"`
}

// Delivery is one ball bowled. Runs and Wickets default to their zero values
// when absent from the source document.
type Delivery struct {
	Batter     string  `json:"batter"`
	Bowler     string  `json:"bowler"`
	NonStriker string  `json:"non_striker"`
	Runs       Runs    `json:"runs"`
	Wickets    Wickets `json:"wickets"`
}

type Runs struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

type Wicket struct {
	PlayerOut string `json:"player_out"`
	Kind      string `json:"kind"`
}

// Wickets is always a sequence after decoding. Some source documents encode a
// single wicket as a bare object instead of a one-element array; decoding
// canonicalizes both shapes so nothing downstream branches on the encoding.
type Wickets []Wicket

func (w *Wickets) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*w = nil
		return nil
	}
	if data[0] == '[' {
		var list []Wicket
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*w = dropEmpty(list)
		return nil
	}
	var single Wicket
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*w = dropEmpty([]Wicket{single})
	return nil
}

func dropEmpty(list []Wicket) Wickets {
	out := list[:0]
	for _, wk := range list {
		if wk.PlayerOut == "" && wk.Kind == "" {
			continue
		}
		out = append(out, wk)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// bowlerCreditedKinds are the dismissal kinds attributed to the bowler.
// Run-outs and the rest still count as batting dismissals and team wickets.
var bowlerCreditedKinds = map[string]struct{}{
	"bowled":            {},
	"caught":            {},
	"lbw":               {},
	"caught and bowled": {},
	"stumped":           {},
}

// BowlerCredited reports whether a dismissal of the given kind counts toward
// the bowler's wicket tally.
func BowlerCredited(kind string) bool {
	_, ok := bowlerCreditedKinds[kind]
	return ok
}

// ---- Aggregated records ----

type BattingStats struct {
	Innings    int     `json:"innings"`
	Runs       int     `json:"runs"`
	BallsFaced int     `json:"balls_faced"`
	Dismissals int     `json:"dismissals"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
}

type BowlingStats struct {
	Overs        float64 `json:"overs"`
	RunsConceded int     `json:"runs_conceded"`
	Wickets      int     `json:"wickets"`
	Economy      float64 `json:"economy"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strike_rate"`
	BallsBowled  int     `json:"balls_bowled"`
}

// PlayerRecord holds one player's running counters within a format+team scope.
// Created lazily on first appearance, mutated additively, never deleted.
type PlayerRecord struct {
	Role    Role         `json:"role"`
	Batting BattingStats `json:"batting"`
	Bowling BowlingStats `json:"bowling"`
}

// TeamRecord holds one team's counters and players within a format scope.
type TeamRecord struct {
	MatchesPlayed     int                      `json:"matches_played"`
	MatchesWon        int                      `json:"matches_won"`
	WinPercentage     float64                  `json:"win_percentage"`
	TotalRunsScored   int                      `json:"total_runs_scored"`
	TotalWicketsTaken int                      `json:"total_wickets_taken"`
	TotalRunsConceded int                      `json:"total_runs_conceded"`
	TotalWicketsLost  int                      `json:"total_wickets_lost"`
	Players           map[string]*PlayerRecord `json:"players"`
	Strengths         []string                 `json:"strengths"`
}

// NewTeamRecord returns an empty team record with initialized containers.
func NewTeamRecord() *TeamRecord {
	return &TeamRecord{
		Players:   make(map[string]*PlayerRecord),
		Strengths: []string{},
	}
}

// Player returns the record for the named player, creating it on first use.
func (t *TeamRecord) Player(name string) *PlayerRecord {
	p, ok := t.Players[name]
	if !ok {
		p = &PlayerRecord{Role: RoleUnknown}
		t.Players[name] = p
	}
	return p
}

// TeamSummary is the per-team slice of the cross-format summary snapshot.
type TeamSummary struct {
	MatchesPlayed int      `json:"matches_played"`
	MatchesWon    int      `json:"matches_won"`
	WinPercentage float64  `json:"win_percentage"`
	Strengths     []string `json:"strengths"`
}

// ---- Boundary leaderboard records ----

// Shot is one boundary event. Zone is a presentation-layer concern and stays
// null in this engine.
type Shot struct {
	Type string  `json:"type"`
	Zone *string `json:"zone"`
}

// BoundaryPlayer accumulates boundary stats for one player across every
// in-scope match, regardless of format. StrikeRate is an estimate from an
// assumed 20 balls per match; this path does not track balls faced.
type BoundaryPlayer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Matches    int     `json:"matches"`
	Runs       int     `json:"runs"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strikeRate"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	Shots      []Shot  `json:"shots"`
}

// Boundaries returns the total boundary count used for ranking.
func (b *BoundaryPlayer) Boundaries() int {
	return b.Fours + b.Sixes
}

// Leaderboard is the serialized shape of the boundary-hitter snapshot.
type Leaderboard struct {
	TopPlayers []BoundaryPlayer `json:"topPlayers"`
}
