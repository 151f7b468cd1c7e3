// Package config holds the run configuration: formats to process, rosters
// and event keywords for the boundary-pass filter, and refresh windows.
// Rosters are injected here rather than compiled into the filter so tests and
// deployments can substitute alternate lists.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Formats     []string          `yaml:"formats"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Refresh     RefreshConfig     `yaml:"refresh"`
}

type LeaderboardConfig struct {
	Size               int      `yaml:"size"`
	InternationalTeams []string `yaml:"international_teams"`
	FranchiseTeams     []string `yaml:"franchise_teams"`
	LeagueTeams        []string `yaml:"league_teams"`
	EventKeywords      []string `yaml:"event_keywords"`
}

// RefreshConfig controls the freshness windows, in days, for the update
// command.
type RefreshConfig struct {
	StatsDays       int `yaml:"stats_days"`
	LeaderboardDays int `yaml:"leaderboard_days"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Formats: []string{"t20", "odi", "test", "ipl"},
		Leaderboard: LeaderboardConfig{
			Size: 15,
			InternationalTeams: []string{
				"Australia", "England", "India", "Pakistan", "South Africa",
				"New Zealand", "West Indies", "Sri Lanka", "Bangladesh", "Afghanistan",
			},
			FranchiseTeams: []string{
				"Chennai Super Kings", "Mumbai Indians", "Royal Challengers Bangalore",
				"Kolkata Knight Riders", "Delhi Capitals", "Sunrisers Hyderabad",
				"Rajasthan Royals", "Punjab Kings", "Lucknow Super Giants", "Gujarat Titans",
			},
			LeagueTeams: []string{
				"MI Cape Town", "Paarl Royals", "Pretoria Capitals", "Joburg Super Kings",
				"Durban Super Giants", "Sunrisers Eastern Cape",
			},
			EventKeywords: []string{"ipl", "indian premier league", "sa20"},
		},
		Refresh: RefreshConfig{
			StatsDays:       30,
			LeaderboardDays: 7,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// AllTeams returns the combined inclusion roster for the boundary filter.
func (l *LeaderboardConfig) AllTeams() []string {
	out := make([]string, 0, len(l.InternationalTeams)+len(l.FranchiseTeams)+len(l.LeagueTeams))
	out = append(out, l.InternationalTeams...)
	out = append(out, l.FranchiseTeams...)
	out = append(out, l.LeagueTeams...)
	return out
}
