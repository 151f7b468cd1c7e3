package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if len(cfg.Formats) != 4 {
		t.Errorf("want 4 default formats, got %v", cfg.Formats)
	}
	if cfg.Leaderboard.Size != 15 {
		t.Errorf("default leaderboard size: want 15, got %d", cfg.Leaderboard.Size)
	}
	if cfg.Refresh.StatsDays != 30 || cfg.Refresh.LeaderboardDays != 7 {
		t.Errorf("default refresh windows wrong: %+v", cfg.Refresh)
	}

	all := cfg.Leaderboard.AllTeams()
	want := len(cfg.Leaderboard.InternationalTeams) +
		len(cfg.Leaderboard.FranchiseTeams) +
		len(cfg.Leaderboard.LeagueTeams)
	if len(all) != want {
		t.Errorf("AllTeams must combine every roster: want %d, got %d", want, len(all))
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Leaderboard.Size != Default().Leaderboard.Size {
		t.Error("empty path must return defaults")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
formats: [t20]
leaderboard:
  size: 5
  international_teams: [Netherlands]
  event_keywords: [bbl]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "t20" {
		t.Errorf("formats not overridden: %v", cfg.Formats)
	}
	if cfg.Leaderboard.Size != 5 {
		t.Errorf("size not overridden: %d", cfg.Leaderboard.Size)
	}
	if len(cfg.Leaderboard.InternationalTeams) != 1 || cfg.Leaderboard.InternationalTeams[0] != "Netherlands" {
		t.Errorf("roster not overridden: %v", cfg.Leaderboard.InternationalTeams)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Refresh.StatsDays != 30 {
		t.Errorf("untouched section must keep defaults, got %+v", cfg.Refresh)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing config file must yield an error")
	}
}
