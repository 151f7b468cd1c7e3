package leaderboard

import (
	"testing"

	"github.com/pable/go-cricket-stats/internal/model"
)

var testRoster = []string{"India", "Australia", "Mumbai Indians"}
var testKeywords = []string{"ipl", "indian premier league"}

func makeDelivery(batter string, runs int) model.Delivery {
	return model.Delivery{
		Batter: batter,
		Bowler: "bowler",
		Runs:   model.Runs{Batter: runs, Total: runs},
	}
}

func makeMatch(team1, team2, event string, innings ...model.Innings) *model.Match {
	return &model.Match{
		Info: model.Info{
			Teams: []string{team1, team2},
			Event: model.Event{Name: event},
		},
		Innings: innings,
	}
}

func makeInnings(team string, deliveries ...model.Delivery) model.Innings {
	return model.Innings{Team: team, Overs: []model.Over{{Deliveries: deliveries}}}
}

// ---- filter ----

func TestMatchInScopeByRoster(t *testing.T) {
	f := NewFilter(testRoster, testKeywords)

	if !f.MatchInScope([]string{"India", "Scotland"}, "") {
		t.Error("roster member in team pair must be in scope")
	}
	if f.MatchInScope([]string{"Scotland", "Namibia"}, "Some Trophy") {
		t.Error("no roster member and no keyword must be out of scope")
	}
}

func TestMatchInScopeByKeyword(t *testing.T) {
	f := NewFilter(testRoster, testKeywords)

	if !f.MatchInScope([]string{"Gujarat Titans", "Punjab Kings"}, "Indian Premier League") {
		t.Error("keyword in event name must be in scope regardless of teams")
	}
	if !f.MatchInScope([]string{"Gujarat Titans", "Punjab Kings"}, "THE IPL FINAL") {
		t.Error("keyword matching must be case-insensitive")
	}
}

func TestTeamInScopeIsExact(t *testing.T) {
	f := NewFilter(testRoster, nil)
	if f.TeamInScope("india") || f.TeamInScope("India A") {
		t.Error("roster membership must be an exact name match")
	}
}

// ---- tracker ----

func TestBoundaryCounting(t *testing.T) {
	tr := NewTracker(NewFilter(testRoster, nil))
	ok := tr.RecordMatch(makeMatch("India", "Australia", "",
		makeInnings("India",
			makeDelivery("p1", 4),
			makeDelivery("p1", 6),
			makeDelivery("p1", 1),
		),
	))
	if !ok {
		t.Fatal("in-scope match must be recorded")
	}

	top := tr.Finalize(10)
	if len(top) != 1 {
		t.Fatalf("want 1 player, got %d", len(top))
	}
	p := top[0]
	if p.Fours != 1 || p.Sixes != 1 || p.Runs != 11 {
		t.Errorf("counters wrong: %+v", p)
	}
	if len(p.Shots) != 2 || p.Shots[0].Type != "four" || p.Shots[1].Type != "six" {
		t.Errorf("shot log wrong: %+v", p.Shots)
	}
	if p.Shots[0].Zone != nil {
		t.Error("shot zone must stay null")
	}
	if p.Name != p.ID {
		t.Errorf("name must mirror id, got id=%q name=%q", p.ID, p.Name)
	}
}

func TestOneMatchCreditPerDocument(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India", "Australia"}, nil))

	// Same player bats in two innings of the same match.
	tr.RecordMatch(makeMatch("India", "Australia", "",
		makeInnings("India", makeDelivery("p1", 4)),
		makeInnings("India", makeDelivery("p1", 6)),
	))
	if got := tr.players["p1"].Matches; got != 1 {
		t.Errorf("two innings, one document: want matches=1, got %d", got)
	}

	tr.RecordMatch(makeMatch("India", "Australia", "",
		makeInnings("India", makeDelivery("p1", 0)),
	))
	if got := tr.players["p1"].Matches; got != 2 {
		t.Errorf("second document: want matches=2, got %d", got)
	}
}

func TestOutOfScopeInningsSkipped(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India"}, nil))

	// Match is in scope via India, but Scotland's innings must not contribute.
	tr.RecordMatch(makeMatch("India", "Scotland", "",
		makeInnings("Scotland", makeDelivery("scot1", 4)),
		makeInnings("India", makeDelivery("ind1", 4)),
	))

	if _, ok := tr.players["scot1"]; ok {
		t.Error("players of out-of-scope innings must not be tracked")
	}
	if _, ok := tr.players["ind1"]; !ok {
		t.Error("in-scope innings must be tracked")
	}
}

func TestOutOfScopeMatchRejected(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India"}, []string{"ipl"}))
	if tr.RecordMatch(makeMatch("Scotland", "Namibia", "World Cup Qualifier",
		makeInnings("Scotland", makeDelivery("p1", 4)),
	)) {
		t.Error("out-of-scope match must report false")
	}
	if len(tr.players) != 0 {
		t.Error("out-of-scope match must contribute nothing")
	}
}

func TestRankingByBoundariesDescending(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India"}, nil))

	var deliveries []model.Delivery
	add := func(batter string, fours, sixes int) {
		for i := 0; i < fours; i++ {
			deliveries = append(deliveries, makeDelivery(batter, 4))
		}
		for i := 0; i < sixes; i++ {
			deliveries = append(deliveries, makeDelivery(batter, 6))
		}
	}
	add("p1", 10, 5) // 15 boundaries
	add("p2", 3, 1)  // 4
	add("p3", 0, 20) // 20

	tr.RecordMatch(makeMatch("India", "Australia", "", makeInnings("India", deliveries...)))
	top := tr.Finalize(10)

	want := []string{"p3", "p1", "p2"}
	for i, id := range want {
		if top[i].ID != id {
			t.Errorf("rank %d: want %s, got %s", i+1, id, top[i].ID)
		}
	}
}

func TestRankingTiesKeepInsertionOrder(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India"}, nil))
	tr.RecordMatch(makeMatch("India", "Australia", "", makeInnings("India",
		makeDelivery("first", 4),
		makeDelivery("second", 4),
	)))

	top := tr.Finalize(10)
	if top[0].ID != "first" || top[1].ID != "second" {
		t.Errorf("tied players must keep insertion order, got %s, %s", top[0].ID, top[1].ID)
	}
}

func TestFinalizeTruncatesToN(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India"}, nil))
	tr.RecordMatch(makeMatch("India", "Australia", "", makeInnings("India",
		makeDelivery("p1", 4),
		makeDelivery("p2", 4),
		makeDelivery("p3", 4),
	)))

	if got := len(tr.Finalize(2)); got != 2 {
		t.Errorf("want 2 entries after truncation, got %d", got)
	}
}

func TestDerivedEstimates(t *testing.T) {
	tr := NewTracker(NewFilter([]string{"India"}, nil))

	// 100 runs across two documents: average 50, estimated SR 250.
	score := func() *model.Match {
		var ds []model.Delivery
		for i := 0; i < 10; i++ {
			ds = append(ds, makeDelivery("p1", 5))
		}
		return makeMatch("India", "Australia", "", makeInnings("India", ds...))
	}
	tr.RecordMatch(score())
	tr.RecordMatch(score())

	p := tr.Finalize(10)[0]
	if p.Average != 50.0 {
		t.Errorf("average: want 50.0, got %.2f", p.Average)
	}
	if p.StrikeRate != 250.0 {
		t.Errorf("strike rate: want 250.0, got %.2f", p.StrikeRate)
	}
}
