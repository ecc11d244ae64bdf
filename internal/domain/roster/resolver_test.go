package roster

import (
	"testing"

	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

// flatContext satisfies rating.Context with a fixed modifier, so seeding math
// can be checked without a calibrated window.
type flatContext struct {
	modifier float64
}

func (c *flatContext) SetTimeWindow(start, end int64)  {}
func (c *flatContext) TimestampModifier(int64) float64 { return c.modifier }
func (c *flatContext) SetHveMod(float64)               {}
func (c *flatContext) SetOutlierCount(int)             {}

var (
	lineupA        = []string{"p1", "p2", "p3", "p4", "p5"}
	lineupAShuffle = []string{"p1", "p2", "p3", "p9", "p10"} // three shared
	lineupB        = []string{"q1", "q2", "q3", "q4", "q5"}
)

func TestResolver_GroupsByPlayerOverlap(t *testing.T) {
	r := NewResolver()

	first := r.Resolve("Team Alpha", lineupA)
	same := r.Resolve("Alpha Legacy", lineupAShuffle)
	other := r.Resolve("Team Beta", lineupB)

	if first != same {
		t.Fatalf("lineups sharing 3 players must resolve to the same roster")
	}
	if first == other {
		t.Fatalf("disjoint lineups must resolve to different rosters")
	}
	if first.ID != 1 || other.ID != 2 {
		t.Fatalf("expected sequential ids 1 and 2, got %d and %d", first.ID, other.ID)
	}
	if first.Name != "Team Alpha" {
		t.Fatalf("canonical name must come from the first (most recent) match, got %q", first.Name)
	}
	if len(r.Rosters()) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(r.Rosters()))
	}
}

func TestResolver_TwoSharedPlayersIsANewRoster(t *testing.T) {
	r := NewResolver()
	r.Resolve("Team Alpha", lineupA)

	twoShared := []string{"p1", "p2", "x3", "x4", "x5"}
	created := r.Resolve("New Org", twoShared)
	if created.ID != 2 {
		t.Fatalf("two shared players must not satisfy roster continuity")
	}
}

func TestResolver_Deterministic(t *testing.T) {
	names := []string{"Recent Name", "Middle Name", "Old Name", "Beta"}
	lineups := [][]string{lineupA, lineupAShuffle, lineupA, lineupB}

	run := func() []*Roster {
		r := NewResolver()
		for i := range names {
			r.Resolve(names[i], lineups[i])
		}
		return r.Rosters()
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs disagree on roster count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Fatalf("runs disagree at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0].Name != "Recent Name" {
		t.Fatalf("canonical name must be the most recent, got %q", first[0].Name)
	}
}

func TestRecordEventParticipation(t *testing.T) {
	ev := &event.Event{
		ID:   7,
		Name: "LAN Final",
		LAN:  true,
		TeamResults: map[int64]event.TeamRecord{
			42: {TeamID: 42, Placement: 1, Prize: 50000},
		},
	}

	r := NewRoster(1, "Team Alpha", lineupA)
	r.RecordEventParticipation(ev, 42)
	r.RecordEventParticipation(ev, 42)

	if len(r.Participations) != 1 {
		t.Fatalf("repeat participation must be dropped, got %d entries", len(r.Participations))
	}
	p := r.Participations[0]
	if !p.Placed || p.Placement != 1 || p.Prize != 50000 {
		t.Fatalf("distribution row not attached: %+v", p)
	}
	if r.PrizeWinnings() != 50000 {
		t.Fatalf("unexpected prize winnings: %d", r.PrizeWinnings())
	}
}

func TestRecordEventParticipation_NoDistributionRow(t *testing.T) {
	ev := &event.Event{ID: 7, TeamResults: map[int64]event.TeamRecord{}}

	r := NewRoster(1, "Team Alpha", lineupA)
	r.RecordEventParticipation(ev, 42)

	if len(r.Participations) != 1 {
		t.Fatalf("participation without a prize row must still be recorded")
	}
	if r.Participations[0].Placed || r.Participations[0].Prize != 0 {
		t.Fatalf("unexpected prize context: %+v", r.Participations[0])
	}
}

func TestAccumulateMatch(t *testing.T) {
	r := NewRoster(1, "Team Alpha", lineupA)
	m1 := &match.Match{StartTime: 200}
	m2 := &match.Match{StartTime: 100}

	r.AccumulateMatch(m1)
	r.AccumulateMatch(m2)

	if len(r.Matches) != 2 || r.Matches[0] != m1 || r.Matches[1] != m2 {
		t.Fatalf("match history not accumulated in call order")
	}
}

func TestInitializeSeedingModifiers(t *testing.T) {
	lan := &event.Event{
		ID: 1, LAN: true,
		TeamResults: map[int64]event.TeamRecord{10: {TeamID: 10, Placement: 1, Prize: 100000}},
	}
	online := &event.Event{
		ID: 2,
		TeamResults: map[int64]event.TeamRecord{20: {TeamID: 20, Placement: 1, Prize: 100000}},
	}

	winnerLAN := NewRoster(1, "LAN Winner", lineupA)
	winnerLAN.RecordEventParticipation(lan, 10)
	winnerOnline := NewRoster(2, "Online Winner", lineupB)
	winnerOnline.RecordEventParticipation(online, 20)
	unplaced := NewRoster(3, "Unplaced", []string{"r1", "r2", "r3", "r4", "r5"})

	InitializeSeedingModifiers([]*Roster{winnerLAN, winnerOnline, unplaced}, &flatContext{modifier: 1.0})

	if winnerLAN.SeedingModifier != 1.0+seedingSpread {
		t.Fatalf("top roster must carry the full spread, got %f", winnerLAN.SeedingModifier)
	}
	if winnerOnline.SeedingModifier <= 1.0 || winnerOnline.SeedingModifier >= winnerLAN.SeedingModifier {
		t.Fatalf("online winnings must count but weigh less than LAN, got %f", winnerOnline.SeedingModifier)
	}
	if unplaced.SeedingModifier != 1.0 {
		t.Fatalf("roster without winnings must stay neutral, got %f", unplaced.SeedingModifier)
	}
}

func TestInitializeSeedingModifiers_NoWinningsAnywhere(t *testing.T) {
	a := NewRoster(1, "A", lineupA)
	b := NewRoster(2, "B", lineupB)

	InitializeSeedingModifiers([]*Roster{a, b}, &flatContext{modifier: 1.0})

	if a.SeedingModifier != 1.0 || b.SeedingModifier != 1.0 {
		t.Fatalf("datasets without prize money must leave every roster neutral")
	}
}
