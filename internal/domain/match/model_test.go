package match

import "testing"

func fivePlayers(prefix string) []string {
	return []string{prefix + "-1", prefix + "-2", prefix + "-3", prefix + "-4", prefix + "-5"}
}

func TestIsComplete(t *testing.T) {
	m := Match{Team1Players: fivePlayers("a"), Team2Players: fivePlayers("b")}
	if !m.IsComplete() {
		t.Fatalf("expected complete match")
	}

	m.Team2Players = m.Team2Players[:4]
	if m.IsComplete() {
		t.Fatalf("four players on one side must not count as complete")
	}

	m.Team2Players = append(fivePlayers("b"), "b-6")
	if m.IsComplete() {
		t.Fatalf("six players on one side must not count as complete")
	}
}

func TestClone_Isolation(t *testing.T) {
	src := Match{
		StartTime:    100,
		EventID:      7,
		Team1Name:    "Team A",
		Team2Name:    "Team B",
		Team1Players: fivePlayers("a"),
		Team2Players: fivePlayers("b"),
		Maps: []MapResult{
			{Name: "de_inferno", Team1Score: 13, Team2Score: 9},
		},
	}

	clone := src.Clone()
	clone.Team1Players[0] = "substitute"
	clone.Team2Players[4] = "substitute"
	clone.Maps[0].Team1Score = 0
	clone.Team1Name = "renamed"
	clone.InformationContent = 0.5
	clone.Roster1ID = 3

	if src.Team1Players[0] != "a-1" || src.Team2Players[4] != "b-5" {
		t.Fatalf("source player lists mutated: %v / %v", src.Team1Players, src.Team2Players)
	}
	if src.Maps[0].Team1Score != 13 {
		t.Fatalf("source map results mutated: %+v", src.Maps[0])
	}
	if src.Team1Name != "Team A" || src.InformationContent != 0 || src.Roster1ID != 0 {
		t.Fatalf("source scalar fields mutated: %+v", src)
	}
}
