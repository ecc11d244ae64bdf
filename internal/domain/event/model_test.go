package event

import "testing"

func TestRecordClone_Isolation(t *testing.T) {
	src := Record{
		ID:        7000,
		Name:      "IEM Katowice 2024",
		PrizePool: "$1,000,000",
		LAN:       true,
		Distribution: []TeamRecord{
			{TeamID: 101, Placement: 1, Prize: 400000},
			{TeamID: 102, Placement: 2, Prize: 180000},
		},
	}

	clone := src.Clone()
	clone.Name = "renamed"
	clone.Distribution[0] = TeamRecord{TeamID: 999, Placement: 9, Prize: 1}

	if src.Name != "IEM Katowice 2024" {
		t.Fatalf("source name mutated: %q", src.Name)
	}
	if src.Distribution[0].TeamID != 101 || src.Distribution[0].Prize != 400000 {
		t.Fatalf("source distribution mutated: %+v", src.Distribution[0])
	}
}

func TestEventAccrueMatch_KeepsMaximum(t *testing.T) {
	ev := &Event{ID: 1}

	ev.AccrueMatch(200)
	ev.AccrueMatch(100)
	if ev.LastMatchTime != 200 {
		t.Fatalf("expected last match time 200, got %d", ev.LastMatchTime)
	}

	ev.AccrueMatch(300)
	if ev.LastMatchTime != 300 {
		t.Fatalf("expected last match time 300, got %d", ev.LastMatchTime)
	}
}

func TestBuildRegistry(t *testing.T) {
	records := []Record{
		{
			ID:        1,
			Name:      "LAN Final",
			PrizePool: "$100,000",
			LAN:       true,
			Distribution: []TeamRecord{
				{TeamID: 11, Placement: 1, Prize: 60000},
				{TeamID: 12, Placement: 2, Prize: 40000},
			},
		},
		{ID: 2, Name: "Online Cup", PrizePool: "TBD"},
	}

	registry := BuildRegistry(records)
	if len(registry) != 2 {
		t.Fatalf("expected 2 events, got %d", len(registry))
	}

	lan := registry[1]
	if lan.PrizePool != 100000 {
		t.Fatalf("expected parsed prize pool 100000, got %d", lan.PrizePool)
	}
	row, ok := lan.Result(12)
	if !ok || row.Prize != 40000 {
		t.Fatalf("expected distribution row for team 12, got %+v ok=%v", row, ok)
	}

	if registry[2].PrizePool != 0 {
		t.Fatalf("unparseable prize pool should degrade to 0, got %d", registry[2].PrizePool)
	}

	// Entities are rebuilt per call; accrual on one registry must not leak
	// into the next.
	registry[1].AccrueMatch(500)
	fresh := BuildRegistry(records)
	if fresh[1].LastMatchTime != 0 {
		t.Fatalf("accrual leaked into a fresh registry: %d", fresh[1].LastMatchTime)
	}
}

func TestBuildRegistry_IsolatedFromSourceRecords(t *testing.T) {
	records := []Record{
		{
			ID:           1,
			Name:         "LAN Final",
			Distribution: []TeamRecord{{TeamID: 11, Placement: 1, Prize: 60000}},
		},
	}

	registry := BuildRegistry(records)
	registry[1].TeamResults[11] = TeamRecord{TeamID: 11, Placement: 5, Prize: 0}

	if records[0].Distribution[0].Prize != 60000 {
		t.Fatalf("source record mutated: %+v", records[0].Distribution[0])
	}
}
