package match

import "testing"

func TestFilterIncomplete(t *testing.T) {
	in := []Match{
		{StartTime: 1, Team1Players: fivePlayers("a"), Team2Players: fivePlayers("b")},
		{StartTime: 2, Team1Players: fivePlayers("c")[:4], Team2Players: fivePlayers("d")},
		{StartTime: 3, Team1Players: fivePlayers("e"), Team2Players: fivePlayers("f")},
		{StartTime: 4},
	}

	out := FilterIncomplete(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 complete matches, got %d", len(out))
	}
	if out[0].StartTime != 1 || out[1].StartTime != 3 {
		t.Fatalf("order not preserved: %d, %d", out[0].StartTime, out[1].StartTime)
	}
}

func TestFilterByTime_InclusiveBounds(t *testing.T) {
	in := []Match{{StartTime: 100}, {StartTime: 200}, {StartTime: 300}}

	out := FilterByTime(in, 100, 200)
	if len(out) != 2 || out[0].StartTime != 100 || out[1].StartTime != 200 {
		t.Fatalf("inclusive bounds broken: %+v", out)
	}

	out = FilterByTime(in, 150, 300)
	if len(out) != 2 || out[0].StartTime != 200 {
		t.Fatalf("expected matches at 200 and 300, got %+v", out)
	}
}

func TestFilterByTime_UnboundedSides(t *testing.T) {
	in := []Match{{StartTime: 100}, {StartTime: 200}, {StartTime: 300}}

	out := FilterByTime(in, Unbounded, 200)
	if len(out) != 2 {
		t.Fatalf("unbounded start: expected 2 matches, got %d", len(out))
	}

	out = FilterByTime(in, 200, Unbounded)
	if len(out) != 2 {
		t.Fatalf("unbounded end: expected 2 matches, got %d", len(out))
	}

	out = FilterByTime(in, Unbounded, Unbounded)
	if len(out) != len(in) {
		t.Fatalf("fully unbounded filter must keep everything, got %d", len(out))
	}
	for i := range in {
		if out[i].StartTime != in[i].StartTime {
			t.Fatalf("order not preserved at %d", i)
		}
	}
}
