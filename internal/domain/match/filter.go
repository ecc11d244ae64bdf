package match

// Unbounded disables one side of a time filter.
const Unbounded int64 = -1

// FilterIncomplete keeps matches where both sides fielded exactly TeamSize
// players. Input order is preserved.
func FilterIncomplete(in []Match) []Match {
	out := make([]Match, 0, len(in))
	for _, m := range in {
		if m.IsComplete() {
			out = append(out, m)
		}
	}
	return out
}

// FilterByTime keeps matches whose start time lies inside [start, end], both
// bounds inclusive. Either bound may be Unbounded. Input order is preserved.
func FilterByTime(in []Match, start, end int64) []Match {
	out := make([]Match, 0, len(in))
	for _, m := range in {
		if start != Unbounded && m.StartTime < start {
			continue
		}
		if end != Unbounded && m.StartTime > end {
			continue
		}
		out = append(out, m)
	}
	return out
}
