package event

// BuildRegistry maps event id to a freshly built Event entity. Each load gets
// its own entities: records are cloned first and the distribution rows are
// re-indexed into a new map, so accrual during the load never reaches back
// into the source corpus.
func BuildRegistry(records []Record) map[int64]*Event {
	out := make(map[int64]*Event, len(records))
	for _, rec := range records {
		rec = rec.Clone()

		results := make(map[int64]TeamRecord, len(rec.Distribution))
		for _, row := range rec.Distribution {
			results[row.TeamID] = row
		}

		out[rec.ID] = &Event{
			ID:          rec.ID,
			Name:        rec.Name,
			PrizePool:   ParsePrizePool(rec.PrizePool),
			LAN:         rec.LAN,
			TeamResults: results,
		}
	}
	return out
}
