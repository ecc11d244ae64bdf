package event

// TeamRecord is one row of an event's prize distribution, keyed by the
// tournament-scoped team identifier. Immutable once constructed.
type TeamRecord struct {
	TeamID    int64
	Placement int
	Prize     int64
	Shared    bool
}

// Record is a raw tournament-event record as it appears in the source corpus.
// PrizePool stays a free-form string here; parsing happens when the Event
// entity is built.
type Record struct {
	ID           int64
	Name         string
	PrizePool    string
	LAN          bool
	Distribution []TeamRecord
}

// Clone returns a structurally independent copy of the record, prize
// distribution included.
func (r Record) Clone() Record {
	out := r
	out.Distribution = append([]TeamRecord(nil), r.Distribution...)
	return out
}

// Event is the per-load tournament entity: parsed prize pool, prize
// distribution indexed by tournament-scoped team id, and the latest match
// time accrued while matches referencing the event are processed. Rebuilt
// from the source records on every load.
type Event struct {
	ID            int64
	Name          string
	PrizePool     int64
	LAN           bool
	TeamResults   map[int64]TeamRecord
	LastMatchTime int64
}

// AccrueMatch records that a match belonging to this event started at the
// given time, keeping the running maximum.
func (e *Event) AccrueMatch(startTime int64) {
	if startTime > e.LastMatchTime {
		e.LastMatchTime = startTime
	}
}

// Result returns the prize-distribution row for a tournament-scoped team id.
func (e *Event) Result(teamID int64) (TeamRecord, bool) {
	row, ok := e.TeamResults[teamID]
	return row, ok
}
