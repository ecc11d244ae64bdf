package match

// TeamSize is the roster size both sides must field for a match to count.
const TeamSize = 5

// NoEvent marks a match that was not played as part of any tournament event.
const NoEvent int64 = 0

// MapResult is the outcome of one map inside a series.
type MapResult struct {
	Name       string
	Team1Score int
	Team2Score int
}

// Match is one recorded series between two teams. StartTime is Unix
// milliseconds, the same domain as the loader's time window bounds.
// Team1ID/Team2ID are tournament-scoped identifiers and are only meaningful
// together with EventID.
type Match struct {
	StartTime    int64
	EventID      int64
	Team1ID      int64
	Team2ID      int64
	Team1Name    string
	Team2Name    string
	Team1Players []string
	Team2Players []string
	Maps         []MapResult

	// Derived during a load, never present in the source corpus.
	InformationContent float64
	Roster1ID          int
	Roster2ID          int
}

// IsComplete reports whether both sides fielded a full roster.
func (m Match) IsComplete() bool {
	return len(m.Team1Players) == TeamSize && len(m.Team2Players) == TeamSize
}

// Clone returns a structurally independent copy: player lists and map results
// are copied so mutating the clone never touches the source record.
func (m Match) Clone() *Match {
	out := m
	out.Team1Players = append([]string(nil), m.Team1Players...)
	out.Team2Players = append([]string(nil), m.Team2Players...)
	out.Maps = append([]MapResult(nil), m.Maps...)
	return &out
}
