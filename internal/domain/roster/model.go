package roster

import (
	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

// MinSharedPlayers is how many players two lineups must share to count as the
// same competitive entity. Three of five mirrors the roster-continuity rule
// tournaments apply to rebranded or partially rebuilt teams.
const MinSharedPlayers = 3

// EventParticipation ties a roster to a tournament it competed in, carrying
// the prize-distribution row when the event had one for the roster's
// tournament-scoped team id.
type EventParticipation struct {
	Event     *event.Event
	TeamID    int64
	Placement int
	Prize     int64
	Shared    bool
	Placed    bool
}

// Roster is a canonical competitive team identified by player overlap across
// matches. Its name and defining player set come from the most recent match
// it was seen in; match history and event participations accumulate during a
// single load.
type Roster struct {
	ID      int
	Name    string
	Players []string

	Matches         []*match.Match
	Participations  []EventParticipation
	SeedingModifier float64

	playerSet  map[string]struct{}
	seenEvents map[int64]struct{}
}

func NewRoster(id int, name string, players []string) *Roster {
	playerSet := make(map[string]struct{}, len(players))
	for _, p := range players {
		playerSet[p] = struct{}{}
	}

	return &Roster{
		ID:              id,
		Name:            name,
		Players:         append([]string(nil), players...),
		SeedingModifier: 1.0,
		playerSet:       playerSet,
		seenEvents:      make(map[int64]struct{}),
	}
}

// SharesRoster reports whether the candidate lineup overlaps this roster
// enough to be the same competitive entity.
func (r *Roster) SharesRoster(players []string) bool {
	shared := 0
	for _, p := range players {
		if _, ok := r.playerSet[p]; ok {
			shared++
		}
	}
	return shared >= MinSharedPlayers
}

// AccumulateMatch records that this roster played in m.
func (r *Roster) AccumulateMatch(m *match.Match) {
	r.Matches = append(r.Matches, m)
}

// RecordEventParticipation attaches prize and placement context for an event
// the roster competed in. teamID must be the tournament-scoped identifier
// taken from the match at resolution time; that link exists nowhere else once
// roster ids replace team ids. Repeat calls for the same event are dropped so
// a deep tournament run does not count its prize once per match.
func (r *Roster) RecordEventParticipation(ev *event.Event, teamID int64) {
	if ev == nil {
		return
	}
	if _, ok := r.seenEvents[ev.ID]; ok {
		return
	}
	r.seenEvents[ev.ID] = struct{}{}

	p := EventParticipation{Event: ev, TeamID: teamID}
	if row, ok := ev.Result(teamID); ok {
		p.Placement = row.Placement
		p.Prize = row.Prize
		p.Shared = row.Shared
		p.Placed = true
	}
	r.Participations = append(r.Participations, p)
}

// PrizeWinnings sums the prize money attached to this roster's event
// participations.
func (r *Roster) PrizeWinnings() int64 {
	var total int64
	for _, p := range r.Participations {
		total += p.Prize
	}
	return total
}
