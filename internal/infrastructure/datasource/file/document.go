package file

import (
	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

// Wire schema of one corpus shard file.
type shardDocument struct {
	Events  []eventDocument `json:"events"`
	Matches []matchDocument `json:"matches"`
}

type eventDocument struct {
	EventID           int64              `json:"eventId" validate:"required,gt=0"`
	EventName         string             `json:"eventName" validate:"required"`
	PrizePool         string             `json:"prizePool"`
	LAN               bool               `json:"lan"`
	PrizeDistribution []prizeRowDocument `json:"prizeDistribution" validate:"dive"`
}

type prizeRowDocument struct {
	TeamID    int64 `json:"teamId" validate:"required,gt=0"`
	Placement int   `json:"placement" validate:"gte=0"`
	Prize     int64 `json:"prize" validate:"gte=0"`
	Shared    bool  `json:"shared"`
}

type matchDocument struct {
	MatchStartTime int64         `json:"matchStartTime" validate:"required,gt=0"`
	EventID        int64         `json:"eventId" validate:"gte=0"`
	Team1Name      string        `json:"team1Name" validate:"required"`
	Team2Name      string        `json:"team2Name" validate:"required"`
	Team1ID        int64         `json:"team1Id" validate:"gte=0"`
	Team2ID        int64         `json:"team2Id" validate:"gte=0"`
	Team1Players   []string      `json:"team1Players"`
	Team2Players   []string      `json:"team2Players"`
	Maps           []mapDocument `json:"maps" validate:"dive"`
}

type mapDocument struct {
	Name       string `json:"name"`
	Team1Score int    `json:"team1Score" validate:"gte=0"`
	Team2Score int    `json:"team2Score" validate:"gte=0"`
}

func (d eventDocument) toRecord() event.Record {
	distribution := make([]event.TeamRecord, 0, len(d.PrizeDistribution))
	for _, row := range d.PrizeDistribution {
		distribution = append(distribution, event.TeamRecord{
			TeamID:    row.TeamID,
			Placement: row.Placement,
			Prize:     row.Prize,
			Shared:    row.Shared,
		})
	}

	return event.Record{
		ID:           d.EventID,
		Name:         d.EventName,
		PrizePool:    d.PrizePool,
		LAN:          d.LAN,
		Distribution: distribution,
	}
}

func (d matchDocument) toMatch() match.Match {
	maps := make([]match.MapResult, 0, len(d.Maps))
	for _, row := range d.Maps {
		maps = append(maps, match.MapResult{
			Name:       row.Name,
			Team1Score: row.Team1Score,
			Team2Score: row.Team2Score,
		})
	}

	return match.Match{
		StartTime:    d.MatchStartTime,
		EventID:      d.EventID,
		Team1ID:      d.Team1ID,
		Team2ID:      d.Team2ID,
		Team1Name:    d.Team1Name,
		Team2Name:    d.Team2Name,
		Team1Players: d.Team1Players,
		Team2Players: d.Team2Players,
		Maps:         maps,
	}
}
