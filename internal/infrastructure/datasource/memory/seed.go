package memory

import (
	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

// Synthetic corpus used by tests and the default loader run. Timestamps are
// Unix milliseconds across spring 2024.
const (
	EventIDKatowice = int64(7000)
	EventIDBlast    = int64(7148)
	EventIDSkyes    = int64(7500)
)

func SeedEvents() []event.Record {
	return []event.Record{
		{
			ID:        EventIDKatowice,
			Name:      "IEM Katowice 2024",
			PrizePool: "$1,000,000",
			LAN:       true,
			Distribution: []event.TeamRecord{
				{TeamID: 101, Placement: 1, Prize: 400000},
				{TeamID: 102, Placement: 2, Prize: 180000},
				{TeamID: 103, Placement: 3, Prize: 80000, Shared: true},
				{TeamID: 104, Placement: 3, Prize: 80000, Shared: true},
			},
		},
		{
			ID:        EventIDBlast,
			Name:      "BLAST Premier Spring Final 2024",
			PrizePool: "$425,000",
			LAN:       true,
			Distribution: []event.TeamRecord{
				{TeamID: 201, Placement: 1, Prize: 200000},
				{TeamID: 202, Placement: 2, Prize: 85000},
			},
		},
		{
			ID:        EventIDSkyes,
			Name:      "Skyesports Masters 2024",
			PrizePool: "TBD",
			LAN:       false,
			Distribution: []event.TeamRecord{
				{TeamID: 301, Placement: 1, Prize: 0},
			},
		},
	}
}

func SeedMatches() []match.Match {
	spirit := []string{"donk", "sh1ro", "chopper", "magixx", "zont1x"}
	faze := []string{"karrigan", "rain", "Twistzz", "ropz", "broky"}
	// Same core as faze minus one player: resolves to the same roster.
	fazeOld := []string{"karrigan", "rain", "Twistzz", "ropz", "olofmeister"}
	navi := []string{"Aleksib", "jL", "b1t", "iM", "w0nderful"}
	vitality := []string{"apEX", "ZywOo", "Spinx", "flameZ", "mezii"}

	return []match.Match{
		{
			StartTime: 1706900400000, // 2024-02-02, Katowice group stage
			EventID:   EventIDKatowice,
			Team1ID:   102, Team1Name: "FaZe Clan", Team1Players: fazeOld,
			Team2ID: 103, Team2Name: "Natus Vincere", Team2Players: navi,
			Maps: []match.MapResult{
				{Name: "de_inferno", Team1Score: 13, Team2Score: 10},
				{Name: "de_ancient", Team1Score: 13, Team2Score: 7},
			},
		},
		{
			StartTime: 1707588000000, // 2024-02-10, Katowice final
			EventID:   EventIDKatowice,
			Team1ID:   101, Team1Name: "Team Spirit", Team1Players: spirit,
			Team2ID: 102, Team2Name: "FaZe Clan", Team2Players: fazeOld,
			Maps: []match.MapResult{
				{Name: "de_mirage", Team1Score: 13, Team2Score: 11},
				{Name: "de_nuke", Team1Score: 9, Team2Score: 13},
				{Name: "de_anubis", Team1Score: 13, Team2Score: 8},
			},
		},
		{
			StartTime: 1715421600000, // 2024-05-11, online league
			EventID:   EventIDSkyes,
			Team1ID:   301, Team1Name: "Natus Vincere", Team1Players: navi,
			Team2ID: 302, Team2Name: "Team Vitality", Team2Players: vitality,
			Maps: []match.MapResult{
				{Name: "de_vertigo", Team1Score: 13, Team2Score: 9},
			},
		},
		{
			StartTime: 1718388000000, // 2024-06-14, BLAST semifinal
			EventID:   EventIDBlast,
			Team1ID:   202, Team1Name: "FaZe", Team1Players: faze,
			Team2ID: 203, Team2Name: "Natus Vincere", Team2Players: navi,
			Maps: []match.MapResult{
				{Name: "de_dust2", Team1Score: 13, Team2Score: 6},
				{Name: "de_overpass", Team1Score: 13, Team2Score: 10},
			},
		},
		{
			StartTime: 1718560800000, // 2024-06-16, BLAST final
			EventID:   EventIDBlast,
			Team1ID:   201, Team1Name: "Team Vitality", Team1Players: vitality,
			Team2ID: 202, Team2Name: "FaZe", Team2Players: faze,
			Maps: []match.MapResult{
				{Name: "de_inferno", Team1Score: 13, Team2Score: 8},
				{Name: "de_mirage", Team1Score: 13, Team2Score: 11},
			},
		},
		{
			// Showmatch with a stand-in: only four players on one side, so
			// the completeness filter drops it.
			StartTime: 1718647200000,
			EventID:   match.NoEvent,
			Team1ID:   0, Team1Name: "Team Spirit", Team1Players: spirit[:4],
			Team2ID: 0, Team2Name: "Natus Vincere", Team2Players: navi,
		},
	}
}
