package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/icarogtavares/counter-strike/internal/domain/corpus"
	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
	"github.com/icarogtavares/counter-strike/internal/domain/rating"
	"github.com/icarogtavares/counter-strike/internal/domain/roster"
	"github.com/icarogtavares/counter-strike/internal/platform/logging"
)

// Result is the published outcome of one load: matches in ascending start
// order (the replay order the rating engine consumes), events by id, and the
// resolved rosters in creation order.
type Result struct {
	Matches []*match.Match
	Events  map[int64]*event.Event
	Rosters []*roster.Roster
}

// DatasetService turns the raw corpus into a cleaned, time-bounded,
// chronologically consistent dataset. Each LoadData call starts from the
// immutable source and rebuilds everything; only the service's own knobs
// survive between calls.
type DatasetService struct {
	source    corpus.Source
	ratingCtx rating.Context
	logger    *logging.Logger

	filterEnd   int64
	window      time.Duration
	gracePeriod time.Duration
	hveMod      float64
	nthHighest  int

	result Result
}

func NewDatasetService(source corpus.Source, ratingCtx rating.Context, logger *logging.Logger) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DatasetService{
		source:      source,
		ratingCtx:   ratingCtx,
		logger:      logger,
		filterEnd:   match.Unbounded,
		window:      defaultLoadWindow,
		gracePeriod: defaultGracePeriod,
		hveMod:      1.0,
	}
}

// SetTimeFilter pins the window end time (Unix milliseconds, Unbounded to
// derive it from the data) and the lookback duration.
func (s *DatasetService) SetTimeFilter(endTime int64, window time.Duration) {
	s.filterEnd = endTime
	if window <= 0 {
		window = defaultLoadWindow
	}
	s.window = window
}

func (s *DatasetService) ClearTimeFilter() {
	s.filterEnd = match.Unbounded
	s.window = defaultLoadWindow
}

func (s *DatasetService) SetHveMod(v float64) {
	s.hveMod = v
}

func (s *DatasetService) SetNthHighest(n int) {
	s.nthHighest = n
}

func (s *DatasetService) SetGracePeriod(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.gracePeriod = d
}

// Result returns the state published by the most recent load.
func (s *DatasetService) Result() Result {
	return s.result
}

// LoadData runs one full load. versionTimestamp, when not Unbounded,
// overrides the configured window end so a dataset can be rebuilt as of a
// point in time.
//
// The two-phase sort is deliberate: rosters are resolved over matches in
// descending order so a roster's canonical identity comes from its most
// recent lineup, then matches are re-sorted ascending because ratings are
// computed as a forward replay of history.
func (s *DatasetService) LoadData(ctx context.Context, versionTimestamp int64) (Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.LoadData")
	defer span.End()

	if versionTimestamp != match.Unbounded {
		s.filterEnd = versionTimestamp
	}

	sourceMatches, err := s.source.Matches(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list corpus matches: %w", err)
	}

	complete := match.FilterIncomplete(sourceMatches)

	start, end, err := computeTimeWindow(complete, s.filterEnd, s.window)
	if err != nil {
		return Result{}, err
	}

	// The rating context calibrates on a window whose end is pulled back by
	// the grace period; inclusion below still uses the full [start, end].
	s.ratingCtx.SetTimeWindow(start, end-s.gracePeriod.Milliseconds())
	s.ratingCtx.SetHveMod(s.hveMod)
	s.ratingCtx.SetOutlierCount(s.nthHighest)

	windowed := match.FilterByTime(complete, start, end)
	matches := make([]*match.Match, 0, len(windowed))
	for _, m := range windowed {
		matches = append(matches, m.Clone())
	}

	sourceEvents, err := s.source.Events(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list corpus events: %w", err)
	}
	events := event.BuildRegistry(sourceEvents)

	for _, m := range matches {
		if ev, ok := events[m.EventID]; ok {
			ev.AccrueMatch(m.StartTime)
		}
	}

	for _, m := range matches {
		m.InformationContent = informationContent(s.ratingCtx, m)
	}

	match.SortByStartTime(matches, match.OrderDescending)
	resolver := roster.NewResolver()
	for _, m := range matches {
		s.resolveSides(resolver, events, m)
	}

	roster.InitializeSeedingModifiers(resolver.Rosters(), s.ratingCtx)

	match.SortByStartTime(matches, match.OrderAscending)

	s.result = Result{
		Matches: matches,
		Events:  events,
		Rosters: resolver.Rosters(),
	}

	s.logger.InfoContext(ctx, "dataset loaded",
		"source_matches", len(sourceMatches),
		"matches", len(matches),
		"events", len(events),
		"rosters", len(resolver.Rosters()),
		"window_start", start,
		"window_end", end,
	)

	return s.result, nil
}

// resolveSides maps both sides of a match onto canonical rosters. Event
// participation must be recorded here, with the tournament-scoped team id
// still on the match: once roster ids take over, nothing else preserves that
// link.
func (s *DatasetService) resolveSides(resolver *roster.Resolver, events map[int64]*event.Event, m *match.Match) {
	ev := events[m.EventID]

	r1 := resolver.Resolve(m.Team1Name, m.Team1Players)
	m.Roster1ID = r1.ID
	r1.AccumulateMatch(m)
	if ev != nil {
		r1.RecordEventParticipation(ev, m.Team1ID)
	}

	r2 := resolver.Resolve(m.Team2Name, m.Team2Players)
	m.Roster2ID = r2.ID
	r2.AccumulateMatch(m)
	if ev != nil {
		r2.RecordEventParticipation(ev, m.Team2ID)
	}
}
