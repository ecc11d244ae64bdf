package memory

import (
	"context"
	"sync"

	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

// Source serves a corpus held in memory. Reads copy out so callers can never
// reorder or grow the backing slices from outside.
type Source struct {
	mu      sync.RWMutex
	events  []event.Record
	matches []match.Match
}

func NewSource(events []event.Record, matches []match.Match) *Source {
	return &Source{
		events:  append([]event.Record(nil), events...),
		matches: append([]match.Match(nil), matches...),
	}
}

func (s *Source) Events(_ context.Context) ([]event.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.Record, 0, len(s.events))
	out = append(out, s.events...)
	return out, nil
}

func (s *Source) Matches(_ context.Context) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Match, 0, len(s.matches))
	out = append(out, s.matches...)
	return out, nil
}
