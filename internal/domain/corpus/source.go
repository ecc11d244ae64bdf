package corpus

import (
	"context"

	"github.com/icarogtavares/counter-strike/internal/domain/event"
	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

// Source is a read-only view of the historical corpus. The loader treats it
// as immutable: returned records are cloned before any in-place mutation, and
// a source must stay safe to read again on the next load.
type Source interface {
	Events(ctx context.Context) ([]event.Record, error)
	Matches(ctx context.Context) ([]match.Match, error)
}
