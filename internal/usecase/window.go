package usecase

import (
	"fmt"
	"time"

	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

const (
	// defaultLoadWindow is the lookback used when no explicit window is set.
	defaultLoadWindow = 180 * 24 * time.Hour
	// defaultGracePeriod is the trailing slice of the window withheld from
	// the rating context's calibration. Matches inside it are still loaded
	// and rated; they just do not steer the context's recency model.
	defaultGracePeriod = 30 * 24 * time.Hour
)

// computeTimeWindow derives the inclusive [start, end] bounds for one load,
// in Unix milliseconds. When no explicit end time is configured the most
// recent candidate match defines it; with zero candidates there is nothing to
// take a maximum over, so the load fails with ErrEmptyDataset instead of
// inventing a window.
func computeTimeWindow(candidates []match.Match, endTime int64, lookback time.Duration) (int64, int64, error) {
	end := endTime
	if end == match.Unbounded {
		if len(candidates) == 0 {
			return 0, 0, fmt.Errorf("%w: no matches to derive the window end from", ErrEmptyDataset)
		}
		for _, m := range candidates {
			if m.StartTime > end {
				end = m.StartTime
			}
		}
	}

	return end - lookback.Milliseconds(), end, nil
}
