package match

import "sort"

// Order selects the chronological direction of a sort.
type Order int

const (
	OrderAscending Order = iota
	OrderDescending
)

// SortByStartTime sorts matches in place by start time. The sort is stable so
// matches sharing a start time keep their relative order, which makes sorting
// idempotent and descending-then-ascending a full reversal.
func SortByStartTime(in []*Match, order Order) {
	sort.SliceStable(in, func(i, j int) bool {
		if order == OrderDescending {
			return in[i].StartTime > in[j].StartTime
		}
		return in[i].StartTime < in[j].StartTime
	})
}
