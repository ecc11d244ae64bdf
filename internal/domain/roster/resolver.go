package roster

import (
	"github.com/icarogtavares/counter-strike/internal/domain/rating"
)

// Resolver is the per-load roster registry. It is constructed fresh for every
// load so roster identity never leaks between loads.
//
// Callers must feed it matches in descending chronological order: the first
// match a roster is seen in defines its canonical id, name and player set, and
// that identity should come from the lineup's most recent appearance.
type Resolver struct {
	rosters []*Roster
	nextID  int
}

func NewResolver() *Resolver {
	return &Resolver{nextID: 1}
}

// Resolve returns the existing roster sharing enough players with the given
// lineup, or creates one with the next sequential id.
func (r *Resolver) Resolve(name string, players []string) *Roster {
	for _, existing := range r.rosters {
		if existing.SharesRoster(players) {
			return existing
		}
	}

	created := NewRoster(r.nextID, name, players)
	r.nextID++
	r.rosters = append(r.rosters, created)
	return created
}

// Rosters returns every roster resolved so far, in creation order.
func (r *Resolver) Rosters() []*Roster {
	return r.rosters
}

// seedingLANWeight doubles the contribution of LAN events: offline results
// carry more signal about a roster's strength than online ones.
const seedingLANWeight = 2.0

// seedingSpread caps how far above the neutral 1.0 the strongest roster's
// seeding modifier can reach.
const seedingSpread = 0.5

// InitializeSeedingModifiers runs once after resolution completes for a load.
// Each roster's modifier reflects its recency-weighted prize winnings
// relative to the strongest roster in the dataset: prize money is discounted
// by the rating context's trust modifier at the event's last match time, LAN
// events weighted double. A dataset with no prize money leaves every roster
// at the neutral 1.0.
func InitializeSeedingModifiers(rosters []*Roster, ratingCtx rating.Context) {
	weighted := make([]float64, len(rosters))
	max := 0.0
	for i, r := range rosters {
		total := 0.0
		for _, p := range r.Participations {
			value := float64(p.Prize) * ratingCtx.TimestampModifier(p.Event.LastMatchTime)
			if p.Event.LAN {
				value *= seedingLANWeight
			}
			total += value
		}
		weighted[i] = total
		if total > max {
			max = total
		}
	}

	for i, r := range rosters {
		r.SeedingModifier = 1.0
		if max > 0 {
			r.SeedingModifier += seedingSpread * weighted[i] / max
		}
	}
}
