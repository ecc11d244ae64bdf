package usecase

import (
	"github.com/icarogtavares/counter-strike/internal/domain/match"
	"github.com/icarogtavares/counter-strike/internal/domain/rating"
)

// informationContent weighs how much evidentiary trust the rating engine
// should place in one match. The weight is a product of modifier terms so
// further terms (event importance, map count) can slot in without changing
// call sites; today the recency modifier is the only one.
func informationContent(ratingCtx rating.Context, m *match.Match) float64 {
	modifiers := []float64{
		ratingCtx.TimestampModifier(m.StartTime),
	}

	weight := 1.0
	for _, mod := range modifiers {
		weight *= mod
	}
	return weight
}
