package usecase

import (
	"testing"

	"github.com/icarogtavares/counter-strike/internal/domain/match"
)

func TestInformationContent_UsesRecencyModifier(t *testing.T) {
	ratingCtx := &recordingContext{modifier: 0.25}
	m := &match.Match{StartTime: 123}

	if got := informationContent(ratingCtx, m); got != 0.25 {
		t.Fatalf("information content %f, want 0.25", got)
	}
}

func TestInformationContent_NeutralContext(t *testing.T) {
	m := &match.Match{StartTime: 123}

	if got := informationContent(&recordingContext{}, m); got != 1.0 {
		t.Fatalf("information content %f, want 1.0", got)
	}
}
