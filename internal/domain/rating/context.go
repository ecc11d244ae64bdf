package rating

// Context is the contract the dataset loader requires from the rating
// engine's calibration state. The loader configures it once per load and
// reads back a per-timestamp trust modifier; how the modifier is derived is
// the engine's business.
type Context interface {
	// SetTimeWindow hands over the calibration window. The end here already
	// has the loader's grace period subtracted, so it is narrower than the
	// window used for match inclusion.
	SetTimeWindow(start, end int64)
	// TimestampModifier returns the trust modifier for a match start time.
	TimestampModifier(ts int64) float64
	// SetHveMod sets the high-value-event weighting knob.
	SetHveMod(v float64)
	// SetOutlierCount sets how many extreme observations the engine discards.
	SetOutlierCount(n int)
}

const defaultModifierFloor = 0.2

// Window is the default Context: a linear recency decay over the calibration
// window. Matches at the window end carry full weight, matches at the window
// start decay to a floor, and timestamps outside the window are clamped.
type Window struct {
	start        int64
	end          int64
	floor        float64
	hveMod       float64
	outlierCount int
}

func NewWindow() *Window {
	return &Window{
		floor:  defaultModifierFloor,
		hveMod: 1.0,
	}
}

func (w *Window) SetTimeWindow(start, end int64) {
	w.start = start
	w.end = end
}

func (w *Window) TimestampModifier(ts int64) float64 {
	if w.end <= w.start {
		return 1.0
	}
	if ts >= w.end {
		return 1.0
	}
	if ts <= w.start {
		return w.floor
	}

	frac := float64(ts-w.start) / float64(w.end-w.start)
	return w.floor + (1.0-w.floor)*frac
}

func (w *Window) SetHveMod(v float64) {
	w.hveMod = v
}

func (w *Window) SetOutlierCount(n int) {
	w.outlierCount = n
}

func (w *Window) HveMod() float64 {
	return w.hveMod
}

func (w *Window) OutlierCount() int {
	return w.outlierCount
}
