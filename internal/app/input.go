package app

import (
	"math"
	"time"

	"golang.org/x/time/rate"
)

// browserWheelClamp bounds a single wheel report in browsers, whose deltas
// vary wildly between devices.
const browserWheelClamp = 3

// WheelFilter normalizes raw wheel deltas. In browser builds reports are
// rate limited and clamped to +/-3 for a consistent feel.
type WheelFilter struct {
	Browser bool
	limiter *rate.Limiter
}

// NewWheelFilter returns a filter; browser enables limiting and clamping.
func NewWheelFilter(browser bool) *WheelFilter {
	return &WheelFilter{
		Browser: browser,
		limiter: rate.NewLimiter(rate.Every(125*time.Millisecond), 1),
	}
}

// Filter returns the delta to apply at now, or 0 when the report is dropped.
func (f *WheelFilter) Filter(now time.Time, dy float64) float64 {
	if dy == 0 || math.IsNaN(dy) {
		return 0
	}
	if !f.Browser {
		return dy
	}
	if !f.limiter.AllowN(now, 1) {
		return 0
	}
	return math.Copysign(browserWheelClamp, dy)
}

// pinchScale returns the ratio of the new finger distance to the previous
// one, or 1 when either is degenerate.
func pinchScale(prev, cur float64) float64 {
	if prev <= 0 || cur <= 0 {
		return 1
	}
	return cur / prev
}
