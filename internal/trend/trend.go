// Package trend classifies a new temperature against the moving average of
// the previous ones, the way the station labels each line it logs.
package trend

import "github.com/chrissnell/tempstats/internal/types"

// Defaults used by the station
const (
	DefaultWindowSize = 5
	DefaultPercent    = 5.0
)

// Window is a fixed-size moving window over the most recent temperatures
type Window struct {
	size   int
	values []float64
}

// NewWindow creates a window averaging the last size temperatures
func NewWindow(size int) *Window {
	if size < 1 {
		size = DefaultWindowSize
	}
	return &Window{size: size, values: make([]float64, 0, size)}
}

// Add pushes t into the window, dropping the oldest value once full
func (w *Window) Add(t float64) {
	if len(w.values) == w.size {
		copy(w.values, w.values[1:])
		w.values = w.values[:w.size-1]
	}
	w.values = append(w.values, t)
}

// Average returns the mean of the window. ok is false until the window has
// been filled.
func (w *Window) Average() (avg float64, ok bool) {
	if len(w.values) < w.size {
		return 0, false
	}
	var sum float64
	for _, v := range w.values {
		sum += v
	}
	return sum / float64(w.size), true
}

// Observe adds t to the window and labels it against the average of the
// window including t itself, so the label is known from the size-th reading on.
func (w *Window) Observe(t, pct float64) string {
	w.Add(t)
	avg, ok := w.Average()
	return Classify(t, avg, ok, pct)
}

// Classify labels t against avg. Readings more than pct percent of avg above
// or below it are high or low, anything in between is steady. Without an
// average (ok false) the label is TrendNoData.
func Classify(t, avg float64, ok bool, pct float64) string {
	if !ok {
		return types.TrendNoData
	}

	band := avg * pct / 100
	switch {
	case t > avg+band:
		return types.TrendHigh
	case t < avg-band:
		return types.TrendLow
	default:
		return types.TrendSteady
	}
}
