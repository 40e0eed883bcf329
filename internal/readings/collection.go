// Package readings holds the in-memory collection of parsed temperature
// readings and the insertion sorter used to order them by temperature.
package readings

import "github.com/chrissnell/tempstats/internal/types"

// Collection is an ordered, growable set of readings. Until it is sorted the
// order is the order in which the lines appeared in the input file.
type Collection struct {
	items []types.Reading
}

// New creates an empty collection with room for capacity readings
func New(capacity int) *Collection {
	if capacity < 0 {
		capacity = 0
	}
	return &Collection{items: make([]types.Reading, 0, capacity)}
}

// FromReadings creates a collection holding a copy of rs, in the same order
func FromReadings(rs []types.Reading) *Collection {
	c := New(len(rs))
	c.items = append(c.items, rs...)
	return c
}

// Append adds r at the end of the collection
func (c *Collection) Append(r types.Reading) {
	c.items = append(c.items, r)
}

// Len returns the number of readings in the collection
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the reading at 0-based position i
func (c *Collection) At(i int) types.Reading {
	return c.items[i]
}

// All returns a copy of the readings in collection order
func (c *Collection) All() []types.Reading {
	if c == nil {
		return []types.Reading{}
	}
	out := make([]types.Reading, len(c.items))
	copy(out, c.items)
	return out
}

// Temperatures returns the temperatures in collection order, widened to
// float64 for the numeric kernels.
func (c *Collection) Temperatures() []float64 {
	out := make([]float64, c.Len())
	for i, r := range c.items {
		out[i] = float64(r.Temperature)
	}
	return out
}

// IsSortedByTemperature reports whether temperatures are non-decreasing
func (c *Collection) IsSortedByTemperature() bool {
	for i := 1; i < c.Len(); i++ {
		if c.items[i].Temperature < c.items[i-1].Temperature {
			return false
		}
	}
	return true
}
