// Package stats computes descriptive statistics over a collection of
// temperature readings.
//
// Every function needs at least one reading and fails with ErrNoReadings
// otherwise. Median additionally needs the collection to be ordered by
// temperature (see readings.SortByTemperature).
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/tempstats/internal/readings"
	"github.com/chrissnell/tempstats/internal/types"
)

var (
	// ErrNoReadings is returned when a statistic is requested over an empty collection
	ErrNoReadings = errors.New("statistic requires at least one reading")
	// ErrNotSorted is returned by Median for a collection not ordered by temperature
	ErrNotSorted = errors.New("collection is not sorted by temperature")
)

// Count returns the number of readings
func Count(c *readings.Collection) int {
	return c.Len()
}

// Minimum returns the coldest reading. On ties the first one wins.
func Minimum(c *readings.Collection) (types.Reading, error) {
	if c.Len() == 0 {
		return types.Reading{}, ErrNoReadings
	}

	min := c.At(0)
	for i := 1; i < c.Len(); i++ {
		if r := c.At(i); r.Temperature < min.Temperature {
			min = r
		}
	}
	return min, nil
}

// Maximum returns the warmest reading. On ties the first one wins.
func Maximum(c *readings.Collection) (types.Reading, error) {
	if c.Len() == 0 {
		return types.Reading{}, ErrNoReadings
	}

	max := c.At(0)
	for i := 1; i < c.Len(); i++ {
		if r := c.At(i); r.Temperature > max.Temperature {
			max = r
		}
	}
	return max, nil
}

// Mean returns the arithmetic mean temperature
func Mean(c *readings.Collection) (float64, error) {
	if c.Len() == 0 {
		return 0, ErrNoReadings
	}
	return stat.Mean(c.Temperatures(), nil), nil
}

// Median returns the median temperature of a temperature-sorted collection.
// For an even count it is the average of the two central readings.
func Median(c *readings.Collection) (float64, error) {
	n := c.Len()
	if n == 0 {
		return 0, ErrNoReadings
	}
	if !c.IsSortedByTemperature() {
		return 0, ErrNotSorted
	}

	// Positions are 1-based
	if n%2 == 0 {
		p1 := n / 2
		p2 := (n + 2) / 2
		return (float64(c.At(p1-1).Temperature) + float64(c.At(p2-1).Temperature)) / 2, nil
	}

	p := (n + 1) / 2
	return float64(c.At(p - 1).Temperature), nil
}

// StdDev returns the population standard deviation of the temperatures
// around mean, normally the value returned by Mean.
func StdDev(c *readings.Collection, mean float64) (float64, error) {
	if c.Len() == 0 {
		return 0, ErrNoReadings
	}
	// The second moment about the mean, normalised by N
	variance := stat.MomentAbout(2, c.Temperatures(), mean, nil)
	return math.Sqrt(variance), nil
}
