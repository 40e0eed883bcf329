package stats

import (
	"fmt"
	"strings"

	"github.com/chrissnell/tempstats/internal/readings"
)

// ModeStrategy selects how ties between equally frequent temperatures are
// detected.
type ModeStrategy int

const (
	// ModePerLevel reports no mode only when two or more distinct temperatures
	// share the highest frequency.
	ModePerLevel ModeStrategy = iota

	// ModeLegacy matches the station's older report tool: one tie flag for
	// the whole scan, raised when a temperature matches the best frequency seen
	// so far and cleared when a strictly higher frequency shows up. The
	// older tool used 0 as its "no mode" marker, so a most frequent temperature
	// of exactly 0 is also reported as no mode.
	ModeLegacy
)

func (s ModeStrategy) String() string {
	switch s {
	case ModeLegacy:
		return "legacy"
	default:
		return "per-level"
	}
}

// ParseModeStrategy converts a configuration value into a ModeStrategy
func ParseModeStrategy(s string) (ModeStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-level", "perlevel":
		return ModePerLevel, nil
	case "legacy":
		return ModeLegacy, nil
	default:
		return ModePerLevel, fmt.Errorf("invalid mode strategy %q (allowed: per-level, legacy)", s)
	}
}

// ModeResult is the outcome of a mode computation. When Defined is false
// there is no single most frequent temperature and Value is meaningless.
type ModeResult struct {
	Value     float64 `json:"value" msgpack:"value"`
	Frequency int     `json:"frequency" msgpack:"frequency"`
	Defined   bool    `json:"defined" msgpack:"defined"`
}

// Mode finds the most frequent temperature. Temperatures are compared for
// exact equality.
func Mode(c *readings.Collection, strategy ModeStrategy) (ModeResult, error) {
	if c.Len() == 0 {
		return ModeResult{}, ErrNoReadings
	}

	temps := c.Temperatures()
	if strategy == ModeLegacy {
		return legacyMode(temps), nil
	}
	return perLevelMode(temps), nil
}

func perLevelMode(temps []float64) ModeResult {
	counts := make(map[float64]int, len(temps))
	for _, t := range temps {
		counts[t]++
	}

	var res ModeResult
	tied := false
	// Walk in input order so the reported value does not depend on map iteration
	seen := make(map[float64]bool, len(counts))
	for _, t := range temps {
		if seen[t] {
			continue
		}
		seen[t] = true

		n := counts[t]
		switch {
		case n > res.Frequency:
			res.Value, res.Frequency = t, n
			tied = false
		case n == res.Frequency:
			tied = true
		}
	}

	res.Defined = !tied
	return res
}

func legacyMode(temps []float64) ModeResult {
	var res ModeResult
	tied := false

	for i, t := range temps {
		// Occurrences from this position to the end
		n := 1
		for _, other := range temps[i+1:] {
			if other == t {
				n++
			}
		}

		if n > res.Frequency {
			res.Value, res.Frequency = t, n
			tied = false
		} else if n == res.Frequency && t != res.Value {
			tied = true
		}
	}

	res.Defined = !tied && res.Value != 0
	return res
}
