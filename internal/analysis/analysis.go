// Package analysis runs the full registro pipeline: parse the log, sort the
// readings by temperature and compute the summary statistics.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/chrissnell/tempstats/internal/log"
	"github.com/chrissnell/tempstats/internal/parser"
	"github.com/chrissnell/tempstats/internal/readings"
	"github.com/chrissnell/tempstats/internal/stats"
	"github.com/chrissnell/tempstats/internal/types"
)

// ErrEmptyInput is returned when the input holds no readings to analyze
var ErrEmptyInput = errors.New("no readings to analyze")

// Options controls parsing and the mode computation
type Options struct {
	Policy       parser.Policy
	ModeStrategy stats.ModeStrategy
}

// SkippedLine is a malformed input line that was left out of the analysis
type SkippedLine struct {
	Line   int    `json:"line" msgpack:"line"`
	Text   string `json:"text" msgpack:"text"`
	Reason string `json:"reason" msgpack:"reason"`
}

// Report holds the result of one analysis run
type Report struct {
	RunID   string           `json:"run_id" msgpack:"run_id"`
	Count   int              `json:"count" msgpack:"count"`
	Minimum types.Reading    `json:"minimum" msgpack:"minimum"`
	Maximum types.Reading    `json:"maximum" msgpack:"maximum"`
	Mean    float64          `json:"mean" msgpack:"mean"`
	Median  float64          `json:"median" msgpack:"median"`
	Mode    stats.ModeResult `json:"mode" msgpack:"mode"`
	StdDev  float64          `json:"std_dev" msgpack:"std_dev"`

	// Sorted holds the readings in ascending temperature order
	Sorted  []types.Reading `json:"sorted" msgpack:"sorted"`
	Skipped []SkippedLine   `json:"skipped,omitempty" msgpack:"skipped,omitempty"`
}

// Analyze computes the report for c. It returns ErrEmptyInput, without
// computing anything, when c holds no readings.
func Analyze(c *readings.Collection, opts Options) (*Report, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyInput
	}

	rep := &Report{
		RunID: uuid.NewString(),
		Count: stats.Count(c),
	}

	sorted := readings.SortByTemperature(c)

	var err error
	if rep.Minimum, err = stats.Minimum(sorted); err != nil {
		return nil, fmt.Errorf("minimum: %w", err)
	}
	if rep.Maximum, err = stats.Maximum(sorted); err != nil {
		return nil, fmt.Errorf("maximum: %w", err)
	}
	if rep.Mean, err = stats.Mean(sorted); err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	if rep.Median, err = stats.Median(sorted); err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}
	if rep.Mode, err = stats.Mode(sorted, opts.ModeStrategy); err != nil {
		return nil, fmt.Errorf("mode: %w", err)
	}
	if rep.StdDev, err = stats.StdDev(sorted, rep.Mean); err != nil {
		return nil, fmt.Errorf("standard deviation: %w", err)
	}

	rep.Sorted = sorted.All()

	log.Infow("analysis complete",
		"run_id", rep.RunID,
		"count", rep.Count,
		"mode_strategy", opts.ModeStrategy.String(),
	)
	return rep, nil
}

// Run parses r and analyzes the readings found in it. Malformed lines are
// skipped and listed in the report unless opts.Policy is strict. When the
// input holds no readings the error is ErrEmptyInput.
func Run(ctx context.Context, r io.Reader, opts Options) (*Report, error) {
	c, skipped, err := parser.ReadAll(r, opts.Policy)
	if err != nil {
		return nil, fmt.Errorf("error parsing readings: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep, err := Analyze(c, opts)
	if err != nil {
		return nil, err
	}

	for _, le := range skipped {
		rep.Skipped = append(rep.Skipped, SkippedLine{
			Line:   le.Line,
			Text:   le.Text,
			Reason: le.Err.Error(),
		})
	}
	return rep, nil
}
