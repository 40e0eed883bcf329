// Package parser turns registro.txt lines into typed readings.
//
// A well-formed line looks like
//
//	Fecha: 01/01/2024; Hora: 10:00:00; Temperatura: 20.00; Tendencia: estable
//
// Labels and field order are fixed. A line that does not match is never
// turned into a partially filled Reading: ParseLine fails with
// ErrMalformedLine instead.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chrissnell/tempstats/internal/types"
)

// Field widths of the station log format
const (
	MaxDateLen  = 10
	MaxTimeLen  = 8
	MaxTrendLen = 9
)

var (
	// ErrMalformedLine is returned for a line that does not match the log format
	ErrMalformedLine = errors.New("malformed line")
	// ErrBlankLine is returned for an empty or whitespace-only line
	ErrBlankLine = errors.New("blank line")
)

var linePattern = regexp.MustCompile(fmt.Sprintf(
	`^\s*Fecha:\s*([^\s;]{1,%d});\s*`+
		`Hora:\s*([^\s;]{1,%d});\s*`+
		`Temperatura:\s*([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?);\s*`+
		`Tendencia:\s*(\S+)`,
	MaxDateLen, MaxTimeLen))

// ParseLine extracts a Reading from a single log line. Text following the
// trend token is ignored and a trend longer than MaxTrendLen is cut down to
// MaxTrendLen characters.
func ParseLine(line string) (types.Reading, error) {
	if strings.TrimSpace(line) == "" {
		return types.Reading{}, ErrBlankLine
	}

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return types.Reading{}, ErrMalformedLine
	}

	temp, err := strconv.ParseFloat(m[3], 32)
	if err != nil {
		return types.Reading{}, fmt.Errorf("%w: temperature %q: %v", ErrMalformedLine, m[3], err)
	}

	return types.Reading{
		Date:        m[1],
		Time:        m[2],
		Temperature: float32(temp),
		Trend:       truncate(m[4], MaxTrendLen),
	}, nil
}

// FormatLine renders r in the station log format, temperature with two decimals
func FormatLine(r types.Reading) string {
	return fmt.Sprintf("Fecha: %s; Hora: %s; Temperatura: %.2f; Tendencia: %s",
		r.Date, r.Time, r.Temperature, r.Trend)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
