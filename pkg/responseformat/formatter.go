package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chrissnell/tempstats/internal/analysis"
)

// Format is an output encoding for analysis results
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgPack Format = "msgpack"
)

// ParseFormat converts a flag or config value into a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatMsgPack:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s. Use 'text', 'json' or 'msgpack'", s)
	}
}

// EmptyResult is the single result produced when there is nothing to analyze
type EmptyResult struct {
	Error string `json:"error" msgpack:"error"`
}

// Formatter handles encoding analysis results as text, JSON or MessagePack
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WriteReport writes rep to w in the requested format
func (f *Formatter) WriteReport(w io.Writer, rep *analysis.Report, format Format) error {
	switch format {
	case FormatJSON:
		return f.encodeJSON(w, rep)
	case FormatMsgPack:
		return f.encodeMsgPack(w, rep)
	default:
		return f.writeText(w, rep)
	}
}

// WriteEmpty writes the "no readings to analyze" result
func (f *Formatter) WriteEmpty(w io.Writer, format Format) error {
	res := EmptyResult{Error: analysis.ErrEmptyInput.Error()}
	switch format {
	case FormatJSON:
		return f.encodeJSON(w, res)
	case FormatMsgPack:
		return f.encodeMsgPack(w, res)
	default:
		_, err := fmt.Fprintln(w, "No readings to analyze.")
		return err
	}
}

func (f *Formatter) writeText(w io.Writer, rep *analysis.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Readings: %d\n", rep.Count)
	fmt.Fprintf(&b, "Minimum temperature: %.2f°C (Date: %s, Time: %s)\n",
		rep.Minimum.Temperature, rep.Minimum.Date, rep.Minimum.Time)
	fmt.Fprintf(&b, "Maximum temperature: %.2f°C (Date: %s, Time: %s)\n",
		rep.Maximum.Temperature, rep.Maximum.Date, rep.Maximum.Time)
	fmt.Fprintf(&b, "Mean: %.2f°C\n", rep.Mean)
	fmt.Fprintf(&b, "Median: %.2f°C\n", rep.Median)
	if rep.Mode.Defined {
		fmt.Fprintf(&b, "Mode: %.2f°C\n", rep.Mode.Value)
	} else {
		b.WriteString("Mode: no mode (all temperatures are unique or tied)\n")
	}
	fmt.Fprintf(&b, "Standard deviation: %.2f°C\n", rep.StdDev)

	if len(rep.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped %d malformed line(s)\n", len(rep.Skipped))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *Formatter) encodeJSON(w io.Writer, data any) error {
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) encodeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}

// WriteResponse writes the response in the appropriate format based on the query parameter
// JSON is the default format. MessagePack is used when format=msgpack is specified
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any, headers map[string]string) error {
	return f.WriteResponseStatus(w, req, http.StatusOK, data, headers)
}

// WriteResponseStatus is WriteResponse with an explicit HTTP status code
func (f *Formatter) WriteResponseStatus(w http.ResponseWriter, req *http.Request, status int, data any, headers map[string]string) error {
	// Set any provided headers first
	for k, v := range headers {
		w.Header().Set(k, v)
	}

	// Always set CORS header
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Check if MessagePack is requested via format=msgpack query parameter
	if req.URL.Query().Get("format") == string(FormatMsgPack) {
		w.Header().Set("Content-Type", "application/x-msgpack")
		w.WriteHeader(status)
		return f.encodeMsgPack(w, data)
	}

	// Default to JSON format (when no format parameter or any other value)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return f.encodeJSON(w, data)
}
