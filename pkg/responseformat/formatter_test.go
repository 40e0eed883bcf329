package responseformat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chrissnell/tempstats/internal/analysis"
	"github.com/chrissnell/tempstats/internal/stats"
	"github.com/chrissnell/tempstats/internal/types"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		RunID:   "run-1",
		Count:   3,
		Minimum: types.Reading{Date: "01/01/2024", Time: "12:00:00", Temperature: 18, Trend: "bajando"},
		Maximum: types.Reading{Date: "01/01/2024", Time: "11:00:00", Temperature: 22, Trend: "subiendo"},
		Mean:    20,
		Median:  20,
		Mode:    stats.ModeResult{Frequency: 1},
		StdDev:  1.632993,
	}
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter().WriteReport(&buf, sampleReport(), FormatText); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	expected := strings.Join([]string{
		"Readings: 3",
		"Minimum temperature: 18.00°C (Date: 01/01/2024, Time: 12:00:00)",
		"Maximum temperature: 22.00°C (Date: 01/01/2024, Time: 11:00:00)",
		"Mean: 20.00°C",
		"Median: 20.00°C",
		"Mode: no mode (all temperatures are unique or tied)",
		"Standard deviation: 1.63°C",
	}, "\n") + "\n"

	if buf.String() != expected {
		t.Errorf("WriteReport() text =\n%s\nexpected\n%s", buf.String(), expected)
	}
}

func TestWriteReportTextWithModeAndSkipped(t *testing.T) {
	rep := sampleReport()
	rep.Mode = stats.ModeResult{Value: 18.5, Frequency: 2, Defined: true}
	rep.Skipped = []analysis.SkippedLine{{Line: 2, Text: "x", Reason: "malformed line"}}

	var buf bytes.Buffer
	if err := NewFormatter().WriteReport(&buf, rep, FormatText); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Mode: 18.50°C\n") {
		t.Errorf("mode line missing:\n%s", out)
	}
	if !strings.Contains(out, "Skipped 1 malformed line(s)") {
		t.Errorf("skipped line count missing:\n%s", out)
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter().WriteReport(&buf, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	var decoded analysis.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Count != 3 || decoded.Minimum.Time != "12:00:00" || decoded.Mode.Defined {
		t.Errorf("decoded report = %+v", decoded)
	}
}

func TestWriteReportMsgPack(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter().WriteReport(&buf, sampleReport(), FormatMsgPack); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	var decoded map[string]any
	if err := msgpack.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid msgpack: %v", err)
	}
	if decoded["run_id"] != "run-1" {
		t.Errorf("run_id = %v, expected run-1", decoded["run_id"])
	}
}

func TestWriteEmpty(t *testing.T) {
	var text bytes.Buffer
	if err := NewFormatter().WriteEmpty(&text, FormatText); err != nil {
		t.Fatalf("WriteEmpty() error: %v", err)
	}
	if text.String() != "No readings to analyze.\n" {
		t.Errorf("WriteEmpty() text = %q", text.String())
	}

	var js bytes.Buffer
	if err := NewFormatter().WriteEmpty(&js, FormatJSON); err != nil {
		t.Fatalf("WriteEmpty() error: %v", err)
	}
	if strings.TrimSpace(js.String()) != `{"error":"no readings to analyze"}` {
		t.Errorf("WriteEmpty() json = %q", js.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"", FormatText, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{"msgpack", FormatMsgPack, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestWriteResponse(t *testing.T) {
	f := NewFormatter()

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	if err := f.WriteResponse(rec, req, sampleReport(), map[string]string{"Cache-Control": "no-store"}); err != nil {
		t.Fatalf("WriteResponse() error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("custom header not set")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("CORS header not set")
	}

	req = httptest.NewRequest(http.MethodGet, "/report?format=msgpack", nil)
	rec = httptest.NewRecorder()
	if err := f.WriteResponseStatus(rec, req, http.StatusUnprocessableEntity, EmptyResult{Error: "x"}, nil); err != nil {
		t.Fatalf("WriteResponseStatus() error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, expected 422", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-msgpack" {
		t.Errorf("Content-Type = %q, expected application/x-msgpack", ct)
	}
}
