package restserver

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/chrissnell/tempstats/internal/analysis"
	"github.com/chrissnell/tempstats/internal/log"
	"github.com/chrissnell/tempstats/internal/parser"
	"github.com/chrissnell/tempstats/internal/readings"
	"github.com/chrissnell/tempstats/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

var noStore = map[string]string{"Cache-Control": "no-store"}

// analyze runs one analysis of the readings file, writing an error response
// and returning nil if that is not possible.
func (h *Handlers) analyze(w http.ResponseWriter, req *http.Request) *analysis.Report {
	f, err := os.Open(h.controller.InputPath)
	if err != nil {
		log.Errorf("error opening readings file: %v", err)
		h.writeError(w, req, http.StatusInternalServerError, "readings file is not available")
		return nil
	}
	defer f.Close()

	rep, err := analysis.Run(req.Context(), f, h.controller.Options)
	if err != nil {
		var lineErr *parser.LineError
		switch {
		case errors.Is(err, context.Canceled):
			// Client went away; nobody is left to answer
			log.Debugw("report request cancelled", "path", req.URL.Path)
		case errors.Is(err, analysis.ErrEmptyInput):
			h.writeError(w, req, http.StatusUnprocessableEntity, analysis.ErrEmptyInput.Error())
		case errors.As(err, &lineErr):
			h.writeError(w, req, http.StatusUnprocessableEntity, lineErr.Error())
		default:
			log.Errorf("error analyzing readings: %v", err)
			h.writeError(w, req, http.StatusInternalServerError, "could not analyze readings")
		}
		return nil
	}
	return rep
}

func (h *Handlers) writeError(w http.ResponseWriter, req *http.Request, status int, msg string) {
	if err := h.formatter.WriteResponseStatus(w, req, status, responseformat.EmptyResult{Error: msg}, noStore); err != nil {
		log.Errorf("error writing error response: %v", err)
	}
}

// GetReport returns the full statistics report for the readings file
func (h *Handlers) GetReport(w http.ResponseWriter, req *http.Request) {
	rep := h.analyze(w, req)
	if rep == nil {
		return
	}
	if err := h.formatter.WriteResponse(w, req, rep, noStore); err != nil {
		log.Errorf("error writing report: %v", err)
	}
}

// GetReadings returns the readings, in file order by default or sorted by
// temperature with order=temperature.
func (h *Handlers) GetReadings(w http.ResponseWriter, req *http.Request) {
	order := req.URL.Query().Get("order")
	if order != "" && order != "file" && order != "temperature" {
		h.writeError(w, req, http.StatusBadRequest, "order must be 'file' or 'temperature'")
		return
	}

	f, err := os.Open(h.controller.InputPath)
	if err != nil {
		log.Errorf("error opening readings file: %v", err)
		h.writeError(w, req, http.StatusInternalServerError, "readings file is not available")
		return
	}
	defer f.Close()

	c, _, err := parser.ReadAll(f, h.controller.Options.Policy)
	if err != nil {
		var lineErr *parser.LineError
		if errors.As(err, &lineErr) {
			h.writeError(w, req, http.StatusUnprocessableEntity, lineErr.Error())
			return
		}
		log.Errorf("error reading readings file: %v", err)
		h.writeError(w, req, http.StatusInternalServerError, "could not read readings")
		return
	}

	out := c.All()
	if order == "temperature" {
		out = readings.SortByTemperature(c).All()
	}

	if err := h.formatter.WriteResponse(w, req, out, noStore); err != nil {
		log.Errorf("error writing readings: %v", err)
	}
}

// Healthz reports that the server is up
func (h *Handlers) Healthz(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
