package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/khaeru/iamc-sdmx-demo/dataset"
	"github.com/khaeru/iamc-sdmx-demo/schema"
)

// maxBodySize bounds the size of request bodies accepted by POST endpoints.
const maxBodySize = 1 << 20

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.doc)
}

func (s *Server) handleConcepts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"concepts": s.doc.Concepts,
	})
}

func (s *Server) handleDimensions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"dimensions": s.dsd.Dimensions,
	})
}

func (s *Server) handleAttributes(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"attributes": s.dsd.Attributes,
	})
}

func (s *Server) handleVariables(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"variables": s.doc.Variables,
		// Every code implied by the vocabulary, including intermediate
		// levels never listed as variables of their own.
		"codes": s.dsd.Variables.Paths(),
	})
}

// validateResponse is the body returned by POST /v1/validate.
type validateResponse struct {
	Valid      bool               `json:"valid"`
	Violations []schema.Violation `json:"violations"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	doc, err := schema.Load(bytes.NewReader(body))
	if err != nil {
		s.metrics.SchemaLoads.WithLabelValues("malformed").Inc()
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := doc.Validate()
	for _, v := range result.Violations {
		s.metrics.ValidationViolations.WithLabelValues(string(v.Kind)).Inc()
	}

	status := "ok"
	if !result.OK() {
		status = "invalid"
	}
	s.metrics.SchemaLoads.WithLabelValues(status).Inc()

	violations := result.Violations
	if violations == nil {
		violations = []schema.Violation{}
	}
	s.writeJSON(w, http.StatusOK, validateResponse{
		Valid:      result.OK(),
		Violations: violations,
	})
}

// convertResponse is the body returned by POST /v1/convert.
type convertResponse struct {
	Series       int              `json:"series"`
	Observations int              `json:"observations"`
	Records      []dataset.Record `json:"records"`
}

// handleConvert ingests a wide IAMC CSV body structured by the served
// schema and returns it in long form.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	ds, err := dataset.ReadCSV(bytes.NewReader(body), s.dsd)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.SeriesRead.Add(float64(len(ds.Series)))
	s.metrics.ObservationsRead.Add(float64(ds.Len()))

	s.writeJSON(w, http.StatusOK, convertResponse{
		Series:       len(ds.Series),
		Observations: ds.Len(),
		Records:      ds.Records(),
	})
}

// readBody reads a request body within the size limit. Only a body
// exceeding the limit is 413; any other read failure is the client's 400.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			s.writeError(w, http.StatusBadRequest, "failed to read request body")
		}
		return nil, false
	}
	return body, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
