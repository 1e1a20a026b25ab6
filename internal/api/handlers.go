package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/p7-projekt/mozart/internal/grading"
	"github.com/p7-projekt/mozart/internal/model"
	"github.com/p7-projekt/mozart/internal/response"
)

// handleStatus answers GET with 200 and an empty body, used by
// orchestrators for liveness (spec.md §6); any other method gets 405.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handleSubmit implements spec.md §6's POST /submit: validate framing,
// validate the body against the submission schema, decode it, and hand
// it to grading.Submit.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// ValidateSubmission's error return means the body could not even be
	// parsed as JSON, not that the schema itself failed to compile: that
	// is a malformed request, so it gets the same 422 as a schema
	// violation rather than an opaque 500.
	if reason, verr := model.ValidateSubmission(body); verr != nil {
		s.log.WithError(verr).Debug("submission body is not valid JSON")
		writeValidationError(w, verr.Error())
		return
	} else if reason != "" {
		s.log.WithField("reason", reason).Debug("submission failed schema validation")
		writeValidationError(w, reason)
		return
	}

	var submission model.Submission
	if err := json.Unmarshal(body, &submission); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	requestID := requestIDFrom(r.Context())
	outcome := grading.Submit(s.log, requestID, s.cfg.ParentDir, s.newH, s.sandbox, submission)
	response.Write(w, outcome)
}

func writeValidationError(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"result": "error",
		"reason": reason,
	})
}
