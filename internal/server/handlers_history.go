package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/smriittii/ats-optimizer-pro/internal/db"
	"github.com/smriittii/ats-optimizer-pro/internal/server/middleware"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// handleListAnalyses returns the caller's most recent analyses.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.errorFor(w, &ErrUnavailable{Feature: "analysis history"})
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			s.errorFor(w, &ErrValidation{Field: "limit", Message: "must be between 1 and 100"})
			return
		}
		limit = n
	}

	clientID, _ := middleware.ClientID(r.Context())
	list, err := s.history.ListAnalyses(r.Context(), clientID, limit)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	if list == nil {
		list = []db.AnalysisSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": list,
		"count":    len(list),
	})
}

// handleGetAnalysis returns one stored analysis owned by the caller.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.errorFor(w, &ErrUnavailable{Feature: "analysis history"})
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorFor(w, &ErrValidation{Field: "id", Message: "invalid UUID format"})
		return
	}

	rec, err := s.history.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	clientID, _ := middleware.ClientID(r.Context())
	if rec == nil || (clientID != "" && rec.ClientID != clientID) {
		s.errorFor(w, &ErrNotFound{Resource: "analysis", ID: idStr})
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}
