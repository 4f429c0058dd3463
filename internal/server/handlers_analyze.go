package server

import (
	"net/http"
	"sync"

	"github.com/smriittii/ats-optimizer-pro/internal/db"
	"github.com/smriittii/ats-optimizer-pro/internal/keywords"
	"github.com/smriittii/ats-optimizer-pro/internal/logging"
	"github.com/smriittii/ats-optimizer-pro/internal/scoring"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/smriittii/ats-optimizer-pro/internal/server/middleware"
	"github.com/smriittii/ats-optimizer-pro/internal/suggestions"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentSuggestions bounds parallel model calls per request.
const maxConcurrentSuggestions = 3

// handleAnalyze scores a résumé and records it when history is enabled.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	analysis, err := scoring.Analyze(req.ResumeText, req.JobDescription, scoring.Options{
		ExcludedKeywords:  req.ExcludedKeywords,
		DismissedIssues:   req.DismissedIssues,
		IncludeResumeText: req.IncludeResumeText,
	})
	if err != nil {
		s.errorFor(w, err)
		return
	}

	resp := types.AnalyzeResponse{Analysis: analysis}
	if s.history != nil {
		clientID, _ := middleware.ClientID(r.Context())
		rec := db.NewAnalysisRecord(clientID, req.JobDescription, analysis)
		if err := s.history.SaveAnalysis(r.Context(), rec); err != nil {
			s.logger.Warn("failed to save analysis", zap.Error(err))
		} else {
			resp.ID = rec.ID.String()
			s.logger.Debug("analysis saved", zap.String(logging.FieldAnalysisID, resp.ID))
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSuggestions returns only the rule-based suggestions of an analysis.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	analysis, err := scoring.Analyze(req.ResumeText, req.JobDescription, scoring.Options{
		ExcludedKeywords: req.ExcludedKeywords,
		DismissedIssues:  req.DismissedIssues,
	})
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.SuggestionsResponse{
		Suggestions:          analysis.Suggestions,
		EstimatedScoreImpact: suggestions.EstimatedImpact(analysis.Suggestions),
	})
}

// handleSuggestImprovements asks the model for rewrites of each requested
// section. Sections whose call fails get an empty list.
func (s *Server) handleSuggestImprovements(w http.ResponseWriter, r *http.Request) {
	var req types.ImproveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFor(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFor(w, validationError(err))
		return
	}

	doc := sections.Segment(req.ResumeText)
	sectionMap := doc.Map()
	targets := req.Sections
	if len(targets) == 0 {
		targets = doc.Names()
	}

	resp := types.ImproveResponse{
		Sections:    make(map[string][]string, len(targets)),
		AIAvailable: s.suggester.Available(),
	}

	var present []string
	for _, name := range targets {
		if _, done := resp.Sections[name]; done {
			continue
		}
		resp.Sections[name] = []string{}
		if sectionMap[name] != "" {
			present = append(present, name)
		}
	}

	if !resp.AIAvailable || len(present) == 0 {
		s.jsonResponse(w, http.StatusOK, resp)
		return
	}

	missing := keywords.Match(req.ResumeText, keywords.Extract(req.JobDescription, scoring.KeywordCount)).Missing

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxConcurrentSuggestions)
	for _, name := range present {
		g.Go(func() error {
			out := s.suggester.SuggestBestEffort(ctx, s.cfg.AI.Timeout, sectionMap[name], name, missing)
			if len(out) == 0 {
				s.logger.Debug("no suggestions for section", zap.String(logging.FieldSection, name))
			}
			mu.Lock()
			resp.Sections[name] = out
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*types.AnalyzeRequest, bool) {
	var req types.AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFor(w, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorFor(w, validationError(err))
		return nil, false
	}
	return &req, true
}
