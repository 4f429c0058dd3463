package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the body of an analysis request.
type AnalyzeRequest struct {
	ResumeText        string   `json:"resumeText" validate:"required"`
	JobDescription    string   `json:"jobDescription" validate:"required"`
	ExcludedKeywords  []string `json:"excludedKeywords,omitempty" validate:"omitempty,max=200,dive,max=200"`
	DismissedIssues   []string `json:"dismissedIssues,omitempty" validate:"omitempty,max=50,dive,max=200"`
	IncludeResumeText bool     `json:"includeResumeText,omitempty"`
}

// Validate validates the AnalyzeRequest struct.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse wraps an analysis with its history id when one was stored.
type AnalyzeResponse struct {
	ID       string          `json:"id,omitempty"`
	Analysis *ResumeAnalysis `json:"analysis"`
}

// SuggestionsResponse is the body returned by the suggestions endpoint.
type SuggestionsResponse struct {
	Suggestions          []Suggestion `json:"suggestions"`
	EstimatedScoreImpact int          `json:"estimatedScoreImpact"`
}

// ImproveRequest asks for AI rewrites of selected résumé sections.
// An empty Sections list means every detected section.
type ImproveRequest struct {
	ResumeText     string   `json:"resumeText" validate:"required"`
	JobDescription string   `json:"jobDescription" validate:"required"`
	Sections       []string `json:"sections,omitempty" validate:"omitempty,max=10,dive,oneof=header summary experience education skills certifications projects"`
}

// Validate validates the ImproveRequest struct.
func (r *ImproveRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ImproveResponse maps section names to AI-generated improvements.
type ImproveResponse struct {
	Sections    map[string][]string `json:"sections"`
	AIAvailable bool                `json:"aiAvailable"`
}
