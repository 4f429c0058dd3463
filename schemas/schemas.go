// Package schemas embeds the JSON Schemas for the tool's output artifacts.
package schemas

import _ "embed"

// ResumeAnalysisFile is the file name of the analysis schema.
const ResumeAnalysisFile = "resume_analysis.schema.json"

// ResumeAnalysis is the JSON Schema for a serialized analysis.
//
//go:embed resume_analysis.schema.json
var ResumeAnalysis string
