package core

import (
	"time"
)

// AnalysisType identifies which analyzer produced a result
type AnalysisType string

const (
	AnalysisTypeURL   AnalysisType = "url"
	AnalysisTypeEmail AnalysisType = "email"
	AnalysisTypePhone AnalysisType = "phone"
	AnalysisTypeImage AnalysisType = "image"
)

// RiskTier categorizes a capped risk score
type RiskTier string

const (
	TierSafe   RiskTier = "SAFE"
	TierLow    RiskTier = "LOW RISK"
	TierMedium RiskTier = "MEDIUM RISK"
	TierHigh   RiskTier = "HIGH RISK"
	// TierUnknown is reserved for error results and is never produced by the
	// score-to-tier mapping.
	TierUnknown RiskTier = "UNKNOWN"
)

// AnalysisResult represents the outcome of one fraud analysis
type AnalysisResult struct {
	Score          int          `json:"risk_score"`
	RiskTier       RiskTier     `json:"risk_level"`
	Recommendation string       `json:"recommendation"`
	Threats        []string     `json:"threats"`
	Details        []string     `json:"details"`
	MLConfidence   *float64     `json:"ml_confidence,omitempty"`
	AnalysisType   AnalysisType `json:"analysis_type"`
	Domain         string       `json:"domain,omitempty"`
	AnalyzedAt     time.Time    `json:"analyzed_at"`
}

// ClassifierState tracks the lifecycle of the text classifier
type ClassifierState int32

const (
	ClassifierUninitialized ClassifierState = iota
	ClassifierTraining
	ClassifierReady
	// ClassifierFallback is permanent for the process lifetime; the text
	// analyzer uses the keyword-density estimate instead.
	ClassifierFallback
)

func (s ClassifierState) String() string {
	switch s {
	case ClassifierTraining:
		return "training"
	case ClassifierReady:
		return "ready"
	case ClassifierFallback:
		return "fallback"
	default:
		return "uninitialized"
	}
}

// Report accumulates additive layer contributions and their evidence while
// preserving evaluation order. Layers never subtract.
type Report struct {
	score   int
	threats []string
	details []string
}

// Add records a non-negative score delta with optional threat evidence
func (r *Report) Add(delta int, threats ...string) {
	if delta > 0 {
		r.score += delta
	}
	r.threats = append(r.threats, threats...)
}

// Note records a neutral or positive finding without affecting the score
func (r *Report) Note(details ...string) {
	r.details = append(r.details, details...)
}

// Score returns the raw accumulated score (not yet clamped)
func (r *Report) Score() int { return r.score }

// Threats returns recorded threats in insertion order
func (r *Report) Threats() []string { return r.threats }

// Details returns recorded details in insertion order
func (r *Report) Details() []string { return r.details }

// HasThreats reports whether any threat evidence was recorded
func (r *Report) HasThreats() bool { return len(r.threats) > 0 }
