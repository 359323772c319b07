package server

import (
	"time"

	"github.com/mikey/fraud-detector/internal/core"
)

// URLAnalysisRequest is the body of POST /api/analyze/url
type URLAnalysisRequest struct {
	URL string `json:"url" binding:"required"`
}

// EmailAnalysisRequest is the body of POST /api/analyze/email
type EmailAnalysisRequest struct {
	Content     string `json:"content" binding:"required"`
	SenderEmail string `json:"sender_email"`
}

// PhoneAnalysisRequest is the body of POST /api/analyze/phone
type PhoneAnalysisRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// AnalysisResponse is the JSON rendering of an analysis result
type AnalysisResponse struct {
	RequestID      string    `json:"request_id"`
	AnalysisType   string    `json:"analysis_type"`
	RiskScore      int       `json:"risk_score"`
	RiskLevel      string    `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	Threats        []string  `json:"threats"`
	Details        []string  `json:"details"`
	MLConfidence   *float64  `json:"ml_confidence,omitempty"`
	Domain         string    `json:"domain,omitempty"`
	AnalysisTimeMs int64     `json:"analysis_time_ms"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}

// ErrorResponse is the JSON rendering of a request-level failure
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// HealthResponse is the JSON rendering of GET /health
type HealthResponse struct {
	Status     string `json:"status"`
	Classifier string `json:"classifier"`
}

func toResponse(requestID string, result *core.AnalysisResult, elapsed time.Duration) AnalysisResponse {
	threats := result.Threats
	if threats == nil {
		threats = []string{}
	}
	details := result.Details
	if details == nil {
		details = []string{}
	}
	return AnalysisResponse{
		RequestID:      requestID,
		AnalysisType:   string(result.AnalysisType),
		RiskScore:      result.Score,
		RiskLevel:      string(result.RiskTier),
		Recommendation: result.Recommendation,
		Threats:        threats,
		Details:        details,
		MLConfidence:   result.MLConfidence,
		Domain:         result.Domain,
		AnalysisTimeMs: elapsed.Milliseconds(),
		AnalyzedAt:     result.AnalyzedAt,
	}
}
