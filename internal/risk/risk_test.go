package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikey/fraud-detector/internal/core"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{"negative floors at zero", -5, 0},
		{"zero unchanged", 0, 0},
		{"mid-range unchanged", 55, 55},
		{"hundred unchanged", 100, 100},
		{"overflow caps at hundred", 185, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.score))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected core.RiskTier
	}{
		{"zero is safe", 0, core.TierSafe},
		{"just below low", 19, core.TierSafe},
		{"low boundary", 20, core.TierLow},
		{"just below medium", 39, core.TierLow},
		{"medium boundary", 40, core.TierMedium},
		{"just below high", 69, core.TierMedium},
		{"high boundary", 70, core.TierHigh},
		{"maximum", 100, core.TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.score))
		})
	}
}

func TestFinalize(t *testing.T) {
	report := &core.Report{}
	report.Add(45, "IP ADDRESS: URL uses a raw IP address instead of a domain")
	report.Add(40, "TYPOSQUATTING: imitates a known brand")
	report.Note("Domain resolved")

	result := Finalize(report, core.AnalysisTypeURL)

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, core.TierHigh, result.RiskTier)
	assert.Equal(t, "Do NOT interact with this URL. Block and report immediately.", result.Recommendation)
	assert.Len(t, result.Threats, 2)
	assert.Len(t, result.Details, 1)
	assert.Equal(t, core.AnalysisTypeURL, result.AnalysisType)
}

func TestFinalizeEmptyReportHasNonNilSlices(t *testing.T) {
	result := Finalize(&core.Report{}, core.AnalysisTypeURL)

	assert.NotNil(t, result.Threats)
	assert.NotNil(t, result.Details)
	assert.Empty(t, result.Threats)
	assert.Empty(t, result.Details)
}

func TestFinalizeClampsOverflow(t *testing.T) {
	report := &core.Report{}
	report.Add(65)
	report.Add(45)
	report.Add(30)

	result := Finalize(report, core.AnalysisTypeEmail)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, core.TierHigh, result.RiskTier)
}

func TestErrorResult(t *testing.T) {
	result := ErrorResult(core.AnalysisTypeURL, "Empty URL provided")

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, core.TierUnknown, result.RiskTier)
	assert.Equal(t, []string{"Empty URL provided"}, result.Threats)
	assert.Empty(t, result.Details)
}

func TestRecommendationPerAnalysisType(t *testing.T) {
	assert.Equal(t, "Do NOT call or share information. Likely scam number.",
		Recommendation(core.TierHigh, core.AnalysisTypePhone))
	assert.Equal(t, "Image appears legitimate.",
		Recommendation(core.TierSafe, core.AnalysisTypeImage))
	assert.Equal(t, "Unable to analyze input.",
		Recommendation(core.TierUnknown, core.AnalysisTypeEmail))
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[string]int
		weights  map[string]float64
		expected int
	}{
		{"empty", nil, nil, 0},
		{"single source", map[string]int{"url": 60}, nil, 60},
		{"unweighted mean", map[string]int{"url": 60, "text": 20}, nil, 40},
		{
			"weighted mean",
			map[string]int{"url": 80, "text": 20},
			map[string]float64{"url": 3, "text": 1},
			65,
		},
		{"clamped", map[string]int{"a": 100, "b": 100}, nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.scores, tt.weights))
		})
	}
}
