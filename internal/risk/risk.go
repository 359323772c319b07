// Package risk turns accumulated detection scores into capped scores, risk
// tiers and recommendations shared by every analyzer.
package risk

import (
	"math"

	"github.com/mikey/fraud-detector/internal/core"
)

// Tier breakpoints. Scores are clamped to [0,100] before classification.
const (
	highThreshold   = 70
	mediumThreshold = 40
	lowThreshold    = 20
)

// Clamp bounds a raw layer sum into [0,100]
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Classify maps a score to its risk tier. The input is clamped defensively;
// callers are expected to have clamped already.
func Classify(score int) core.RiskTier {
	score = Clamp(score)
	switch {
	case score >= highThreshold:
		return core.TierHigh
	case score >= mediumThreshold:
		return core.TierMedium
	case score >= lowThreshold:
		return core.TierLow
	default:
		return core.TierSafe
	}
}

var recommendations = map[core.AnalysisType]map[core.RiskTier]string{
	core.AnalysisTypeURL: {
		core.TierHigh:   "Do NOT interact with this URL. Block and report immediately.",
		core.TierMedium: "Verify through official channels before visiting this URL.",
		core.TierLow:    "Exercise caution. Double-check the source.",
		core.TierSafe:   "URL appears legitimate. No major threats detected.",
	},
	core.AnalysisTypeEmail: {
		core.TierHigh:   "Do NOT respond or click any links. Delete immediately and report.",
		core.TierMedium: "Verify sender through official channels before responding.",
		core.TierLow:    "Exercise caution. Verify sender identity if requesting action.",
		core.TierSafe:   "Content appears legitimate. No major threats detected.",
	},
	core.AnalysisTypePhone: {
		core.TierHigh:   "Do NOT call or share information. Likely scam number.",
		core.TierMedium: "Verify through official channels before engaging.",
		core.TierLow:    "Exercise caution with this number.",
		core.TierSafe:   "Phone number appears legitimate.",
	},
	core.AnalysisTypeImage: {
		core.TierHigh:   "Do NOT trust this image. Likely fraudulent content.",
		core.TierMedium: "Verify image authenticity through official sources.",
		core.TierLow:    "Image appears suspicious, verify if important.",
		core.TierSafe:   "Image appears legitimate.",
	},
}

// Recommendation returns the fixed advice string for a tier and analysis type
func Recommendation(tier core.RiskTier, t core.AnalysisType) string {
	if byTier, ok := recommendations[t]; ok {
		if rec, ok := byTier[tier]; ok {
			return rec
		}
	}
	return "Unable to analyze input."
}

// Finalize clamps a report's score, classifies it and builds the standard
// result shape used by every analyzer.
func Finalize(report *core.Report, t core.AnalysisType) *core.AnalysisResult {
	score := Clamp(report.Score())
	tier := Classify(score)
	threats := report.Threats()
	if threats == nil {
		threats = []string{}
	}
	details := report.Details()
	if details == nil {
		details = []string{}
	}
	return &core.AnalysisResult{
		Score:          score,
		RiskTier:       tier,
		Recommendation: Recommendation(tier, t),
		Threats:        threats,
		Details:        details,
		AnalysisType:   t,
	}
}

// ErrorResult is the fixed low-confidence shape returned when an analysis
// cannot proceed. The triggering message becomes the single threat entry.
func ErrorResult(t core.AnalysisType, message string) *core.AnalysisResult {
	return &core.AnalysisResult{
		Score:          25,
		RiskTier:       core.TierUnknown,
		Recommendation: "Unable to analyze input.",
		Threats:        []string{message},
		Details:        []string{},
		AnalysisType:   t,
	}
}

// Aggregate merges several independent detectors' scores into one using an
// optional per-source weight (default 1.0). It is not used within a single
// analyzer's own layer summation.
func Aggregate(scores map[string]int, weights map[string]float64) int {
	if len(scores) == 0 {
		return 0
	}
	var weighted, total float64
	for name, score := range scores {
		w := 1.0
		if weights != nil {
			if ww, ok := weights[name]; ok {
				w = ww
			}
		}
		weighted += float64(score) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return Clamp(int(math.Round(weighted / total)))
}
