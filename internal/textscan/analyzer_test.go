package textscan

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
)

func newFallbackAnalyzer() *Analyzer {
	// Classifier never initialized: the analyzer must use keyword heuristics
	return NewAnalyzer(NewClassifier(zap.NewNop()), zap.NewNop())
}

func newTrainedAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	c := NewClassifier(zap.NewNop())
	c.Initialize(context.Background(), nil, "", 42)
	require.Equal(t, core.ClassifierReady, c.State())
	return NewAnalyzer(c, zap.NewNop())
}

func hasThreatWithPrefix(threats []string, prefix string) bool {
	for _, threat := range threats {
		if strings.HasPrefix(threat, prefix) {
			return true
		}
	}
	return false
}

func TestAnalyzeUrgentPhishingText(t *testing.T) {
	a := newTrainedAnalyzer(t)

	result := a.Analyze(
		"URGENT! Your account has been suspended, click here to verify immediately!!!!", "")

	assert.True(t, result.RiskTier == core.TierMedium || result.RiskTier == core.TierHigh,
		"urgent phishing text should be at least medium risk, got %s (score %d)",
		result.RiskTier, result.Score)
	assert.True(t, hasThreatWithPrefix(result.Threats, "PHISHING KEYWORD: contains 'urgent'") ||
		hasThreatWithPrefix(result.Threats, "PHISHING KEYWORD: contains 'suspended'"),
		"expected keyword evidence, got %v", result.Threats)
	assert.True(t, hasThreatWithPrefix(result.Threats, "EXCESSIVE PUNCTUATION:"),
		"expected an exclamation finding, got %v", result.Threats)
}

func TestAnalyzeBenignText(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("See you at lunch tomorrow. The usual place works for me.", "")

	assert.Equal(t, core.TierSafe, result.RiskTier)
	assert.Contains(t, result.Details, "Content uses normal language patterns")
	assert.Contains(t, result.Details, "No major social engineering tactics detected")
}

func TestAnalyzeEmptyContent(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("   ", "")

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, core.TierUnknown, result.RiskTier)
}

func TestFallbackNeverReportsConfidence(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("urgent verify your suspended account click here to claim your prize", "")

	assert.Nil(t, result.MLConfidence)
	assert.Contains(t, result.Details, "ML analysis unavailable, using pattern matching")
	assert.True(t, result.RiskTier == core.TierMedium || result.RiskTier == core.TierHigh)
}

func TestTrainedPathAlwaysReportsConfidence(t *testing.T) {
	a := newTrainedAnalyzer(t)

	for _, content := range []string{
		"urgent verify your suspended account immediately",
		"thanks for the update, talk soon",
	} {
		result := a.Analyze(content, "")
		require.NotNil(t, result.MLConfidence, "trained path must report a confidence for %q", content)
		assert.GreaterOrEqual(t, *result.MLConfidence, 0.0)
		assert.LessOrEqual(t, *result.MLConfidence, 1.0)
	}
}

func TestAnalyzeSocialEngineering(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("We detected unusual activity. Your account is locked due to unauthorized access.", "")

	count := 0
	for _, threat := range result.Threats {
		if strings.HasPrefix(threat, "SOCIAL ENGINEERING:") {
			count++
		}
	}
	assert.GreaterOrEqual(t, count, 2)
	assert.LessOrEqual(t, count, 3, "social engineering evidence is capped")
}

func TestAnalyzeEmbeddedURLs(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("Check your statement at http://192.168.4.7/secure and http://promo.win.tk/claim", "")

	assert.Contains(t, result.Threats, "MALICIOUS LINK: IP address in embedded URL")
	assert.Contains(t, result.Threats, "SUSPICIOUS LINK: high-risk domain extension")
	assert.Contains(t, result.Details, "Found 2 embedded URL(s)")
}

func TestAnalyzeShortenerLink(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("Track your parcel here https://bit.ly/3xAbCdE", "")

	assert.Contains(t, result.Threats, "URL SHORTENER: hidden destination in link")
}

func TestValidateSender(t *testing.T) {
	a := newFallbackAnalyzer()

	tests := []struct {
		name   string
		sender string
		threat string
	}{
		{"malformed address", "not-an-email", "INVALID SENDER: malformed email address"},
		{"disposable provider", "win@mailinator.com", "DISPOSABLE EMAIL: sender using temporary email service"},
		{"provider lookalike", "support@gmai1.com", "SENDER TYPOSQUATTING: domain mimics 'gmail.com'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze("hello there, quick question about the schedule", tt.sender)
			assert.Contains(t, result.Threats, tt.threat)
		})
	}
}

func TestValidSenderIsNoted(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("hello there, quick question about the schedule", "colleague@gmail.com")

	assert.Contains(t, result.Details, "SENDER: valid email format (gmail.com)")
	assert.False(t, hasThreatWithPrefix(result.Threats, "SENDER TYPOSQUATTING:"))
}

func TestAnalyzeDangerousAttachment(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("Please see the attached invoice_2024.exe for details", "")

	assert.Contains(t, result.Threats, "SUSPICIOUS ATTACHMENT: potentially dangerous file type (.exe)")
}

func TestExtensionWithoutAttachmentContextIgnored(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("The installer setup.exe is on the shared drive as usual", "")

	assert.False(t, hasThreatWithPrefix(result.Threats, "SUSPICIOUS ATTACHMENT:"))
}

func TestAnalyzeGenericGreeting(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("Dear Customer, we are writing to inform you about our policies.", "")

	assert.Contains(t, result.Threats, "GENERIC GREETING: impersonal salutation")
}

func TestGreetingOutsideWindowIgnored(t *testing.T) {
	a := newFallbackAnalyzer()

	padding := strings.Repeat("regular sentence filler words here. ", 5)
	result := a.Analyze(padding+"dear customer thanks again", "")

	assert.False(t, hasThreatWithPrefix(result.Threats, "GENERIC GREETING:"))
}

func TestAnalyzeAllCaps(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze("YOU HAVE BEEN SELECTED FOR A SPECIAL OFFER TODAY", "")

	assert.True(t, hasThreatWithPrefix(result.Threats, "ALL CAPS:"),
		"expected an all-caps finding, got %v", result.Threats)
}

func TestScoreIsClamped(t *testing.T) {
	a := newFallbackAnalyzer()

	result := a.Analyze(
		"URGENT WINNER!!!! Verify your suspended bank account immediately, act now, final notice, "+
			"limited time! Wire transfer your payment, click here http://192.168.0.9/verify "+
			"and open attachment prize.exe to claim your reward",
		"scam@mailinator.com")

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, core.TierHigh, result.RiskTier)
}
