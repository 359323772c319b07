package urlscan

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/adapters/domainparse"
	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/whitelist"
)

type stubDNS struct {
	hasRecords bool
}

func (s *stubDNS) HasARecords(ctx context.Context, domain string) bool {
	return s.hasRecords
}

type stubTLS struct {
	outcome core.ProbeOutcome
}

func (s *stubTLS) Probe(ctx context.Context, host string) core.ProbeOutcome {
	return s.outcome
}

func newTestAnalyzer(dnsUp bool, probe core.ProbeStatus) *Analyzer {
	return NewAnalyzer(
		domainparse.NewParser(),
		&stubDNS{hasRecords: dnsUp},
		&stubTLS{outcome: core.ProbeOutcome{Status: probe, Reason: "timeout"}},
		whitelist.NewChecker(refdata.LegitimateDomains, zap.NewNop()),
		zap.NewNop(),
	)
}

func TestAnalyzeWhitelistedDomain(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "https://www.google.com/search?q=test")

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, core.TierSafe, result.RiskTier)
	assert.Equal(t, "google.com", result.Domain)
	assert.Empty(t, result.Threats)
	assert.Contains(t, result.Details, "VERIFIED: domain is on the trusted whitelist")
}

func TestAnalyzeRawIPWithLoginPath(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "http://192.168.1.1/login")

	// IP address (45) + no HTTPS (20) + suspicious path (8)
	assert.Equal(t, 73, result.Score)
	assert.Equal(t, core.TierHigh, result.RiskTier)
	assert.Equal(t, "192.168.1.1", result.Domain)

	found := map[string]bool{}
	for _, threat := range result.Threats {
		found[threat] = true
	}
	assert.True(t, found["IP ADDRESS: using an IP instead of a domain name"])
	assert.True(t, found["NO ENCRYPTION: not using HTTPS"])
	assert.True(t, found["SUSPICIOUS PATH: contains 'login'"])
}

func TestAnalyzeTyposquattedDomain(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "https://paypa1.com")

	assert.Equal(t, core.TierHigh, result.RiskTier)
	assert.Equal(t, "paypa1.com", result.Domain)

	var typosquat, substitution bool
	for _, threat := range result.Threats {
		if strings.HasPrefix(threat, "TYPOSQUATTING:") {
			typosquat = true
		}
		if strings.HasPrefix(threat, "CHARACTER SUBSTITUTION:") {
			substitution = true
		}
	}
	assert.True(t, typosquat, "expected a typosquatting threat, got %v", result.Threats)
	assert.True(t, substitution, "expected a character substitution threat, got %v", result.Threats)
}

func TestAnalyzeSuspiciousTLD(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "https://win-big-prize.tk")

	assert.Contains(t, result.Threats, "SUSPICIOUS TLD: high-risk domain extension (.tk)")
	assert.GreaterOrEqual(t, result.Score, 35)
}

func TestAnalyzeShortener(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "https://bit.ly/3xYzAbC")

	assert.Contains(t, result.Threats, "URL SHORTENER: destination hidden")
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, core.TierLow, result.RiskTier)
}

func TestAnalyzeSchemePrependedWhenMissing(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "google.com")

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, "google.com", result.Domain)
}

func TestAnalyzeCredentialHarvesting(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "http://legit-site.com@evil-domain.net/account")

	assert.Contains(t, result.Threats, "CREDENTIAL HARVESTING: @ symbol detected in URL")
}

func TestAnalyzeInvalidCertificateScores(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeInvalid)

	result := a.Analyze(context.Background(), "https://self-signed-service.net")

	assert.Contains(t, result.Threats, "SSL ERROR: invalid or self-signed certificate")
}

func TestAnalyzeUnverifiableCertificateDoesNotScore(t *testing.T) {
	verified := newTestAnalyzer(true, core.ProbeVerified)
	unverifiable := newTestAnalyzer(true, core.ProbeUnverifiable)

	target := "https://unreachable-but-plain.net"
	base := verified.Analyze(context.Background(), target)
	timedOut := unverifiable.Analyze(context.Background(), target)

	assert.Equal(t, base.Score, timedOut.Score)
	assert.Contains(t, timedOut.Details, "SSL: unable to verify certificate (timeout)")
}

func TestAnalyzeMissingDNSRecords(t *testing.T) {
	a := newTestAnalyzer(false, core.ProbeVerified)

	result := a.Analyze(context.Background(), "https://nonexistent-domain-xyz.com")

	assert.Contains(t, result.Threats, "DNS: suspicious or missing DNS records")
}

func TestAnalyzeMalformedURL(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "http://%zz^invalid")

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, core.TierLow, result.RiskTier)
	assert.Equal(t, "invalid", result.Domain)
	assert.Contains(t, result.Threats, "INVALID URL: malformed URL structure")
}

func TestAnalyzeEmptyURL(t *testing.T) {
	a := newTestAnalyzer(true, core.ProbeVerified)

	result := a.Analyze(context.Background(), "   ")

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, core.TierUnknown, result.RiskTier)
	assert.Equal(t, "unknown", result.Domain)
}

func TestAnalyzeScoreNeverExceedsCap(t *testing.T) {
	a := newTestAnalyzer(false, core.ProbeVerified)

	// Stacks IP, no-HTTPS, path keywords, missing DNS and an @ symbol
	result := a.Analyze(context.Background(), "http://user@192.168.1.1/login-verify-account-update-secure")

	assert.LessOrEqual(t, result.Score, 100)
	assert.Equal(t, core.TierHigh, result.RiskTier)
}
