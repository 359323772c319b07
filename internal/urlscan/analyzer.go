// Package urlscan implements the multi-layer URL risk analysis pipeline.
package urlscan

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/risk"
	"github.com/mikey/fraud-detector/internal/similarity"
	"github.com/mikey/fraud-detector/internal/whitelist"
)

// Layer weights. Each detection layer contributes additively; the sum is
// clamped to 100 before tier classification.
const (
	weightTyposquatting  = 65
	weightHomoglyph      = 30
	weightIPAddress      = 45
	weightSuspiciousTLD  = 35
	weightNoHTTPS        = 20
	weightInvalidCert    = 25
	weightShortener      = 25
	weightSubdomains     = 15
	weightPathKeyword    = 8
	weightNoDNSRecords   = 15
	weightLongURL        = 10
	weightHyphens        = 12
	weightSpecialChars   = 15
	weightAtSymbol       = 40
	weightMalformed      = 25
	typosquatThreshold   = 75
	homoglyphThreshold   = 85
	maxPathKeywords      = 3
	whitelistScore       = 5
	maxURLLength         = 100
	maxDomainHyphenCount = 3
	maxSubdomainLevels   = 2
)

var domainCharPattern = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Analyzer runs the ordered detection layers over one URL
type Analyzer struct {
	parser  core.DomainParser
	dns     core.DNSChecker
	tls     core.TLSProber
	trusted *whitelist.Checker
	logger  *zap.Logger
}

// NewAnalyzer creates a URL analyzer with its network collaborators
func NewAnalyzer(
	parser core.DomainParser,
	dns core.DNSChecker,
	tls core.TLSProber,
	trusted *whitelist.Checker,
	logger *zap.Logger,
) *Analyzer {
	return &Analyzer{
		parser:  parser,
		dns:     dns,
		tls:     tls,
		trusted: trusted,
		logger:  logger,
	}
}

// Analyze evaluates every detection layer in fixed order and returns a
// well-formed result even when the input is broken or a layer misbehaves.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (result *core.AnalysisResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("URL analysis panicked", zap.Any("panic", r))
			result = risk.ErrorResult(core.AnalysisTypeURL, fmt.Sprintf("Analysis error: %v", r))
			result.Domain = "unknown"
		}
		result.AnalyzedAt = time.Now()
		a.logger.Debug("URL analysis complete",
			zap.String("domain", result.Domain),
			zap.Int("score", result.Score),
			zap.String("tier", string(result.RiskTier)),
			zap.Duration("elapsed", time.Since(start)))
	}()

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		r := risk.ErrorResult(core.AnalysisTypeURL, "Empty URL provided")
		r.Domain = "unknown"
		return r
	}

	// Prepend a scheme when missing so protocol-less input parses
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	report := &core.Report{}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		report.Add(weightMalformed, "INVALID URL: malformed URL structure")
		r := risk.Finalize(report, core.AnalysisTypeURL)
		r.Domain = "invalid"
		return r
	}

	host := strings.ToLower(parsed.Hostname())
	pd, err := a.parser.Parse(host)
	if err != nil {
		report.Add(weightMalformed, "INVALID URL: malformed URL structure")
		r := risk.Finalize(report, core.AnalysisTypeURL)
		r.Domain = "invalid"
		return r
	}
	domain := pd.Registrable

	// Whitelist short-circuit: trusted domains skip every remaining layer
	if a.trusted.IsTrusted(domain) {
		result = &core.AnalysisResult{
			Score:          whitelistScore,
			RiskTier:       risk.Classify(whitelistScore),
			Recommendation: risk.Recommendation(risk.Classify(whitelistScore), core.AnalysisTypeURL),
			Threats:        []string{},
			Details:        []string{"VERIFIED: domain is on the trusted whitelist"},
			AnalysisType:   core.AnalysisTypeURL,
			Domain:         domain,
		}
		return result
	}

	a.checkTyposquatting(report, domain)
	a.checkHomoglyphs(report, domain)
	a.checkIPAddress(report, host)
	a.checkSuspiciousTLD(report, domain)
	a.checkTransportSecurity(ctx, report, parsed.Scheme, host)
	a.checkShortener(report, host)
	a.checkSubdomains(report, pd.Subdomain)
	a.checkSuspiciousPaths(report, parsed.Path)
	a.checkDNS(ctx, report, domain)
	a.checkPatternAnomalies(report, rawURL, domain)

	if !report.HasThreats() {
		report.Note("No major threats detected in URL structure")
	}

	r := risk.Finalize(report, core.AnalysisTypeURL)
	r.Domain = domain
	return r
}

// checkTyposquatting flags domains lexically close to a legitimate one.
// First match wins.
func (a *Analyzer) checkTyposquatting(report *core.Report, domain string) {
	for _, legit := range a.trusted.Domains() {
		sim := similarity.Similarity(domain, legit)
		if sim > typosquatThreshold && sim < 100 {
			report.Add(weightTyposquatting,
				fmt.Sprintf("TYPOSQUATTING: domain mimics '%s' (%.0f%% similar)", legit, sim))
			return
		}
	}
}

// checkHomoglyphs catches digit-for-letter substitution attacks. Only
// domains containing digits are candidates; the normalized form is compared
// against the trust table.
func (a *Analyzer) checkHomoglyphs(report *core.Report, domain string) {
	if !similarity.ContainsDigits(domain) {
		return
	}
	normalized := similarity.NormalizeHomoglyphs(domain)
	for _, legit := range a.trusted.Domains() {
		if similarity.Similarity(normalized, legit) > homoglyphThreshold {
			report.Add(weightHomoglyph,
				fmt.Sprintf("CHARACTER SUBSTITUTION: look-alike characters mimic '%s'", legit))
			return
		}
	}
}

func (a *Analyzer) checkIPAddress(report *core.Report, host string) {
	if net.ParseIP(host) != nil {
		report.Add(weightIPAddress, "IP ADDRESS: using an IP instead of a domain name")
	}
}

func (a *Analyzer) checkSuspiciousTLD(report *core.Report, domain string) {
	for _, tld := range refdata.SuspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			report.Add(weightSuspiciousTLD,
				fmt.Sprintf("SUSPICIOUS TLD: high-risk domain extension (%s)", tld))
			return
		}
	}
}

// checkTransportSecurity scores missing HTTPS, then probes the TLS endpoint
// for HTTPS URLs. A probe timeout or connection failure is "could not
// verify" and never scores; only an invalid certificate does.
func (a *Analyzer) checkTransportSecurity(ctx context.Context, report *core.Report, scheme, host string) {
	if scheme != "https" {
		report.Add(weightNoHTTPS, "NO ENCRYPTION: not using HTTPS")
		return
	}
	report.Note("HTTPS: encrypted connection detected")

	outcome := a.tls.Probe(ctx, host)
	switch outcome.Status {
	case core.ProbeInvalid:
		report.Add(weightInvalidCert, "SSL ERROR: invalid or self-signed certificate")
	case core.ProbeUnverifiable:
		report.Note(fmt.Sprintf("SSL: unable to verify certificate (%s)", outcome.Reason))
	}
}

func (a *Analyzer) checkShortener(report *core.Report, host string) {
	for _, shortener := range refdata.URLShorteners {
		if host == shortener || strings.HasSuffix(host, "."+shortener) {
			report.Add(weightShortener, "URL SHORTENER: destination hidden")
			return
		}
	}
}

func (a *Analyzer) checkSubdomains(report *core.Report, subdomain string) {
	if subdomain == "" {
		return
	}
	levels := len(strings.Split(subdomain, "."))
	if levels > maxSubdomainLevels {
		report.Add(weightSubdomains,
			fmt.Sprintf("MULTIPLE SUBDOMAINS: %d levels detected", levels+1))
	}
}

func (a *Analyzer) checkSuspiciousPaths(report *core.Report, path string) {
	path = strings.ToLower(path)
	matches := 0
	for _, keyword := range refdata.SuspiciousPathKeywords {
		if strings.Contains(path, keyword) {
			report.Add(weightPathKeyword,
				fmt.Sprintf("SUSPICIOUS PATH: contains '%s'", keyword))
			matches++
			if matches >= maxPathKeywords {
				return
			}
		}
	}
}

func (a *Analyzer) checkDNS(ctx context.Context, report *core.Report, domain string) {
	if a.dns.HasARecords(ctx, domain) {
		report.Note("DNS: valid domain records found")
	} else {
		report.Add(weightNoDNSRecords, "DNS: suspicious or missing DNS records")
	}
}

func (a *Analyzer) checkPatternAnomalies(report *core.Report, rawURL, domain string) {
	if len(rawURL) > maxURLLength {
		report.Add(weightLongURL, "EXCESSIVE LENGTH: unusually long URL")
	}

	if hyphens := strings.Count(domain, "-"); hyphens > maxDomainHyphenCount {
		report.Add(weightHyphens,
			fmt.Sprintf("EXCESSIVE HYPHENS: %d hyphens in domain", hyphens))
	}

	if domainCharPattern.MatchString(domain) {
		report.Add(weightSpecialChars, "SPECIAL CHARACTERS: unusual characters in domain")
	}

	if strings.Contains(rawURL, "@") {
		report.Add(weightAtSymbol, "CREDENTIAL HARVESTING: @ symbol detected in URL")
	}
}
