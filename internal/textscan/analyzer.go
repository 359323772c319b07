// Package textscan implements phishing analysis of free text: a trained
// statistical classifier blended with independent rule-based signals.
package textscan

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/risk"
	"github.com/mikey/fraud-detector/internal/similarity"
)

// Signal weights. Rule signals are evaluated independently of the
// statistical signal and of each other; everything is additive.
const (
	mlScaleMax            = 60
	strongProbability     = 0.7
	moderateProbability   = 0.4
	weightPerKeyword      = 6
	maxKeywordEvidence    = 5
	weightUrgencyCombo    = 25
	minUrgencyTactics     = 3
	weightFinancialCombo  = 20
	minFinancialTerms     = 2
	weightSocialPhrase    = 16
	maxSocialEvidence     = 3
	weightExclamations    = 8
	maxExclamations       = 3
	weightAllCaps         = 12
	capsRatioThreshold    = 0.5
	minLengthForCapsCheck = 20
	weightEmbeddedIP      = 25
	weightEmbeddedTLD     = 20
	weightEmbeddedShort   = 15
	maxEmbeddedURLs       = 3
	weightMalformedSender = 25
	weightDisposable      = 30
	weightSenderTyposquat = 35
	senderSimThreshold    = 85
	weightAttachment      = 20
	weightGenericGreeting = 10
	greetingWindow        = 100
	reassuringBelow       = 20

	fallbackDensityDivisor = 10
	fallbackProbabilityCap = 0.95
)

var (
	urlPattern        = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
	embeddedIPPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

	// Smaller inline lists for embedded-link triage; the full tables drive
	// the dedicated URL analyzer.
	embeddedRiskyTLDs  = []string{".tk", ".ml", ".ga", ".xyz", ".click"}
	embeddedShorteners = []string{"bit.ly", "tinyurl", "goo.gl", "t.co"}
)

// Analyzer scores free text for phishing patterns
type Analyzer struct {
	classifier *Classifier
	logger     *zap.Logger
}

// NewAnalyzer creates a text analyzer around a classifier handle. The
// classifier may be in any lifecycle state; the analyzer degrades to keyword
// heuristics when it is not ready.
func NewAnalyzer(classifier *Classifier, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		logger:     logger,
	}
}

// Analyze evaluates content (and optionally its sender address) and returns
// a well-formed result even on broken input.
func (a *Analyzer) Analyze(content, senderEmail string) (result *core.AnalysisResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Text analysis panicked", zap.Any("panic", r))
			result = risk.ErrorResult(core.AnalysisTypeEmail, fmt.Sprintf("Analysis error: %v", r))
		}
		result.AnalyzedAt = time.Now()
		a.logger.Debug("Text analysis complete",
			zap.Int("score", result.Score),
			zap.String("tier", string(result.RiskTier)),
			zap.Bool("ml", result.MLConfidence != nil),
			zap.Duration("elapsed", time.Since(start)))
	}()

	if strings.TrimSpace(content) == "" {
		return risk.ErrorResult(core.AnalysisTypeEmail, "Empty content provided")
	}

	report := &core.Report{}
	contentLower := strings.ToLower(content)

	mlConfidence := a.statisticalSignal(report, content)
	a.analyzeKeywords(report, contentLower)
	a.checkUrgencyTactics(report, contentLower)
	a.checkFinancialTerms(report, contentLower)
	a.checkSocialEngineering(report, contentLower)
	a.checkPunctuation(report, content)
	a.checkAllCaps(report, content)
	a.analyzeEmbeddedURLs(report, content)
	if senderEmail != "" {
		a.validateSender(report, senderEmail)
	}
	a.checkAttachmentKeywords(report, contentLower)
	a.checkGenericGreeting(report, contentLower)

	if risk.Clamp(report.Score()) < reassuringBelow {
		report.Note("Content uses normal language patterns")
		report.Note("No major social engineering tactics detected")
	}

	result = risk.Finalize(report, core.AnalysisTypeEmail)
	result.MLConfidence = mlConfidence
	return result
}

// statisticalSignal adds the classifier's scaled probability, or the keyword
// density fallback when the trained path is unavailable. Only the trained
// path reports a confidence.
func (a *Analyzer) statisticalSignal(report *core.Report, content string) *float64 {
	if a.classifier != nil && a.classifier.State() == core.ClassifierReady {
		p, err := a.classifier.PredictPhishing(content)
		if err == nil {
			report.Add(int(p * mlScaleMax))
			switch {
			case p > strongProbability:
				report.Add(0, fmt.Sprintf("ML DETECTION: high phishing probability (%.1f%%)", p*100))
			case p > moderateProbability:
				report.Add(0, fmt.Sprintf("ML DETECTION: moderate phishing indicators (%.1f%%)", p*100))
			default:
				report.Note(fmt.Sprintf("ML ANALYSIS: low phishing probability (%.1f%%)", p*100))
			}
			return &p
		}
		a.logger.Warn("Classifier inference failed, using keyword fallback", zap.Error(err))
	}

	// Fallback: keyword density stands in for the trained probability, and
	// no confidence is reported so callers can tell the paths apart.
	p := fallbackProbability(strings.ToLower(content))
	report.Add(int(p * mlScaleMax))
	report.Note("ML analysis unavailable, using pattern matching")
	if p > moderateProbability {
		report.Add(0, fmt.Sprintf("PATTERN MATCH: elevated phishing keyword density (%.0f%%)", p*100))
	}
	return nil
}

// fallbackProbability estimates phishing likelihood from keyword density
func fallbackProbability(contentLower string) float64 {
	count := 0
	for _, keyword := range refdata.FallbackKeywords {
		if strings.Contains(contentLower, keyword) {
			count++
		}
	}
	p := float64(count) / fallbackDensityDivisor
	if p > fallbackProbabilityCap {
		p = fallbackProbabilityCap
	}
	return p
}

// analyzeKeywords scores every keyword-category match; evidence is capped to
// the first few hits so reports stay readable.
func (a *Analyzer) analyzeKeywords(report *core.Report, contentLower string) {
	matches := 0
	for _, category := range refdata.KeywordCategories {
		for _, keyword := range refdata.PhishingKeywords[category] {
			if strings.Contains(contentLower, keyword) {
				matches++
				if matches <= maxKeywordEvidence {
					report.Add(weightPerKeyword,
						fmt.Sprintf("PHISHING KEYWORD: contains '%s'", keyword))
				} else {
					report.Add(weightPerKeyword)
				}
			}
		}
	}
}

func (a *Analyzer) checkUrgencyTactics(report *core.Report, contentLower string) {
	count := 0
	for _, tactic := range refdata.PhishingKeywords["urgency_tactics"] {
		if strings.Contains(contentLower, tactic) {
			count++
		}
	}
	if count >= minUrgencyTactics {
		report.Add(weightUrgencyCombo,
			fmt.Sprintf("URGENCY MANIPULATION: %d pressure tactics detected", count))
	}
}

func (a *Analyzer) checkFinancialTerms(report *core.Report, contentLower string) {
	count := 0
	for _, term := range refdata.PhishingKeywords["financial"] {
		if strings.Contains(contentLower, term) {
			count++
		}
	}
	if count >= minFinancialTerms {
		report.Add(weightFinancialCombo,
			fmt.Sprintf("FINANCIAL REQUEST: %d payment-related terms", count))
	}
}

func (a *Analyzer) checkSocialEngineering(report *core.Report, contentLower string) {
	found := 0
	for _, phrase := range refdata.SocialEngineeringPhrases {
		if strings.Contains(contentLower, phrase) {
			report.Add(weightSocialPhrase,
				fmt.Sprintf("SOCIAL ENGINEERING: '%s' manipulation tactic", phrase))
			found++
			if found >= maxSocialEvidence {
				return
			}
		}
	}
}

func (a *Analyzer) checkPunctuation(report *core.Report, content string) {
	count := strings.Count(content, "!")
	if count > maxExclamations {
		report.Add(weightExclamations,
			fmt.Sprintf("EXCESSIVE PUNCTUATION: %d exclamation marks", count))
	}
}

func (a *Analyzer) checkAllCaps(report *core.Report, content string) {
	runes := []rune(content)
	if len(runes) <= minLengthForCapsCheck {
		return
	}
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	ratio := float64(upper) / float64(len(runes))
	if ratio > capsRatioThreshold {
		report.Add(weightAllCaps,
			fmt.Sprintf("ALL CAPS: %.0f%% uppercase text", ratio*100))
	}
}

// analyzeEmbeddedURLs triages links found in the text. Only the first few
// are inspected; anything deeper belongs to a dedicated URL analysis.
func (a *Analyzer) analyzeEmbeddedURLs(report *core.Report, content string) {
	urls := urlPattern.FindAllString(content, -1)
	if len(urls) == 0 {
		return
	}
	report.Note(fmt.Sprintf("Found %d embedded URL(s)", len(urls)))

	limit := len(urls)
	if limit > maxEmbeddedURLs {
		limit = maxEmbeddedURLs
	}
	for _, u := range urls[:limit] {
		uLower := strings.ToLower(u)

		if embeddedIPPattern.MatchString(u) {
			report.Add(weightEmbeddedIP, "MALICIOUS LINK: IP address in embedded URL")
		}
		for _, tld := range embeddedRiskyTLDs {
			if strings.Contains(uLower, tld) {
				report.Add(weightEmbeddedTLD, "SUSPICIOUS LINK: high-risk domain extension")
				break
			}
		}
		for _, shortener := range embeddedShorteners {
			if strings.Contains(uLower, shortener) {
				report.Add(weightEmbeddedShort, "URL SHORTENER: hidden destination in link")
				break
			}
		}
	}
}

// validateSender checks the optional sender address: format, disposable
// providers and look-alikes of the major mail providers.
func (a *Analyzer) validateSender(report *core.Report, senderEmail string) {
	addr, err := mail.ParseAddress(senderEmail)
	if err != nil {
		report.Add(weightMalformedSender, "INVALID SENDER: malformed email address")
		return
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		report.Add(weightMalformedSender, "INVALID SENDER: malformed email address")
		return
	}
	domain := strings.ToLower(addr.Address[at+1:])

	disposable := false
	for _, provider := range refdata.DisposableEmailDomains {
		if domain == provider || strings.HasSuffix(domain, "."+provider) {
			disposable = true
			break
		}
	}
	if disposable {
		report.Add(weightDisposable, "DISPOSABLE EMAIL: sender using temporary email service")
	} else {
		report.Note(fmt.Sprintf("SENDER: valid email format (%s)", domain))
	}

	for _, provider := range refdata.MajorMailProviders {
		if domain != provider && similarity.Similarity(domain, provider) > senderSimThreshold {
			report.Add(weightSenderTyposquat,
				fmt.Sprintf("SENDER TYPOSQUATTING: domain mimics '%s'", provider))
			break
		}
	}
}

// checkAttachmentKeywords only fires when the text talks about attachments
// and names a dangerous file type. First match only.
func (a *Analyzer) checkAttachmentKeywords(report *core.Report, contentLower string) {
	mentioned := false
	for _, word := range refdata.AttachmentContextWords {
		if strings.Contains(contentLower, word) {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return
	}

	for _, ext := range refdata.DangerousExtensions {
		if strings.Contains(contentLower, ext) {
			report.Add(weightAttachment,
				fmt.Sprintf("SUSPICIOUS ATTACHMENT: potentially dangerous file type (%s)", ext))
			return
		}
	}
}

func (a *Analyzer) checkGenericGreeting(report *core.Report, contentLower string) {
	window := contentLower
	if len(window) > greetingWindow {
		window = window[:greetingWindow]
	}
	for _, greeting := range refdata.GenericGreetings {
		if strings.Contains(window, greeting) {
			report.Add(weightGenericGreeting, "GENERIC GREETING: impersonal salutation")
			return
		}
	}
}
