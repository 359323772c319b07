// Package phonescan analyzes phone numbers for fraud indicators: premium
// rate services, high-risk calling regions and structural validity.
package phonescan

import (
	"fmt"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/risk"
)

const (
	weightInvalidFormat  = 20
	weightPremiumRate    = 50
	weightHighRiskRegion = 15
	weightPremiumPrefix  = 40
	weightImpossible     = 15
	weightParseError     = 25
)

var numberTypeNames = map[phonenumbers.PhoneNumberType]string{
	phonenumbers.FIXED_LINE:           "fixed line",
	phonenumbers.MOBILE:               "mobile",
	phonenumbers.FIXED_LINE_OR_MOBILE: "fixed line or mobile",
	phonenumbers.TOLL_FREE:            "toll free",
	phonenumbers.PREMIUM_RATE:         "premium rate",
	phonenumbers.SHARED_COST:          "shared cost",
	phonenumbers.VOIP:                 "voip",
	phonenumbers.PERSONAL_NUMBER:      "personal number",
	phonenumbers.PAGER:                "pager",
	phonenumbers.UAN:                  "uan",
	phonenumbers.VOICEMAIL:            "voicemail",
	phonenumbers.UNKNOWN:              "unknown",
}

// Analyzer scores a phone number in international format
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates a phone analyzer
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze parses the number and evaluates each fraud indicator
func (a *Analyzer) Analyze(number string) (result *core.AnalysisResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Phone analysis panicked", zap.Any("panic", r))
			result = risk.ErrorResult(core.AnalysisTypePhone, fmt.Sprintf("Analysis error: %v", r))
		}
		result.AnalyzedAt = time.Now()
		a.logger.Debug("Phone analysis complete",
			zap.Int("score", result.Score),
			zap.String("tier", string(result.RiskTier)),
			zap.Duration("elapsed", time.Since(start)))
	}()

	if strings.TrimSpace(number) == "" {
		return risk.ErrorResult(core.AnalysisTypePhone, "Empty phone number provided")
	}

	report := &core.Report{}

	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		report.Add(weightParseError, fmt.Sprintf("PARSE ERROR: %v", err))
		return risk.Finalize(report, core.AnalysisTypePhone)
	}

	if phonenumbers.IsValidNumber(parsed) {
		report.Note("Valid phone number format")
	} else {
		report.Add(weightInvalidFormat, "INVALID FORMAT: phone number format is invalid")
	}

	numberType := phonenumbers.GetNumberType(parsed)
	if numberType == phonenumbers.PREMIUM_RATE {
		report.Add(weightPremiumRate, "PREMIUM RATE: high-cost phone number detected")
	}

	countryCode := parsed.GetCountryCode()
	for _, code := range refdata.HighRiskCountryCodes {
		if countryCode == code {
			report.Add(weightHighRiskRegion,
				fmt.Sprintf("HIGH-RISK REGION: number from fraud-prone area (+%d)", countryCode))
			break
		}
	}

	national := phonenumbers.GetNationalSignificantNumber(parsed)
	for _, prefix := range refdata.PremiumPrefixesIndia {
		if strings.HasPrefix(national, prefix) {
			report.Add(weightPremiumPrefix,
				fmt.Sprintf("PREMIUM SERVICE: high-cost service number (starts with %s)", prefix))
			break
		}
	}

	report.Note(fmt.Sprintf("Country code: +%d", countryCode))
	report.Note(fmt.Sprintf("Number type: %s", typeName(numberType)))

	if !phonenumbers.IsPossibleNumber(parsed) {
		report.Add(weightImpossible, "IMPOSSIBLE NUMBER: number length invalid for region")
	}

	return risk.Finalize(report, core.AnalysisTypePhone)
}

func typeName(t phonenumbers.PhoneNumberType) string {
	if name, ok := numberTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
