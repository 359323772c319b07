// Package imagescan analyzes screenshots and attached images for phishing
// indicators: stripped metadata, suspicious dimensions and embedded text.
package imagescan

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/risk"
	"github.com/mikey/fraud-detector/internal/textscan"
)

const (
	weightUnreadable     = 20
	weightNoMetadata     = 15
	weightLowResolution  = 12
	weightOddFormat      = 5
	weightOddAspectRatio = 8
	weightTextKeyword    = 8
	weightPhishingText   = 30

	minResolution    = 400
	maxAspectRatio   = 10.0
	minTextLength    = 20
	textScoreCutoff  = 40
	maxAdoptedThreat = 2
	maxListedKeyword = 3
)

// Analyzer scores image content. The text extractor is optional; without
// it embedded-text analysis is skipped.
type Analyzer struct {
	text      *textscan.Analyzer
	extractor core.TextExtractor
	logger    *zap.Logger
}

// NewAnalyzer creates an image analyzer. extractor may be nil.
func NewAnalyzer(text *textscan.Analyzer, extractor core.TextExtractor, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		text:      text,
		extractor: extractor,
		logger:    logger,
	}
}

// Analyze evaluates raw image bytes
func (a *Analyzer) Analyze(ctx context.Context, data []byte) (result *core.AnalysisResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Image analysis panicked", zap.Any("panic", r))
			result = risk.ErrorResult(core.AnalysisTypeImage, fmt.Sprintf("Analysis error: %v", r))
		}
		result.AnalyzedAt = time.Now()
		a.logger.Debug("Image analysis complete",
			zap.Int("score", result.Score),
			zap.String("tier", string(result.RiskTier)),
			zap.Duration("elapsed", time.Since(start)))
	}()

	if len(data) == 0 {
		return risk.ErrorResult(core.AnalysisTypeImage, "Empty image provided")
	}

	report := &core.Report{}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		report.Add(weightUnreadable, "UNREADABLE IMAGE: could not decode image data")
		return risk.Finalize(report, core.AnalysisTypeImage)
	}

	report.Note(fmt.Sprintf("Image format: %s, dimensions: %dx%d", format, cfg.Width, cfg.Height))

	a.checkMetadata(report, data)
	a.checkDimensions(report, cfg)
	a.checkFormat(report, format)
	a.checkEmbeddedText(ctx, report, data)

	if !report.HasThreats() {
		report.Note("No major threats detected in image")
	}

	return risk.Finalize(report, core.AnalysisTypeImage)
}

func (a *Analyzer) checkMetadata(report *core.Report, data []byte) {
	if _, err := exif.Decode(bytes.NewReader(data)); err != nil {
		report.Add(weightNoMetadata, "NO METADATA: EXIF data stripped or absent (common in scam images)")
		return
	}
	report.Note("EXIF metadata present")
}

func (a *Analyzer) checkDimensions(report *core.Report, cfg image.Config) {
	if cfg.Width < minResolution || cfg.Height < minResolution {
		report.Add(weightLowResolution,
			fmt.Sprintf("LOW RESOLUTION: %dx%d is typical of re-shared scam images", cfg.Width, cfg.Height))
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ratio := float64(cfg.Width) / float64(cfg.Height)
		if ratio > maxAspectRatio || ratio < 1.0/maxAspectRatio {
			report.Add(weightOddAspectRatio, "UNUSUAL DIMENSIONS: extreme aspect ratio")
		}
	}
}

func (a *Analyzer) checkFormat(report *core.Report, format string) {
	if format != "png" && format != "jpeg" {
		report.Add(weightOddFormat, fmt.Sprintf("UNUSUAL FORMAT: %s", format))
	}
}

func (a *Analyzer) checkEmbeddedText(ctx context.Context, report *core.Report, data []byte) {
	if a.extractor == nil {
		report.Note("Text extraction unavailable, skipping embedded text analysis")
		return
	}

	text, err := a.extractor.ExtractText(ctx, data)
	if err != nil {
		a.logger.Warn("Text extraction failed", zap.Error(err))
		report.Note("Text extraction failed, skipping embedded text analysis")
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		report.Note("No text detected in image")
		return
	}

	report.Note(fmt.Sprintf("Extracted %d characters of text", len(text)))

	lower := strings.ToLower(text)
	var found []string
	for _, keyword := range refdata.ImageSuspiciousKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) > 0 {
		listed := found
		if len(listed) > maxListedKeyword {
			listed = listed[:maxListedKeyword]
		}
		report.Add(weightTextKeyword*len(found),
			fmt.Sprintf("SUSPICIOUS TEXT: found keywords: %s", strings.Join(listed, ", ")))
	}

	if len(text) <= minTextLength {
		return
	}
	textResult := a.text.Analyze(text, "")
	if textResult.Score > textScoreCutoff {
		report.Add(weightPhishingText, "PHISHING TEXT: embedded text matches known scam patterns")
		for i, threat := range textResult.Threats {
			if i >= maxAdoptedThreat {
				break
			}
			report.Note(fmt.Sprintf("In image text: %s", threat))
		}
	}
	report.Note(fmt.Sprintf("Text analysis: %s", textResult.RiskTier))
}
