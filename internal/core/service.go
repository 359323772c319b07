package core

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// URLAnalyzer scores a single URL
type URLAnalyzer interface {
	Analyze(ctx context.Context, rawURL string) *AnalysisResult
}

// TextAnalyzer scores message content with an optional sender address
type TextAnalyzer interface {
	Analyze(content, senderEmail string) *AnalysisResult
}

// PhoneAnalyzer scores a phone number in international format
type PhoneAnalyzer interface {
	Analyze(number string) *AnalysisResult
}

// ImageAnalyzer scores raw image bytes
type ImageAnalyzer interface {
	Analyze(ctx context.Context, data []byte) *AnalysisResult
}

// ResultCache fronts the analyzers so repeat lookups of the same artifact
// skip the live network checks
type ResultCache interface {
	Get(key string) (*AnalysisResult, bool)
	Set(key string, result *AnalysisResult, ttl time.Duration)
	Stop()
}

// FraudDetectionService is the core service coordinating all analyzers
type FraudDetectionService struct {
	urls         URLAnalyzer
	texts        TextAnalyzer
	phones       PhoneAnalyzer
	images       ImageAnalyzer
	cache        ResultCache
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewFraudDetectionService creates a new fraud detection service
func NewFraudDetectionService(
	urls URLAnalyzer,
	texts TextAnalyzer,
	phones PhoneAnalyzer,
	images ImageAnalyzer,
	cache ResultCache,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *FraudDetectionService {
	return &FraudDetectionService{
		urls:         urls,
		texts:        texts,
		phones:       phones,
		images:       images,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
	}
}

// AnalyzeURL scores a URL, serving repeat lookups from the cache
func (s *FraudDetectionService) AnalyzeURL(ctx context.Context, rawURL string) *AnalysisResult {
	key := "url:" + strings.ToLower(strings.TrimSpace(rawURL))
	if s.cacheEnabled {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("Cache hit for URL", zap.String("url", rawURL))
			return cached
		}
	}

	result := s.urls.Analyze(ctx, rawURL)

	if s.cacheEnabled && result.RiskTier != TierUnknown {
		s.cache.Set(key, result, s.cacheTTL)
	}
	return result
}

// AnalyzeText scores message content together with its sender address
func (s *FraudDetectionService) AnalyzeText(content, senderEmail string) *AnalysisResult {
	return s.texts.Analyze(content, senderEmail)
}

// AnalyzePhone scores a phone number, serving repeat lookups from the cache
func (s *FraudDetectionService) AnalyzePhone(number string) *AnalysisResult {
	key := "phone:" + strings.TrimSpace(number)
	if s.cacheEnabled {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("Cache hit for phone number")
			return cached
		}
	}

	result := s.phones.Analyze(number)

	if s.cacheEnabled && result.RiskTier != TierUnknown {
		s.cache.Set(key, result, s.cacheTTL)
	}
	return result
}

// AnalyzeImage scores raw image bytes
func (s *FraudDetectionService) AnalyzeImage(ctx context.Context, data []byte) *AnalysisResult {
	return s.images.Analyze(ctx, data)
}

// IsHighRisk reports whether a result falls in the highest risk tier
func (s *FraudDetectionService) IsHighRisk(result *AnalysisResult) bool {
	return result.RiskTier == TierHigh
}
