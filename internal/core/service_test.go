package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingURLAnalyzer struct {
	calls  int
	result *AnalysisResult
}

func (c *countingURLAnalyzer) Analyze(ctx context.Context, rawURL string) *AnalysisResult {
	c.calls++
	return c.result
}

type mapCache struct {
	entries map[string]*AnalysisResult
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*AnalysisResult)}
}

func (m *mapCache) Get(key string) (*AnalysisResult, bool) {
	r, ok := m.entries[key]
	return r, ok
}

func (m *mapCache) Set(key string, result *AnalysisResult, ttl time.Duration) {
	m.entries[key] = result
}

func (m *mapCache) Stop() {}

func TestAnalyzeURLUsesCache(t *testing.T) {
	urls := &countingURLAnalyzer{result: &AnalysisResult{Score: 60, RiskTier: TierMedium}}
	svc := NewFraudDetectionService(urls, nil, nil, nil, newMapCache(), zap.NewNop(), true, time.Hour)

	first := svc.AnalyzeURL(context.Background(), "https://example.net")
	second := svc.AnalyzeURL(context.Background(), "https://example.net")

	assert.Equal(t, 1, urls.calls, "second lookup should come from the cache")
	assert.Equal(t, first, second)
}

func TestAnalyzeURLCacheKeyIsNormalized(t *testing.T) {
	urls := &countingURLAnalyzer{result: &AnalysisResult{Score: 60, RiskTier: TierMedium}}
	svc := NewFraudDetectionService(urls, nil, nil, nil, newMapCache(), zap.NewNop(), true, time.Hour)

	svc.AnalyzeURL(context.Background(), "https://Example.NET")
	svc.AnalyzeURL(context.Background(), "  https://example.net ")

	assert.Equal(t, 1, urls.calls)
}

func TestAnalyzeURLErrorResultsAreNotCached(t *testing.T) {
	urls := &countingURLAnalyzer{result: &AnalysisResult{Score: 25, RiskTier: TierUnknown}}
	cache := newMapCache()
	svc := NewFraudDetectionService(urls, nil, nil, nil, cache, zap.NewNop(), true, time.Hour)

	svc.AnalyzeURL(context.Background(), "https://example.net")
	svc.AnalyzeURL(context.Background(), "https://example.net")

	assert.Equal(t, 2, urls.calls, "error results must be recomputed")
	assert.Empty(t, cache.entries)
}

func TestAnalyzeURLCacheDisabled(t *testing.T) {
	urls := &countingURLAnalyzer{result: &AnalysisResult{Score: 60, RiskTier: TierMedium}}
	svc := NewFraudDetectionService(urls, nil, nil, nil, nil, zap.NewNop(), false, 0)

	svc.AnalyzeURL(context.Background(), "https://example.net")
	svc.AnalyzeURL(context.Background(), "https://example.net")

	assert.Equal(t, 2, urls.calls)
}

func TestIsHighRisk(t *testing.T) {
	svc := NewFraudDetectionService(nil, nil, nil, nil, nil, zap.NewNop(), false, 0)

	assert.True(t, svc.IsHighRisk(&AnalysisResult{RiskTier: TierHigh}))
	assert.False(t, svc.IsHighRisk(&AnalysisResult{RiskTier: TierMedium}))
	assert.False(t, svc.IsHighRisk(&AnalysisResult{RiskTier: TierUnknown}))
}

func TestReportAccumulation(t *testing.T) {
	r := &Report{}
	r.Add(30, "THREAT A")
	r.Add(0, "THREAT B")
	r.Add(-10)
	r.Note("detail")

	assert.Equal(t, 30, r.Score(), "negative and zero deltas must not change the score")
	assert.Equal(t, []string{"THREAT A", "THREAT B"}, r.Threats())
	assert.Equal(t, []string{"detail"}, r.Details())
	assert.True(t, r.HasThreats())
}
