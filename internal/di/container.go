package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/adapters/domainparse"
	"github.com/mikey/fraud-detector/internal/adapters/netprobe"
	"github.com/mikey/fraud-detector/internal/config"
	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/factory"
	"github.com/mikey/fraud-detector/internal/imagescan"
	"github.com/mikey/fraud-detector/internal/logging"
	"github.com/mikey/fraud-detector/internal/phonescan"
	"github.com/mikey/fraud-detector/internal/ports"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/server"
	"github.com/mikey/fraud-detector/internal/textscan"
	"github.com/mikey/fraud-detector/internal/urlscan"
	"github.com/mikey/fraud-detector/internal/utils"
	"github.com/mikey/fraud-detector/internal/whitelist"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewModelStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register model store
	if err := container.Provide(func(f *factory.ModelStoreFactory) (core.ModelStore, error) {
		return f.CreateModelStore()
	}); err != nil {
		return nil, err
	}

	// Register result cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.ResultCache, error) {
		return f.CreateResultCache()
	}); err != nil {
		return nil, err
	}

	// Register cache TTL and enabled flag
	if err := container.Provide(func(f *factory.CacheFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Register whitelist checker with any operator-supplied additions
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *whitelist.Checker {
		domains := append([]string{}, refdata.LegitimateDomains...)
		extra := cfg.GetStringSlice("analysis.whitelisted_domains")
		if len(extra) > 0 {
			logger.Info("Loaded extra whitelisted domains", zap.Strings("domains", extra))
			domains = append(domains, extra...)
		}
		return whitelist.NewChecker(domains, logger)
	}); err != nil {
		return nil, err
	}

	// Register network adapters
	if err := container.Provide(func() core.DomainParser {
		return domainparse.NewParser()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.DNSChecker {
		net := cfg.GetNetwork()
		return netprobe.NewDNSChecker(net.DNSServer, net.DNSTimeout, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.TLSProber {
		net := cfg.GetNetwork()
		return netprobe.NewTLSProber(net.TLSTimeout, logger)
	}); err != nil {
		return nil, err
	}

	// Register classifier and analyzers
	if err := container.Provide(textscan.NewClassifier); err != nil {
		return nil, err
	}
	if err := container.Provide(func(parser core.DomainParser, dns core.DNSChecker, tls core.TLSProber, trusted *whitelist.Checker, logger *zap.Logger) core.URLAnalyzer {
		return urlscan.NewAnalyzer(parser, dns, tls, trusted, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(classifier *textscan.Classifier, logger *zap.Logger) *textscan.Analyzer {
		return textscan.NewAnalyzer(classifier, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(a *textscan.Analyzer) core.TextAnalyzer {
		return a
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.PhoneAnalyzer {
		return phonescan.NewAnalyzer(logger)
	}); err != nil {
		return nil, err
	}
	// No text extractor is bundled; the image analyzer skips embedded text
	// analysis when it is absent
	if err := container.Provide(func() core.TextExtractor {
		return nil
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(text *textscan.Analyzer, extractor core.TextExtractor, logger *zap.Logger) core.ImageAnalyzer {
		return imagescan.NewAnalyzer(text, extractor, logger)
	}); err != nil {
		return nil, err
	}

	// Register fraud detection service
	if err := container.Provide(core.NewFraudDetectionService); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(func(svc *core.FraudDetectionService, classifier *textscan.Classifier, text *utils.TextProcessor, cfg *config.Config, logger *zap.Logger) *server.Handler {
		srvCfg := cfg.GetServer()
		return server.NewHandler(svc, classifier, text, logger, srvCfg.MaxContentSize, int64(srvCfg.MaxImageSize))
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(handler *server.Handler, cfg *config.Config, logger *zap.Logger) ports.ArtifactServer {
		srvCfg := cfg.GetServer()
		return server.New(handler, srvCfg.ListenAddress, srvCfg.Mode, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
