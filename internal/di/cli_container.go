package di

import (
	"flag"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/adapters/domainparse"
	"github.com/mikey/fraud-detector/internal/adapters/netprobe"
	"github.com/mikey/fraud-detector/internal/config"
	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/imagescan"
	"github.com/mikey/fraud-detector/internal/logging"
	"github.com/mikey/fraud-detector/internal/phonescan"
	"github.com/mikey/fraud-detector/internal/refdata"
	"github.com/mikey/fraud-detector/internal/textscan"
	"github.com/mikey/fraud-detector/internal/urlscan"
	"github.com/mikey/fraud-detector/internal/whitelist"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Artifact flags; exactly one should be set
	URL       string
	Text      string
	TextFile  string
	Sender    string
	Phone     string
	ImageFile string

	// Network check flags
	DNSServer  string
	DNSTimeout time.Duration
	TLSTimeout time.Duration

	// Output flags
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Artifact flags
	flag.StringVar(&flags.URL, "url", "", "URL to analyze")
	flag.StringVar(&flags.Text, "text", "", "Message content to analyze")
	flag.StringVar(&flags.TextFile, "text-file", "", "File containing message content (use stdin with '-')")
	flag.StringVar(&flags.Sender, "sender", "", "Sender email address for message analysis")
	flag.StringVar(&flags.Phone, "phone", "", "Phone number to analyze (international format)")
	flag.StringVar(&flags.ImageFile, "image", "", "Image file to analyze")

	// Network check flags
	flag.StringVar(&flags.DNSServer, "dns-server", "8.8.8.8:53", "DNS server for record checks")
	flag.DurationVar(&flags.DNSTimeout, "dns-timeout", 2*time.Second, "Timeout for DNS record checks")
	flag.DurationVar(&flags.TLSTimeout, "tls-timeout", 3*time.Second, "Timeout for TLS certificate checks")

	// Output flags
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register whitelist checker
	if err := container.Provide(func(logger *zap.Logger) *whitelist.Checker {
		return whitelist.NewChecker(refdata.LegitimateDomains, logger)
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

	// Register fraud detection service with no cache
	if err := container.Provide(func(
		urls core.URLAnalyzer,
		texts core.TextAnalyzer,
		phones core.PhoneAnalyzer,
		images core.ImageAnalyzer,
		logger *zap.Logger,
	) *core.FraudDetectionService {
		return core.NewFraudDetectionService(
			urls,
			texts,
			phones,
			images,
			nil,              // No cache for CLI
			logger,
			false,            // Cache disabled
			time.Duration(0), // No TTL
		)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("cli.verbose", flags.Verbose)
	v.Set("network.dns_server", flags.DNSServer)
	v.Set("network.dns_timeout", flags.DNSTimeout.String())
	v.Set("network.tls_timeout", flags.TLSTimeout.String())
	v.Set("cache.enabled", false)
	v.Set("classifier.store_type", "memory")

	return config.NewFromViper(v)
}
