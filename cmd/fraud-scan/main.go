package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/di"
	"github.com/mikey/fraud-detector/internal/textscan"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run analyzes the single artifact selected by the flags and prints the
// result as JSON. Exits with status 2 when the artifact is high risk.
func run(
	flags *di.CLIFlags,
	logger *zap.Logger,
	service *core.FraudDetectionService,
	classifier *textscan.Classifier,
) error {
	defer logger.Sync()

	ctx := context.Background()

	var result *core.AnalysisResult
	switch {
	case flags.URL != "":
		result = service.AnalyzeURL(ctx, flags.URL)
	case flags.Text != "" || flags.TextFile != "":
		content, err := readContent(flags)
		if err != nil {
			return err
		}
		initClassifier(ctx, classifier, logger)
		result = service.AnalyzeText(content, flags.Sender)
	case flags.Phone != "":
		result = service.AnalyzePhone(flags.Phone)
	case flags.ImageFile != "":
		data, err := os.ReadFile(flags.ImageFile)
		if err != nil {
			return fmt.Errorf("failed to read image file: %w", err)
		}
		initClassifier(ctx, classifier, logger)
		result = service.AnalyzeImage(ctx, data)
	default:
		return fmt.Errorf("no artifact specified: use -url, -text, -text-file, -phone or -image")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if result.RiskTier == core.TierHigh {
		os.Exit(2)
	}
	return nil
}

// initClassifier trains the in-memory text classifier; the CLI has no
// persistent model store so training happens on every text analysis run
func initClassifier(ctx context.Context, classifier *textscan.Classifier, logger *zap.Logger) {
	classifier.Initialize(ctx, nil, "", 42)
	logger.Debug("Text classifier initialized", zap.String("state", classifier.State().String()))
}

// readContent reads message content from the -text flag, a file, or stdin
func readContent(flags *di.CLIFlags) (string, error) {
	if flags.Text != "" {
		return flags.Text, nil
	}
	if flags.TextFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(flags.TextFile)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}
