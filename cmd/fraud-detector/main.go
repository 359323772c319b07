package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/config"
	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/di"
	"github.com/mikey/fraud-detector/internal/ports"
	"github.com/mikey/fraud-detector/internal/textscan"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	cfg *config.Config,
	srv ports.ArtifactServer,
	classifier *textscan.Classifier,
	store core.ModelStore,
	cache core.ResultCache,
) error {
	defer logger.Sync()

	// Train or load the text classifier before accepting traffic
	classifierCfg := cfg.GetClassifier()
	classifier.Initialize(context.Background(), store, classifierCfg.ModelKey, classifierCfg.Seed)
	logger.Info("Text classifier initialized", zap.String("state", classifier.State().String()))

	// Start the server
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", zap.Error(err))
			return err
		}
	case <-sigCh:
		logger.Info("Shutting down...")
	}

	// Stop the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Failed to stop server", zap.Error(err))
	}

	// Close the model store and stop the cache
	if err := store.Close(); err != nil {
		logger.Error("Failed to close model store", zap.Error(err))
	}
	cache.Stop()

	logger.Info("Shutdown complete")
	return nil
}
