package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/adapters/modelstore"
	"github.com/mikey/fraud-detector/internal/config"
	"github.com/mikey/fraud-detector/internal/core"
)

// ModelStoreFactory creates classifier model stores based on configuration
type ModelStoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewModelStoreFactory creates a new model store factory
func NewModelStoreFactory(cfg *config.Config, logger *zap.Logger) *ModelStoreFactory {
	return &ModelStoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateModelStore creates a model store based on the configuration
func (f *ModelStoreFactory) CreateModelStore() (core.ModelStore, error) {
	storeCfg := f.cfg.GetClassifier()

	switch storeCfg.StoreType {
	case "memory":
		return modelstore.NewMemoryStore(), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(storeCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return modelstore.NewSQLiteStore(storeCfg.SQLitePath, f.logger)
	case "mysql":
		return modelstore.NewMySQLStore(storeCfg.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported model store type: %s", storeCfg.StoreType)
	}
}
