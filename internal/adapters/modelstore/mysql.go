package modelstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL implementation of the ModelStore interface
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL-backed model store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS classifier_models (
			model_key VARCHAR(255) PRIMARY KEY,
			artifact LONGBLOB NOT NULL,
			trained_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Load retrieves a persisted model artifact, or (nil, nil) if absent
func (s *MySQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var artifact []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT artifact FROM classifier_models WHERE model_key = ?
	`, key).Scan(&artifact)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	return artifact, nil
}

// Save stores a model artifact, replacing any previous one for the key
func (s *MySQLStore) Save(ctx context.Context, key string, artifact []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classifier_models (model_key, artifact)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE artifact = VALUES(artifact), trained_at = CURRENT_TIMESTAMP
	`, key, artifact)
	if err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	s.logger.Debug("Saved model artifact",
		zap.String("key", key),
		zap.Int("bytes", len(artifact)))
	return nil
}

// Close closes the underlying database
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
