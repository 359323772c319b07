package modelstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the ModelStore interface
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite-backed model store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS classifier_models (
			model_key TEXT PRIMARY KEY,
			artifact BLOB NOT NULL,
			trained_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Load retrieves a persisted model artifact, or (nil, nil) if absent
func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
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

	s.logger.Debug("Loaded model artifact",
		zap.String("key", key),
		zap.Int("bytes", len(artifact)))
	return artifact, nil
}

// Save stores a model artifact, replacing any previous one for the key
func (s *SQLiteStore) Save(ctx context.Context, key string, artifact []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classifier_models (model_key, artifact, trained_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(model_key) DO UPDATE SET
			artifact = excluded.artifact,
			trained_at = CURRENT_TIMESTAMP
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
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
