// Package store persists conversion scan results.
package store

import (
	"fmt"

	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// Store provides persistence for scan results. The interface abstracts the
// underlying backend: SQLite for files, an in-memory map for ":memory:".
type Store interface {
	// AddContent stores a scanned document record.
	AddContent(id types.ContentID, path string, size int64) error

	// ContentExists checks if a document has already been scanned.
	ContentExists(id types.ContentID) (bool, error)

	// GetContentPath retrieves the recorded path for a document.
	GetContentPath(id types.ContentID) (string, error)

	// AddConversion stores a rendered conversion (deduplicated by
	// structural ID).
	AddConversion(c *types.Conversion) error

	// ConversionExists checks if a conversion with this structural ID exists.
	ConversionExists(structuralID string) (bool, error)

	// GetConversions retrieves conversions for a document.
	GetConversions(id types.ContentID) ([]*types.Conversion, error)

	// GetAllConversions retrieves all conversions (for JSON export).
	GetAllConversions() ([]*types.Conversion, error)

	// Close closes the backend.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing and serve mode).
	Path string
}

// New creates a Store. The SQLite backend is pure Go, so file paths work on
// every build; ":memory:" uses the map-backed store.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}
