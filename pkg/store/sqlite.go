package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// SQLiteStore implements Store using SQLite (pure-Go driver).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddContent stores a scanned document record.
func (s *SQLiteStore) AddContent(id types.ContentID, path string, size int64) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO contents (id, path, size) VALUES (?, ?, ?)",
		id.Hex(), path, size,
	)
	if err != nil {
		return fmt.Errorf("inserting content: %w", err)
	}
	return nil
}

// ContentExists checks if a document has already been scanned.
func (s *SQLiteStore) ContentExists(id types.ContentID) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM contents WHERE id = ?", id.Hex()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking content existence: %w", err)
	}
	return count > 0, nil
}

// GetContentPath retrieves the recorded path for a document.
func (s *SQLiteStore) GetContentPath(id types.ContentID) (string, error) {
	var path string
	err := s.db.QueryRow("SELECT path FROM contents WHERE id = ?", id.Hex()).Scan(&path)
	if err != nil {
		return "", fmt.Errorf("querying content path: %w", err)
	}
	return path, nil
}

// AddConversion stores a conversion record.
func (s *SQLiteStore) AddConversion(c *types.Conversion) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO conversions (structural_id, content_id, profile_id, offset_start, offset_end, replacement)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		c.StructuralID,
		c.ContentID.Hex(),
		c.ProfileID,
		c.Span.Start,
		c.Span.End,
		c.Replacement,
	)
	if err != nil {
		return fmt.Errorf("inserting conversion: %w", err)
	}
	return nil
}

// ConversionExists checks if a conversion with this structural ID exists.
func (s *SQLiteStore) ConversionExists(structuralID string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM conversions WHERE structural_id = ?", structuralID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking conversion existence: %w", err)
	}
	return count > 0, nil
}

// GetConversions retrieves conversions for a document.
func (s *SQLiteStore) GetConversions(id types.ContentID) ([]*types.Conversion, error) {
	return s.queryConversions(
		"SELECT structural_id, content_id, profile_id, offset_start, offset_end, replacement FROM conversions WHERE content_id = ?",
		id.Hex(),
	)
}

// GetAllConversions retrieves all conversions.
func (s *SQLiteStore) GetAllConversions() ([]*types.Conversion, error) {
	return s.queryConversions(
		"SELECT structural_id, content_id, profile_id, offset_start, offset_end, replacement FROM conversions",
	)
}

func (s *SQLiteStore) queryConversions(query string, args ...any) ([]*types.Conversion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var conversions []*types.Conversion
	for rows.Next() {
		var c types.Conversion
		var contentIDHex string

		err := rows.Scan(
			&c.StructuralID,
			&contentIDHex,
			&c.ProfileID,
			&c.Span.Start,
			&c.Span.End,
			&c.Replacement,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}

		contentID, err := types.ParseContentID(contentIDHex)
		if err != nil {
			return nil, fmt.Errorf("parsing content ID: %w", err)
		}
		c.ContentID = contentID

		conversions = append(conversions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversions: %w", err)
	}

	return conversions, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
