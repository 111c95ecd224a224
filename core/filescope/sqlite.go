package filescope

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/FocuswithJustin/interchange/core/errors"
)

// SQLiteContext saves and loads file content through a SQLite database,
// keeping a set of values and their content in a single portable file.
// It implements both SaveContext and LoadContext.
type SQLiteContext struct {
	db      *sql.DB
	scratch string
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS file_content (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	content BLOB NOT NULL
);
`

// OpenSQLiteContext opens (creating if necessary) a content database at path.
func OpenSQLiteContext(path string) (*SQLiteContext, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize content database: %w", err)
	}
	return &SQLiteContext{db: db}, nil
}

func (c *SQLiteContext) SaveFile(source string, id string) (string, error) {
	if source == "" {
		return "", errors.NewInvalidValue("cannot save a file value with no content")
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	}
	_, err = c.db.Exec(
		`INSERT INTO file_content (id, name, content) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, content = excluded.content`,
		id, filepath.Base(source), data,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save content %s: %w", id, err)
	}
	return id, nil
}

func (c *SQLiteContext) LoadFile(id string) (string, error) {
	if id == "" {
		return "", ErrInvalidContentID
	}
	var name string
	var data []byte
	err := c.db.QueryRow(`SELECT name, content FROM file_content WHERE id = ?`, id).Scan(&name, &data)
	if err == sql.ErrNoRows {
		return "", ErrContentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load content %s: %w", id, err)
	}
	if c.scratch == "" {
		dir, err := os.MkdirTemp("", "interchange-sqlite-*")
		if err != nil {
			return "", err
		}
		c.scratch = dir
	}
	// Content is extracted under a per-id directory so original file names
	// survive without colliding across entries.
	dir := filepath.Join(c.scratch, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (c *SQLiteContext) Flush() error { return nil }

func (c *SQLiteContext) Close() error {
	if c.scratch != "" {
		os.RemoveAll(c.scratch)
		c.scratch = ""
	}
	return c.db.Close()
}
