package fileContents

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Cache keeps extracted text in SQLite, keyed by file path and invalidated by size and modification time
type Cache struct {
	dbPath string
	db     *sql.DB
}

func OpenCache(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("OpenCache cannot connect to db %s: %w", dbPath, err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS extractedContents (
			filePath TEXT    NOT NULL PRIMARY KEY,
			size     INTEGER NOT NULL,
			modTime  INTEGER NOT NULL,
			content  TEXT    NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenCache cannot create the table in %s: %w", dbPath, err)
	}
	return &Cache{dbPath: dbPath, db: db}, nil
}

// Get returns the cached text of filePath if it was stored for the same size and modification time
func (cache *Cache) Get(filePath string, info os.FileInfo) (string, bool, error) {
	var content string
	err := cache.db.QueryRow(
		"SELECT content FROM extractedContents WHERE filePath = ? AND size = ? AND modTime = ?;",
		filePath, info.Size(), info.ModTime().UnixNano(),
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("Cache.Get cannot query %s for `%s`: %w", cache.dbPath, filePath, err)
	}
	return content, true, nil
}

func (cache *Cache) Put(filePath string, info os.FileInfo, content string) error {
	_, err := cache.db.Exec(`
		INSERT INTO extractedContents (filePath, size, modTime, content) VALUES (?, ?, ?, ?)
		ON CONFLICT(filePath) DO UPDATE SET
			size    = excluded.size,
			modTime = excluded.modTime,
			content = excluded.content
		;`,
		filePath, info.Size(), info.ModTime().UnixNano(), content,
	)
	if err != nil {
		return fmt.Errorf("Cache.Put cannot store `%s` in %s: %w", filePath, cache.dbPath, err)
	}
	return nil
}

func (cache *Cache) Close() error {
	return cache.db.Close()
}
