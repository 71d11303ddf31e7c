// Package store persists built networks, metric tables, and fetched
// artist tags in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS Graph (
  name TEXT PRIMARY KEY,
  mode TEXT,
  vertices INTEGER,
  edges INTEGER,
  created INTEGER
);

CREATE TABLE IF NOT EXISTS Vertex (
  graph TEXT,
  name TEXT,
  FOREIGN KEY (graph) REFERENCES Graph(name),
  PRIMARY KEY (graph, name)
);

CREATE TABLE IF NOT EXISTS Edge (
  graph TEXT,
  source TEXT,
  target TEXT,
  weight INTEGER,
  FOREIGN KEY (graph) REFERENCES Graph(name),
  PRIMARY KEY (graph, source, target)
);

CREATE TABLE IF NOT EXISTS Metric (
  graph TEXT,
  metric TEXT,
  vertex TEXT,
  value REAL,
  FOREIGN KEY (graph) REFERENCES Graph(name),
  PRIMARY KEY (graph, metric, vertex)
);

CREATE TABLE IF NOT EXISTS ArtistTag (
  artist TEXT,
  tag TEXT,
  count INTEGER,
  updated INTEGER,
  PRIMARY KEY (artist, tag)
);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}
