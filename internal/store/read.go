package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/artist-network-tools/internal/dataset"
)

// LoadEdges returns the stored edge table for a named graph, as the
// alternative input shape accepted by the network builder.
func (s *Store) LoadEdges(graph string) ([]dataset.EdgeRow, error) {
	rows, err := s.db.Query(
		"SELECT source, target, weight FROM Edge WHERE graph = ? ORDER BY source, target", graph)
	if err != nil {
		return nil, fmt.Errorf("querying edges for %q: %w", graph, err)
	}
	defer rows.Close()

	var edges []dataset.EdgeRow
	for rows.Next() {
		var e dataset.EdgeRow
		if err := rows.Scan(&e.Source, &e.Target, &e.Weight); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// GetArtistTags returns the stored tags for one artist, keyed by tag name.
func (s *Store) GetArtistTags(artist string) (map[string]int, error) {
	rows, err := s.db.Query("SELECT tag, count FROM ArtistTag WHERE artist = ?", artist)
	if err != nil {
		return nil, fmt.Errorf("querying tags for %q: %w", artist, err)
	}
	defer rows.Close()

	tags := make(map[string]int)
	for rows.Next() {
		var tag string
		var count int
		if err := rows.Scan(&tag, &count); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags[tag] = count
	}
	return tags, rows.Err()
}

// ArtistTagsUpdatedSince reports whether the artist's tags were fetched
// within the given interval, so unchanged artists can be skipped.
func (s *Store) ArtistTagsUpdatedSince(artist string, interval time.Duration) (bool, error) {
	row := s.db.QueryRow("SELECT MAX(updated) FROM ArtistTag WHERE artist = ?", artist)
	var updated sql.NullInt64
	err := row.Scan(&updated)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking tag freshness for %q: %w", artist, err)
	}
	if !updated.Valid {
		return false, nil
	}
	return time.Since(time.Unix(updated.Int64, 0)) < interval, nil
}

// GetMetric returns a stored metric table for a graph.
func (s *Store) GetMetric(graph, metric string) (map[string]float64, error) {
	rows, err := s.db.Query(
		"SELECT vertex, value FROM Metric WHERE graph = ? AND metric = ?", graph, metric)
	if err != nil {
		return nil, fmt.Errorf("querying metric %q: %w", metric, err)
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var vertex string
		var value float64
		if err := rows.Scan(&vertex, &value); err != nil {
			return nil, fmt.Errorf("scanning metric: %w", err)
		}
		values[vertex] = value
	}
	return values, rows.Err()
}
