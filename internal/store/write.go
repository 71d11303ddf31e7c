package store

import (
	"fmt"
	"time"

	"github.com/ademuri/artist-network-tools/internal/network"
)

// SaveGraph stores a named graph, replacing any previous graph saved
// under the same name.
func (s *Store) SaveGraph(name, mode string, g *network.Graph) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"Vertex", "Edge", "Metric"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE graph = ?", table), name); err != nil {
			return fmt.Errorf("clearing %s for %q: %w", table, name, err)
		}
	}
	if _, err := tx.Exec("DELETE FROM Graph WHERE name = ?", name); err != nil {
		return fmt.Errorf("clearing graph %q: %w", name, err)
	}

	_, err = tx.Exec(
		"INSERT INTO Graph (name, mode, vertices, edges, created) VALUES (?, ?, ?, ?, ?)",
		name, mode, g.VertexCount(), g.EdgeCount(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("inserting graph %q: %w", name, err)
	}

	for _, v := range g.Vertices() {
		if _, err := tx.Exec("INSERT INTO Vertex (graph, name) VALUES (?, ?)", name, v); err != nil {
			return fmt.Errorf("inserting vertex %q: %w", v, err)
		}
	}
	for _, e := range g.Edges() {
		_, err := tx.Exec(
			"INSERT INTO Edge (graph, source, target, weight) VALUES (?, ?, ?, ?)",
			name, e.A, e.B, e.Weight)
		if err != nil {
			return fmt.Errorf("inserting edge %s-%s: %w", e.A, e.B, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// SaveMetric stores one metric table (vertex → value) for a saved graph.
func (s *Store) SaveMetric(graph, metric string, values map[string]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("DELETE FROM Metric WHERE graph = ? AND metric = ?", graph, metric)
	if err != nil {
		return fmt.Errorf("clearing metric %q: %w", metric, err)
	}
	for vertex, value := range values {
		_, err := tx.Exec(
			"INSERT INTO Metric (graph, metric, vertex, value) VALUES (?, ?, ?, ?)",
			graph, metric, vertex, value)
		if err != nil {
			return fmt.Errorf("inserting metric %q for %q: %w", metric, vertex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// SaveArtistTags replaces the stored tags for one artist.
func (s *Store) SaveArtistTags(artist string, tags map[string]int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM ArtistTag WHERE artist = ?", artist); err != nil {
		return fmt.Errorf("clearing tags for %q: %w", artist, err)
	}
	now := time.Now().Unix()
	for tag, count := range tags {
		_, err := tx.Exec(
			"INSERT INTO ArtistTag (artist, tag, count, updated) VALUES (?, ?, ?, ?)",
			artist, tag, count, now)
		if err != nil {
			return fmt.Errorf("inserting tag %q for %q: %w", tag, artist, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
