package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// EdgeRow is one observation from a pre-built edge table
// (source,target,weight), the alternative input shape produced by the
// collaboration-gathering scripts.
type EdgeRow struct {
	Source string
	Target string
	Weight int
}

var edgeColumnAlternates = map[string]string{
	"source":   "source",
	"artist 1": "source",
	"artist1":  "source",
	"from":     "source",
	"target":   "target",
	"artist 2": "target",
	"artist2":  "target",
	"to":       "target",
	"weight":   "weight",
	"count":    "weight",
	"number of collaborations": "weight",
}

// LoadEdges reads a pre-built edge table from a CSV stream. A missing or
// unparsable weight defaults to 1. Rows without both endpoints are skipped.
func LoadEdges(r io.Reader) ([]EdgeRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int)
	for i, raw := range header {
		canonical, ok := edgeColumnAlternates[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			continue
		}
		if _, dup := columns[canonical]; !dup {
			columns[canonical] = i
		}
	}
	if _, ok := columns["source"]; !ok {
		return nil, fmt.Errorf("no source column found in header %v", header)
	}
	if _, ok := columns["target"]; !ok {
		return nil, fmt.Errorf("no target column found in header %v", header)
	}

	field := func(row []string, canonical string) string {
		idx, ok := columns[canonical]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var edges []EdgeRow
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		source := field(row, "source")
		target := field(row, "target")
		if source == "" || target == "" {
			continue
		}

		weight := 1
		if v := field(row, "weight"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				weight = n
			}
		}
		edges = append(edges, EdgeRow{Source: source, Target: target, Weight: weight})
	}

	return edges, nil
}

// LoadEdgesFile reads a pre-built edge table from a CSV file on disk.
func LoadEdgesFile(path string) ([]EdgeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening edge table: %w", err)
	}
	defer f.Close()

	edges, err := LoadEdges(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return edges, nil
}
