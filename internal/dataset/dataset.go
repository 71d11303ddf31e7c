// Package dataset loads artist and label metadata from CSV exports and
// normalizes it into fixed records. Column names vary between exports
// ("name" vs "artist", "genres" vs "genre"), so headers are mapped to
// canonical fields before rows are scanned.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one entity row: an artist or a record label. Identity is
// name-based; two rows with the same name describe the same entity.
type Record struct {
	ID            string
	Name          string
	Popularity    int
	Followers     int64
	Genres        string
	Categories    string
	Collaborators string
	Users         string
	RecordLabel   string
}

// PrimaryGenre is the first genre token, used for grouping and coloring.
func (r Record) PrimaryGenre() string {
	return PrimaryToken(r.Genres)
}

// PrimaryLabel is the first record-label token.
func (r Record) PrimaryLabel() string {
	return PrimaryToken(r.RecordLabel)
}

// Dataset is an immutable set of records keyed by name, preserving input
// order for deterministic iteration.
type Dataset struct {
	Records []Record
	// Skipped counts input rows dropped for a missing name.
	Skipped int

	byName map[string]int
}

// Lookup returns the record with the given name.
func (d *Dataset) Lookup(name string) (Record, bool) {
	idx, ok := d.byName[name]
	if !ok {
		return Record{}, false
	}
	return d.Records[idx], true
}

// Has reports whether a record with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Names returns all record names in input order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Records))
	for i, r := range d.Records {
		names[i] = r.Name
	}
	return names
}

// columnAlternates maps raw CSV header names (lowercased) to canonical
// fields. Exports from different gathering scripts disagree on naming.
var columnAlternates = map[string]string{
	"id":                "id",
	"name":              "name",
	"artist":            "name",
	"identifier":        "name",
	"popularity":        "popularity",
	"followers":         "followers",
	"genres":            "genres",
	"genre":             "genres",
	"detected category": "categories",
	"detected_category": "categories",
	"categories":        "categories",
	"category":          "categories",
	"collaborators":     "collaborators",
	"collaborator_name": "collaborators",
	"user":              "users",
	"users":             "users",
	"record_label":      "label",
	"label":             "label",
	"record label":      "label",
}

// Load reads records from a CSV stream. The first row is the header; it
// must contain a name column. Rows without a name are skipped and counted,
// and later rows reusing a name are ignored (first row wins).
func Load(r io.Reader) (*Dataset, error) {
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
		canonical, ok := columnAlternates[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			continue
		}
		if _, dup := columns[canonical]; !dup {
			columns[canonical] = i
		}
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("no name column found in header %v", header)
	}

	field := func(row []string, canonical string) string {
		idx, ok := columns[canonical]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	ds := &Dataset{byName: make(map[string]int)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		name := field(row, "name")
		if name == "" {
			ds.Skipped++
			continue
		}
		if _, dup := ds.byName[name]; dup {
			continue
		}

		rec := Record{
			ID:            field(row, "id"),
			Name:          name,
			Genres:        field(row, "genres"),
			Categories:    field(row, "categories"),
			Collaborators: field(row, "collaborators"),
			Users:         field(row, "users"),
			RecordLabel:   field(row, "label"),
		}
		if v := field(row, "popularity"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				rec.Popularity = n
			}
		}
		if v := field(row, "followers"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				rec.Followers = n
			}
		}
		// Exports straight from the harvesting step have genres but no
		// detected-category column yet; derive it so shared-category
		// analysis works on them too.
		if rec.Categories == "" {
			rec.Categories = DetectCategories(rec.Genres)
		}

		ds.byName[name] = len(ds.Records)
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// LoadFile reads records from a CSV file on disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ds, nil
}
