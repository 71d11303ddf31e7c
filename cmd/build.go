/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/artist-network-tools/internal/dataset"
	"github.com/ademuri/artist-network-tools/internal/network"
	"github.com/ademuri/artist-network-tools/internal/store"
)

var networkMode string
var edgeTablePath string
var storedGraphName string
var weightByShared bool

// addGraphFlags registers the graph-construction flags shared by the
// analysis commands.
func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&networkMode, "mode", "m", "collaborators",
		"edge source: collaborators, shared-categories, shared-genres, shared-tags, edge-table, or stored")
	cmd.Flags().StringVar(&edgeTablePath, "edge-table", "",
		"Path to a pre-built edge CSV (for --mode edge-table)")
	cmd.Flags().StringVar(&storedGraphName, "stored-graph", "artists",
		"saved graph to load edges from (for --mode stored)")
	cmd.Flags().BoolVar(&weightByShared, "weight-by-shared", false,
		"weight shared-attribute edges by the number of shared tokens")
}

func loadDataset() (*dataset.Dataset, error) {
	path := viper.GetString("dataset")
	if path == "" {
		return nil, fmt.Errorf("no dataset specified (use --dataset)")
	}
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if ds.Skipped > 0 {
		fmt.Printf("Skipped %d rows with no name\n", ds.Skipped)
	}
	return ds, nil
}

// buildGraph constructs the artist graph per the --mode flag. The dataset
// is optional only for the edge-table and stored modes, where the edge
// rows themselves define the vertex set.
func buildGraph() (*network.Graph, *dataset.Dataset, error) {
	if networkMode == "edge-table" || networkMode == "stored" {
		rows, err := loadEdgeRows()
		if err != nil {
			return nil, nil, err
		}
		var ds *dataset.Dataset
		if viper.GetString("dataset") != "" {
			ds, err = loadDataset()
			if err != nil {
				return nil, nil, err
			}
		}
		return network.BuildFromEdges(rows, ds), ds, nil
	}

	ds, err := loadDataset()
	if err != nil {
		return nil, nil, err
	}

	switch networkMode {
	case "collaborators":
		return network.BuildCollaboratorGraph(ds), ds, nil
	case "shared-categories":
		g := network.BuildSharedAttributeGraph(ds, network.SharedAttributeOptions{
			WeightByShared: weightByShared,
		})
		return g, ds, nil
	case "shared-genres":
		g := network.BuildSharedAttributeGraph(ds, network.SharedAttributeOptions{
			WeightByShared: weightByShared,
			UseGenres:      true,
		})
		return g, ds, nil
	case "shared-tags":
		tags, err := loadStoredTags(ds)
		if err != nil {
			return nil, nil, err
		}
		return network.BuildSharedTagGraph(ds, tags, weightByShared), ds, nil
	default:
		return nil, nil, fmt.Errorf("unknown mode %q", networkMode)
	}
}

func loadEdgeRows() ([]dataset.EdgeRow, error) {
	if networkMode == "stored" {
		db, err := store.New(viper.GetString("database"))
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		rows, err := db.LoadEdges(storedGraphName)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("no saved graph %q (run export first)", storedGraphName)
		}
		return rows, nil
	}

	if edgeTablePath == "" {
		return nil, fmt.Errorf("--mode edge-table requires --edge-table")
	}
	return dataset.LoadEdgesFile(edgeTablePath)
}

// loadStoredTags reads each artist's stored last.fm tags, keyed by artist
// name. Artists without stored tags are simply absent from the result.
func loadStoredTags(ds *dataset.Dataset) (map[string]map[string]bool, error) {
	db, err := store.New(viper.GetString("database"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tags := make(map[string]map[string]bool)
	for _, name := range ds.Names() {
		counts, err := db.GetArtistTags(name)
		if err != nil {
			return nil, fmt.Errorf("loading tags for %q: %w", name, err)
		}
		if len(counts) == 0 {
			continue
		}
		set := make(map[string]bool, len(counts))
		for tag := range counts {
			set[tag] = true
		}
		tags[name] = set
	}
	return tags, nil
}
