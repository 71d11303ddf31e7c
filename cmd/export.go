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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/artist-network-tools/internal/network"
	"github.com/ademuri/artist-network-tools/internal/store"
)

var exportName string
var exportSeed int64
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Saves the network and its metrics to the database",
	Long: `Builds the network, computes degree, betweenness, closeness, local
clustering, and community assignments, and stores everything in the
SQLite database for downstream rendering.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := exportNetwork(viper.GetString("database"), exportName, exportSeed)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addGraphFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportName, "name", "artists", "name to store the graph under")
	exportCmd.Flags().Int64Var(&exportSeed, "seed", 0, "random seed for the community partition")
}

func exportNetwork(dbPath string, name string, seed int64) error {
	g, _, err := buildGraph()
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.SaveGraph(name, networkMode, g); err != nil {
		return fmt.Errorf("saving graph: %w", err)
	}

	degree := make(map[string]float64, g.VertexCount())
	for v, d := range network.Degree(g) {
		degree[v] = float64(d)
	}
	metrics := map[string]map[string]float64{
		"degree":      degree,
		"betweenness": network.Betweenness(g, true),
		"closeness":   network.Closeness(g),
		"clustering":  network.LocalClustering(g),
	}

	assignment := network.Communities(g, network.CommunityOptions{Seed: seed})
	community := make(map[string]float64, len(assignment))
	for v, c := range assignment {
		community[v] = float64(c)
	}
	metrics["community"] = community

	for metric, values := range metrics {
		if err := db.SaveMetric(name, metric, values); err != nil {
			return fmt.Errorf("saving %s: %w", metric, err)
		}
	}

	fmt.Printf("Saved graph %q (%d artists, %d edges) and %d metric tables to %s\n",
		name, g.VertexCount(), g.EdgeCount(), len(metrics), dbPath)
	return nil
}
