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
	"sort"

	"github.com/spf13/cobra"

	"github.com/ademuri/artist-network-tools/internal/network"
)

var centralityMetric string
var centralityNormalized bool
var centralityNumber int
var centralityCmd = &cobra.Command{
	Use:   "centrality",
	Short: "Prints the most central artists",
	Long:  `Computes betweenness or closeness centrality and prints the top artists.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := centralityReport(centralityMetric, centralityNormalized, centralityNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(centralityCmd)

	addGraphFlags(centralityCmd)
	centralityCmd.Flags().StringVar(&centralityMetric, "metric", "betweenness",
		"centrality metric: betweenness or closeness")
	centralityCmd.Flags().BoolVar(&centralityNormalized, "normalized", true,
		"divide betweenness by its theoretical maximum")
	centralityCmd.Flags().IntVarP(&centralityNumber, "number", "n", 20, "number of artists to show")
}

func centralityReport(metric string, normalized bool, numToReturn int) (Report, error) {
	g, _, err := buildGraph()
	if err != nil {
		return Report{}, err
	}

	var scores map[string]float64
	switch metric {
	case "betweenness":
		scores = network.Betweenness(g, normalized)
	case "closeness":
		scores = network.Closeness(g)
	default:
		return Report{}, fmt.Errorf("unknown centrality metric %q", metric)
	}

	names := append([]string(nil), g.Vertices()...)
	sort.SliceStable(names, func(i, j int) bool {
		return scores[names[i]] > scores[names[j]]
	})
	if numToReturn > 0 && len(names) > numToReturn {
		names = names[:numToReturn]
	}

	results := [][]string{{"Artist", metric}}
	for _, name := range names {
		results = append(results, []string{name, fmt.Sprintf("%.4f", scores[name])})
	}

	summary := fmt.Sprintf("%s centrality over %d artists, %d edges",
		metric, g.VertexCount(), g.EdgeCount())
	return Report{results: results, summary: summary}, nil
}
