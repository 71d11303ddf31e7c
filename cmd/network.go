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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/artist-network-tools/internal/network"
)

var networkNumber int
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Builds the artist network and prints the most connected artists",
	Long: `Builds an undirected artist network from the dataset and prints each
artist's degree, weighted degree, and local clustering coefficient, most
connected first.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := networkReport(networkNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)

	addGraphFlags(networkCmd)
	networkCmd.Flags().IntVarP(&networkNumber, "number", "n", 20, "number of artists to show")
}

func networkReport(numToReturn int) (Report, error) {
	g, _, err := buildGraph()
	if err != nil {
		return Report{}, err
	}

	degree := network.Degree(g)
	weighted := network.WeightedDegree(g)
	clustering := network.LocalClustering(g)

	names := append([]string(nil), g.Vertices()...)
	sort.SliceStable(names, func(i, j int) bool {
		return degree[names[i]] > degree[names[j]]
	})
	if numToReturn > 0 && len(names) > numToReturn {
		names = names[:numToReturn]
	}

	results := [][]string{{"Artist", "Degree", "Weighted degree", "Clustering"}}
	for _, name := range names {
		results = append(results, []string{
			name,
			strconv.Itoa(degree[name]),
			strconv.Itoa(weighted[name]),
			fmt.Sprintf("%.3f", clustering[name]),
		})
	}

	summary := fmt.Sprintf("%d artists, %d edges", g.VertexCount(), g.EdgeCount())
	return Report{results: results, summary: summary}, nil
}
