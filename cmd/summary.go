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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/artist-network-tools/internal/network"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Prints whole-network statistics",
	Long: `Prints vertex and edge counts, connected components, global clustering
coefficient, and the average shortest-path length over the largest
component.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := summaryReport()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	addGraphFlags(summaryCmd)
}

func summaryReport() (Report, error) {
	g, _, err := buildGraph()
	if err != nil {
		return Report{}, err
	}

	components := network.Components(g)
	largest := 0
	isolated := 0
	if len(components) > 0 {
		largest = len(components[0])
	}
	for _, c := range components {
		if len(c) == 1 {
			isolated++
		}
	}

	results := [][]string{
		{"Statistic", "Value"},
		{"Artists", strconv.Itoa(g.VertexCount())},
		{"Edges", strconv.Itoa(g.EdgeCount())},
		{"Total edge weight", strconv.Itoa(g.TotalWeight())},
		{"Components", strconv.Itoa(len(components))},
		{"Largest component", strconv.Itoa(largest)},
		{"Isolated artists", strconv.Itoa(isolated)},
		{"Global clustering", fmt.Sprintf("%.4f", network.GlobalClustering(g))},
		{"Average path length", fmt.Sprintf("%.4f", network.AveragePathLength(g))},
	}

	summary := fmt.Sprintf("network built in %s mode", networkMode)
	return Report{results: results, summary: summary}, nil
}
