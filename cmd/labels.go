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

var labelsGroupBy string
var labelsIncludeInternal bool
var labelsNumber int
var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Contracts the artist network into a label-level network",
	Long: `Groups artists by their primary record label (or primary genre with
--group-by genre) and prints the contracted network's edges. Artists with
no label are left out. Edges internal to one label are dropped unless
--include-internal is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := labelsReport(labelsGroupBy, labelsIncludeInternal, labelsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	addGraphFlags(labelsCmd)
	labelsCmd.Flags().StringVar(&labelsGroupBy, "group-by", "label", "grouping attribute: label or genre")
	labelsCmd.Flags().BoolVar(&labelsIncludeInternal, "include-internal", false,
		"keep edges internal to one group as self-loops")
	labelsCmd.Flags().IntVarP(&labelsNumber, "number", "n", 25, "number of edges to show")
}

func labelsReport(groupBy string, includeInternal bool, numToReturn int) (Report, error) {
	g, ds, err := buildGraph()
	if err != nil {
		return Report{}, err
	}
	if ds == nil {
		return Report{}, fmt.Errorf("label contraction requires --dataset")
	}

	groupOf := make(map[string]string, len(ds.Records))
	for _, rec := range ds.Records {
		switch groupBy {
		case "label":
			groupOf[rec.Name] = rec.PrimaryLabel()
		case "genre":
			groupOf[rec.Name] = rec.PrimaryGenre()
		default:
			return Report{}, fmt.Errorf("unknown grouping attribute %q", groupBy)
		}
	}

	contracted := network.Contract(g, groupOf, network.ContractOptions{
		KeepInternal: includeInternal,
	})

	edges := contracted.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight > edges[j].Weight
	})
	if numToReturn > 0 && len(edges) > numToReturn {
		edges = edges[:numToReturn]
	}

	results := [][]string{{groupBy, groupBy + " 2", "Weight"}}
	for _, e := range edges {
		results = append(results, []string{e.A, e.B, strconv.Itoa(e.Weight)})
	}

	summary := fmt.Sprintf("%d groups, %d edges (from %d artists, %d edges)",
		contracted.VertexCount(), contracted.EdgeCount(), g.VertexCount(), g.EdgeCount())
	return Report{results: results, summary: summary}, nil
}
