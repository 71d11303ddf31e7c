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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

const testDatasetCsv = `name,genres,detected category,record_label,collaborators
Kendrick Lamar,"hip hop, west coast hip hop",rap,TDE,"SZA, Jay Rock"
SZA,r&b,rnb,TDE,Kendrick Lamar
Jay Rock,hip hop,rap,TDE,Kendrick Lamar
Doja Cat,"pop, r&b",pop,RCA,SZA
Björk,art pop,pop,One Little Independent,
`

// useTestDataset writes a small dataset CSV and points the analysis
// commands at it, in collaborators mode.
func useTestDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artists.csv")
	if err := os.WriteFile(path, []byte(testDatasetCsv), 0644); err != nil {
		t.Fatalf("writing test dataset: %v", err)
	}
	viper.Set("dataset", path)
	networkMode = "collaborators"
	edgeTablePath = ""
	storedGraphName = "artists"
	weightByShared = false
	return path
}
