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
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/artist-network-tools/internal/spotify"
)

var fetchOutput string
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches collaborator lists from the Spotify API",
	Long: `For each artist in the dataset, walks their album and single releases
and records every artist credited on the same tracks. Appends rows to the
output CSV and skips artists already present there, so an interrupted run
can be resumed.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := fetchCollaborators(fetchOutput)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o",
		"artist_collaborators_network.csv", "collaborator CSV to append to")
}

var collaboratorHeader = []string{
	"primary_artist", "primary_artist_id", "collaborator_id", "collaborator_name",
}

func fetchCollaborators(outputPath string) error {
	clientID := viper.GetString("spotify_client_id")
	clientSecret := viper.GetString("spotify_client_secret")
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("spotify_client_id and spotify_client_secret must be set")
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	processed, err := loadProcessedArtists(outputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d artists, %d already processed\n", len(ds.Records), len(processed))

	ctx := context.Background()
	client := spotify.New(clientID, clientSecret)
	if err := client.Authenticate(ctx); err != nil {
		return fmt.Errorf("authenticating with Spotify: %w", err)
	}

	for i, rec := range ds.Records {
		if rec.ID == "" {
			fmt.Printf("[%d/%d] Skipping %q: no Spotify ID\n", i+1, len(ds.Records), rec.Name)
			continue
		}
		if processed[rec.ID] {
			fmt.Printf("[%d/%d] Skipping already processed artist %q\n", i+1, len(ds.Records), rec.Name)
			continue
		}

		fmt.Printf("[%d/%d] Fetching collaborators for %q\n", i+1, len(ds.Records), rec.Name)
		collaborators, err := client.Collaborators(ctx, rec.ID)
		if err != nil {
			// One bad artist shouldn't lose the run's progress.
			fmt.Printf("  Error fetching %q: %v\n", rec.Name, err)
			continue
		}
		fmt.Printf("  Found %d collaborators\n", len(collaborators))

		if err := appendCollaborators(outputPath, rec.Name, rec.ID, collaborators); err != nil {
			return err
		}
		processed[rec.ID] = true
	}

	return nil
}

// loadProcessedArtists reads the output CSV, if present, and returns the
// primary artist IDs already written so reruns can skip them.
func loadProcessedArtists(path string) (map[string]bool, error) {
	processed := make(map[string]bool)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return processed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return processed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	idCol := -1
	for i, name := range header {
		if strings.TrimSpace(name) == "primary_artist_id" {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%s has no primary_artist_id column", path)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if idCol < len(row) && row[idCol] != "" {
			processed[row[idCol]] = true
		}
	}
	return processed, nil
}

func appendCollaborators(path, artist, artistID string, collaborators map[string]string) error {
	if len(collaborators) == 0 {
		return nil
	}

	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if writeHeader {
		if err := writer.Write(collaboratorHeader); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	ids := make([]string, 0, len(collaborators))
	for id := range collaborators {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return strings.ToLower(collaborators[ids[i]]) < strings.ToLower(collaborators[ids[j]])
	})

	for _, id := range ids {
		row := []string{artist, artistID, id, collaborators[id]}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
