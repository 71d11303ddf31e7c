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
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ademuri/artist-network-tools/internal/store"
	"github.com/ademuri/lastfm-go/lastfm"
)

var tagsUpdateInterval string
var tagsForce bool
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Fetches last.fm tags for the dataset's artists",
	Long: `Stores each artist's last.fm top tags in the local SQLite database.
Tags can then serve as the shared-attribute field for network building.
Artists with recently fetched tags are skipped unless --force is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		interval, err := time.ParseDuration(tagsUpdateInterval)
		if err != nil {
			fmt.Printf("Invalid tag-update-interval: %v. Using default 1 year.\n", err)
			interval = 24 * 365 * time.Hour
		}

		err = updateArtistTags(viper.GetString("database"), interval, tagsForce)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().StringVar(&tagsUpdateInterval, "tag-update-interval", "8760h",
		"Time duration after which to re-fetch tags (e.g., 24h)")
	tagsCmd.Flags().BoolVarP(&tagsForce, "force", "f", false,
		"Re-fetch tags regardless of freshness")
}

func updateArtistTags(dbPath string, interval time.Duration, force bool) error {
	if lastFmApiKey == "" {
		return fmt.Errorf("api_key must be set")
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	client := lastfm.New(lastFmApiKey, lastFmSecret)
	client.SetUserAgent("artist-network-tools/1.0")

	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)
	for i, rec := range ds.Records {
		if !force {
			fresh, err := db.ArtistTagsUpdatedSince(rec.Name, interval)
			if err != nil {
				return err
			}
			if fresh {
				continue
			}
		}

		fmt.Printf("[%d/%d] Fetching tags for artist: %s\n", i+1, len(ds.Records), rec.Name)
		limiter.Wait(context.Background())

		var topTags lastfm.ArtistGetTopTags
		err := retry.Do(
			func() error {
				var err error
				topTags, err = client.Artist.GetTopTags(lastfm.P{
					"artist":      rec.Name,
					"autocorrect": 1,
				})
				return err
			},
			retry.RetryIf(func(err error) bool {
				if lerr, ok := err.(*lastfm.LastfmError); ok {
					if lerr.Code/100 == 5 {
						fmt.Printf("last.fm errored, retrying: %v\n", lerr)
						return true
					}
				}
				return false
			}),
		)
		if err != nil {
			fmt.Printf("Error fetching tags for artist %s: %v\n", rec.Name, err)
			continue
		}

		tags := make(map[string]int, len(topTags.Tags))
		for _, t := range topTags.Tags {
			count, _ := strconv.Atoi(t.Count)
			tags[t.Name] = count
		}

		if err := db.SaveArtistTags(rec.Name, tags); err != nil {
			return fmt.Errorf("saving tags for artist %s: %w", rec.Name, err)
		}
	}

	return nil
}
