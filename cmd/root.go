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
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string
var datasetPath string
var databasePath string
var lastFmApiKey string
var lastFmSecret string
var spotifyClientId string
var spotifyClientSecret string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "artist-network-tools",
	Short: "Builds and analyzes artist collaboration networks",
	Long: `Builds undirected networks over music artists and record labels from
CSV exports (artist metadata, collaborator lists, genre and category tags),
computes network metrics, and prints report tables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.artist-network-tools.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&datasetPath, "dataset", "i", "", "Path to the artist details CSV")
	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./networks.db", "Path to the SQLite database")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(
		&lastFmApiKey, "api_key", "", "last.fm API key")
	viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api_key"))

	rootCmd.PersistentFlags().StringVar(
		&lastFmSecret, "secret", "", "last.fm secret")
	viper.BindPFlag("secret", rootCmd.PersistentFlags().Lookup("secret"))

	rootCmd.PersistentFlags().StringVar(
		&spotifyClientId, "spotify_client_id", "", "Spotify client ID")
	viper.BindPFlag("spotify_client_id", rootCmd.PersistentFlags().Lookup("spotify_client_id"))

	rootCmd.PersistentFlags().StringVar(
		&spotifyClientSecret, "spotify_client_secret", "", "Spotify client secret")
	viper.BindPFlag("spotify_client_secret", rootCmd.PersistentFlags().Lookup("spotify_client_secret"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".artist-network-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".artist-network-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}
