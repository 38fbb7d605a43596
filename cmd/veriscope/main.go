// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the veriscope CLI, a client for the
// document-verification backend: it submits documents for claim analysis,
// searches university reviews, and renders reports from saved sessions.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/veriscope/veriscope/internal/api"
	"github.com/veriscope/veriscope/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the veriscope CLI.
var rootCmd = &cobra.Command{
	Use:   "veriscope",
	Short: "Client for the document-verification backend",
	Long: `veriscope submits documents to a remote claim-verification backend and
normalizes its responses into a stable local model. Analysis results are kept
in a local session store so reports can be regenerated without re-querying.

Subcommands cover the backend surface: health and status probes, document
analysis, university review search, and report generation.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./veriscope.yaml or ~/.config/veriscope/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().String("session-dir", "", "session store directory (default: .veriscope)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("veriscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "veriscope"))
		}
	}

	viper.SetDefault("base_url", api.DefaultBaseURL)
	viper.SetDefault("user_agent", "veriscope/"+version)
	viper.SetDefault("search_cache_ttl", 15*time.Minute)
	viper.SetDefault("session_dir", ".veriscope")

	viper.SetEnvPrefix("VERISCOPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newAPIClient builds the backend client from config and flags.
func newAPIClient(cmd *cobra.Command) *api.Client {
	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = viper.GetString("base_url")
	}
	return api.NewClient(types.ClientConfig{
		BaseURL:        baseURL,
		UserAgent:      viper.GetString("user_agent"),
		SearchCacheTTL: viper.GetDuration("search_cache_ttl"),
	})
}

// sessionConfig resolves the session store directory.
func sessionConfig(cmd *cobra.Command) types.SessionConfig {
	dir, _ := cmd.Flags().GetString("session-dir")
	if dir == "" {
		dir = viper.GetString("session_dir")
	}
	return types.SessionConfig{Dir: dir}
}

// friendlyMessage maps backend failures to the fixed user-facing table; the
// status code and message are always present on an api.Error, so anything
// unrecognized falls through to the raw message.
func friendlyMessage(err error) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	switch apiErr.Status {
	case 400:
		return "Invalid input. Please check the file type or search text."
	case 408:
		return "The backend took too long to respond. Please try again."
	case 500:
		return "Server error. Please try again later."
	case 0:
		return "Could not reach the backend. Check your connection and base URL."
	default:
		return apiErr.Message
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
