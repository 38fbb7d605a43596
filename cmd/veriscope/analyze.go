// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veriscope/veriscope/internal/batch"
	"github.com/veriscope/veriscope/internal/report"
	"github.com/veriscope/veriscope/internal/session"
	"github.com/veriscope/veriscope/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Submit documents for claim analysis",
	Long: `Analyze validates each file (PDF or plain text, up to 100 MiB), submits
it to the backend, and prints the normalized result. Multiple files are
submitted concurrently, each through its own independent request.

A single-file run is saved to the local session store so "veriscope report"
can render it later without re-querying the backend.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	client := newAPIClient(cmd)
	ctx := context.Background()

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	ratePerSec, _ := cmd.Flags().GetFloat64("rate")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noSave, _ := cmd.Flags().GetBool("no-save")
	key, _ := cmd.Flags().GetString("session-key")

	// Single file: full report to stdout, result saved for the report stage.
	if len(args) == 1 {
		doc, err := batch.LoadDocument(args[0])
		if err != nil {
			return err
		}
		res, err := client.AnalyzeDocument(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s", friendlyMessage(err))
		}

		if !noSave {
			if err := saveSession(cmd, key, res); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save session: %v\n", err)
			}
		}

		if jsonOutput {
			return report.JSON(os.Stdout, res)
		}
		return report.Text(os.Stdout, res)
	}

	summary := batch.Run(ctx, client, args, types.BatchConfig{
		Concurrency:   concurrency,
		RatePerSecond: ratePerSec,
	}, os.Stdout)

	fmt.Printf("\n%d analyzed, %d failed (%d total)\n", summary.Succeeded, summary.Failed, summary.Total())
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed analysis", summary.Failed)
	}
	return nil
}

func saveSession(cmd *cobra.Command, key string, res *types.AnalysisResult) error {
	store, err := session.Open(sessionConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(context.Background(), key, res)
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output the normalized result as JSON")
	analyzeCmd.Flags().Bool("no-save", false, "do not save the result to the session store")
	analyzeCmd.Flags().String("session-key", session.DefaultKey, "session key to save under")
	analyzeCmd.Flags().Int("concurrency", 3, "maximum files in flight at once")
	analyzeCmd.Flags().Float64("rate", 0, "submission starts per second (0 = unlimited)")

	rootCmd.AddCommand(analyzeCmd)
}
