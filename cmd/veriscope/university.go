// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veriscope/veriscope/internal/report"
	"github.com/veriscope/veriscope/internal/validate"
	"github.com/veriscope/veriscope/pkg/types"
)

var universityCmd = &cobra.Command{
	Use:   "university NAME",
	Short: "Search reviews and rankings for a university",
	Long: `University searches the backend for student reviews, rankings, and
complaint themes for the named university. The backend reports soft failures
(no data found, partial results) in the result itself, so a degraded search
still prints a result rather than an error.

Use --out to save the result to a YAML file for later reloading with --from.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUniversity,
}

func runUniversity(cmd *cobra.Command, args []string) error {
	fromFile, _ := cmd.Flags().GetString("from")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outFile, _ := cmd.Flags().GetString("out")

	// Reload a saved search instead of querying.
	if fromFile != "" {
		uf, err := report.ReadUniversityFile(fromFile)
		if err != nil {
			return err
		}
		return printUniversity(uf.Result, jsonOutput)
	}

	if len(args) == 0 {
		return fmt.Errorf("university name required (or --from FILE)")
	}
	name := args[0]

	if err := validate.CheckUniversityName(name); err != nil {
		return err
	}

	client := newAPIClient(cmd)
	res, err := client.SearchUniversityReviews(context.Background(), name)
	if err != nil {
		return fmt.Errorf("%s", friendlyMessage(err))
	}

	if outFile != "" {
		if err := report.WriteUniversityFile(outFile, strings.TrimSpace(name), res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", outFile)
	}

	if !jsonOutput && res.UniversityName != "" {
		// Display name only; requests always carry the raw trimmed input.
		fmt.Printf("Results for %s\n\n", validate.FormatUniversityName(res.UniversityName))
	}
	return printUniversity(res, jsonOutput)
}

func printUniversity(res *types.UniversityResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	report.UniversityText(os.Stdout, res)
	if res.Degraded() {
		fmt.Fprintf(os.Stderr, "warning: search completed with status %s\n", res.SearchStatus)
	}
	return nil
}

func init() {
	universityCmd.Flags().Bool("json", false, "output as JSON")
	universityCmd.Flags().String("out", "", "save the search result to a YAML file")
	universityCmd.Flags().String("from", "", "render a previously saved search file")

	rootCmd.AddCommand(universityCmd)
}
