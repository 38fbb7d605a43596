// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veriscope/veriscope/internal/report"
	"github.com/veriscope/veriscope/internal/session"
	"github.com/veriscope/veriscope/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a report from the saved analysis session",
	Long: `Report loads the analysis result saved by "veriscope analyze" and renders
it as text, HTML, or JSON. Without a saved session there is nothing to
render; run analyze first.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	key, _ := cmd.Flags().GetString("session-key")
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	list, _ := cmd.Flags().GetBool("list")

	store, err := session.Open(sessionConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if list {
		entries, err := store.List(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No saved sessions.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%-16s  %-40s  %s\n", e.Key, e.DocumentName, e.SavedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	res, err := store.Load(ctx, key)
	if errors.Is(err, session.ErrNoSession) {
		return fmt.Errorf("no saved analysis session: run \"veriscope analyze\" first")
	}
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return report.Write(out, res, types.ReportFormat(format))
}

func init() {
	reportCmd.Flags().String("session-key", session.DefaultKey, "session key to load")
	reportCmd.Flags().String("format", "text", "report format: text, html, or json")
	reportCmd.Flags().String("out", "", "write the report to a file instead of stdout")
	reportCmd.Flags().Bool("list", false, "list saved sessions")

	rootCmd.AddCommand(reportCmd)
}
