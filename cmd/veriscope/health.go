package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the backend is reachable",
	Long: `Health probes the backend root endpoint with a short timeout. It exits
non-zero when the backend is unreachable, making it usable as a liveness
check in scripts.`,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := newAPIClient(cmd)

	info, err := client.Health(context.Background())
	if err != nil {
		return fmt.Errorf("%s", friendlyMessage(err))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Backend reachable: %s", info.Message)
	if info.Version != "" {
		fmt.Printf(" (version %s)", info.Version)
	}
	fmt.Println()
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend capability and analysis mode",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := newAPIClient(cmd)

	info, err := client.Status(context.Background())
	if err != nil {
		return fmt.Errorf("%s", friendlyMessage(err))
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Status: %s\n", info.Status)
	if info.Message != "" {
		fmt.Printf("Message: %s\n", info.Message)
	}
	if info.AnalysisMode != "" {
		fmt.Printf("Analysis mode: %s\n", info.AnalysisMode)
	}
	for name, state := range info.Services {
		fmt.Printf("Service %s: %v\n", name, state)
	}
	return nil
}

func init() {
	healthCmd.Flags().Bool("json", false, "output as JSON")
	statusCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statusCmd)
}
