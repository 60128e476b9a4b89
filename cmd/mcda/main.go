// Package main provides the mcda CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mcda",
		Short: "Business fit scoring for AI logistics tools",
		Long: `mcda scores candidate logistics tools against stakeholder-weighted
criteria, ranks them best-first, and renders executive reports.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newEvaluateCmd(),
		newChartCmd(),
		newCriteriaCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
