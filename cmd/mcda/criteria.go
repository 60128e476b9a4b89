package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func newCriteriaCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "Print the active criterion weight table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}

			criteria := make([]string, 0, len(cfg.Scoring.Weights))
			for c := range cfg.Scoring.Weights {
				criteria = append(criteria, c)
			}
			sort.Strings(criteria)

			var sum float64
			for _, c := range criteria {
				w := cfg.Scoring.Weights[c]
				fmt.Fprintf(os.Stdout, "%-24s %.2f\n", c, w)
				sum += w
			}
			fmt.Fprintf(os.Stdout, "%-24s %.2f\n", "total", sum)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: discover .mcda/config.yaml)")

	return cmd
}
