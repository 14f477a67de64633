package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cpusched/internal/workload"
)

func newGenerateCmd() *cobra.Command {
	var (
		spec   workload.RandomSpec
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := workload.ParseFormat(format)
			if err != nil {
				return err
			}
			procs := workload.Random(spec)

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create workload: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err := workload.Write(w, procs, f); err != nil {
				return err
			}
			logger.Debug("generated workload", "processes", len(procs), "seed", spec.Seed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&spec.Count, "count", "n", 5, "Number of processes")
	cmd.Flags().IntVar(&spec.MaxArrival, "max-arrival", 10, "Latest arrival tick")
	cmd.Flags().IntVar(&spec.MaxBurst, "max-burst", 8, "Longest burst")
	cmd.Flags().IntVar(&spec.MaxPriority, "max-priority", 4, "Largest priority value")
	cmd.Flags().Int64Var(&spec.Seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
