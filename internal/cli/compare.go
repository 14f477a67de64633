package cli

import (
	"github.com/spf13/cobra"

	"cpusched/internal/render"
	"cpusched/internal/sched"
	"cpusched/internal/stats"
	"cpusched/internal/workload"
)

func newCompareCmd() *cobra.Command {
	var (
		input   string
		quantum int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Schedule a workload with every policy and compare the metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sched.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantum") {
				cfg.Quantum = quantum
			}
			procs, err := workload.Load(input)
			if err != nil {
				return err
			}

			reg := sched.DefaultRegistry()
			rows := make([]render.ComparisonRow, 0, len(reg.Keys()))
			for _, key := range reg.Keys() {
				policy, err := reg.Lookup(key)
				if err != nil {
					return err
				}
				row := render.ComparisonRow{Key: key}
				timeline, err := policy.Schedule(procs, cfg.Quantum)
				if err != nil {
					logger.Warn("policy failed", "policy", key, "error", err)
					row.Err = err
				} else {
					row.Summary = stats.Summarize(procs, timeline)
				}
				rows = append(rows, row)
			}

			render.Comparison(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Workload file (.yml, .yaml or .csv)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-robin quantum, overrides the config file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
