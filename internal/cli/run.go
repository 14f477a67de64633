package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cpusched/internal/render"
	"cpusched/internal/sched"
	"cpusched/internal/stats"
	"cpusched/internal/workload"
)

func newRunCmd() *cobra.Command {
	var (
		input      string
		policyKey  string
		quantum    int
		format     string
		eventsPath string
		trace      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a workload with one policy",
		Example: `  cpusched run -i procs.yml -p RR -q 3
  cpusched run -i procs.csv -p SRTF-P --format json --events events.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sched.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("policy") {
				cfg.Policy = strings.ToUpper(strings.TrimSpace(policyKey))
			}
			if cmd.Flags().Changed("quantum") {
				cfg.Quantum = quantum
			}

			policy, err := cfg.ResolvePolicy()
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(sched.Keys(), ", "))
			}
			procs, err := workload.Load(input)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			log := logger.With("run_id", runID, "policy", cfg.Policy)
			log.Info("scheduling", "processes", len(procs), "quantum", cfg.Quantum)

			sinks := []sched.EventSink{func(ev sched.StatusEvent) {
				log.Debug("event", "tick", ev.Tick, "kind", ev.Kind.String(), "process", ev.Process, "remaining", ev.Remaining)
			}}
			if trace {
				sinks = append(sinks, func(ev sched.StatusEvent) {
					fmt.Fprintln(cmd.ErrOrStderr(), render.EventLine(ev))
				})
			}

			var events *render.EventLog
			if eventsPath != "" {
				f, err := os.Create(eventsPath)
				if err != nil {
					return fmt.Errorf("create event log: %w", err)
				}
				defer f.Close()
				if events, err = render.NewEventLog(f, runID); err != nil {
					return fmt.Errorf("write event log: %w", err)
				}
			}

			var logErr error
			if events != nil {
				sinks = append(sinks, func(ev sched.StatusEvent) {
					logErr = errors.Join(logErr, events.Write(ev))
				})
			}

			timeline, err := sched.Trace(policy, procs, cfg.Quantum, fanOut(sinks))
			if err != nil {
				return err
			}
			if err := sched.VerifyTimeline(procs, timeline); err != nil {
				return err
			}
			if events != nil {
				if err := errors.Join(logErr, events.Flush()); err != nil {
					return fmt.Errorf("write event log: %w", err)
				}
			}

			summary := stats.Summarize(procs, timeline)
			log.Info("scheduled", "intervals", len(timeline), "makespan", summary.Makespan)

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				report := render.Report{
					RunID:    runID,
					Policy:   cfg.Policy,
					Timeline: timeline,
					Summary:  summary,
				}
				if policy.Kind() == sched.KindRoundRobin {
					report.Quantum = cfg.Quantum
				}
				return render.JSON(out, report)
			case "csv":
				return render.TimelineCSV(out, timeline)
			default:
				title := policy.Kind().String()
				if policy.Kind() == sched.KindRoundRobin {
					title = fmt.Sprintf("%s (quantum %d)", title, cfg.Quantum)
				}
				if err := render.Title(out, title); err != nil {
					return err
				}
				if err := render.Gantt(out, timeline); err != nil {
					return err
				}
				fmt.Fprintln(out)
				render.Table(out, summary)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Workload file (.yml, .yaml or .csv)")
	cmd.Flags().StringVarP(&policyKey, "policy", "p", "", "Policy key, overrides the config file")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-robin quantum, overrides the config file")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, csv)")
	cmd.Flags().StringVar(&eventsPath, "events", "", "Write simulation events to this CSV file")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print simulation events to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// fanOut delivers every event to each sink in order.
func fanOut(sinks []sched.EventSink) sched.EventSink {
	return func(ev sched.StatusEvent) {
		for _, s := range sinks {
			s(ev)
		}
	}
}
