package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/sched"
	"cpusched/internal/stats"
)

// Table prints per-process metrics with the averages in the footer.
func Table(w io.Writer, sum stats.Summary) {
	rows := make([][]string, 0, len(sum.Processes))
	for _, p := range sum.Processes {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.FirstRun),
			strconv.Itoa(p.Completion),
			strconv.Itoa(p.Turnaround),
			strconv.Itoa(p.Waiting),
			strconv.Itoa(p.Response),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Priority", "Burst", "Arrival", "First Run", "Exit", "Turnaround", "Wait", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Utilization %.0f%%", sum.Utilization*100),
		fmt.Sprintf("Average %.2f", sum.AvgTurnaround),
		fmt.Sprintf("Average %.2f", sum.AvgWaiting),
		fmt.Sprintf("Average %.2f", sum.AvgResponse),
	})
	table.Render()
}

// ComparisonRow is one policy's line in a side-by-side comparison.
type ComparisonRow struct {
	Key     string
	Summary stats.Summary
	Err     error
}

// Comparison prints the aggregate metrics of several policies over the same workload.
func Comparison(w io.Writer, rows []ComparisonRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Turnaround", "Avg Wait", "Avg Response", "Switches", "Makespan", "Throughput"})
	table.SetAutoWrapText(false)
	for _, r := range rows {
		if r.Err != nil {
			table.Append([]string{r.Key, "error: " + r.Err.Error(), "", "", "", "", ""})
			continue
		}
		s := r.Summary
		table.Append([]string{
			r.Key,
			fmt.Sprintf("%.2f", s.AvgTurnaround),
			fmt.Sprintf("%.2f", s.AvgWaiting),
			fmt.Sprintf("%.2f", s.AvgResponse),
			strconv.Itoa(s.ContextSwitches),
			strconv.Itoa(s.Makespan),
			fmt.Sprintf("%.3f/t", s.Throughput),
		})
	}
	table.Render()
}

// Policies lists registry keys next to the policy names.
func Policies(w io.Writer, r *sched.Registry) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Policy"})
	table.SetAutoWrapText(false)
	for _, key := range r.Keys() {
		p, err := r.Lookup(key)
		if err != nil {
			return err
		}
		table.Append([]string{key, p.Kind().String()})
	}
	table.Render()
	return nil
}
