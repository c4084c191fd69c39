package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"project-monitor/internal/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Print status counts, progress and per-project summaries",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := GetContext()
	p, err := openPipeline(ctx, flags, args[0])
	if err != nil {
		return err
	}

	out, err := p.uc.Overview(ctx, cliScope, flags.query())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Summary")
	printView(w, out.View)

	renderTable(w, []string{"Metric", "Value"}, [][]string{
		{"Tasks", strconv.Itoa(out.Filtered)},
		{"Weighted progress", pct(out.WeightedProgress)},
		{"Planned progress", pct(out.PlannedProgress)},
		{"SPI", strconv.FormatFloat(out.SPI, 'f', 2, 64)},
		{fmt.Sprintf("Due within %d days", out.UpcomingWindowDays), strconv.Itoa(out.Upcoming)},
		{"Late", strconv.Itoa(out.Late)},
	})

	statusRows := make([][]string, 0, len(model.KnownStatuses())+1)
	for _, s := range model.KnownStatuses() {
		statusRows = append(statusRows, []string{string(s), strconv.Itoa(out.StatusCounts[s])})
	}
	if n := out.StatusCounts[model.StatusUnknown]; n > 0 {
		statusRows = append(statusRows, []string{string(model.StatusUnknown), strconv.Itoa(n)})
	}
	renderTable(w, []string{"Status", "Tasks"}, statusRows)

	projectRows := make([][]string, 0, len(out.Projects))
	for _, ps := range out.Projects {
		projectRows = append(projectRows, []string{
			ps.Project,
			strconv.Itoa(ps.Tasks),
			pct(ps.WeightedProgress),
			pct(ps.PlannedProgress),
		})
	}
	renderTable(w, []string{"Project", "Tasks", "Progress", "Planned"}, projectRows)
	return nil
}
