package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"project-monitor/internal/zone"
)

var zonesCmd = &cobra.Command{
	Use:   "zones FILE",
	Short: "Print mean progress per site zone",
	Args:  cobra.ExactArgs(1),
	RunE:  runZones,
}

func runZones(cmd *cobra.Command, args []string) error {
	ctx := GetContext()
	p, err := openPipeline(ctx, flags, args[0])
	if err != nil {
		return err
	}

	out, err := p.uc.Zones(ctx, cliScope, flags.query())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Zones ("+out.Result.Mode+")")
	printView(w, out.View)

	rows := make([][]string, 0, len(out.Result.Zones))
	for _, z := range out.Result.Zones {
		progress := out.Result.Progress[z]
		rows = append(rows, []string{
			short(z),
			strconv.Itoa(out.Result.Counts[z]),
			pct(progress),
			zone.MapFill(progress).String(),
		})
	}
	renderTable(w, []string{"Zone", "Tasks", "Progress", "Fill"}, rows)

	if out.Result.Skipped > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d tasks without a zone", out.Result.Skipped)))
	}
	return nil
}
