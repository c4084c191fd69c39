package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scurveCmd = &cobra.Command{
	Use:   "scurve FILE",
	Short: "Print cumulative planned and actual progress per period",
	Args:  cobra.ExactArgs(1),
	RunE:  runSCurve,
}

func runSCurve(cmd *cobra.Command, args []string) error {
	ctx := GetContext()
	p, err := openPipeline(ctx, flags, args[0])
	if err != nil {
		return err
	}

	out, err := p.uc.SCurve(ctx, cliScope, flags.query())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Progress curve")
	printView(w, out.View)

	c := out.Curve
	if c.Empty() {
		fmt.Fprintln(w, "no dated, weighted tasks")
		return nil
	}

	rows := make([][]string, 0, len(c.Periods))
	for i, period := range c.Periods {
		rows = append(rows, []string{period.Format("2006-01-02"), pct(c.Planned[i]), pct(c.Actual[i])})
	}
	renderTable(w, []string{"Period", "Planned", "Actual"}, rows)

	if c.SPIPeriod.IsZero() {
		fmt.Fprintln(w, "SPI: n/a")
		return nil
	}
	fmt.Fprintf(w, "SPI at %s: %.2f\n", c.SPIPeriod.Format("2006-01-02"), c.SPI)
	return nil
}
