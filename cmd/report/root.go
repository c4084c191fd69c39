package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// rootCtx is cancelled on SIGINT/SIGTERM.
	rootCtx    context.Context
	rootCancel context.CancelFunc

	flags loadFlags
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Offline project schedule reports",
	Long: `report runs the dashboard pipeline over a local CSV or XLSX file and prints
summaries, the progress curve and zone progress, or writes report exports.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		rootCtx, rootCancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rootCancel != nil {
			rootCancel()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetContext returns the signal-cancellable root context.
func GetContext() context.Context {
	if rootCtx == nil {
		return context.Background()
	}
	return rootCtx
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.sheet, "sheet", "", "worksheet name (XLSX only, default first sheet)")
	pf.IntVar(&flags.skipRows, "skip-rows", 0, "rows to skip above the header")
	pf.StringVar(&flags.asOf, "as-of", "", "reference date: YYYY-MM-DD, today, yesterday, in 3 days...")
	pf.StringVar(&flags.project, "project", "", "only tasks of this project")
	pf.StringVar(&flags.column, "column", "", "filter column (requires --value)")
	pf.StringVar(&flags.value, "value", "", "filter value for --column")
	pf.StringVar(&flags.zonesFile, "zones-file", "", "YAML zone keyword table")
	pf.StringVar(&flags.timezone, "timezone", "UTC", "timezone used for dates and today")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log pipeline diagnostics")

	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(scurveCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(exportCmd)
}
