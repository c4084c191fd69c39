package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/report"
	"project-monitor/pkg/sheet"
)

var (
	exportKind   string
	exportFormat string
	exportOutput string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write a report as CSV or XLSX",
	Long: `Write the filtered table or a derived report.

Kinds: table, status, late, priority. Without -o the file is written to the
current directory under its default name; "-o -" writes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportKind, "kind", string(report.KindTable), "report kind")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "csv or xlsx (default from -o extension, else csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "row limit for the priority report (0 for all)")
}

func runExport(cmd *cobra.Command, args []string) error {
	kind, err := report.ParseKind(exportKind)
	if err != nil {
		return fmt.Errorf("%w: %q (want one of %v)", err, exportKind, report.Kinds())
	}

	formatName := exportFormat
	if formatName == "" && exportOutput != "" && exportOutput != "-" {
		formatName = strings.TrimPrefix(filepath.Ext(exportOutput), ".")
	}
	format, err := sheet.ParseFormat(formatName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, formatName)
	}

	ctx := GetContext()
	p, err := openPipeline(ctx, flags, args[0])
	if err != nil {
		return err
	}

	out, err := p.uc.Export(ctx, cliScope, dashboard.ExportInput{
		QueryInput: flags.query(),
		Kind:       kind,
		Format:     format,
		Limit:      exportLimit,
	})
	if err != nil {
		return err
	}

	if exportOutput == "-" {
		_, err = cmd.OutOrStdout().Write(out.File.Data)
		return err
	}

	path := exportOutput
	if path == "" {
		path = out.File.Name
	}
	if err := os.WriteFile(path, out.File.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", out.Rows, path)
	return nil
}
