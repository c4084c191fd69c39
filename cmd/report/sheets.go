package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets FILE",
	Short: "List the worksheets of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheets,
}

func runSheets(cmd *cobra.Command, args []string) error {
	p, err := openPipeline(GetContext(), flags, args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, name := range p.load.Sheets {
		marker := " "
		if name == p.load.Sheet {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
	return nil
}
