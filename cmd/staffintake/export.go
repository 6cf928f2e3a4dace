package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Rewrite the CSV file from the SQLite table",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(os.Stderr, false)
	if err != nil {
		return err
	}
	defer a.Close()

	count, err := a.services.Export.ExportToFile(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", count, a.csv.Path())
	return nil
}
