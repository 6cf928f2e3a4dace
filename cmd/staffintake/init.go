package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the CSV file and SQLite table if they do not exist",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := newApp(os.Stderr, false)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if a.cfg.Storage.EnableCSV {
		fmt.Fprintf(out, "CSV file ready: %s\n", a.csv.Path())
	}
	if a.db != nil {
		fmt.Fprintf(out, "SQLite database ready: %s\n", a.db.Path())
	}
	return nil
}
