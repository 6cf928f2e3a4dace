package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/staff-data-intake/internal/cli"
)

var (
	askMealType bool
	noExport    bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect staff details interactively in the terminal",
	Long:  "Prompt for staff details until you choose to stop, then rebuild the CSV file from SQLite.",
	Args:  cobra.NoArgs,
	RunE:  runCollect,
}

func init() {
	collectCmd.Flags().BoolVar(&askMealType, "meal", false, "Also prompt for an optional meal type")
	collectCmd.Flags().BoolVar(&noExport, "no-export", false, "Skip the CSV export when the session ends")
}

func runCollect(cmd *cobra.Command, args []string) error {
	a, err := newApp(os.Stderr, false)
	if err != nil {
		return err
	}
	defer a.Close()

	collector := cli.NewCollector(
		a.services.Intake,
		a.services.Export,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		cli.Options{
			AskMealType:  askMealType,
			ExportOnExit: !noExport && a.cfg.Storage.EnableSQLite,
		},
		a.log,
	)
	return collector.Run(cmd.Context())
}
