package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr [url]",
	Short: "Generate the QR code image",
	Long:  "Write the QR code PNG for url, or for the detected local network URL when url is omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQR,
}

func runQR(cmd *cobra.Command, args []string) error {
	a, err := newApp(os.Stderr, false)
	if err != nil {
		return err
	}
	defer a.Close()

	url := a.services.QR.DefaultURL()
	if len(args) == 1 {
		url = args[0]
	}

	if !a.services.QR.Generate(url) {
		return fmt.Errorf("failed to generate QR code for %s", url)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "QR code for %s written to %s\n", url, a.services.QR.Path())
	return nil
}
