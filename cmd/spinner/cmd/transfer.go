package cmd

import (
	"context"
	"fmt"
	"lucky_spinner/internal/service"
	spinnerServ "lucky_spinner/internal/service/spinner"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Save options and history to a JSON file",
	Long:  `Write options and history to a JSON file (default lucky-spinner-data.json). Use "-" for stdout.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load options and history from a JSON file",
	Long:  `Replace options and/or history with the ones in an exported file. Keys missing from the file are left untouched.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := spinnerServ.ExportFileName
	if len(args) == 1 {
		path = args[0]
	}

	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if path == "-" {
			return serv.Export(ctx, os.Stdout)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := serv.Export(ctx, f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		snapshot, err := serv.Import(ctx, f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported: %d options, %d results\n", len(snapshot.Options), len(snapshot.Results))
		return nil
	})
}
