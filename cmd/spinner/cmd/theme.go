package cmd

import (
	"context"
	"fmt"
	"lucky_spinner/internal/service"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the colour theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if len(args) == 1 {
			if err := serv.SetDarkMode(ctx, args[0] == "dark"); err != nil {
				return err
			}
		}

		dark, err := serv.DarkMode(ctx)
		if err != nil {
			return err
		}
		if IsJSONOutput() {
			return printJSON(map[string]bool{"dark_mode": dark})
		}
		if dark {
			fmt.Println("dark")
		} else {
			fmt.Println("light")
		}
		return nil
	})
}
