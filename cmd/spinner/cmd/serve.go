package cmd

import (
	"fmt"
	"lucky_spinner/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Serve the wheel over a JSON HTTP API (address from HTTP_HOST / HTTP_PORT). Spins are animated on the server clock.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	a := app.NewApp(providerOptions(false))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
			_ = a.ServiceProvider.Close()
		}
	}()
	return a.Run(cmd.Context())
}
