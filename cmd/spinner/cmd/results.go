package cmd

import (
	"context"
	"fmt"
	"lucky_spinner/internal/converter"
	"lucky_spinner/internal/service"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	resultsClear bool
	resultsYes   bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the history of picks",
	Long:  `Show every pick, oldest first. With --clear --yes the history is erased.`,
	Args:  cobra.NoArgs,
	RunE:  runResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.Flags().BoolVar(&resultsClear, "clear", false, "erase the history")
	resultsCmd.Flags().BoolVar(&resultsYes, "yes", false, "confirm erasing the history")
}

func runResults(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if resultsClear {
			if err := serv.ClearResults(ctx, resultsYes); err != nil {
				return err
			}
			fmt.Println("History cleared")
			return nil
		}

		results, err := serv.Results(ctx)
		if err != nil {
			return err
		}
		response := converter.ToResultsResponse(results)
		if IsJSONOutput() {
			return printJSON(response)
		}

		if len(results) == 0 {
			fmt.Println("No results yet")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("#", "Text", "Picked at")
		for i, r := range results {
			table.Append([]string{
				strconv.Itoa(i + 1),
				r.Text,
				r.Timestamp.Time().Local().Format(time.DateTime),
			})
		}
		return table.Render()
	})
}
