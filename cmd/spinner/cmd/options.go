package cmd

import (
	"context"
	"fmt"
	"lucky_spinner/internal/converter"
	"lucky_spinner/internal/model"
	"lucky_spinner/internal/service"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var clearYes bool

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add options to the wheel",
	Long:  `Add one option per argument. Blank text is skipped, as is anything past the wheel's capacity.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List options",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Change the text of an option",
	Args:  cobra.ExactArgs(2),
	RunE:  runEdit,
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an option",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort options alphabetically",
	Args:  cobra.NoArgs,
	RunE:  runSort,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle options into a random order",
	Args:  cobra.NoArgs,
	RunE:  runShuffle,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all options",
	Long:  `Remove every option from the wheel. Requires --yes.`,
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, editCmd, removeCmd, sortCmd, shuffleCmd, clearCmd)
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm removing all options")
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		added := make([]model.Option, 0, len(args))
		for _, text := range args {
			opt, ok, err := serv.AddOption(ctx, text)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(os.Stderr, "Skipped %q\n", text)
				continue
			}
			added = append(added, opt)
		}
		return printOptions(added)
	})
}

func runList(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		options, err := serv.Options(ctx)
		if err != nil {
			return err
		}
		return printOptions(options)
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		opt, err := serv.UpdateOption(ctx, model.OptionID(args[0]), args[1])
		if err != nil {
			return err
		}
		return printOptions([]model.Option{opt})
	})
}

func runRemove(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if err := serv.RemoveOption(ctx, model.OptionID(args[0])); err != nil {
			return err
		}
		fmt.Println("Option removed")
		return nil
	})
}

func runSort(cmd *cobra.Command, args []string) error {
	return reorder(cmd, service.SpinnerService.SortOptions)
}

func runShuffle(cmd *cobra.Command, args []string) error {
	return reorder(cmd, service.SpinnerService.ShuffleOptions)
}

func reorder(cmd *cobra.Command, fn func(service.SpinnerService, context.Context) error) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if err := fn(serv, ctx); err != nil {
			return err
		}
		options, err := serv.Options(ctx)
		if err != nil {
			return err
		}
		return printOptions(options)
	})
}

func runClear(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if err := serv.ClearOptions(ctx, clearYes); err != nil {
			return err
		}
		fmt.Println("All options removed")
		return nil
	})
}

func printOptions(options []model.Option) error {
	result := converter.ToOptionsResponse(options)
	if IsJSONOutput() {
		return printJSON(result)
	}

	if len(options) == 0 {
		fmt.Println("No options")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "ID", "Text", "Active")
	for i, opt := range result.Options {
		active := "yes"
		if !opt.Active {
			active = "no"
		}
		table.Append([]string{strconv.Itoa(i + 1), opt.ID, opt.Text, active})
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("\nActive: %d of %d\n", result.ActiveCount, result.TotalCount)
	return nil
}
