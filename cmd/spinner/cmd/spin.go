package cmd

import (
	"context"
	"fmt"
	"lucky_spinner/internal/animation"
	"lucky_spinner/internal/converter"
	"lucky_spinner/internal/service"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	spinInstant bool
	resetYes    bool
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin the wheel and print the winner",
	Long: `Spin the wheel. The winner is picked uniformly among active options and
is left out of later spins until the wheel is reset.`,
	Args: cobra.NoArgs,
	RunE: runSpin,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Make every option active again",
	Long:  `Reactivate all options and return the wheel to its start position. Requires --yes.`,
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(spinCmd, resetCmd)
	spinCmd.Flags().BoolVar(&spinInstant, "instant", false, "skip the animation wait")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
}

func runSpin(cmd *cobra.Command, args []string) error {
	opts := providerOptions(true)
	var clock *animation.Manual
	if spinInstant {
		clock = animation.NewManual(time.Now())
		opts.Scheduler = clock
	}

	return withService(cmd, opts, func(ctx context.Context, serv service.SpinnerService) error {
		ticket, err := serv.Spin(ctx)
		if err != nil {
			return err
		}

		if clock != nil {
			clock.RunFor(ticket.Duration+animation.DefaultFrameInterval, animation.DefaultFrameInterval)
		} else {
			fmt.Fprintln(os.Stderr, "Spinning...")
		}

		select {
		case <-ticket.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
		if ticket.Abandoned() {
			return fmt.Errorf("spin was abandoned")
		}

		if IsJSONOutput() {
			return printJSON(converter.ToSpinResponse(*ticket))
		}
		fmt.Printf("Winner: %s\n", ticket.Winner.Text)

		wheel, err := serv.Wheel(ctx)
		if err != nil {
			return err
		}
		if wheel.AllDone {
			fmt.Println("All options have been picked. Run 'spinner reset --yes' to start over.")
		} else {
			fmt.Printf("Remaining: %d of %d\n", wheel.ActiveCount, wheel.TotalCount)
		}
		return nil
	})
}

func runReset(cmd *cobra.Command, args []string) error {
	return withService(cmd, providerOptions(true), func(ctx context.Context, serv service.SpinnerService) error {
		if err := serv.ResetWheel(ctx, resetYes); err != nil {
			return err
		}
		fmt.Println("Wheel reset")
		return nil
	})
}
