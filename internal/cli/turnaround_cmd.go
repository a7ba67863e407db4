package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tarmac/internal/cli/formatter"
	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/spf13/cobra"
)

// parseTimeFlag accepts RFC3339 or the shorter "2006-01-02 15:04" form, both
// interpreted as UTC when no zone is given.
func parseTimeFlag(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (use RFC3339 or \"YYYY-MM-DD HH:MM\")", value)
}

func newTurnaroundCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "turnaround",
		Aliases: []string{"tr"},
		Short:   "Manage turnarounds",
	}

	cmd.AddCommand(
		newTurnaroundAddCmd(app),
		newTurnaroundListCmd(app),
		newTurnaroundInspectCmd(app),
		newTurnaroundCancelCmd(app),
		newTurnaroundRemoveCmd(app),
	)

	return cmd
}

func newTurnaroundAddCmd(app *App) *cobra.Command {
	var flight, stand, arrival, departure string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new turnaround",
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := parseTimeFlag(arrival)
			if err != nil {
				return fmt.Errorf("--arrival: %w", err)
			}
			dep, err := parseTimeFlag(departure)
			if err != nil {
				return fmt.Errorf("--departure: %w", err)
			}

			t := &domain.Turnaround{
				FlightNumber:       flight,
				Stand:              stand,
				ScheduledArrival:   arr,
				ScheduledDeparture: dep,
			}
			if err := app.Turnarounds.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created turnaround %s (%s)\n", formatter.Bold(t.DisplayID()), t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&flight, "flight", "", "Flight number (e.g. LH1829)")
	cmd.Flags().StringVar(&stand, "stand", "", "Aircraft stand")
	cmd.Flags().StringVar(&arrival, "arrival", "", "Scheduled arrival time")
	cmd.Flags().StringVar(&departure, "departure", "", "Scheduled departure time")
	cmd.MarkFlagRequired("flight")
	cmd.MarkFlagRequired("arrival")
	cmd.MarkFlagRequired("departure")

	return cmd
}

func newTurnaroundListCmd(app *App) *cobra.Command {
	var includeCancelled bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List turnarounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Turnarounds.List(context.Background(), includeCancelled)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTurnaroundList(all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeCancelled, "all", false, "Include cancelled turnarounds")

	return cmd
}

func newTurnaroundInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <turnaround>",
		Short: "Show one turnaround's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Turnarounds.Resolve(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTurnaround(t))
			return nil
		},
	}
	return cmd
}

func newTurnaroundCancelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <turnaround>",
		Short: "Cancel a turnaround (terminal; completions stop being accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Turnarounds.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Turnarounds.Cancel(ctx, t.ID); err != nil {
				return err
			}
			fmt.Printf("Cancelled turnaround %s\n", formatter.Bold(t.DisplayID()))
			return nil
		},
	}
	return cmd
}

func newTurnaroundRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <turnaround>",
		Short: "Delete a turnaround and its completions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Turnarounds.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Turnarounds.Delete(ctx, t.ID, force); err != nil {
				return err
			}
			fmt.Printf("Removed turnaround %s\n", t.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if not cancelled")

	return cmd
}
