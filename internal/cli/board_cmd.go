package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tarmac/internal/app"
	"github.com/alexanderramin/tarmac/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBoardCmd(cliApp *App) *cobra.Command {
	var now string
	var slaMin int

	cmd := &cobra.Command{
		Use:   "board <turnaround>",
		Short: "Show the projected schedule for one turnaround",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewBoardRequest(args[0])
			if now != "" {
				t, err := parseTimeFlag(now)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				req.Now = &t
			}
			req.SLAMin = slaMin

			resp, err := cliApp.Board.GetBoard(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatBoard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "Override the projection clock (for replaying past states)")
	cmd.Flags().IntVar(&slaMin, "sla", 0, "Delay threshold in minutes (default 40)")

	return cmd
}

func newStatusCmd(cliApp *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show every turnaround's progress and delay status",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := cliApp.Board.GetStatus(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}
	return cmd
}
