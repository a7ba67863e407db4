package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/tarmac/internal/cli/formatter"
	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Browse the task catalog and record completions",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskCompleteCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the task catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatCatalog(app.Catalog.All()))
			return nil
		},
	}
	return cmd
}

// resolveTaskID accepts either a numeric task id or a task key.
func resolveTaskID(app *App, ref string) (int, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		if _, ok := app.Catalog.ByID(id); !ok {
			return 0, fmt.Errorf("task id %d is not in the catalog (0..%d)", id, app.Catalog.Size()-1)
		}
		return id, nil
	}
	def, ok := app.Catalog.ByKey(ref)
	if !ok {
		return 0, fmt.Errorf("unknown task %q", ref)
	}
	return def.ID, nil
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "complete <turnaround> <task>",
		Short: "Record a task completion",
		Long: `Record that a task was completed for a turnaround. The task may be given
as a numeric id or a key like "chocks-on". Completions are append-only; when a
task is recorded more than once the earliest completion stays authoritative.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			t, err := app.Turnarounds.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			taskID, err := resolveTaskID(app, args[1])
			if err != nil {
				return err
			}

			completedAt := time.Now().UTC()
			if at != "" {
				completedAt, err = parseTimeFlag(at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}

			c := &domain.TaskCompletion{
				TurnaroundID: t.ID,
				TaskID:       taskID,
				CompletedAt:  completedAt,
			}
			if err := app.Completions.Record(ctx, c); err != nil {
				return err
			}

			def, _ := app.Catalog.ByID(taskID)
			fmt.Printf("Recorded %s for %s at %s\n",
				formatter.Bold(def.Title), t.DisplayID(), completedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Completion time (defaults to now)")

	return cmd
}
