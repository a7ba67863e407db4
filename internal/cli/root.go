package cli

import (
	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Turnarounds service.TurnaroundService
	Completions service.CompletionService
	Board       service.BoardService
	Catalog     *catalog.Catalog
}

// NewRootCmd creates the top-level "tarmac" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tarmac",
		Short: "Aircraft turnaround tracker and schedule projector",
	}

	root.AddCommand(
		newTurnaroundCmd(app),
		newTaskCmd(app),
		newBoardCmd(app),
		newStatusCmd(app),
	)

	return root
}
