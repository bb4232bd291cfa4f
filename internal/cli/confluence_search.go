package cli

import (
	"atl/internal/app"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newConfluenceSearchCommand creates the confluence-search command.
func newConfluenceSearchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Space string
		Max   int
	}

	cmd := &cobra.Command{
		Use:     "confluence-search <query>",
		Short:   "Search Confluence pages",
		GroupID: groupConfluence,
		Args:    cobra.ExactArgs(1),
		Example: `  atl confluence-search "architecture notes"
  atl confluence-search "title ~ onboarding" --space PROJ`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ConfluenceSearchUseCase().Execute(cmd.Context(), usecase.ConfluenceSearchInput{
				Query:    args[0],
				SpaceKey: opts.Space,
				Limit:    opts.Max,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&opts.Space, "space", "", "Space key to filter by")
	cmd.Flags().IntVar(&opts.Max, "max", 25, "Maximum number of results")

	return cmd
}
