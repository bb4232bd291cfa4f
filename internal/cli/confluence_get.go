package cli

import (
	"atl/internal/app"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newConfluenceGetCommand creates the confluence-get command.
func newConfluenceGetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "confluence-get <id>",
		Short:   "Get a Confluence page by ID",
		GroupID: groupConfluence,
		Args:    cobra.ExactArgs(1),
		Example: `  atl confluence-get 12345678`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ConfluenceGetUseCase().Execute(cmd.Context(), usecase.ConfluenceGetInput{
				PageID: args[0],
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}
}
