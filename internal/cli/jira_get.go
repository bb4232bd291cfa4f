package cli

import (
	"atl/internal/app"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newJiraGetCommand creates the jira-get command.
func newJiraGetCommand(c *app.Container) *cobra.Command {
	var comments bool

	cmd := &cobra.Command{
		Use:     "jira-get <key>",
		Short:   "Get a Jira issue by key",
		GroupID: groupJira,
		Args:    cobra.ExactArgs(1),
		Example: `  atl jira-get PROJ-42
  atl jira-get PROJ-42 --comments`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.JiraGetUseCase().Execute(cmd.Context(), usecase.JiraGetInput{
				Key:             args[0],
				IncludeComments: comments,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, "Include comments")

	return cmd
}
