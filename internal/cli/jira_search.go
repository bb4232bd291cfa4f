package cli

import (
	"atl/internal/app"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newJiraSearchCommand creates the jira-search command.
func newJiraSearchCommand(c *app.Container) *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:     "jira-search <jql>",
		Short:   "Search Jira issues via JQL",
		GroupID: groupJira,
		Args:    cobra.ExactArgs(1),
		Example: `  atl jira-search "project = PROJ AND status = Open"
  atl jira-search "assignee = currentUser()" --max 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.JiraSearchUseCase().Execute(cmd.Context(), usecase.JiraSearchInput{
				JQL:        args[0],
				MaxResults: max,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().IntVar(&max, "max", 25, "Maximum number of results")

	return cmd
}
