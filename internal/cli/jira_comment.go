package cli

import (
	"fmt"

	"atl/internal/app"
	"atl/internal/domain"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newJiraCommentCommand creates the jira-comment command.
func newJiraCommentCommand(c *app.Container) *cobra.Command {
	var commentFile string

	cmd := &cobra.Command{
		Use:     "jira-comment <key> [<text>]",
		Short:   "Add a comment to a Jira issue",
		GroupID: groupJira,
		Args:    cobra.RangeArgs(1, 2),
		Example: `  atl jira-comment PROJ-42 "Looks good to me"
  atl jira-comment PROJ-42 --comment-file review.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var inline string
			if len(args) > 1 {
				inline = args[1]
			}
			text, err := resolveText(cmd, inline, commentFile)
			if err != nil {
				return err
			}
			if text == "" {
				return fmt.Errorf("jira-comment requires comment text or --comment-file: %w", domain.ErrEmptyText)
			}

			out, err := c.JiraCommentUseCase().Execute(cmd.Context(), usecase.JiraCommentInput{
				Key:  args[0],
				Text: text,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&commentFile, "comment-file", "", "Read comment from file (use '-' for stdin)")

	return cmd
}
