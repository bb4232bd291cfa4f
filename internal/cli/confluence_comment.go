package cli

import (
	"fmt"

	"atl/internal/app"
	"atl/internal/domain"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newConfluenceCommentCommand creates the confluence-comment command.
func newConfluenceCommentCommand(c *app.Container) *cobra.Command {
	var commentFile string

	cmd := &cobra.Command{
		Use:     "confluence-comment <id> [<text>]",
		Short:   "Add a comment to a Confluence page",
		GroupID: groupConfluence,
		Args:    cobra.RangeArgs(1, 2),
		Example: `  atl confluence-comment 12345678 "Great doc!"
  atl confluence-comment 12345678 --comment-file feedback.html`,
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
				return fmt.Errorf("confluence-comment requires comment text or --comment-file: %w", domain.ErrEmptyText)
			}

			out, err := c.ConfluenceCommentUseCase().Execute(cmd.Context(), usecase.ConfluenceCommentInput{
				PageID: args[0],
				Text:   text,
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
