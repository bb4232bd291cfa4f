package cli

import (
	"fmt"

	"atl/internal/app"
	"atl/internal/domain"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newConfluenceUpdateCommand creates the confluence-update command.
func newConfluenceUpdateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title    string
		Body     string
		BodyFile string
	}

	cmd := &cobra.Command{
		Use:     "confluence-update <id>",
		Short:   "Update an existing Confluence page",
		GroupID: groupConfluence,
		Args:    cobra.ExactArgs(1),
		Example: `  atl confluence-update 12345678 --title "Updated" --body "New body"
  atl confluence-update 12345678 --title "Updated" --body-file page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := resolveText(cmd, opts.Body, opts.BodyFile)
			if err != nil {
				return err
			}
			if body == "" {
				return fmt.Errorf("confluence-update requires --body or --body-file: %w", domain.ErrEmptyBody)
			}

			out, err := c.ConfluenceUpdateUseCase().Execute(cmd.Context(), usecase.ConfluenceUpdateInput{
				PageID: args[0],
				Title:  opts.Title,
				Body:   body,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Page title")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Updated body (HTML or plain text)")
	cmd.Flags().StringVar(&opts.BodyFile, "body-file", "", "Read body from file (use '-' for stdin)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
