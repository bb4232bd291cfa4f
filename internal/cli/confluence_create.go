package cli

import (
	"fmt"

	"atl/internal/app"
	"atl/internal/domain"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newConfluenceCreateCommand creates the confluence-create command.
func newConfluenceCreateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Space    string
		Title    string
		Body     string
		BodyFile string
		Parent   string
	}

	cmd := &cobra.Command{
		Use:     "confluence-create",
		Short:   "Create a new Confluence page",
		GroupID: groupConfluence,
		Args:    cobra.NoArgs,
		Example: `  atl confluence-create --space PROJ --title "Runbook" --body "<p>Hi</p>"
  atl confluence-create --space PROJ --title "Runbook" --body-file page.html --parent 12345678`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := resolveText(cmd, opts.Body, opts.BodyFile)
			if err != nil {
				return err
			}
			if body == "" {
				return fmt.Errorf("confluence-create requires --body or --body-file: %w", domain.ErrEmptyBody)
			}

			out, err := c.ConfluenceCreateUseCase().Execute(cmd.Context(), usecase.ConfluenceCreateInput{
				SpaceKey: opts.Space,
				Title:    opts.Title,
				Body:     body,
				ParentID: opts.Parent,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&opts.Space, "space", "", "Space key (e.g. PROJ)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Page title")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Page body (HTML or plain text)")
	cmd.Flags().StringVar(&opts.BodyFile, "body-file", "", "Read body from file (use '-' for stdin)")
	cmd.Flags().StringVar(&opts.Parent, "parent", "", "Parent page ID")
	_ = cmd.MarkFlagRequired("space")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
