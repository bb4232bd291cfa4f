package cli

import (
	"strings"

	"atl/internal/app"
	"atl/internal/usecase"

	"github.com/spf13/cobra"
)

// newJiraCreateCommand creates the jira-create command.
func newJiraCreateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Project         string
		Summary         string
		Type            string
		Description     string
		DescriptionFile string
		Priority        string
		Labels          string
	}

	cmd := &cobra.Command{
		Use:     "jira-create",
		Short:   "Create a new Jira issue",
		GroupID: groupJira,
		Args:    cobra.NoArgs,
		Example: `  atl jira-create --project PROJ --summary "Fix reader" --type Bug
  atl jira-create --project PROJ --summary "Spike" --description-file notes.txt
  cat notes.txt | atl jira-create --project PROJ --summary "Spike" --description-file -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			description, err := resolveText(cmd, opts.Description, opts.DescriptionFile)
			if err != nil {
				return err
			}

			var labels []string
			if opts.Labels != "" {
				labels = strings.Split(opts.Labels, ",")
			}

			out, err := c.JiraCreateUseCase().Execute(cmd.Context(), usecase.JiraCreateInput{
				ProjectKey:  opts.Project,
				Summary:     opts.Summary,
				IssueType:   opts.Type,
				Description: description,
				Priority:    opts.Priority,
				Labels:      labels,
			})
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Project key (e.g. PROJ)")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "Issue summary")
	cmd.Flags().StringVar(&opts.Type, "type", "Task", "Issue type")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Description text")
	cmd.Flags().StringVar(&opts.DescriptionFile, "description-file", "", "Read description from file (use '-' for stdin)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority (e.g. High)")
	cmd.Flags().StringVar(&opts.Labels, "labels", "", "Comma-separated labels")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("summary")

	return cmd
}
