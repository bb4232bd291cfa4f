package cli

import (
	"fmt"

	"atl/internal/app"

	"github.com/spf13/cobra"
)

// newTestConnectionCommand creates the test-connection command.
func newTestConnectionCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "test-connection",
		Short:   "Test Jira & Confluence connectivity",
		GroupID: groupDiagnostics,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TestConnectionUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Jira:       %s\n", connStatus(out.Jira))
			fmt.Fprintf(w, "Confluence: %s\n", connStatus(out.Confluence))
			return nil
		},
	}
}

func connStatus(ok bool) string {
	if ok {
		return "connected"
	}
	return "FAILED"
}
