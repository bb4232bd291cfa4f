// Package cli provides the command-line interface for atl.
package cli

import (
	"atl/internal/app"

	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupDiagnostics = "diagnostics"
	groupJira        = "jira"
	groupConfluence  = "confluence"
)

// NewRootCommand creates the root command for atl. It receives the
// container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "atl",
		Short: "CLI for Jira & Confluence (Atlassian Cloud)",
		Long: `atl issues authenticated REST calls against Jira and Confluence
and reshapes the JSON responses into compact summaries.

Credentials are read from the environment (ATLASSIAN_EMAIL,
ATLASSIAN_API_TOKEN, ATLASSIAN_BASE_URL, ATLASSIAN_TIMEOUT) or from
~/.config/atl/config.toml; environment variables take precedence.

Examples:
  atl test-connection
  atl jira-search "project = PROJ ORDER BY updated DESC"
  atl jira-get PROJ-42 --comments
  atl jira-create --project PROJ --summary "Fix reader" --type Bug
  atl jira-comment PROJ-42 "Comment text"
  atl confluence-search "architecture notes"
  atl confluence-get 12345678
  atl confluence-create --space PROJ --title "Page" --body "<p>Hi</p>"
  atl confluence-update 12345678 --title "Updated" --body "New body"
  atl confluence-comment 12345678 "Great doc!"`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("output", "o", formatJSON, "Output format (json or yaml)")

	root.AddGroup(
		&cobra.Group{ID: groupDiagnostics, Title: "Diagnostics:"},
		&cobra.Group{ID: groupJira, Title: "Jira:"},
		&cobra.Group{ID: groupConfluence, Title: "Confluence:"},
	)

	root.AddCommand(
		newTestConnectionCommand(c),
		newJiraSearchCommand(c),
		newJiraGetCommand(c),
		newJiraCreateCommand(c),
		newJiraCommentCommand(c),
		newConfluenceSearchCommand(c),
		newConfluenceGetCommand(c),
		newConfluenceCreateCommand(c),
		newConfluenceUpdateCommand(c),
		newConfluenceCommentCommand(c),
	)

	return root
}
