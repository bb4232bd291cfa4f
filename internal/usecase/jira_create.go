package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// JiraCreateInput contains the parameters for creating an issue.
type JiraCreateInput struct {
	ProjectKey  string   // Project key, e.g. PROJ (required)
	Summary     string   // Issue summary (required)
	IssueType   string   // Issue type name; defaults to Task
	Description string   // Plain-text description (optional)
	Priority    string   // Priority name (optional)
	Labels      []string // Labels (optional)
}

// JiraCreateOutput identifies the created issue.
type JiraCreateOutput struct {
	Key string `json:"key"`
	ID  string `json:"id"`
	URL string `json:"url"`
}

// JiraCreate is the use case for creating a Jira issue.
type JiraCreate struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewJiraCreate creates a new JiraCreate use case.
func NewJiraCreate(atlassian domain.Atlassian, baseURL string) *JiraCreate {
	return &JiraCreate{atlassian: atlassian, baseURL: baseURL}
}

// Execute creates the issue and returns its key, ID and browse URL.
func (uc *JiraCreate) Execute(ctx context.Context, in JiraCreateInput) (*JiraCreateOutput, error) {
	issue, err := uc.atlassian.CreateIssue(ctx, domain.CreateIssueInput{
		ProjectKey:  in.ProjectKey,
		Summary:     in.Summary,
		IssueType:   in.IssueType,
		Description: in.Description,
		Priority:    in.Priority,
		Labels:      in.Labels,
	})
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	return &JiraCreateOutput{
		Key: issue.Key,
		ID:  issue.ID,
		URL: uc.baseURL + "/browse/" + issue.Key,
	}, nil
}
