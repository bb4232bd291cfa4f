package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// JiraSearchInput contains the parameters for a JQL search.
type JiraSearchInput struct {
	JQL        string // JQL query string (required)
	MaxResults int    // Page size; the gateway caps it at 100
}

// IssueSummary is the flattened view of a search hit.
type IssueSummary struct {
	Key      string   `json:"key"`
	Summary  string   `json:"summary"`
	Status   string   `json:"status"`
	Priority string   `json:"priority"`
	Type     string   `json:"type"`
	Assignee string   `json:"assignee"`
	Labels   []string `json:"labels"`
	Updated  string   `json:"updated"`
	URL      string   `json:"url"`
}

// JiraSearchOutput contains the flattened search result.
type JiraSearchOutput struct {
	Total  int            `json:"total"`
	Issues []IssueSummary `json:"issues"`
}

// JiraSearch is the use case for searching Jira issues.
type JiraSearch struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewJiraSearch creates a new JiraSearch use case.
func NewJiraSearch(atlassian domain.Atlassian, baseURL string) *JiraSearch {
	return &JiraSearch{atlassian: atlassian, baseURL: baseURL}
}

// Execute runs the search and flattens each issue into a summary.
func (uc *JiraSearch) Execute(ctx context.Context, in JiraSearchInput) (*JiraSearchOutput, error) {
	result, err := uc.atlassian.SearchIssues(ctx, in.JQL, in.MaxResults, 0)
	if err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}

	issues := make([]IssueSummary, 0, len(result.Issues))
	for _, issue := range result.Issues {
		f := issue.Fields
		issues = append(issues, IssueSummary{
			Key:      issue.Key,
			Summary:  f.Summary,
			Status:   namedValue(f.Status),
			Priority: namedValue(f.Priority),
			Type:     namedValue(f.IssueType),
			Assignee: displayName(f.Assignee),
			Labels:   labelsOrEmpty(f.Labels),
			Updated:  f.Updated,
			URL:      uc.baseURL + "/browse/" + issue.Key,
		})
	}

	return &JiraSearchOutput{Total: result.Total, Issues: issues}, nil
}

// namedValue unwraps the {"name": ...} shape, tolerating nil.
func namedValue(v *domain.NamedValue) string {
	if v == nil {
		return ""
	}
	return v.Name
}

// displayName unwraps a user reference, tolerating nil (unassigned).
func displayName(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.DisplayName
}

// labelsOrEmpty normalizes a nil label list to an empty one so the
// rendered output always shows an array.
func labelsOrEmpty(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}
