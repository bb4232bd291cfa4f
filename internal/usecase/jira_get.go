package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// JiraGetInput contains the parameters for fetching an issue.
type JiraGetInput struct {
	Key             string // Issue key, e.g. PROJ-42 (required)
	IncludeComments bool   // Include flattened comments in the output
}

// CommentSummary is the flattened view of an issue comment. The body
// is plain text extracted from the ADF tree.
type CommentSummary struct {
	Author  string `json:"author"`
	Created string `json:"created"`
	Body    string `json:"body"`
}

// JiraGetOutput is the flattened view of a single issue.
type JiraGetOutput struct {
	Key             string           `json:"key"`
	Summary         string           `json:"summary"`
	Status          string           `json:"status"`
	Priority        string           `json:"priority"`
	Type            string           `json:"type"`
	Assignee        string           `json:"assignee"`
	Reporter        string           `json:"reporter"`
	Labels          []string         `json:"labels"`
	Created         string           `json:"created"`
	Updated         string           `json:"updated"`
	DescriptionHTML string           `json:"description_html"`
	URL             string           `json:"url"`
	Comments        []CommentSummary `json:"comments,omitempty"`
}

// JiraGet is the use case for displaying a single issue.
type JiraGet struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewJiraGet creates a new JiraGet use case.
func NewJiraGet(atlassian domain.Atlassian, baseURL string) *JiraGet {
	return &JiraGet{atlassian: atlassian, baseURL: baseURL}
}

// Execute fetches the issue with rendered fields and flattens it.
func (uc *JiraGet) Execute(ctx context.Context, in JiraGetInput) (*JiraGetOutput, error) {
	issue, err := uc.atlassian.GetIssue(ctx, in.Key, "renderedFields")
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}

	f := issue.Fields
	out := &JiraGetOutput{
		Key:             issue.Key,
		Summary:         f.Summary,
		Status:          namedValue(f.Status),
		Priority:        namedValue(f.Priority),
		Type:            namedValue(f.IssueType),
		Assignee:        displayName(f.Assignee),
		Reporter:        displayName(f.Reporter),
		Labels:          labelsOrEmpty(f.Labels),
		Created:         f.Created,
		Updated:         f.Updated,
		DescriptionHTML: issue.RenderedFields.Description,
		URL:             uc.baseURL + "/browse/" + issue.Key,
	}

	if in.IncludeComments && f.Comment != nil {
		out.Comments = make([]CommentSummary, 0, len(f.Comment.Comments))
		for _, c := range f.Comment.Comments {
			out.Comments = append(out.Comments, CommentSummary{
				Author:  displayName(c.Author),
				Created: c.Created,
				Body:    c.Body.PlainText(),
			})
		}
	}

	return out, nil
}
