package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// JiraCommentInput contains the parameters for commenting on an issue.
type JiraCommentInput struct {
	Key  string // Issue key (required)
	Text string // Plain-text comment body (required)
}

// JiraCommentOutput identifies the created comment.
type JiraCommentOutput struct {
	CommentID string `json:"comment_id"`
	Created   string `json:"created"`
	IssueKey  string `json:"issue_key"`
}

// JiraComment is the use case for adding a comment to an issue.
type JiraComment struct {
	atlassian domain.Atlassian
}

// NewJiraComment creates a new JiraComment use case.
func NewJiraComment(atlassian domain.Atlassian) *JiraComment {
	return &JiraComment{atlassian: atlassian}
}

// Execute posts the comment.
func (uc *JiraComment) Execute(ctx context.Context, in JiraCommentInput) (*JiraCommentOutput, error) {
	if in.Text == "" {
		return nil, domain.ErrEmptyText
	}

	comment, err := uc.atlassian.AddIssueComment(ctx, in.Key, in.Text)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return &JiraCommentOutput{
		CommentID: comment.ID,
		Created:   comment.Created,
		IssueKey:  in.Key,
	}, nil
}
