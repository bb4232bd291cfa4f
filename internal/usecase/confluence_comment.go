package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// ConfluenceCommentInput contains the parameters for commenting on a
// page.
type ConfluenceCommentInput struct {
	PageID string // Numeric page ID (required)
	Text   string // Storage markup or plain text (required)
}

// ConfluenceCommentOutput identifies the created comment.
type ConfluenceCommentOutput struct {
	ID      string `json:"id"`
	PageID  string `json:"page_id"`
	Created string `json:"created"`
}

// ConfluenceComment is the use case for adding a comment to a page.
type ConfluenceComment struct {
	atlassian domain.Atlassian
}

// NewConfluenceComment creates a new ConfluenceComment use case.
func NewConfluenceComment(atlassian domain.Atlassian) *ConfluenceComment {
	return &ConfluenceComment{atlassian: atlassian}
}

// Execute posts the comment. Plain text gains a paragraph tag.
func (uc *ConfluenceComment) Execute(ctx context.Context, in ConfluenceCommentInput) (*ConfluenceCommentOutput, error) {
	if in.Text == "" {
		return nil, domain.ErrEmptyText
	}

	comment, err := uc.atlassian.AddPageComment(ctx, in.PageID, domain.EnsureStorageMarkup(in.Text))
	if err != nil {
		return nil, fmt.Errorf("add page comment: %w", err)
	}

	out := &ConfluenceCommentOutput{
		ID:     comment.ID,
		PageID: in.PageID,
	}
	if comment.Version != nil {
		out.Created = comment.Version.When
	}

	return out, nil
}
