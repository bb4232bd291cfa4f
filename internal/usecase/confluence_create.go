package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// ConfluenceCreateInput contains the parameters for creating a page.
type ConfluenceCreateInput struct {
	SpaceKey string // Space key (required)
	Title    string // Page title (required)
	Body     string // Storage markup or plain text (required)
	ParentID string // Parent page ID (optional)
}

// ConfluenceCreateOutput identifies the created page.
type ConfluenceCreateOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space string `json:"space"`
	URL   string `json:"url"`
}

// ConfluenceCreate is the use case for creating a Confluence page.
type ConfluenceCreate struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewConfluenceCreate creates a new ConfluenceCreate use case.
func NewConfluenceCreate(atlassian domain.Atlassian, baseURL string) *ConfluenceCreate {
	return &ConfluenceCreate{atlassian: atlassian, baseURL: baseURL}
}

// Execute creates the page. Plain-text bodies gain a paragraph tag so
// the server accepts them as storage markup.
func (uc *ConfluenceCreate) Execute(ctx context.Context, in ConfluenceCreateInput) (*ConfluenceCreateOutput, error) {
	if in.Body == "" {
		return nil, domain.ErrEmptyBody
	}

	page, err := uc.atlassian.CreatePage(ctx, domain.CreatePageInput{
		SpaceKey: in.SpaceKey,
		Title:    in.Title,
		Body:     domain.EnsureStorageMarkup(in.Body),
		ParentID: in.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &ConfluenceCreateOutput{
		ID:    page.ID,
		Title: page.Title,
		Space: spaceKey(page.Space),
		URL:   uc.baseURL + "/wiki" + page.Links.WebUI,
	}, nil
}
