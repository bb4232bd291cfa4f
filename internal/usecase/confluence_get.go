package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// ConfluenceGetInput contains the parameters for fetching a page.
type ConfluenceGetInput struct {
	PageID string // Numeric page ID (required)
}

// ConfluenceGetOutput is the flattened view of a single page.
type ConfluenceGetOutput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Space    string `json:"space"`
	Version  int    `json:"version"`
	BodyHTML string `json:"body_html"`
	URL      string `json:"url"`
}

// ConfluenceGet is the use case for displaying a single page.
type ConfluenceGet struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewConfluenceGet creates a new ConfluenceGet use case.
func NewConfluenceGet(atlassian domain.Atlassian, baseURL string) *ConfluenceGet {
	return &ConfluenceGet{atlassian: atlassian, baseURL: baseURL}
}

// Execute fetches and flattens the page.
func (uc *ConfluenceGet) Execute(ctx context.Context, in ConfluenceGetInput) (*ConfluenceGetOutput, error) {
	page, err := uc.atlassian.GetPage(ctx, in.PageID)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}

	out := &ConfluenceGetOutput{
		ID:    page.ID,
		Title: page.Title,
		Space: spaceKey(page.Space),
		URL:   uc.baseURL + "/wiki" + page.Links.WebUI,
	}
	if page.Version != nil {
		out.Version = page.Version.Number
	}
	if page.Body != nil {
		out.BodyHTML = page.Body.Storage.Value
	}

	return out, nil
}
