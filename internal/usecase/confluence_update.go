package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// ConfluenceUpdateInput contains the parameters for updating a page.
type ConfluenceUpdateInput struct {
	PageID string // Numeric page ID (required)
	Title  string // New page title (required)
	Body   string // Storage markup or plain text (required)
}

// ConfluenceUpdateOutput identifies the updated page.
type ConfluenceUpdateOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Version int    `json:"version"`
	URL     string `json:"url"`
}

// ConfluenceUpdate is the use case for updating a Confluence page.
// The server enforces optimistic concurrency, so the update is a
// read-before-write: fetch the current version, then write with
// version + 1. There is no transactional guarantee between the two
// calls; a concurrent editor makes the write fail server-side.
type ConfluenceUpdate struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewConfluenceUpdate creates a new ConfluenceUpdate use case.
func NewConfluenceUpdate(atlassian domain.Atlassian, baseURL string) *ConfluenceUpdate {
	return &ConfluenceUpdate{atlassian: atlassian, baseURL: baseURL}
}

// Execute fetches the current page version and writes the update with
// the incremented number.
func (uc *ConfluenceUpdate) Execute(ctx context.Context, in ConfluenceUpdateInput) (*ConfluenceUpdateOutput, error) {
	if in.Body == "" {
		return nil, domain.ErrEmptyBody
	}

	current, err := uc.atlassian.GetPage(ctx, in.PageID)
	if err != nil {
		return nil, fmt.Errorf("get current page: %w", err)
	}

	version := 1
	if current.Version != nil {
		version = current.Version.Number
	}

	page, err := uc.atlassian.UpdatePage(ctx, in.PageID, in.Title, domain.EnsureStorageMarkup(in.Body), version+1)
	if err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}

	out := &ConfluenceUpdateOutput{
		ID:    page.ID,
		Title: page.Title,
		URL:   uc.baseURL + "/wiki" + page.Links.WebUI,
	}
	if page.Version != nil {
		out.Version = page.Version.Number
	}

	return out, nil
}
