package usecase

import (
	"context"
	"fmt"

	"atl/internal/domain"
)

// ConfluenceSearchInput contains the parameters for a page search.
type ConfluenceSearchInput struct {
	Query    string // Free text or raw CQL (required)
	SpaceKey string // Restrict to a space (optional)
	Limit    int    // Page size; the gateway caps it at 100
}

// PageSummary is the flattened view of a search hit.
type PageSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space string `json:"space"`
	URL   string `json:"url"`
}

// ConfluenceSearchOutput contains the flattened search result.
type ConfluenceSearchOutput struct {
	Total int           `json:"total"`
	Pages []PageSummary `json:"pages"`
}

// ConfluenceSearch is the use case for searching Confluence pages.
type ConfluenceSearch struct {
	atlassian domain.Atlassian
	baseURL   string
}

// NewConfluenceSearch creates a new ConfluenceSearch use case.
func NewConfluenceSearch(atlassian domain.Atlassian, baseURL string) *ConfluenceSearch {
	return &ConfluenceSearch{atlassian: atlassian, baseURL: baseURL}
}

// Execute runs the search and flattens each page into a summary.
func (uc *ConfluenceSearch) Execute(ctx context.Context, in ConfluenceSearchInput) (*ConfluenceSearchOutput, error) {
	result, err := uc.atlassian.SearchPages(ctx, in.Query, in.SpaceKey, in.Limit, 0)
	if err != nil {
		return nil, fmt.Errorf("search pages: %w", err)
	}

	pages := make([]PageSummary, 0, len(result.Results))
	for _, page := range result.Results {
		pages = append(pages, PageSummary{
			ID:    page.ID,
			Title: page.Title,
			Space: spaceKey(page.Space),
			URL:   uc.pageURL(page),
		})
	}

	total := result.TotalSize
	if total == 0 {
		total = result.Size
	}
	if total == 0 {
		total = len(pages)
	}

	return &ConfluenceSearchOutput{Total: total, Pages: pages}, nil
}

func (uc *ConfluenceSearch) pageURL(page domain.Page) string {
	return uc.baseURL + "/wiki" + page.Links.WebUI
}

// spaceKey unwraps a space reference, tolerating nil.
func spaceKey(s *domain.Space) string {
	if s == nil {
		return ""
	}
	return s.Key
}
