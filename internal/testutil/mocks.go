// Package testutil provides shared test utilities and mock
// implementations.
package testutil

import (
	"context"

	"atl/internal/domain"
)

// Ensure MockAtlassian implements the domain.Atlassian port.
var _ domain.Atlassian = (*MockAtlassian)(nil)

// MockAtlassian is a test double for domain.Atlassian. Return values
// are configured through fields; the arguments of the last call to
// each method are recorded for assertions.
type MockAtlassian struct {
	JiraOK       bool
	ConfluenceOK bool

	SearchIssuesResult *domain.IssueSearchResult
	SearchIssuesErr    error
	SearchIssuesJQL    string
	SearchIssuesMax    int
	SearchIssuesStart  int

	Issue          *domain.Issue
	GetIssueErr    error
	GetIssueKey    string
	GetIssueExpand string

	CreatedIssue   *domain.Issue
	CreateIssueErr error
	CreateIssueIn  domain.CreateIssueInput

	IssueComment       *domain.Comment
	AddIssueCommentErr error
	IssueCommentKey    string
	IssueCommentText   string

	SearchPagesResult *domain.PageSearchResult
	SearchPagesErr    error
	SearchPagesQuery  string
	SearchPagesSpace  string
	SearchPagesLimit  int

	Page       *domain.Page
	GetPageErr error
	GetPageID  string

	CreatedPage   *domain.Page
	CreatePageErr error
	CreatePageIn  domain.CreatePageInput

	UpdatedPage       *domain.Page
	UpdatePageErr     error
	UpdatePageID      string
	UpdatePageTitle   string
	UpdatePageBody    string
	UpdatePageVersion int

	PageComment       *domain.Page
	AddPageCommentErr error
	PageCommentID     string
	PageCommentBody   string
}

// NewMockAtlassian creates a MockAtlassian that reports both services
// reachable.
func NewMockAtlassian() *MockAtlassian {
	return &MockAtlassian{JiraOK: true, ConfluenceOK: true}
}

// TestJira reports the configured Jira connectivity.
func (m *MockAtlassian) TestJira(_ context.Context) bool {
	return m.JiraOK
}

// TestConfluence reports the configured Confluence connectivity.
func (m *MockAtlassian) TestConfluence(_ context.Context) bool {
	return m.ConfluenceOK
}

// SearchIssues records the query and returns the configured result.
func (m *MockAtlassian) SearchIssues(_ context.Context, jql string, maxResults, startAt int) (*domain.IssueSearchResult, error) {
	m.SearchIssuesJQL = jql
	m.SearchIssuesMax = maxResults
	m.SearchIssuesStart = startAt
	if m.SearchIssuesErr != nil {
		return nil, m.SearchIssuesErr
	}
	if m.SearchIssuesResult == nil {
		return &domain.IssueSearchResult{}, nil
	}
	return m.SearchIssuesResult, nil
}

// GetIssue records the key and returns the configured issue.
func (m *MockAtlassian) GetIssue(_ context.Context, key, expand string) (*domain.Issue, error) {
	m.GetIssueKey = key
	m.GetIssueExpand = expand
	if m.GetIssueErr != nil {
		return nil, m.GetIssueErr
	}
	return m.Issue, nil
}

// CreateIssue records the input and returns the configured issue.
func (m *MockAtlassian) CreateIssue(_ context.Context, in domain.CreateIssueInput) (*domain.Issue, error) {
	m.CreateIssueIn = in
	if m.CreateIssueErr != nil {
		return nil, m.CreateIssueErr
	}
	return m.CreatedIssue, nil
}

// AddIssueComment records the arguments and returns the configured
// comment.
func (m *MockAtlassian) AddIssueComment(_ context.Context, key, text string) (*domain.Comment, error) {
	m.IssueCommentKey = key
	m.IssueCommentText = text
	if m.AddIssueCommentErr != nil {
		return nil, m.AddIssueCommentErr
	}
	return m.IssueComment, nil
}

// SearchPages records the query and returns the configured result.
func (m *MockAtlassian) SearchPages(_ context.Context, query, spaceKey string, limit, _ int) (*domain.PageSearchResult, error) {
	m.SearchPagesQuery = query
	m.SearchPagesSpace = spaceKey
	m.SearchPagesLimit = limit
	if m.SearchPagesErr != nil {
		return nil, m.SearchPagesErr
	}
	if m.SearchPagesResult == nil {
		return &domain.PageSearchResult{}, nil
	}
	return m.SearchPagesResult, nil
}

// GetPage records the ID and returns the configured page.
func (m *MockAtlassian) GetPage(_ context.Context, id string) (*domain.Page, error) {
	m.GetPageID = id
	if m.GetPageErr != nil {
		return nil, m.GetPageErr
	}
	return m.Page, nil
}

// CreatePage records the input and returns the configured page.
func (m *MockAtlassian) CreatePage(_ context.Context, in domain.CreatePageInput) (*domain.Page, error) {
	m.CreatePageIn = in
	if m.CreatePageErr != nil {
		return nil, m.CreatePageErr
	}
	return m.CreatedPage, nil
}

// UpdatePage records the arguments and returns the configured page.
func (m *MockAtlassian) UpdatePage(_ context.Context, id, title, body string, version int) (*domain.Page, error) {
	m.UpdatePageID = id
	m.UpdatePageTitle = title
	m.UpdatePageBody = body
	m.UpdatePageVersion = version
	if m.UpdatePageErr != nil {
		return nil, m.UpdatePageErr
	}
	return m.UpdatedPage, nil
}

// AddPageComment records the arguments and returns the configured
// comment.
func (m *MockAtlassian) AddPageComment(_ context.Context, id, body string) (*domain.Page, error) {
	m.PageCommentID = id
	m.PageCommentBody = body
	if m.AddPageCommentErr != nil {
		return nil, m.AddPageCommentErr
	}
	return m.PageComment, nil
}
