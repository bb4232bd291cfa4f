package domain

import "context"

// CreateIssueInput contains the fields for creating a Jira issue.
type CreateIssueInput struct {
	ProjectKey  string
	Summary     string
	IssueType   string // Defaults to "Task" when empty
	Description string // Plain text; wrapped into an ADF document
	Priority    string
	Labels      []string
}

// CreatePageInput contains the fields for creating a Confluence page.
type CreatePageInput struct {
	SpaceKey string
	Title    string
	Body     string // Storage-format markup
	ParentID string // Optional parent page ID
}

// User is a Jira user reference as returned by the REST API.
type User struct {
	AccountID   string `json:"accountId,omitempty"`
	DisplayName string `json:"displayName"`
}

// NamedValue is the {"name": ...} shape Jira uses for status,
// priority and issue type fields.
type NamedValue struct {
	Name string `json:"name"`
}

// IssueFields holds the subset of Jira issue fields this tool reads.
type IssueFields struct {
	Summary   string       `json:"summary"`
	Status    *NamedValue  `json:"status"`
	Priority  *NamedValue  `json:"priority"`
	IssueType *NamedValue  `json:"issuetype"`
	Assignee  *User        `json:"assignee"`
	Reporter  *User        `json:"reporter"`
	Labels    []string     `json:"labels"`
	Created   string       `json:"created"`
	Updated   string       `json:"updated"`
	Comment   *CommentList `json:"comment,omitempty"`
}

// CommentList is the paged comment container embedded in an issue.
type CommentList struct {
	Comments []Comment `json:"comments"`
}

// Comment is a Jira issue comment. The body is an ADF tree.
type Comment struct {
	ID      string  `json:"id"`
	Author  *User   `json:"author"`
	Created string  `json:"created"`
	Body    ADFNode `json:"body"`
}

// RenderedFields holds server-rendered HTML variants of issue fields.
type RenderedFields struct {
	Description string `json:"description"`
}

// Issue is a Jira issue as returned by the REST API.
type Issue struct {
	ID             string         `json:"id"`
	Key            string         `json:"key"`
	Fields         IssueFields    `json:"fields"`
	RenderedFields RenderedFields `json:"renderedFields"`
}

// IssueSearchResult is the response of a JQL search.
type IssueSearchResult struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
}

// Space is a Confluence space reference.
type Space struct {
	Key string `json:"key"`
}

// PageVersion carries the optimistic-concurrency version number of a
// Confluence page. Every update must state the next number; stale
// numbers are rejected server-side.
type PageVersion struct {
	Number int    `json:"number"`
	When   string `json:"when,omitempty"`
}

// PageBody holds the storage-format body of a page.
type PageBody struct {
	Storage PageBodyStorage `json:"storage"`
}

// PageBodyStorage is the storage representation value.
type PageBodyStorage struct {
	Value          string `json:"value"`
	Representation string `json:"representation,omitempty"`
}

// PageLinks holds the web links of a Confluence content object.
type PageLinks struct {
	WebUI string `json:"webui"`
}

// Page is a Confluence content object (page or comment).
type Page struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Space   *Space       `json:"space"`
	Version *PageVersion `json:"version"`
	Body    *PageBody    `json:"body"`
	Links   PageLinks    `json:"_links"`
}

// PageSearchResult is the response of a CQL content search.
type PageSearchResult struct {
	Results   []Page `json:"results"`
	Size      int    `json:"size"`
	TotalSize int    `json:"totalSize"`
}

// Atlassian is the gateway port for the hosted Jira and Confluence
// REST APIs. Each method maps to exactly one remote operation; the
// implementation raises on any non-2xx response except the two
// connectivity probes, which swallow failures and report a boolean.
type Atlassian interface {
	// TestJira reports whether the Jira API is reachable with the
	// configured credentials.
	TestJira(ctx context.Context) bool
	// TestConfluence reports whether the Confluence API is reachable.
	TestConfluence(ctx context.Context) bool

	// SearchIssues runs a JQL search. maxResults is capped at 100.
	SearchIssues(ctx context.Context, jql string, maxResults, startAt int) (*IssueSearchResult, error)
	// GetIssue fetches a single issue by key, e.g. PROJ-42. expand is
	// passed through to the API when non-empty.
	GetIssue(ctx context.Context, key, expand string) (*Issue, error)
	// CreateIssue creates a new issue and returns its key and ID.
	CreateIssue(ctx context.Context, in CreateIssueInput) (*Issue, error)
	// AddIssueComment adds a plain-text comment to an issue.
	AddIssueComment(ctx context.Context, key, text string) (*Comment, error)

	// SearchPages searches Confluence pages. The query is either raw
	// CQL or free text; limit is capped at 100.
	SearchPages(ctx context.Context, query, spaceKey string, limit, start int) (*PageSearchResult, error)
	// GetPage fetches a page with body, version and space expanded.
	GetPage(ctx context.Context, id string) (*Page, error)
	// CreatePage creates a new page.
	CreatePage(ctx context.Context, in CreatePageInput) (*Page, error)
	// UpdatePage replaces the title and body of a page. version must
	// be the next version number (current + 1).
	UpdatePage(ctx context.Context, id, title, body string, version int) (*Page, error)
	// AddPageComment adds a storage-format comment to a page.
	AddPageComment(ctx context.Context, id, body string) (*Page, error)
}
