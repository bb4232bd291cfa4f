// Package atlassian implements the gateway to the Jira and Confluence
// REST APIs (Atlassian Cloud). Authentication is basic auth with
// email + API token; every request and response body is JSON.
package atlassian

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"atl/internal/domain"
)

// Ensure Client implements the domain.Atlassian port.
var _ domain.Atlassian = (*Client)(nil)

// maxSearchResults is the hard cap the API enforces on page sizes;
// larger requests are capped client-side before being sent.
const maxSearchResults = 100

// defaultIssueFields are requested on every JQL search.
var defaultIssueFields = []string{
	"summary", "status", "assignee", "reporter",
	"priority", "issuetype", "created", "updated", "labels",
}

// APIError is a non-2xx response from the Atlassian API. The body is
// carried verbatim; error payloads are not interpreted.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("atlassian api status=%d body=%s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Client is an HTTP client for the Jira and Confluence REST APIs.
// One instance is created per process invocation and closed when the
// command finishes.
type Client struct {
	cfg  *domain.Config
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a Client bound to the given configuration.
func NewClient(cfg *domain.Config, log *slog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// Close releases the client's idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// --- Jira ---

// TestJira reports whether Jira answers an authenticated request.
func (c *Client) TestJira(ctx context.Context) bool {
	var me struct {
		AccountID string `json:"accountId"`
	}
	return c.get(ctx, c.cfg.JiraAPIURL()+"/myself", nil, &me) == nil
}

// SearchIssues runs a JQL search with the default field set.
func (c *Client) SearchIssues(ctx context.Context, jql string, maxResults, startAt int) (*domain.IssueSearchResult, error) {
	if jql == "" {
		return nil, domain.ErrEmptyQuery
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	params := url.Values{}
	params.Set("jql", jql)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("startAt", strconv.Itoa(startAt))
	params.Set("fields", strings.Join(defaultIssueFields, ","))

	var result domain.IssueSearchResult
	if err := c.get(ctx, c.cfg.JiraAPIURL()+"/search/jql", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetIssue fetches a single issue by key.
func (c *Client) GetIssue(ctx context.Context, key, expand string) (*domain.Issue, error) {
	params := url.Values{}
	if expand != "" {
		params.Set("expand", expand)
	}

	var issue domain.Issue
	if err := c.get(ctx, c.cfg.JiraAPIURL()+"/issue/"+url.PathEscape(key), params, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

type keyRef struct {
	Key string `json:"key"`
}

type nameRef struct {
	Name string `json:"name"`
}

type idRef struct {
	ID string `json:"id"`
}

type issueFieldsPayload struct {
	Project     keyRef          `json:"project"`
	Summary     string          `json:"summary"`
	IssueType   nameRef         `json:"issuetype"`
	Description *domain.ADFNode `json:"description,omitempty"`
	Priority    *nameRef        `json:"priority,omitempty"`
	Labels      []string        `json:"labels,omitempty"`
}

type createIssueRequest struct {
	Fields issueFieldsPayload `json:"fields"`
}

// CreateIssue creates a new issue. A plain-text description is
// wrapped into a single-paragraph ADF document, because the API only
// accepts the typed document format.
func (c *Client) CreateIssue(ctx context.Context, in domain.CreateIssueInput) (*domain.Issue, error) {
	issueType := in.IssueType
	if issueType == "" {
		issueType = "Task"
	}

	fields := issueFieldsPayload{
		Project:   keyRef{Key: in.ProjectKey},
		Summary:   in.Summary,
		IssueType: nameRef{Name: issueType},
		Labels:    in.Labels,
	}
	if in.Description != "" {
		doc := domain.NewADFDocument(in.Description)
		fields.Description = &doc
	}
	if in.Priority != "" {
		fields.Priority = &nameRef{Name: in.Priority}
	}

	var issue domain.Issue
	if err := c.post(ctx, c.cfg.JiraAPIURL()+"/issue", createIssueRequest{Fields: fields}, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

type addCommentRequest struct {
	Body domain.ADFNode `json:"body"`
}

// AddIssueComment adds a plain-text comment to an issue.
func (c *Client) AddIssueComment(ctx context.Context, key, text string) (*domain.Comment, error) {
	req := addCommentRequest{Body: domain.NewADFDocument(text)}

	var comment domain.Comment
	u := c.cfg.JiraAPIURL() + "/issue/" + url.PathEscape(key) + "/comment"
	if err := c.post(ctx, u, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// --- Confluence ---

// TestConfluence reports whether Confluence answers an authenticated
// request.
func (c *Client) TestConfluence(ctx context.Context) bool {
	params := url.Values{}
	params.Set("limit", "1")
	var spaces struct {
		Results []domain.Space `json:"results"`
	}
	return c.get(ctx, c.cfg.ConfluenceAPIURL()+"/spaces", params, &spaces) == nil
}

// cqlOperators mark a query as raw CQL rather than free text.
var cqlOperators = []string{"=", "~", "AND", "OR", "IN"}

// BuildCQL assembles the CQL expression for a page search. Free-text
// queries become a text match; queries containing CQL operators are
// embedded as a parenthesized subexpression.
func BuildCQL(query, spaceKey string) string {
	parts := []string{`type = "page"`}
	if spaceKey != "" {
		parts = append(parts, fmt.Sprintf("space = %q", spaceKey))
	}

	raw := false
	for _, op := range cqlOperators {
		if strings.Contains(query, op) {
			raw = true
			break
		}
	}
	if raw {
		parts = append(parts, "("+query+")")
	} else {
		parts = append(parts, fmt.Sprintf("text ~ %q", query))
	}

	return strings.Join(parts, " AND ")
}

// SearchPages searches Confluence pages via CQL.
func (c *Client) SearchPages(ctx context.Context, query, spaceKey string, limit, start int) (*domain.PageSearchResult, error) {
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	params := url.Values{}
	params.Set("cql", BuildCQL(query, spaceKey))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("start", strconv.Itoa(start))

	var result domain.PageSearchResult
	if err := c.get(ctx, c.cfg.ConfluenceContentURL()+"/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPage retrieves a page with its storage body, version and space.
func (c *Client) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	params := url.Values{}
	params.Set("expand", "body.storage,version,space")

	var page domain.Page
	if err := c.get(ctx, c.cfg.ConfluenceContentURL()+"/"+url.PathEscape(id), params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type storageValue struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type storageBody struct {
	Storage storageValue `json:"storage"`
}

func newStorageBody(value string) storageBody {
	return storageBody{Storage: storageValue{Value: value, Representation: "storage"}}
}

type createPageRequest struct {
	Type      string      `json:"type"`
	Title     string      `json:"title"`
	Space     keyRef      `json:"space"`
	Body      storageBody `json:"body"`
	Ancestors []idRef     `json:"ancestors,omitempty"`
}

// CreatePage creates a new page, optionally under a parent.
func (c *Client) CreatePage(ctx context.Context, in domain.CreatePageInput) (*domain.Page, error) {
	req := createPageRequest{
		Type:  "page",
		Title: in.Title,
		Space: keyRef{Key: in.SpaceKey},
		Body:  newStorageBody(in.Body),
	}
	if in.ParentID != "" {
		req.Ancestors = []idRef{{ID: in.ParentID}}
	}

	var page domain.Page
	if err := c.post(ctx, c.cfg.ConfluenceContentURL(), req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type versionRef struct {
	Number int `json:"number"`
}

type updatePageRequest struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Version versionRef  `json:"version"`
	Body    storageBody `json:"body"`
}

// UpdatePage replaces the title and body of a page. The server
// enforces optimistic concurrency: version must be the current
// version + 1 or the request is rejected.
func (c *Client) UpdatePage(ctx context.Context, id, title, body string, version int) (*domain.Page, error) {
	req := updatePageRequest{
		Type:    "page",
		Title:   title,
		Version: versionRef{Number: version},
		Body:    newStorageBody(body),
	}

	var page domain.Page
	if err := c.put(ctx, c.cfg.ConfluenceContentURL()+"/"+url.PathEscape(id), req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type containerRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type addPageCommentRequest struct {
	Type      string       `json:"type"`
	Container containerRef `json:"container"`
	Body      storageBody  `json:"body"`
}

// AddPageComment adds a storage-format comment to a page.
func (c *Client) AddPageComment(ctx context.Context, id, body string) (*domain.Page, error) {
	req := addPageCommentRequest{
		Type:      "comment",
		Container: containerRef{ID: id, Type: "page"},
		Body:      newStorageBody(body),
	}

	var comment domain.Page
	if err := c.post(ctx, c.cfg.ConfluenceContentURL(), req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// --- HTTP helpers ---

func (c *Client) get(ctx context.Context, u string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, u, params, nil, out)
}

func (c *Client) post(ctx context.Context, u string, body, out any) error {
	return c.do(ctx, http.MethodPost, u, nil, body, out)
}

func (c *Client) put(ctx context.Context, u string, body, out any) error {
	return c.do(ctx, http.MethodPut, u, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, u string, params url.Values, body, out any) error {
	if len(params) > 0 {
		u = u + "?" + params.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "atlassian request", "method", method, "url", u)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
