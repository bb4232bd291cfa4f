package atlassian

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atl/internal/domain"
)

// newTestClient creates a Client pointed at a test server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &domain.Config{
		BaseURL:  srv.URL,
		Email:    "me@example.com",
		APIToken: "secret-token",
		Timeout:  5 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(cfg, logger)
	t.Cleanup(client.Close)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient_SendsAuthAndHeaders(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeJSON(t, w, domain.Issue{Key: "PROJ-1"})
	})

	_, err := client.GetIssue(context.Background(), "PROJ-1", "")

	require.NoError(t, err)
	user, pass, ok := got.BasicAuth()
	require.True(t, ok, "request carries basic auth")
	assert.Equal(t, "me@example.com", user)
	assert.Equal(t, "secret-token", pass)
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
}

func TestSearchIssues_CapsMaxResults(t *testing.T) {
	var query map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search/jql", r.URL.Path)
		query = map[string]string{
			"jql":        r.URL.Query().Get("jql"),
			"maxResults": r.URL.Query().Get("maxResults"),
			"startAt":    r.URL.Query().Get("startAt"),
			"fields":     r.URL.Query().Get("fields"),
		}
		writeJSON(t, w, domain.IssueSearchResult{Total: 0})
	})

	_, err := client.SearchIssues(context.Background(), "project = PROJ", 150, 0)

	require.NoError(t, err)
	assert.Equal(t, "project = PROJ", query["jql"])
	assert.Equal(t, "100", query["maxResults"], "150 is capped to 100 before being sent")
	assert.Equal(t, "0", query["startAt"])
	assert.Contains(t, query["fields"], "summary")
	assert.Contains(t, query["fields"], "issuetype")
}

func TestSearchIssues_EmptyJQL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.SearchIssues(context.Background(), "", 25, 0)

	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestGetIssue_ExpandAndPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/PROJ-42", r.URL.Path)
		assert.Equal(t, "renderedFields", r.URL.Query().Get("expand"))
		writeJSON(t, w, domain.Issue{Key: "PROJ-42"})
	})

	issue, err := client.GetIssue(context.Background(), "PROJ-42", "renderedFields")

	require.NoError(t, err)
	assert.Equal(t, "PROJ-42", issue.Key)
}

func TestCreateIssue_WrapsDescriptionInADF(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/3/issue", r.URL.Path)
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Issue{ID: "10001", Key: "PROJ-7"})
	})

	issue, err := client.CreateIssue(context.Background(), domain.CreateIssueInput{
		ProjectKey:  "PROJ",
		Summary:     "Fix reader",
		Description: "plain text description",
	})

	require.NoError(t, err)
	assert.Equal(t, "PROJ-7", issue.Key)

	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"key": "PROJ"}, fields["project"])
	assert.Equal(t, "Fix reader", fields["summary"])
	assert.Equal(t, map[string]any{"name": "Task"}, fields["issuetype"], "issue type defaults to Task")
	assert.NotContains(t, fields, "priority")

	desc, ok := fields["description"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "doc", desc["type"])
	assert.Equal(t, float64(1), desc["version"])

	content, ok := desc["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 1, "exactly one paragraph")

	para, ok := content[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "paragraph", para["type"])
	text := para["content"].([]any)[0].(map[string]any)
	assert.Equal(t, "plain text description", text["text"], "input text verbatim")
}

func TestCreateIssue_OptionalFields(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Issue{Key: "PROJ-8"})
	})

	_, err := client.CreateIssue(context.Background(), domain.CreateIssueInput{
		ProjectKey: "PROJ",
		Summary:    "No description",
		IssueType:  "Bug",
		Priority:   "High",
		Labels:     []string{"infra", "urgent"},
	})

	require.NoError(t, err)
	fields := body["fields"].(map[string]any)
	assert.NotContains(t, fields, "description")
	assert.Equal(t, map[string]any{"name": "Bug"}, fields["issuetype"])
	assert.Equal(t, map[string]any{"name": "High"}, fields["priority"])
	assert.Equal(t, []any{"infra", "urgent"}, fields["labels"])
}

func TestAddIssueComment_ADFBody(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/PROJ-42/comment", r.URL.Path)
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Comment{ID: "2001", Created: "2026-01-02T03:04:05.000+0000"})
	})

	comment, err := client.AddIssueComment(context.Background(), "PROJ-42", "ship it")

	require.NoError(t, err)
	assert.Equal(t, "2001", comment.ID)

	doc := body["body"].(map[string]any)
	assert.Equal(t, "doc", doc["type"])
	para := doc["content"].([]any)[0].(map[string]any)
	text := para["content"].([]any)[0].(map[string]any)
	assert.Equal(t, "ship it", text["text"])
}

func TestBuildCQL(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		spaceKey string
		want     string
	}{
		{
			name:  "free text",
			query: "foo bar",
			want:  `type = "page" AND text ~ "foo bar"`,
		},
		{
			name:  "raw cql",
			query: "space = X",
			want:  `type = "page" AND (space = X)`,
		},
		{
			name:     "free text with space filter",
			query:    "onboarding",
			spaceKey: "DEV",
			want:     `type = "page" AND space = "DEV" AND text ~ "onboarding"`,
		},
		{
			name:  "tilde operator",
			query: "title ~ runbook",
			want:  `type = "page" AND (title ~ runbook)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildCQL(tt.query, tt.spaceKey))
		})
	}
}

func TestSearchPages_SendsCQLAndCapsLimit(t *testing.T) {
	var query map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/rest/api/content/search", r.URL.Path)
		query = map[string]string{
			"cql":   r.URL.Query().Get("cql"),
			"limit": r.URL.Query().Get("limit"),
			"start": r.URL.Query().Get("start"),
		}
		writeJSON(t, w, domain.PageSearchResult{})
	})

	_, err := client.SearchPages(context.Background(), "foo bar", "", 200, 0)

	require.NoError(t, err)
	assert.Equal(t, `type = "page" AND text ~ "foo bar"`, query["cql"])
	assert.Equal(t, "100", query["limit"])
	assert.Equal(t, "0", query["start"])
}

func TestGetPage_Expand(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/rest/api/content/12345", r.URL.Path)
		assert.Equal(t, "body.storage,version,space", r.URL.Query().Get("expand"))
		writeJSON(t, w, domain.Page{ID: "12345", Title: "Runbook"})
	})

	page, err := client.GetPage(context.Background(), "12345")

	require.NoError(t, err)
	assert.Equal(t, "Runbook", page.Title)
}

func TestCreatePage_Payload(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wiki/rest/api/content", r.URL.Path)
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Page{ID: "999"})
	})

	_, err := client.CreatePage(context.Background(), domain.CreatePageInput{
		SpaceKey: "DEV",
		Title:    "Runbook",
		Body:     "<p>hello</p>",
		ParentID: "12345",
	})

	require.NoError(t, err)
	assert.Equal(t, "page", body["type"])
	assert.Equal(t, "Runbook", body["title"])
	assert.Equal(t, map[string]any{"key": "DEV"}, body["space"])
	assert.Equal(t, []any{map[string]any{"id": "12345"}}, body["ancestors"])

	storage := body["body"].(map[string]any)["storage"].(map[string]any)
	assert.Equal(t, "<p>hello</p>", storage["value"])
	assert.Equal(t, "storage", storage["representation"])
}

func TestCreatePage_NoParentNoAncestors(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Page{ID: "999"})
	})

	_, err := client.CreatePage(context.Background(), domain.CreatePageInput{
		SpaceKey: "DEV",
		Title:    "Runbook",
		Body:     "<p>hello</p>",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "ancestors")
}

func TestUpdatePage_SendsVersion(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/wiki/rest/api/content/12345", r.URL.Path)
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Page{ID: "12345", Version: &domain.PageVersion{Number: 6}})
	})

	page, err := client.UpdatePage(context.Background(), "12345", "Updated", "<p>new</p>", 6)

	require.NoError(t, err)
	assert.Equal(t, 6, page.Version.Number)
	assert.Equal(t, map[string]any{"number": float64(6)}, body["version"])
	assert.Equal(t, "page", body["type"])
}

func TestAddPageComment_Payload(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/rest/api/content", r.URL.Path)
		body = decodeBody(t, r)
		writeJSON(t, w, domain.Page{ID: "777", Version: &domain.PageVersion{Number: 1, When: "2026-01-02T00:00:00.000Z"}})
	})

	comment, err := client.AddPageComment(context.Background(), "12345", "<p>nice</p>")

	require.NoError(t, err)
	assert.Equal(t, "777", comment.ID)
	assert.Equal(t, "comment", body["type"])
	assert.Equal(t, map[string]any{"id": "12345", "type": "page"}, body["container"])
}

func TestClient_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorMessages":["Issue does not exist"]}`))
	})

	_, err := client.GetIssue(context.Background(), "PROJ-404", "")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Issue does not exist")
	assert.Contains(t, apiErr.Error(), "status=404")
}

func TestTestJira(t *testing.T) {
	ok := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/myself", r.URL.Path)
		writeJSON(t, w, map[string]string{"accountId": "abc"})
	})
	assert.True(t, ok.TestJira(context.Background()))

	failed := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	assert.False(t, failed.TestJira(context.Background()), "failures are swallowed, not propagated")
}

func TestTestConfluence(t *testing.T) {
	ok := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/api/v2/spaces", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		writeJSON(t, w, map[string]any{"results": []any{}})
	})
	assert.True(t, ok.TestConfluence(context.Background()))

	failed := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.False(t, failed.TestConfluence(context.Background()))
}
