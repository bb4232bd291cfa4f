package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atl/internal/domain"
	"atl/internal/testutil"
)

func TestConfluenceCreate_WrapsPlainText(t *testing.T) {
	gw := testutil.NewMockAtlassian()
	gw.CreatedPage = &domain.Page{ID: "999", Title: "Runbook", Space: &domain.Space{Key: "OPS"}}

	uc := NewConfluenceCreate(gw, "https://acme.atlassian.net")
	out, err := uc.Execute(context.Background(), ConfluenceCreateInput{
		SpaceKey: "OPS",
		Title:    "Runbook",
		Body:     "plain text",
		ParentID: "12345",
	})

	require.NoError(t, err)
	assert.Equal(t, "<p>plain text</p>", gw.CreatePageIn.Body)
	assert.Equal(t, "12345", gw.CreatePageIn.ParentID)
	assert.Equal(t, "999", out.ID)
	assert.Equal(t, "OPS", out.Space)
}

func TestConfluenceCreate_MarkupPassedThrough(t *testing.T) {
	gw := testutil.NewMockAtlassian()
	gw.CreatedPage = &domain.Page{ID: "999"}

	uc := NewConfluenceCreate(gw, "https://acme.atlassian.net")
	_, err := uc.Execute(context.Background(), ConfluenceCreateInput{
		SpaceKey: "OPS",
		Title:    "Runbook",
		Body:     "<h1>Title</h1>",
	})

	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>", gw.CreatePageIn.Body)
}

func TestConfluenceCreate_EmptyBody(t *testing.T) {
	gw := testutil.NewMockAtlassian()

	uc := NewConfluenceCreate(gw, "https://acme.atlassian.net")
	_, err := uc.Execute(context.Background(), ConfluenceCreateInput{SpaceKey: "OPS", Title: "T"})

	assert.ErrorIs(t, err, domain.ErrEmptyBody)
}

func TestConfluenceComment_WrapsAndFlattens(t *testing.T) {
	gw := testutil.NewMockAtlassian()
	gw.PageComment = &domain.Page{
		ID:      "777",
		Version: &domain.PageVersion{Number: 1, When: "2026-01-02T00:00:00.000Z"},
	}

	uc := NewConfluenceComment(gw)
	out, err := uc.Execute(context.Background(), ConfluenceCommentInput{PageID: "12345", Text: "nice doc"})

	require.NoError(t, err)
	assert.Equal(t, "12345", gw.PageCommentID)
	assert.Equal(t, "<p>nice doc</p>", gw.PageCommentBody)
	assert.Equal(t, "777", out.ID)
	assert.Equal(t, "12345", out.PageID)
	assert.Equal(t, "2026-01-02T00:00:00.000Z", out.Created)
}

func TestConfluenceComment_EmptyText(t *testing.T) {
	gw := testutil.NewMockAtlassian()

	uc := NewConfluenceComment(gw)
	_, err := uc.Execute(context.Background(), ConfluenceCommentInput{PageID: "12345"})

	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestTestConnection_ReportsBoth(t *testing.T) {
	gw := testutil.NewMockAtlassian()
	gw.JiraOK = true
	gw.ConfluenceOK = false

	uc := NewTestConnection(gw)
	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, out.Jira)
	assert.False(t, out.Confluence)
}
