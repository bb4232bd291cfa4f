// Package app provides the dependency injection container for the
// application.
package app

import (
	"log/slog"
	"os"

	"atl/internal/domain"
	"atl/internal/infra/atlassian"
	"atl/internal/infra/config"
	"atl/internal/infra/logging"
	"atl/internal/usecase"
)

// Container provides dependency injection for the application. The
// Atlassian client is an explicitly owned field, created once per
// process and closed by the caller; it is never a package-level
// global.
type Container struct {
	Config    *domain.Config
	Atlassian domain.Atlassian
	Logger    *slog.Logger

	client *atlassian.Client // concrete client, for Close
}

// New creates a new Container. Configuration is loaded and validated
// here, so missing credentials fail fast before any network call.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	logger := logging.FromEnv(os.Stderr)
	client := atlassian.NewClient(cfg, logger)

	return &Container{
		Config:    cfg,
		Atlassian: client,
		Logger:    logger,
		client:    client,
	}, nil
}

// NewWithGateway creates a Container around an existing gateway.
// This is useful for testing.
func NewWithGateway(cfg *domain.Config, gateway domain.Atlassian, logger *slog.Logger) *Container {
	return &Container{
		Config:    cfg,
		Atlassian: gateway,
		Logger:    logger,
	}
}

// Close releases the HTTP client's connections. Safe to call on
// containers built without a concrete client.
func (c *Container) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// --- Use-case factories ---

// TestConnectionUseCase creates the connectivity check use case.
func (c *Container) TestConnectionUseCase() *usecase.TestConnection {
	return usecase.NewTestConnection(c.Atlassian)
}

// JiraSearchUseCase creates the JQL search use case.
func (c *Container) JiraSearchUseCase() *usecase.JiraSearch {
	return usecase.NewJiraSearch(c.Atlassian, c.Config.BaseURL)
}

// JiraGetUseCase creates the issue display use case.
func (c *Container) JiraGetUseCase() *usecase.JiraGet {
	return usecase.NewJiraGet(c.Atlassian, c.Config.BaseURL)
}

// JiraCreateUseCase creates the issue creation use case.
func (c *Container) JiraCreateUseCase() *usecase.JiraCreate {
	return usecase.NewJiraCreate(c.Atlassian, c.Config.BaseURL)
}

// JiraCommentUseCase creates the issue comment use case.
func (c *Container) JiraCommentUseCase() *usecase.JiraComment {
	return usecase.NewJiraComment(c.Atlassian)
}

// ConfluenceSearchUseCase creates the page search use case.
func (c *Container) ConfluenceSearchUseCase() *usecase.ConfluenceSearch {
	return usecase.NewConfluenceSearch(c.Atlassian, c.Config.BaseURL)
}

// ConfluenceGetUseCase creates the page display use case.
func (c *Container) ConfluenceGetUseCase() *usecase.ConfluenceGet {
	return usecase.NewConfluenceGet(c.Atlassian, c.Config.BaseURL)
}

// ConfluenceCreateUseCase creates the page creation use case.
func (c *Container) ConfluenceCreateUseCase() *usecase.ConfluenceCreate {
	return usecase.NewConfluenceCreate(c.Atlassian, c.Config.BaseURL)
}

// ConfluenceUpdateUseCase creates the page update use case.
func (c *Container) ConfluenceUpdateUseCase() *usecase.ConfluenceUpdate {
	return usecase.NewConfluenceUpdate(c.Atlassian, c.Config.BaseURL)
}

// ConfluenceCommentUseCase creates the page comment use case.
func (c *Container) ConfluenceCommentUseCase() *usecase.ConfluenceComment {
	return usecase.NewConfluenceComment(c.Atlassian)
}
