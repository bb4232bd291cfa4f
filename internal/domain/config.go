package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://example.atlassian.net"

// DefaultTimeout is the default HTTP timeout for Atlassian requests.
const DefaultTimeout = 30 * time.Second

// Config holds the Atlassian Cloud connection settings.
// It is loaded once at startup and immutable for the process lifetime.
type Config struct {
	BaseURL  string        // Site base URL, no trailing slash
	Email    string        // Account email for basic auth
	APIToken string        // API token for basic auth
	Timeout  time.Duration // HTTP request timeout
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Validate checks that the mandatory credentials are present.
// It returns an error naming every missing variable so the user can
// fix all of them at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Email == "" {
		missing = append(missing, "ATLASSIAN_EMAIL")
	}
	if c.APIToken == "" {
		missing = append(missing, "ATLASSIAN_API_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// JiraAPIURL returns the Jira REST v3 API root.
func (c *Config) JiraAPIURL() string {
	return c.BaseURL + "/rest/api/3"
}

// ConfluenceAPIURL returns the Confluence v2 API root.
func (c *Config) ConfluenceAPIURL() string {
	return c.BaseURL + "/wiki/api/v2"
}

// ConfluenceContentURL returns the legacy Confluence content API root,
// which still serves search, page CRUD and comments.
func (c *Config) ConfluenceContentURL() string {
	return c.BaseURL + "/wiki/rest/api/content"
}
