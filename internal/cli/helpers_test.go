package cli

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"atl/internal/app"
	"atl/internal/domain"
)

// newTestContainer creates a container around a mock gateway.
func newTestContainer(gateway domain.Atlassian) *app.Container {
	cfg := &domain.Config{
		BaseURL:  "https://acme.atlassian.net",
		Email:    "me@example.com",
		APIToken: "secret",
		Timeout:  5 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewWithGateway(cfg, gateway, logger)
}

// executeCommand runs the root command with args and captures stdout.
func executeCommand(c *app.Container, args ...string) (string, error) {
	return executeCommandWithInput(c, nil, args...)
}

// executeCommandWithInput runs the root command with stdin attached.
func executeCommandWithInput(c *app.Container, in io.Reader, args ...string) (string, error) {
	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	if in != nil {
		root.SetIn(in)
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
