package usecase

import (
	"context"

	"atl/internal/domain"
)

// TestConnectionOutput contains the result of the connectivity check.
type TestConnectionOutput struct {
	Jira       bool
	Confluence bool
}

// TestConnection is the use case for checking connectivity to both
// services. Failures are reported, never propagated.
type TestConnection struct {
	atlassian domain.Atlassian
}

// NewTestConnection creates a new TestConnection use case.
func NewTestConnection(atlassian domain.Atlassian) *TestConnection {
	return &TestConnection{atlassian: atlassian}
}

// Execute probes Jira and Confluence in sequence.
func (uc *TestConnection) Execute(ctx context.Context) (*TestConnectionOutput, error) {
	return &TestConnectionOutput{
		Jira:       uc.atlassian.TestJira(ctx),
		Confluence: uc.atlassian.TestConfluence(ctx),
	}, nil
}
