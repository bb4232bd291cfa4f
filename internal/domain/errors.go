package domain

import "errors"

// Domain errors.
var (
	ErrMissingCredentials = errors.New("missing required Atlassian environment variables")
	ErrEmptyText          = errors.New("comment text cannot be empty")
	ErrEmptyBody          = errors.New("page body cannot be empty")
	ErrEmptyQuery         = errors.New("search query cannot be empty")
)
