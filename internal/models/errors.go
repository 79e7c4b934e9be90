package models

import "errors"

// Sentinel errors shared by services and handlers
// Wrap with fmt.Errorf("...: %w", err) and check with errors.Is
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrCityNotFound  = errors.New("city not found")
	ErrNotFound      = errors.New("not found")
	ErrUpstream      = errors.New("upstream provider error")
	ErrUnreachable   = errors.New("upstream unreachable")
	ErrMissingAPIKey = errors.New("API key not configured")
)
