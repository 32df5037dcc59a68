package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuestion indicates a question with no content was submitted.
	ErrEmptyQuestion = errors.New("question is required")

	// ErrInvalidLocale indicates a locale other than en or es was requested.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrUnknownIntent indicates an intent name outside the closed set.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrCorpusUnavailable indicates the knowledge base could not be loaded.
	// The router still answers, degrading to a clarify response.
	ErrCorpusUnavailable = errors.New("knowledge base unavailable")

	// ErrProviderNotConfigured indicates the generation provider is missing credentials.
	ErrProviderNotConfigured = errors.New("generation provider not configured")

	// ErrInvalidSetting indicates a configuration value failed validation.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrRateLimited indicates the caller exceeded the request rate.
	ErrRateLimited = errors.New("rate limited")
)
