package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and allow callers to use
// errors.Is() to tell usage problems apart from runtime failures.
var (
	// ErrMissingSince is returned when --since is not given.
	ErrMissingSince = errors.New(`required flag "since" not set`)

	// ErrMissingUntil is returned when --until is not given.
	ErrMissingUntil = errors.New(`required flag "until" not set`)

	// ErrInvalidOutputFormat is returned when the output format is not one
	// of json, csv or html.
	ErrInvalidOutputFormat = errors.New("invalid output format: must be one of json, csv, html")

	// ErrInvalidTimeout is returned when the timeout is negative.
	// Use 0 to wait indefinitely.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrEmptyBaseURL is returned when the API base URL is empty.
	ErrEmptyBaseURL = errors.New("invalid API URL: must not be empty")

	// ErrEmptySite is returned when the site parameter is empty.
	ErrEmptySite = errors.New("invalid site: must not be empty")
)
