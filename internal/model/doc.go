// Package model defines the core data structures used throughout stackstats.
//
// This package contains the following main types:
//   - Answer: A single answer record returned by the StackExchange API
//   - AnswerPage / CommentPage: One page of an API search response
//   - Summary: The aggregated report that is rendered for the user
//   - Average: A rounded mean that remembers whether its input was empty
//   - Format: The enumeration of supported output formats
package model
