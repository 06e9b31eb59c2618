// Package report provides report generation and output functionality.
//
// This package contains writers for the three supported output formats:
//   - JSONWriter: A single JSON object
//   - CSVWriter: One "key,value" line per summary key
//   - HTMLWriter: A two-column HTML table
//
// The set of formats is closed: NewWriter switches over model.Format and
// there is no registration mechanism. Every writer ends its output with a
// single newline.
package report
