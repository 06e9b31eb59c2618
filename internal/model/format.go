package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when an output format name is not recognized.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how a Summary is rendered.
// It implements pflag.Value so it can be bound directly to a CLI flag,
// which rejects unknown names while the command line is parsed.
type Format string

const (
	// FormatJSON renders the summary as a single JSON object.
	FormatJSON Format = "json"

	// FormatCSV renders one "key,value" line per summary key.
	FormatCSV Format = "csv"

	// FormatHTML renders the summary as a two-column HTML table.
	FormatHTML Format = "html"
)

// Formats returns all supported formats in the order they are documented.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatHTML}
}

// ParseFormat converts a name into a Format. Matching is case-sensitive.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (choose from %s)", ErrUnknownFormat, name, formatList())
}

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	_, err := ParseFormat(string(f))
	return err == nil
}

// String implements fmt.Stringer and pflag.Value.
func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *Format) Set(name string) error {
	parsed, err := ParseFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// formatList returns the supported format names joined by commas.
func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
