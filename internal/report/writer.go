package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nao1215/stackstats/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write renders the summary to the configured destination, followed by
	// a newline. Returns the number of bytes written.
	Write(summary *model.Summary) (int, error)
}

// NewWriter returns the Writer for format.
func NewWriter(format model.Format, output io.Writer) (Writer, error) {
	switch format {
	case model.FormatJSON:
		return NewJSONWriter(output), nil
	case model.FormatCSV:
		return NewCSVWriter(output), nil
	case model.FormatHTML:
		return NewHTMLWriter(output), nil
	default:
		return nil, fmt.Errorf("%w %q", model.ErrUnknownFormat, format)
	}
}

// Render returns the summary rendered in format, including the trailing newline.
func Render(format model.Format, summary *model.Summary) (string, error) {
	var buf bytes.Buffer
	w, err := NewWriter(format, &buf)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(summary); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeLine writes body and a terminating newline in one call.
func (b baseWriter) writeLine(body []byte) (int, error) {
	return b.output.Write(append(body, '\n'))
}
