package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/stackstats/internal/model"
)

// JSONWriter outputs the summary as one JSON object on a single line.
//
// Keys keep the summary order and separators are ", " and ": ", e.g.
//
//	{"total_accepted_answers": 2, "top_ten_answers_comment_count": {"111": 2}}
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in JSON format.
func (w *JSONWriter) Write(summary *model.Summary) (int, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return 0, err
	}
	return w.writeLine(spaceSeparators(data))
}

// spaceSeparators inserts a space after every ',' and ':' of compact JSON
// that is not inside a string literal.
func spaceSeparators(compact []byte) []byte {
	out := make([]byte, 0, len(compact)+len(compact)/4)
	inString, escaped := false, false

	for _, c := range compact {
		out = append(out, c)

		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && (c == ',' || c == ':'):
			out = append(out, ' ')
		}
	}
	return out
}
