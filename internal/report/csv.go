package report

import (
	"bytes"
	"io"
	"strconv"

	"github.com/nao1215/stackstats/internal/model"
)

// CSVWriter outputs the summary in a flat, line-oriented CSV dialect.
//
// Scalar keys become "key,value". The nested comment-count mapping starts
// on the key's own line and continues with one ",id,count" line per extra
// entry:
//
//	total_accepted_answers,2
//	top_ten_answers_comment_count,111,2
//	,222,0
//
// Values never contain commas or quotes, so no quoting is done. This is not
// RFC 4180 tabular CSV and encoding/csv cannot produce it.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in CSV format.
func (w *CSVWriter) Write(summary *model.Summary) (int, error) {
	var buf bytes.Buffer

	for _, e := range summary.Entries() {
		if !e.Nested {
			buf.WriteString(e.Key + "," + e.Value + "\n")
			continue
		}
		buf.WriteString(e.Key)
		for _, c := range e.Counts {
			buf.WriteString("," + strconv.FormatInt(c.AnswerID, 10) + "," + strconv.Itoa(c.Count) + "\n")
		}
	}

	return w.writeLine(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
