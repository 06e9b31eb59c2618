package report

import (
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/stackstats/internal/model"
)

// HTMLWriter outputs the summary as a bordered two-column HTML table.
// The comment-count mapping is rendered as a nested table in its row.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in HTML format.
func (w *HTMLWriter) Write(summary *model.Summary) (int, error) {
	var sb strings.Builder

	sb.WriteString("<table border=\"1\">\n")
	for _, e := range summary.Entries() {
		key := html.EscapeString(e.Key)
		if !e.Nested {
			sb.WriteString("<tr> <th>" + key + "</th> <td>" + html.EscapeString(e.Value) + "</td> </tr>\n")
			continue
		}

		sb.WriteString("<tr> <th>" + key + "</th>\n")
		sb.WriteString(" <td><table>\n")
		for _, c := range e.Counts {
			sb.WriteString("<tr><th>" + strconv.FormatInt(c.AnswerID, 10) + "</th> <td>" + strconv.Itoa(c.Count) + "</td></tr>\n")
		}
		sb.WriteString("</table></td></tr>\n")
	}
	sb.WriteString("</table>")

	return w.writeLine([]byte(sb.String()))
}
