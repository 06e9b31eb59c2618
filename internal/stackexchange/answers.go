package stackexchange

import (
	"context"
	"strconv"

	"github.com/nao1215/stackstats/internal/model"
)

// AnswersResult is the outcome of FetchAnswers.
type AnswersResult struct {
	// Answers holds every item from every successful page, in page order.
	Answers []model.Answer

	// Pages is the number of pages that were fetched successfully.
	Pages int

	// Complete is true when the last page reported has_more=false.
	// It is false when a request failed and the loop stopped early.
	Complete bool

	// Err is the error that stopped the loop, or nil when Complete.
	Err error
}

// AnswersPage fetches a single page (1-based) of answers created between
// since and until (Unix seconds), sorted by descending votes.
func (c *Client) AnswersPage(ctx context.Context, page int, since, until int64) (*model.AnswerPage, error) {
	var out model.AnswerPage
	err := c.get(ctx, "/answers", nil, map[string]string{
		"page":     strconv.Itoa(page),
		"fromdate": formatInt(since),
		"todate":   formatInt(until),
		"order":    "desc",
		"sort":     "votes",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchAnswers walks the answer search page by page until the API reports
// has_more=false. The first failed page ends the walk; answers from the
// pages before it are returned.
//
// No ordering between since and until is enforced and no page limit is
// applied.
func (c *Client) FetchAnswers(ctx context.Context, since, until int64) AnswersResult {
	var result AnswersResult

	for page := 1; ; page++ {
		p, err := c.AnswersPage(ctx, page, since, until)
		if err != nil {
			c.logger.Debug("answer search truncated",
				"page", page,
				"answers", len(result.Answers),
				"error", err,
			)
			result.Err = err
			return result
		}

		result.Answers = append(result.Answers, p.Items...)
		result.Pages++

		c.logger.Debug("answer page fetched",
			"page", page,
			"items", len(p.Items),
			"hasMore", p.HasMore,
			"quotaRemaining", p.QuotaRemaining,
		)

		if !p.HasMore {
			result.Complete = true
			return result
		}
	}
}
