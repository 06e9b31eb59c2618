package stats

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/stackstats/internal/model"
	"github.com/nao1215/stackstats/internal/stackexchange"
)

// ErrIncomplete marks a result built from truncated data.
var ErrIncomplete = errors.New("result is incomplete")

// Source is where Collect gets its data. *stackexchange.Client implements it.
type Source interface {
	FetchAnswers(ctx context.Context, since, until int64) stackexchange.AnswersResult
	CountComments(ctx context.Context, answerIDs []int64) stackexchange.CountsResult
}

// Result is the outcome of Collect.
type Result struct {
	// Summary is always set, even when the data was truncated.
	Summary *model.Summary

	// Answers is the number of answers the summary was computed from.
	Answers int

	// Complete is false if either fetch loop stopped early.
	Complete bool

	// Err joins the errors that truncated the fetch loops, wrapped in
	// ErrIncomplete. It is nil when Complete.
	Err error
}

// Collect fetches the answers created between since and until, counts the
// comments of the top answers and aggregates everything into a summary.
//
// Failed requests never make Collect fail; they only shorten the data the
// summary is computed from, which is reported through Result.Complete.
func Collect(ctx context.Context, src Source, since, until int64, logger *slog.Logger) *Result {
	if logger == nil {
		logger = slog.Default()
	}

	answers := src.FetchAnswers(ctx, since, until)
	logger.Debug("answers fetched",
		"answers", len(answers.Answers),
		"pages", answers.Pages,
		"complete", answers.Complete,
	)

	ids := TopIDs(answers.Answers, TopN)
	counts := src.CountComments(ctx, ids)
	logger.Debug("comments counted",
		"requested", len(ids),
		"counted", len(counts.Counts),
		"complete", counts.Complete,
	)

	result := &Result{
		Summary:  Aggregate(answers.Answers, counts.Counts),
		Answers:  len(answers.Answers),
		Complete: answers.Complete && counts.Complete,
	}
	if !result.Complete {
		result.Err = errors.Join(ErrIncomplete, answers.Err, counts.Err)
	}
	return result
}
