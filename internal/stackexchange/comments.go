package stackexchange

import (
	"context"

	"github.com/nao1215/stackstats/internal/model"
)

// CountsResult is the outcome of CountComments.
type CountsResult struct {
	// Counts holds one comment count per requested id, in request order.
	// When a request fails the slice is shorter than the id list.
	Counts []int

	// Complete is true when every id was counted.
	Complete bool

	// Err is the error that stopped counting, or nil when Complete.
	Err error
}

// CommentCount returns the number of comments on the first page of the
// answer's comment listing.
func (c *Client) CommentCount(ctx context.Context, answerID int64) (int, error) {
	var out model.CommentPage
	err := c.get(ctx, "/answers/{id}/comments",
		map[string]string{"id": formatInt(answerID)},
		map[string]string{
			"order": "desc",
			"sort":  "creation",
		}, &out)
	if err != nil {
		return 0, err
	}
	return len(out.Items), nil
}

// CountComments issues one request per id, in order. The first failed
// request ends the loop and the counts gathered before it are returned.
func (c *Client) CountComments(ctx context.Context, answerIDs []int64) CountsResult {
	result := CountsResult{Counts: make([]int, 0, len(answerIDs))}

	for _, id := range answerIDs {
		n, err := c.CommentCount(ctx, id)
		if err != nil {
			c.logger.Debug("comment counting truncated",
				"answerID", id,
				"counted", len(result.Counts),
				"requested", len(answerIDs),
				"error", err,
			)
			result.Err = err
			return result
		}
		result.Counts = append(result.Counts, n)
	}

	result.Complete = true
	return result
}
