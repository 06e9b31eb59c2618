package model

import "encoding/json"

// Answer is an answer post as returned by the /answers endpoint.
// Only the fields used for aggregation are decoded; the API sends many more.
type Answer struct {
	// AnswerID is the unique identifier of the answer.
	AnswerID int64 `json:"answer_id"`

	// QuestionID is the identifier of the question this answer belongs to.
	QuestionID int64 `json:"question_id"`

	// Score is the vote score (upvotes minus downvotes).
	Score int `json:"score"`

	// IsAccepted is true if the question author accepted this answer.
	IsAccepted bool `json:"is_accepted"`
}

// Wrapper holds the fields of the common StackExchange response wrapper
// that every endpoint returns alongside its items.
type Wrapper struct {
	// HasMore reports whether another page exists after this one.
	HasMore bool `json:"has_more"`

	// QuotaMax is the daily request quota of the caller.
	QuotaMax int `json:"quota_max"`

	// QuotaRemaining is how many requests are left today.
	QuotaRemaining int `json:"quota_remaining"`

	// Backoff is set when the API asks the caller to slow down (seconds).
	Backoff int `json:"backoff,omitempty"`
}

// AnswerPage is one page of the /answers search.
type AnswerPage struct {
	Wrapper

	// Items are the answers on this page, in the order the API sent them.
	Items []Answer `json:"items"`
}

// CommentPage is one page of the /answers/{id}/comments listing.
// Comments are never inspected, only counted, so items stay undecoded.
type CommentPage struct {
	Wrapper

	Items []json.RawMessage `json:"items"`
}

// ErrorBody is the payload the API returns for non-2xx responses.
type ErrorBody struct {
	ErrorID      int    `json:"error_id"`
	ErrorName    string `json:"error_name"`
	ErrorMessage string `json:"error_message"`
}
