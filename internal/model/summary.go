package model

import (
	"bytes"
	"strconv"
)

// Summary keys, in the order they are rendered.
const (
	KeyTotalAcceptedAnswers        = "total_accepted_answers"
	KeyAcceptedAnswersAverageScore = "accepted_answers_average_score"
	KeyAverageAnswersPerQuestion   = "average_answers_per_question"
	KeyTopTenAnswersCommentCount   = "top_ten_answers_comment_count"
)

// Summary is the aggregated report for one date range.
// It is built once by the aggregator and then handed to a report writer.
type Summary struct {
	// TotalAcceptedAnswers is the number of fetched answers flagged as accepted.
	TotalAcceptedAnswers int `json:"total_accepted_answers"`

	// AcceptedAnswersAverageScore is the mean score of the accepted answers.
	AcceptedAnswersAverageScore Average `json:"accepted_answers_average_score"`

	// AverageAnswersPerQuestion is the mean number of fetched answers per
	// distinct question id.
	AverageAnswersPerQuestion Average `json:"average_answers_per_question"`

	// TopTenAnswersCommentCount maps the highest scored answer ids to
	// their number of comments.
	TopTenAnswersCommentCount CommentCounts `json:"top_ten_answers_comment_count"`
}

// Entry is one top-level key of a Summary, ready for rendering.
// Exactly one of Value and Counts is meaningful: Nested tells which.
type Entry struct {
	Key    string
	Value  string
	Nested bool
	Counts []CommentCount
}

// Entries returns the summary as an ordered list of key/value pairs.
// Report writers iterate over this instead of the struct fields so that
// every format emits the keys in the same order.
func (s *Summary) Entries() []Entry {
	return []Entry{
		{Key: KeyTotalAcceptedAnswers, Value: strconv.Itoa(s.TotalAcceptedAnswers)},
		{Key: KeyAcceptedAnswersAverageScore, Value: s.AcceptedAnswersAverageScore.String()},
		{Key: KeyAverageAnswersPerQuestion, Value: s.AverageAnswersPerQuestion.String()},
		{Key: KeyTopTenAnswersCommentCount, Nested: true, Counts: s.TopTenAnswersCommentCount.All()},
	}
}

// CommentCount pairs an answer id with its number of comments.
type CommentCount struct {
	AnswerID int64
	Count    int
}

// CommentCounts is an insertion-ordered mapping from answer id to comment count.
// The zero value is an empty mapping ready to use.
type CommentCounts struct {
	entries []CommentCount
}

// NewCommentCounts builds a mapping by pairing ids and counts positionally.
// Pairing stops at the shorter of the two slices. A repeated id keeps the
// position of its first occurrence and takes the later count.
func NewCommentCounts(ids []int64, counts []int) CommentCounts {
	var cc CommentCounts
	for i := 0; i < len(ids) && i < len(counts); i++ {
		cc.Set(ids[i], counts[i])
	}
	return cc
}

// Set records count for id.
func (c *CommentCounts) Set(id int64, count int) {
	for i := range c.entries {
		if c.entries[i].AnswerID == id {
			c.entries[i].Count = count
			return
		}
	}
	c.entries = append(c.entries, CommentCount{AnswerID: id, Count: count})
}

// Get returns the count recorded for id.
func (c CommentCounts) Get(id int64) (int, bool) {
	for _, e := range c.entries {
		if e.AnswerID == id {
			return e.Count, true
		}
	}
	return 0, false
}

// Len returns the number of answer ids in the mapping.
func (c CommentCounts) Len() int {
	return len(c.entries)
}

// All returns a copy of the entries in insertion order.
func (c CommentCounts) All() []CommentCount {
	out := make([]CommentCount, len(c.entries))
	copy(out, c.entries)
	return out
}

// MarshalJSON renders the mapping as a JSON object keyed by answer id,
// preserving insertion order.
func (c CommentCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatInt(e.AnswerID, 10))
		buf.WriteString(`":`)
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
