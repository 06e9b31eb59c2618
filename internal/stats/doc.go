// Package stats turns fetched answers into a model.Summary.
//
// Aggregate is a pure function over the answers and the comment counts of
// the top answers. Collect drives the whole run against a Source: it
// fetches the answers, picks the top ids, counts their comments and
// aggregates, in that order.
package stats
