// Package stackexchange is a small client for the StackExchange REST API.
//
// It covers the two endpoints stackstats needs:
//   - GET /answers: searched page by page for a date range, sorted by votes
//   - GET /answers/{id}/comments: fetched once per answer to count comments
//
// The paginated fetch loops never fail. The first request that does not
// succeed ends the loop and whatever was gathered so far is returned, together with a Complete flag and the error that stopped the
// loop. Callers that only want the data can ignore both; callers that want
// to surface truncation can inspect them.
//
// There is no retry, backoff or rate-limit handling. Requests run
// sequentially and block until the server answers or the optional
// per-request timeout expires.
package stackexchange
