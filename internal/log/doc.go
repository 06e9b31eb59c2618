// Package log builds the slog logger used by stackstats.
//
// Log output always goes to stderr so that stdout carries nothing but the
// report. The logger is quiet by default (warnings and errors only) and
// prints request traces at debug level when --verbose is set.
//
// StackExchange accepts an application key and an OAuth access token as
// query parameters. Both are masked wherever they appear in a logged URL,
// and attributes whose names look like credentials are masked outright:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("stackexchange response",
//	    "url", "https://api.stackexchange.com/2.2/answers?key=abc&page=1",
//	)
//	// url="https://api.stackexchange.com/2.2/answers?key=***REDACTED***&page=1"
package log
