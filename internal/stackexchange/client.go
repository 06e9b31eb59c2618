package stackexchange

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nao1215/stackstats/internal/model"
)

const (
	// DefaultBaseURL is the root of version 2.2 of the API.
	DefaultBaseURL = "https://api.stackexchange.com/2.2"

	// DefaultSite is the API site parameter for Stack Overflow.
	DefaultSite = "stackoverflow"

	// DefaultUserAgent identifies stackstats in HTTP requests.
	DefaultUserAgent = "stackstats (+https://github.com/nao1215/stackstats)"
)

// Client sends requests to the StackExchange API.
type Client struct {
	// rc is the underlying resty client with base URL and timeout applied.
	rc *resty.Client

	// site is sent as the "site" query parameter on every request.
	site string

	// logger receives debug output about requests and truncated loops.
	logger *slog.Logger
}

// options collects Option values before the resty client is built.
type options struct {
	baseURL    string
	site       string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL overrides DefaultBaseURL. Used by tests to point the client
// at a local server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithSite overrides DefaultSite.
func WithSite(site string) Option {
	return func(o *options) {
		o.site = site
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient makes the client send requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a Client. It does not contact the API.
func New(opts ...Option) *Client {
	o := options{
		baseURL:   DefaultBaseURL,
		site:      DefaultSite,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(o.baseURL)
	rc.SetLogger(restyLogger{logger: o.logger})
	rc.SetHeader("User-Agent", o.userAgent)
	rc.SetHeader("Accept", "application/json")
	if o.timeout > 0 {
		rc.SetTimeout(o.timeout)
	}

	c := &Client{
		rc:     rc,
		site:   o.site,
		logger: o.logger,
	}
	rc.OnAfterResponse(c.logResponse)

	return c
}

// logResponse logs every completed request at debug level.
func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug("stackexchange response",
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)
	return nil
}

// get issues a GET for path with the site parameter added and decodes a
// successful body into result. The response body is always drained and
// closed by resty before get returns.
func (c *Client) get(ctx context.Context, path string, pathParams, query map[string]string, result any) error {
	var apiErr model.ErrorBody

	req := c.rc.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetQueryParam("site", c.site).
		ForceContentType("application/json").
		SetResult(result).
		SetError(&apiErr)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRequest, path, err)
	}
	if !resp.IsSuccess() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			ID:         apiErr.ErrorID,
			Name:       apiErr.ErrorName,
			Message:    apiErr.ErrorMessage,
		}
	}
	return nil
}

// restyLogger routes resty's internal messages into slog so that nothing
// is printed to stderr outside of the configured logger.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Debug("resty: " + fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Debug("resty: " + fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug("resty: " + fmt.Sprintf(format, v...))
}

// formatInt is strconv.FormatInt in base 10.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
