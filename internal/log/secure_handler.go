package log

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
)

// MaskValue replaces every redacted value.
const MaskValue = "***REDACTED***"

// sensitiveKeys are attribute names whose values are never logged.
var sensitiveKeys = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"key":           true,
	"api_key":       true,
	"apikey":        true,
	"access_token":  true,
	"client_secret": true,
}

// sensitiveKeywords mark an attribute name as sensitive when they appear
// anywhere in it.
var sensitiveKeywords = []string{"token", "secret", "password"}

// sensitiveParams are URL query parameters masked inside logged URLs.
var sensitiveParams = []string{"key", "access_token"}

// SecureHandler wraps an slog.Handler and masks credentials in attributes
// before they reach it.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler wraps handler. A nil handler falls back to
// slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled delegates to the wrapped handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs masks attrs before attaching them.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(masked)}
}

// WithGroup returns a handler that nests attributes under name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

func sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, ga := range group {
			masked[i] = sanitizeAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	switch v := a.Value.Any().(type) {
	case string:
		if s, ok := redactURL(v); ok {
			return slog.String(a.Key, s)
		}
	case *url.URL:
		if v != nil {
			if s, ok := redactURL(v.String()); ok {
				return slog.String(a.Key, s)
			}
		}
	}
	return a
}

// isSensitiveKey reports whether an attribute name denotes a credential.
func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if sensitiveKeys[k] {
		return true
	}
	for _, kw := range sensitiveKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

// redactURL masks sensitive query parameters in raw. The second result is
// false when raw is not a URL with a query or carries nothing to mask.
func redactURL(raw string) (string, bool) {
	if !strings.Contains(raw, "?") {
		return raw, false
	}
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw, false
	}
	q := u.Query()
	changed := false
	for _, p := range sensitiveParams {
		if _, ok := q[p]; ok {
			q.Set(p, MaskValue)
			changed = true
		}
	}
	if !changed {
		return raw, false
	}
	u.RawQuery = encodeQuery(q)
	return u.String(), true
}

// encodeQuery is url.Values.Encode without escaping MaskValue, so the
// marker stays readable in the log line.
func encodeQuery(q url.Values) string {
	enc := q.Encode()
	return strings.ReplaceAll(enc, url.QueryEscape(MaskValue), MaskValue)
}

// NewSecureLogger returns a text logger writing to w. Verbose selects the
// debug level; otherwise only warnings and errors are written.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
