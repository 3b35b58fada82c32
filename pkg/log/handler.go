package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// errFmtHandler is a slog handler that, when a record carries an error
// attribute, adds a stacktrace attribute extracted from cockroachdb/errors.
type errFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler so that records logged with
// ErrAttr also emit the error's stack trace.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &errFmtHandler{handler: handler}
}

func (eh *errFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *errFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			details := errors.GetSafeDetails(err).SafeDetails
			if len(details) > 0 {
				stacktrace = details[0]
			}
		}
		return false
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *errFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *errFmtHandler) WithGroup(g string) slog.Handler {
	return &errFmtHandler{handler: eh.handler.WithGroup(g)}
}
