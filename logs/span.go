package logs

import (
	"context"
	"log/slog"
)

// Span tags every record emitted while handling one input, so that the
// lex/parse/accumulate stages of a single expression can be correlated.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(SpanKey); v != nil {
		record.Add("logs.span", v.(Span))
	}
	return h.Handler.Handle(ctx, record)
}
