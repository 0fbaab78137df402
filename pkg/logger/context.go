package logger

import (
	"context"
	"log/slog"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []LoggingDetail
}

// ContextWith attaches logging details to the context,
// every log call made with the returned context will include them.
func ContextWith(ctx context.Context, lds ...LoggingDetail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.Details = lds
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

// getLoggingDetailsFromContext returns the details attached to the context,
// the outermost details come first so the innermost can override them.
func getLoggingDetailsFromContext(ctx context.Context) []slog.Attr {
	v, ok := lookupValue(ctx)
	if !ok {
		return nil
	}
	var chain []*ctxValue
	for ; v != nil; v = v.Super {
		chain = append(chain, v)
	}
	var attrs []slog.Attr
	for i := len(chain) - 1; 0 <= i; i-- {
		for _, d := range chain[i].Details {
			attrs = append(attrs, d.attrs()...)
		}
	}
	return attrs
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue)
	return ptr, ok
}
