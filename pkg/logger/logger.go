// Package logger provides structured logging for the querykit packages.
// With logger, you can use context to add logging details to your call stack.
//
// The output is produced by log/slog handlers, configured through slogx.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/go-softwarelab/common/pkg/slogx"
)

type Logger struct {
	// Out is the destination of the log entries, os.Stdout when nil.
	Out io.Writer
	// Level is the minimum level that gets written out.
	// When empty, LevelInfo is used.
	Level Level

	outLock sync.Mutex

	handler struct {
		once   sync.Once
		logger *slog.Logger
	}
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelDebug, msg, ds)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelInfo, msg, ds)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelWarn, msg, ds)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelError, msg, ds)
}

func (l *Logger) log(ctx context.Context, level Level, msg string, ds []LoggingDetail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var attrs []slog.Attr
	attrs = append(attrs, getLoggingDetailsFromContext(ctx)...)
	for _, d := range ds {
		attrs = append(attrs, d.attrs()...)
	}
	l.slog().LogAttrs(ctx, level.slogLevel(), msg, attrs...)
}

// slog returns the handler backed logger.
// Level filtering happens in Logger.log, so the handler itself accepts everything.
func (l *Logger) slog() *slog.Logger {
	l.handler.once.Do(func() {
		l.handler.logger = slogx.NewBuilder().
			WithSlogLevel(slog.LevelDebug).
			WritingTo(&writer{Logger: l}).
			WithJSONFormat().
			Logger()
	})
	return l.handler.logger
}

// writer resolves Logger.Out on every write, so Out can be swapped after the first log call.
type writer struct{ Logger *Logger }

func (w *writer) Write(p []byte) (n int, err error) {
	w.Logger.outLock.Lock()
	defer w.Logger.outLock.Unlock()
	var out io.Writer = os.Stdout
	if w.Logger.Out != nil {
		out = w.Logger.Out
	}
	return out.Write(p)
}
