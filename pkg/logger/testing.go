package logger

import (
	"io"

	"github.com/go-softwarelab/common/pkg/slogx"
)

type testingTB interface {
	Helper()
	Cleanup(func())
	Log(args ...any)
}

// Stub redirects logger.Default into a buffer and enables every level.
// Default's configuration is restored when the test finishes.
func Stub(tb testingTB) *slogx.CollectingLogsWriter {
	tb.Helper()
	out := slogx.NewCollectingLogsWriter()
	swap(tb, out, LevelDebug)
	return out
}

// LogWithTB redirects logger.Default into the test's own log output.
func LogWithTB(tb testingTB) {
	tb.Helper()
	swap(tb, slogx.NewTestingTBWriter(tb), LevelDebug)
}

func swap(tb testingTB, out io.Writer, level Level) {
	Default.outLock.Lock()
	ogOut, ogLevel := Default.Out, Default.Level
	Default.Out, Default.Level = out, level
	Default.outLock.Unlock()
	tb.Cleanup(func() {
		Default.outLock.Lock()
		defer Default.outLock.Unlock()
		Default.Out, Default.Level = ogOut, ogLevel
	})
}
