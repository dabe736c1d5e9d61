package log

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Log records msg with the program counter skip frames up the stack
// so that source attribution points at the call site, not at these
// helpers.
func Log(logger *slog.Logger, lvl slog.Level, skip int, msg string, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(context.Background(), r)
}

func Debug(logger *slog.Logger, msg string, args ...any) {
	Log(logger, slog.LevelDebug, 3, msg, args...)
}
func Info(logger *slog.Logger, msg string, args ...any) {
	Log(logger, slog.LevelInfo, 3, msg, args...)
}
func Warn(logger *slog.Logger, msg string, args ...any) {
	Log(logger, slog.LevelWarn, 3, msg, args...)
}
func Error(logger *slog.Logger, msg string, args ...any) {
	Log(logger, slog.LevelError, 3, msg, args...)
}
