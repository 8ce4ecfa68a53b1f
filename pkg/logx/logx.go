// Package logx is a thin leveled logging facade over log/slog used across
// the codebase so call sites stay terse.
package logx

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var levelVar slog.LevelVar

var logger atomic.Pointer[slog.Logger]

func init() {
	levelVar.Set(LevelInfo)
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &levelVar,
	})))
}

// SetLevel adjusts the minimum emitted level.
func SetLevel(l Level) { levelVar.Set(l) }

func Debug(msg string, args ...any) { logger.Load().Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Load().Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Load().Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Load().Error(msg, args...) }

func Debugf(format string, args ...any) { logger.Load().Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { logger.Load().Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { logger.Load().Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { logger.Load().Error(fmt.Sprintf(format, args...)) }

// Fatalf logs at error level and exits.
func Fatalf(format string, args ...any) {
	logger.Load().Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
