// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by key/value pairs:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to load trips", err)
//
// A bare error argument is attached under the "error" field.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger("production", os.Stderr)
}

// Init configures the global logger for the given environment.
// "development" writes colored console output at debug level, anything else
// writes JSON at info level.
func Init(environment string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(environment, os.Stderr)
}

// SetOutput redirects the global logger, keeping the environment format.
func SetOutput(environment string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(environment, w)
}

func newLogger(environment string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	out := w
	if environment == "development" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) {
	emit(zerolog.DebugLevel, msg, args)
}

func Info(msg string, args ...any) {
	emit(zerolog.InfoLevel, msg, args)
}

func Warn(msg string, args ...any) {
	emit(zerolog.WarnLevel, msg, args)
}

func Error(msg string, args ...any) {
	emit(zerolog.ErrorLevel, msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	emit(zerolog.FatalLevel, msg, args)
}

func emit(level zerolog.Level, msg string, args []any) {
	mu.RLock()
	l := log
	mu.RUnlock()

	ev := l.WithLevel(level)
	if ev == nil {
		return
	}
	applyFields(ev, args)
	ev.Msg(msg)

	if level == zerolog.FatalLevel {
		os.Exit(1)
	}
}

// applyFields consumes args as key/value pairs. Errors without a key go to
// the "error" field and any other unpaired value lands under "extra".
func applyFields(ev *zerolog.Event, args []any) {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			ev.Err(v)
		case string:
			if i+1 < len(args) {
				ev.Interface(v, args[i+1])
				i++
				continue
			}
			ev.Str("extra", v)
		default:
			ev.Str("extra", fmt.Sprint(v))
		}
	}
}
