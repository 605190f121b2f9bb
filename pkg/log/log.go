// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/dtfix/pkg/status"
)

// 🎯 Logger reports a rewrite run twice: plain lines on the console for the
// operator and structured events on zerolog for debugging.
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// WithFormatter replaces the console formatter
func (l *Logger) WithFormatter(f status.FileFormatter) *Logger {
	l.formatter = f
	return l
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogDiscovered logs the result of file discovery
func (l *Logger) LogDiscovered(ctx context.Context, pattern, label string, count int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatDiscovered(label, count))

	l.zlog.Info().
		Str("pattern", pattern).
		Str("label", label).
		Int("files", count).
		Msg("discovered files")
}

// 📝 LogFileResult logs the outcome of one file
func (l *Logger) LogFileResult(ctx context.Context, r status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatFileResult(r))

	if !r.OK() {
		l.zlog.Error().
			Err(r.Err).
			Str("file", r.Path).
			Msg("processing file")
		return
	}
	l.zlog.Debug().
		Str("file", r.Path).
		Str("status", r.Status.String()).
		Int("replacements", r.Replacements).
		Msg("file operation")
}

// 📝 LogSummary logs the final tally of a run
func (l *Logger) LogSummary(ctx context.Context, s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatSummary(s))

	l.zlog.Info().
		Int("discovered", s.Discovered).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Int("modified", s.Modified).
		Int("skipped", s.Skipped()).
		Msg("run complete")
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
