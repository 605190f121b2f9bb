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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dtfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_discovered",
			op: func(t *testing.T, logger *Logger) {
				logger.LogDiscovered(context.Background(), "src/**/repo/*.java", "repository", 2)
			},
			wantLogs: []string{
				"Found 2 repository files to process",
			},
		},
		{
			name: "log_file_results",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), status.Succeeded("a/repo/A.java", 4, true))
				logger.LogFileResult(context.Background(), status.Failed("a/repo/B.java", errors.New("reading file: denied")))
			},
			wantLogs: []string{
				"Fixed a/repo/A.java",
				"Error processing a/repo/B.java: reading file: denied",
			},
		},
		{
			name: "log_summary",
			op: func(t *testing.T, logger *Logger) {
				s := status.NewSummary(2)
				s.Record(status.Succeeded("a", 1, true))
				logger.LogSummary(context.Background(), s)
			},
			wantLogs: []string{
				"Successfully processed 1 out of 2 files",
			},
		},
		{
			name: "log_formatted_warning",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("run cancelled, %d files not processed", 3)
			},
			wantLogs: []string{
				"⚠️  run cancelled, 3 files not processed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.Nop())

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestLoggerStructuredEvents(t *testing.T) {
	events := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(events).Level(zerolog.DebugLevel))

	logger.LogFileResult(context.Background(), status.Succeeded("A.java", 3, true))

	var event map[string]any
	require.NoError(t, json.Unmarshal(events.Bytes(), &event))
	assert.Equal(t, "A.java", event["file"])
	assert.Equal(t, "modified", event["status"])
	assert.EqualValues(t, 3, event["replacements"])
}

func TestNewZerolog(t *testing.T) {
	t.Run("debug_level", func(t *testing.T) {
		zlog, closer := NewZerolog(io.Discard, Options{Debug: true})
		defer closer.Close()
		assert.Equal(t, zerolog.DebugLevel, zlog.GetLevel())
	})

	t.Run("info_level_by_default", func(t *testing.T) {
		zlog, closer := NewZerolog(io.Discard, Options{})
		defer closer.Close()
		assert.Equal(t, zerolog.InfoLevel, zlog.GetLevel())
	})

	t.Run("log_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dtfix.log")
		stderr := &bytes.Buffer{}

		zlog, closer := NewZerolog(stderr, Options{LogFile: path})
		zlog.Info().Str("file", "A.java").Msg("processing file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"file":"A.java"`)
		assert.Contains(t, stderr.String(), "processing file")
	})
}
