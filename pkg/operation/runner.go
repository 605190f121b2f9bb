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

package operation

import (
	"context"

	"github.com/spf13/afero"
	"github.com/walteh/dtfix/pkg/log"
	"github.com/walteh/dtfix/pkg/status"
	"github.com/walteh/dtfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains everything a run needs
type Options struct {
	// Fs is the root the pattern is matched against
	Fs afero.Fs
	// Pattern selects the files to rewrite
	Pattern string
	// Label names the kind of file in the discovery line
	Label string
	// Rules are applied in order to every file
	Rules []text.Rule
	// Logger reports progress, taken from the context when nil
	Logger *log.Logger
}

// 🏃 Runner executes a rewrite job
type Runner struct {
	fs       afero.Fs
	pattern  string
	label    string
	replacer *text.Replacer
	logger   *log.Logger
}

// 🏗️ NewRunner validates the options and compiles the rules
func NewRunner(opts Options) (*Runner, error) {
	if opts.Fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if opts.Pattern == "" {
		return nil, errors.Errorf("pattern is required")
	}

	replacer, err := text.NewReplacer(opts.Rules)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	return &Runner{
		fs:       opts.Fs,
		pattern:  opts.Pattern,
		label:    opts.Label,
		replacer: replacer,
		logger:   opts.Logger,
	}, nil
}

// 🏃 Run discovers files and rewrites them one at a time. Per-file failures
// are recorded in the summary and never returned as an error; only a bad
// pattern is.
func (r *Runner) Run(ctx context.Context) (*status.Summary, error) {
	logger := r.logger
	if logger == nil {
		logger = log.FromContext(ctx)
	}

	files, err := Discover(ctx, r.fs, r.pattern)
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}
	logger.LogDiscovered(ctx, r.pattern, r.label, len(files))

	summary := status.NewSummary(len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			logger.Warningf("run cancelled, %d files not processed", summary.Discovered-len(summary.Results))
			break
		}

		result := ProcessFile(ctx, r.fs, path, r.replacer)
		summary.Record(result)
		logger.LogFileResult(ctx, result)
	}

	logger.LogSummary(ctx, summary)
	return summary, nil
}
