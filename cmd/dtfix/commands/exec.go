package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/dtfix/cmd/dtfix/opts"
	"github.com/walteh/dtfix/pkg/config"
	"github.com/walteh/dtfix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// execute runs one validated rewrite job. Per-file failures are reported
// by the runner and do not make the command fail.
func execute(cmd *cobra.Command, o *opts.RootOpts, cfg *config.Config) error {
	rules, err := cfg.BuildRules()
	if err != nil {
		return errors.Errorf("building rules: %w", err)
	}

	runner, err := operation.NewRunner(operation.Options{
		Fs:      o.Fs,
		Pattern: cfg.Pattern,
		Label:   cfg.Label,
		Rules:   rules,
		Logger:  o.Logger,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	if _, err := runner.Run(cmd.Context()); err != nil {
		return errors.Errorf("running %s: %w", cfg, err)
	}
	return nil
}
