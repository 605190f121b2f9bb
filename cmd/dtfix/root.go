package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/dtfix/cmd/dtfix/commands"
	"github.com/walteh/dtfix/cmd/dtfix/opts"
	"github.com/walteh/dtfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree. Every call gets its own options so
// tests can run commands side by side.
func newRootCmd() (*cobra.Command, error) {
	defaults, err := opts.LoadEnv()
	if err != nil {
		return nil, err
	}
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "dtfix",
		Short: "Rewrite one date-time type into another across source files",
		Long: `dtfix rewrites every occurrence of a date-time type (java.time.LocalDateTime
by default) into another (java.time.OffsetDateTime by default) in the files
matched by a glob pattern. Files are rewritten in place and one line is
printed per file, followed by a summary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, o)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.Closer == nil {
				return nil
			}
			if err := o.Closer.Close(); err != nil {
				return errors.Errorf("closing log file: %w", err)
			}
			return nil
		},
	}

	addRootFlags(rootCmd, o, defaults)

	rootCmd.AddCommand(commands.NewPresetCmds(o)...)
	rootCmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewRulesCmd(o),
		newVersionCmd(),
	)

	return rootCmd, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts, defaults *opts.Env) {
	cmd.PersistentFlags().StringVarP(&o.Root, "root", "C", defaults.Root, "directory the patterns are matched against ($DTFIX_ROOT)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", defaults.Debug, "enable debug logging ($DTFIX_DEBUG)")
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", defaults.LogFile, "also write JSON logs to this rotated file ($DTFIX_LOG_FILE)")
}

// setup wires logging and the rooted filesystem into the command context
func setup(cmd *cobra.Command, o *opts.RootOpts) error {
	zlog, closer := log.NewZerolog(cmd.ErrOrStderr(), log.Options{
		Debug:   o.Debug,
		LogFile: o.LogFile,
	})
	o.Closer = closer
	o.Logger = log.New(cmd.OutOrStdout(), zlog)

	root, err := filepath.Abs(o.Root)
	if err != nil {
		return errors.Errorf("resolving root %q: %w", o.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return errors.Errorf("checking root: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("root %q is not a directory", root)
	}
	o.Fs = afero.NewBasePathFs(afero.NewOsFs(), root)

	ctx := zlog.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, o.Logger)
	cmd.SetContext(ctx)

	zlog.Debug().Str("root", root).Str("command", cmd.Name()).Msg("starting")
	return nil
}
