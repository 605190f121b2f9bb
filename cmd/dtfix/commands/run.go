package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/dtfix/cmd/dtfix/opts"
	"github.com/walteh/dtfix/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates the command that runs a rule-set file
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	var configFile, pattern string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the rewrite job described by a rule-set file",
		Long: `Run loads a YAML, JSON or HCL rule-set file and applies it.
It will:
1. Apply the preset rules named by the file, if any
2. Apply the file's own rules in the order they are declared
3. Print one line per file and a final summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			if pattern != "" {
				cfg.Pattern = pattern
				if err := cfg.Validate(); err != nil {
					return errors.Errorf("validating pattern override: %w", err)
				}
			}

			return execute(cmd, o, cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "rule-set file (.yaml, .yml, .json, .jsonc or .hcl)")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "override the file's glob pattern")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
