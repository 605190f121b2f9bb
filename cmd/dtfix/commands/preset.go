package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/dtfix/cmd/dtfix/opts"
	"github.com/walteh/dtfix/pkg/config"
)

// NewPresetCmds creates one command per built-in preset
func NewPresetCmds(o *opts.RootOpts) []*cobra.Command {
	var cmds []*cobra.Command
	for _, p := range config.Presets() {
		cmds = append(cmds, newPresetCmd(o, p))
	}
	return cmds
}

func newPresetCmd(o *opts.RootOpts, p config.Preset) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   p.Name,
		Short: fmt.Sprintf("Fix %s files: %s", p.Label, p.Description),
		Long: fmt.Sprintf(`Rewrite every %s file matching

  %s

relative to --root. Run "dtfix rules %s" to list the rules in order.`, p.Label, p.Pattern, p.Name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{Preset: p.Name, From: from, To: to}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return execute(cmd, o, cfg)
		},
	}

	cmd.Flags().StringVar(&from, "from", config.DefaultFrom, "qualified type to replace")
	cmd.Flags().StringVar(&to, "to", config.DefaultTo, "qualified replacement type")

	return cmd
}
