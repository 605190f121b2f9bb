package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/dtfix/cmd/dtfix/opts"
	"github.com/walteh/dtfix/pkg/config"
	"github.com/walteh/dtfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates the command that lists a preset's rules in order
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:       "rules <preset>",
		Short:     "Show the ordered rules of a preset",
		Args:      cobra.ExactArgs(1),
		ValidArgs: presetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := config.LookupPreset(args[0]); !ok {
				return errors.Errorf("unknown preset %q (available: %s)", args[0], presetList())
			}

			cfg := &config.Config{Preset: args[0], From: from, To: to}
			if err := cfg.Validate(); err != nil {
				return err
			}
			rules, err := cfg.BuildRules()
			if err != nil {
				return errors.Errorf("building rules: %w", err)
			}

			table, err := renderRules(rules)
			if err != nil {
				return errors.Errorf("rendering rules: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", cfg, table)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", config.DefaultFrom, "qualified type to replace")
	cmd.Flags().StringVar(&to, "to", config.DefaultTo, "qualified replacement type")

	return cmd
}

func renderRules(rules []text.Rule) (string, error) {
	data := pterm.TableData{{"#", "Kind", "From", "To", "Description"}}
	for i, r := range rules {
		data = append(data, []string{strconv.Itoa(i + 1), string(r.Kind), r.From, r.To, r.Description})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func presetNames() []string {
	var names []string
	for _, p := range config.Presets() {
		names = append(names, p.Name)
	}
	return names
}

func presetList() string {
	return strings.Join(presetNames(), ", ")
}
