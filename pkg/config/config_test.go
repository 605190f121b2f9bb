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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dtfix/pkg/text"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DTFIX_TEST_SRC", "app/src")

	tests := []struct {
		name        string
		file        string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml_custom_rules",
			file: "rules.yaml",
			config: `
pattern: "app/**/*.java"
label: application
rules:
  - kind: regex
    from: 'ZoneId\.systemDefault\(\)'
    to: ZoneOffset.UTC
    description: pin the zone
  - from: LocalDate
    to: OffsetDate
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "app/**/*.java", cfg.Pattern, "pattern should match")
				assert.Equal(t, "application", cfg.Label, "label should match")
				assert.Equal(t, DefaultFrom, cfg.From, "from should default")
				assert.Equal(t, DefaultTo, cfg.To, "to should default")

				rules, err := cfg.BuildRules()
				require.NoError(t, err)
				require.Len(t, rules, 2, "should have 2 rules")
				assert.Equal(t, text.KindRegex, rules[0].Kind)
				assert.Equal(t, "pin the zone", rules[0].Description)
				assert.Equal(t, text.RuleKind(""), rules[1].Kind, "kind stays empty until the replacer defaults it")
			},
		},
		{
			name: "yaml_preset_with_extra_rule",
			file: "rules.yml",
			config: `
preset: repos
rules:
  - kind: identifier
    from: LocalDate
    to: OffsetDate
`,
			check: func(t *testing.T, cfg *Config) {
				p, ok := LookupPreset("repos")
				require.True(t, ok)
				assert.Equal(t, p.Pattern, cfg.Pattern, "pattern should come from preset")
				assert.Equal(t, "repository", cfg.Label, "label should come from preset")

				rules, err := cfg.BuildRules()
				require.NoError(t, err)
				require.Len(t, rules, 3, "preset rules then custom rule")
				assert.Equal(t, "LocalDate", rules[2].From)
			},
		},
		{
			name: "json_config",
			file: "rules.json",
			config: `{
				"pattern": "src/**/*.java",
				"from": "java.time.LocalDateTime",
				"to": "java.time.ZonedDateTime",
				"preset": "services"
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "src/**/*.java", cfg.Pattern, "explicit pattern wins over preset")
				assert.Equal(t, "service", cfg.Label)

				rules, err := cfg.BuildRules()
				require.NoError(t, err)
				assert.Equal(t, "import java.time.ZonedDateTime;", rules[0].To)
				assert.Equal(t, "ZonedDateTime", rules[len(rules)-1].To)
			},
		},
		{
			name: "hcl_config",
			file: "rules.hcl",
			config: `
pattern = "${env.DTFIX_TEST_SRC}/**/*.java"
from    = defaults.from
to      = "java.time.ZonedDateTime"

rule {
  kind        = "identifier"
  from        = "LocalDateTime"
  to          = "ZonedDateTime"
  description = "whole tokens only"
}

rule {
  from = "import java.time.LocalDateTime;"
  to   = "import java.time.ZonedDateTime;"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "app/src/**/*.java", cfg.Pattern, "env variable should be interpolated")
				assert.Equal(t, DefaultFrom, cfg.From)
				assert.Equal(t, "java.time.ZonedDateTime", cfg.To)
				require.Len(t, cfg.Rules, 2)
				assert.Equal(t, "identifier", cfg.Rules[0].Kind)
				assert.Equal(t, "whole tokens only", cfg.Rules[0].Description)
				assert.Empty(t, cfg.Rules[1].Kind)
			},
		},
		{
			name:        "yaml_unknown_field",
			file:        "rules.yaml",
			config:      "pattern: x\nreplacements: []\n",
			errContains: "parsing YAML",
		},
		{
			name:        "json_unknown_field",
			file:        "rules.json",
			config:      `{"pattern": "x", "destination": "y"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "hcl_unknown_attribute",
			file:        "rules.hcl",
			config:      `destination = "x"`,
			errContains: "decoding HCL",
		},
		{
			name:        "missing_pattern",
			file:        "rules.yaml",
			config:      "rules:\n  - from: a\n    to: b\n",
			errContains: "pattern is required",
		},
		{
			name:        "bad_pattern",
			file:        "rules.yaml",
			config:      "pattern: \"src/[\"\nrules:\n  - from: a\n    to: b\n",
			errContains: "invalid pattern",
		},
		{
			name:        "no_rules",
			file:        "rules.yaml",
			config:      "pattern: \"**/*.java\"\n",
			errContains: "at least one rule or a preset is required",
		},
		{
			name:        "unknown_preset",
			file:        "rules.yaml",
			config:      "preset: controllers\n",
			errContains: `unknown preset "controllers"`,
		},
		{
			name:        "bad_type_name",
			file:        "rules.yaml",
			config:      "preset: repos\nto: \"java.time.\"\n",
			errContains: "invalid type name",
		},
		{
			name:        "bad_rule",
			file:        "rules.yaml",
			config:      "pattern: \"**/*.java\"\nrules:\n  - kind: regex\n    from: \"(\"\n    to: x\n",
			errContains: "validating rules",
		},
		{
			name:        "unsupported_extension",
			file:        "rules.toml",
			config:      "pattern = 'x'",
			errContains: "no parser found for file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := writeConfig(t, tt.file, tt.config)

			cfg, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestFromPreset(t *testing.T) {
	cfg, err := FromPreset("services")
	require.NoError(t, err)
	assert.Equal(t, "src/main/java/com/playvora/playvora_api/**/services/**/*.java", cfg.Pattern)
	assert.Equal(t, "service", cfg.Label)
	assert.Empty(t, cfg.Location())
	assert.Equal(t, "services: java.time.LocalDateTime -> java.time.OffsetDateTime in "+cfg.Pattern, cfg.String())

	_, err = FromPreset("nope")
	require.Error(t, err)
}
