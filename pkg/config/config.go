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
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/dtfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 RuleConfig is one replacement rule as written in a rule-set file
type RuleConfig struct {
	Kind        string `json:"kind,omitempty" yaml:"kind,omitempty" hcl:"kind,optional"`
	From        string `json:"from" yaml:"from" hcl:"from"`
	To          string `json:"to" yaml:"to" hcl:"to"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
}

// 📚 Config is a complete rewrite job: which files, which rules, in which order.
// Preset rules come first, then Rules in declared order.
type Config struct {
	Pattern string       `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Label   string       `json:"label,omitempty" yaml:"label,omitempty" hcl:"label,optional"`
	Preset  string       `json:"preset,omitempty" yaml:"preset,omitempty" hcl:"preset,optional"`
	From    string       `json:"from,omitempty" yaml:"from,omitempty" hcl:"from,optional"`
	To      string       `json:"to,omitempty" yaml:"to,omitempty" hcl:"to,optional"`
	Rules   []RuleConfig `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`

	location string
}

// FromPreset builds a validated config for a built-in preset
func FromPreset(name string) (*Config, error) {
	cfg := &Config{Preset: name}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.From == "" {
		cfg.From = DefaultFrom
	}
	if cfg.To == "" {
		cfg.To = DefaultTo
	}
	if _, err := ParseTypeName(cfg.From); err != nil {
		return errors.Errorf("from: %w", err)
	}
	if _, err := ParseTypeName(cfg.To); err != nil {
		return errors.Errorf("to: %w", err)
	}

	if cfg.Preset != "" {
		p, ok := LookupPreset(cfg.Preset)
		if !ok {
			return errors.Errorf("unknown preset %q", cfg.Preset)
		}
		if cfg.Pattern == "" {
			cfg.Pattern = p.Pattern
		}
		if cfg.Label == "" {
			cfg.Label = p.Label
		}
	}

	if cfg.Pattern == "" {
		return errors.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(cfg.Pattern) {
		return errors.Errorf("invalid pattern %q: %w", cfg.Pattern, doublestar.ErrBadPattern)
	}

	rules, err := cfg.BuildRules()
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return errors.Errorf("at least one rule or a preset is required")
	}
	if err := text.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	return nil
}

// BuildRules returns the ordered rule list for this config
func (cfg *Config) BuildRules() ([]text.Rule, error) {
	var rules []text.Rule

	if cfg.Preset != "" {
		p, ok := LookupPreset(cfg.Preset)
		if !ok {
			return nil, errors.Errorf("unknown preset %q", cfg.Preset)
		}
		from, err := ParseTypeName(orDefault(cfg.From, DefaultFrom))
		if err != nil {
			return nil, errors.Errorf("from: %w", err)
		}
		to, err := ParseTypeName(orDefault(cfg.To, DefaultTo))
		if err != nil {
			return nil, errors.Errorf("to: %w", err)
		}
		rules = append(rules, p.Rules(from, to)...)
	}

	for _, r := range cfg.Rules {
		rules = append(rules, text.Rule{
			Kind:        text.RuleKind(r.Kind),
			From:        r.From,
			To:          r.To,
			Description: r.Description,
		})
	}

	return rules, nil
}

// Location returns the file the config was loaded from, empty for presets
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	name := cfg.Preset
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("%s: %s -> %s in %s", name, cfg.From, cfg.To, cfg.Pattern)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
