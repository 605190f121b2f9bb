package config

import (
	"regexp"
	"strings"

	"github.com/walteh/dtfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultFrom = "java.time.LocalDateTime"
	DefaultTo   = "java.time.OffsetDateTime"
)

// TypeName is a qualified type name such as java.time.LocalDateTime
type TypeName struct {
	Package string
	Simple  string
}

// ParseTypeName splits a dotted type name into package and simple name
func ParseTypeName(q string) (TypeName, error) {
	parts := strings.Split(q, ".")
	for _, p := range parts {
		if !text.IsIdentifier(p) {
			return TypeName{}, errors.Errorf("invalid type name %q", q)
		}
	}
	last := len(parts) - 1
	return TypeName{
		Package: strings.Join(parts[:last], "."),
		Simple:  parts[last],
	}, nil
}

func (t TypeName) String() string {
	if t.Package == "" {
		return t.Simple
	}
	return t.Package + "." + t.Simple
}

// 📦 Preset is a built-in rewrite job with a fixed pattern and rule order
type Preset struct {
	Name        string
	Label       string
	Pattern     string
	Description string

	rules func(from, to TypeName) []text.Rule
}

// Rules returns the preset's ordered rules for the given type pair
func (p Preset) Rules(from, to TypeName) []text.Rule {
	return p.rules(from, to)
}

var presets = []Preset{
	{
		Name:        "repos",
		Label:       "repository",
		Pattern:     "src/main/java/com/playvora/playvora_api/**/repo/*.java",
		Description: "rewrite the import and every occurrence in repository classes",
		rules: func(from, to TypeName) []text.Rule {
			return append(importRules(from, to), text.Rule{
				Kind:        text.KindLiteral,
				From:        from.Simple,
				To:          to.Simple,
				Description: "replace every remaining occurrence",
			})
		},
	},
	{
		Name:        "services",
		Label:       "service",
		Pattern:     "src/main/java/com/playvora/playvora_api/**/services/**/*.java",
		Description: "rewrite imports, now() calls, declarations and parameters in service classes",
		rules: func(from, to TypeName) []text.Rule {
			return append(importRules(from, to),
				text.Rule{
					Kind:        text.KindLiteral,
					From:        from.Simple + ".now()",
					To:          to.Simple + ".now()",
					Description: "replace now() calls",
				},
				text.Rule{
					Kind:        text.KindLiteral,
					From:        from.Simple + ".now(ZoneOffset.UTC)",
					To:          to.Simple + ".now(ZoneOffset.UTC)",
					Description: "replace now(ZoneOffset.UTC) calls",
				},
				text.Rule{
					Kind:        text.KindLiteral,
					From:        from.Simple + " ",
					To:          to.Simple + " ",
					Description: "replace variable declarations",
				},
				text.Rule{
					Kind:        text.KindParameters,
					From:        from.Simple,
					To:          to.Simple,
					Description: "replace parameter types",
				},
				text.Rule{
					Kind:        text.KindIdentifier,
					From:        from.Simple,
					To:          to.Simple,
					Description: "replace remaining identifiers",
				},
			)
		},
	},
}

// importRules rewrites "import a.b.From;" allowing any spacing. A type
// without a package has no import to rewrite.
func importRules(from, to TypeName) []text.Rule {
	if from.Package == "" || to.Package == "" {
		return nil
	}
	return []text.Rule{{
		Kind:        text.KindRegex,
		From:        `import\s+` + regexp.QuoteMeta(from.String()) + `\s*;`,
		To:          strings.ReplaceAll("import "+to.String()+";", "$", "$$"),
		Description: "replace import",
	}}
}

// Presets returns the built-in presets in display order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by name
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
