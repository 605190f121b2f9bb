package text

import (
	"context"
	"io"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Replacer implements TextReplacer over an ordered, validated rule list
type Replacer struct {
	rules    []Rule
	compiled []*regexp.Regexp
}

var _ TextReplacer = (*Replacer)(nil)

// NewReplacer validates the rules and compiles the regex ones
func NewReplacer(rules []Rule) (*Replacer, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	r := &Replacer{
		rules:    make([]Rule, len(rules)),
		compiled: make([]*regexp.Regexp, len(rules)),
	}
	for i, rule := range rules {
		rule.Kind = rule.Kind.orDefault()
		r.rules[i] = rule
		if rule.Kind == KindRegex {
			r.compiled[i] = regexp.MustCompile(rule.From)
		}
	}
	return r, nil
}

// Rules implements TextReplacer.Rules
func (r *Replacer) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *Replacer) ReplaceText(ctx context.Context, content io.Reader) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, count := r.Transform(string(originalContent))

	return &ReplacementResult{
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
		ReplacementCount: count,
		WasModified:      modified != string(originalContent),
	}, nil
}

// Transform applies every rule in order and returns the new content with the
// number of replacements made. It is a pure function of its input.
func (r *Replacer) Transform(content string) (string, int) {
	total := 0
	for i, rule := range r.rules {
		var n int
		switch rule.Kind {
		case KindLiteral:
			n = strings.Count(content, rule.From)
			if n > 0 {
				content = strings.ReplaceAll(content, rule.From, rule.To)
			}
		case KindRegex:
			re := r.compiled[i]
			n = len(re.FindAllStringIndex(content, -1))
			if n > 0 {
				content = re.ReplaceAllString(content, rule.To)
			}
		case KindIdentifier:
			content, n = ReplaceIdentifier(content, rule.From, rule.To)
		case KindParameters:
			content, n = RewriteParameters(content, rule.From, rule.To)
		}
		total += n
	}
	return content, total
}

// ValidateRules checks that every rule can be applied
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.From == "" {
			return errors.Errorf("rule %d: from is required", i)
		}
		switch rule.Kind.orDefault() {
		case KindLiteral:
		case KindRegex:
			if _, err := regexp.Compile(rule.From); err != nil {
				return errors.Errorf("rule %d: compiling %q: %w", i, rule.From, err)
			}
		case KindIdentifier, KindParameters:
			if !IsIdentifier(rule.From) {
				return errors.Errorf("rule %d: %q is not an identifier", i, rule.From)
			}
			if !IsIdentifier(rule.To) {
				return errors.Errorf("rule %d: %q is not an identifier", i, rule.To)
			}
		default:
			return errors.Errorf("rule %d: unknown kind %q", i, rule.Kind)
		}
	}
	return nil
}
