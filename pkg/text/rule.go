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

package text

import (
	"context"
	"io"
)

// 🏷️ RuleKind selects how a Rule matches content
type RuleKind string

const (
	// KindLiteral replaces every occurrence of a substring
	KindLiteral RuleKind = "literal"
	// KindRegex replaces every match of a regular expression, $1 style groups expand in To
	KindRegex RuleKind = "regex"
	// KindIdentifier replaces From only where it stands as a whole identifier token
	KindIdentifier RuleKind = "identifier"
	// KindParameters rewrites the declared type of parameters in parenthesized lists
	KindParameters RuleKind = "parameters"
)

// Rule defines a single replacement step.
// Rules are applied strictly in order, each over the output of the previous one.
type Rule struct {
	// Kind selects the matcher, empty means literal
	Kind RuleKind

	// From is the text, pattern or type name to replace
	From string

	// To is the replacement text
	To string

	// Description is shown when rules are listed
	Description string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of replacements made across all rules
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the replacer's rules to the content
	ReplaceText(ctx context.Context, content io.Reader) (*ReplacementResult, error)

	// Rules returns the ordered rule list
	Rules() []Rule
}

func (k RuleKind) orDefault() RuleKind {
	if k == "" {
		return KindLiteral
	}
	return k
}
