package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// IsIdentifier reports whether s is a single identifier token
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// ReplaceIdentifier replaces from with to wherever from is not glued to
// other identifier runes, so Foo matches in "Foo.bar" but not in "MyFoo".
func ReplaceIdentifier(content, from, to string) (string, int) {
	if from == "" {
		return content, 0
	}

	var b strings.Builder
	count := 0
	last := 0
	for pos := 0; pos <= len(content)-len(from); {
		idx := strings.Index(content[pos:], from)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(from)

		if boundaryBefore(content, start) && boundaryAfter(content, end) {
			if count == 0 {
				b.Grow(len(content))
			}
			b.WriteString(content[last:start])
			b.WriteString(to)
			last = end
			count++
			pos = end
			continue
		}
		pos = start + 1
	}

	if count == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), count
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isIdentPart(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isIdentPart(r)
}
