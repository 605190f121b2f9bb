package text

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RewriteParameters rewrites the declared type of every parameter typed as
// from, in every parenthesized list of content. A parameter is
//
//	[@Annotation[(...)]]... [final] Type[<...>][[]...][...] name[[]...]
//
// and only the last segment of a qualified Type is compared and replaced.
// Lists may hold any number of parameters and nested parentheses. String and
// character literals and comments are never touched.
func RewriteParameters(content, from, to string) (string, int) {
	if from == "" || !strings.Contains(content, from) {
		return content, 0
	}

	code := blankLiterals(content)

	var edits []int
	for _, p := range matchParens(code) {
		for _, seg := range splitTopLevel(code, p.start+1, p.end) {
			if off, ok := declaredType(code, seg, from); ok {
				edits = append(edits, off)
			}
		}
	}
	if len(edits) == 0 {
		return content, 0
	}

	sort.Ints(edits)

	var b strings.Builder
	b.Grow(len(content) + len(edits)*(len(to)-len(from)))
	last, count := 0, 0
	for i, off := range edits {
		if i > 0 && off == edits[i-1] {
			continue
		}
		b.WriteString(content[last:off])
		b.WriteString(to)
		last = off + len(from)
		count++
	}
	b.WriteString(content[last:])
	return b.String(), count
}

type span struct {
	start, end int
}

// blankLiterals returns s with comments and string or char literals replaced
// by spaces. Newlines and byte offsets are preserved.
func blankLiterals(s string) string {
	b := []byte(s)
	blank := func(from, to int) {
		for k := from; k < to && k < len(b); k++ {
			if b[k] != '\n' {
				b[k] = ' '
			}
		}
	}

	for i := 0; i < len(s); {
		var end int
		switch {
		case strings.HasPrefix(s[i:], "//"):
			end = strings.IndexByte(s[i:], '\n')
			if end < 0 {
				end = len(s)
			} else {
				end += i
			}
		case strings.HasPrefix(s[i:], "/*"):
			end = strings.Index(s[i+2:], "*/")
			if end < 0 {
				end = len(s)
			} else {
				end += i + 4
			}
		case strings.HasPrefix(s[i:], `"""`):
			end = closeQuote(s, i+3, `"""`, false)
		case s[i] == '"' || s[i] == '\'':
			end = closeQuote(s, i+1, s[i:i+1], true)
		default:
			i++
			continue
		}
		blank(i, end)
		i = end
	}
	return string(b)
}

// closeQuote returns the offset just past the closing delimiter. Backslash
// escapes are skipped and single-line literals also stop at a newline.
func closeQuote(s string, i int, delim string, singleLine bool) int {
	for i < len(s) {
		switch {
		case s[i] == '\\':
			i += 2
		case singleLine && s[i] == '\n':
			return i
		case strings.HasPrefix(s[i:], delim):
			return i + len(delim)
		default:
			i++
		}
	}
	return len(s)
}

// matchParens pairs every balanced ( ) in code. Unbalanced ones are ignored.
func matchParens(code string) []span {
	var stack []int
	var out []span
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out = append(out, span{start: open, end: i})
		}
	}
	return out
}

// splitTopLevel splits code[start:end] at commas outside nested brackets.
// A '<' only opens a type argument list when glued to an identifier.
func splitTopLevel(code string, start, end int) []span {
	var out []span
	depth, angle := 0, 0
	segStart := start
	for i := start; i < end; i++ {
		switch code[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '<':
			if i > start {
				r, _ := utf8.DecodeLastRuneInString(code[start:i])
				if isIdentPart(r) {
					angle++
				}
			}
		case '>':
			if angle > 0 {
				angle--
			}
		case ',':
			if depth == 0 && angle == 0 {
				out = append(out, span{start: segStart, end: i})
				segStart = i + 1
			}
		}
	}
	return append(out, span{start: segStart, end: end})
}

// declaredType returns the offset of the parameter type in seg when seg is a
// parameter declaration whose type name is want.
func declaredType(code string, seg span, want string) (int, bool) {
	c := &cursor{s: code, i: seg.start, end: seg.end}
	c.skipSpace()

	// modifiers
	for {
		if c.peek('@') {
			c.i++
			c.skipSpace()
			if _, _, ok := c.qualified(); !ok {
				return 0, false
			}
			c.skipSpace()
			if c.peek('(') {
				if !c.skipBalanced('(', ')') {
					return 0, false
				}
				c.skipSpace()
			}
			continue
		}
		save := c.i
		if s, e, ok := c.ident(); ok && code[s:e] == "final" {
			c.skipSpace()
			continue
		}
		c.i = save
		break
	}

	typeStart, typeEnd, ok := c.qualified()
	if !ok {
		return 0, false
	}
	c.skipSpace()
	if c.peek('<') {
		if !c.skipBalanced('<', '>') {
			return 0, false
		}
		c.skipSpace()
	}
	if !c.skipDims() {
		return 0, false
	}
	if strings.HasPrefix(c.rest(), "...") {
		c.i += 3
		c.skipSpace()
	}

	if _, _, ok := c.ident(); !ok {
		return 0, false
	}
	c.skipSpace()
	if !c.skipDims() {
		return 0, false
	}
	if c.i != c.end {
		return 0, false
	}

	if code[typeStart:typeEnd] != want {
		return 0, false
	}
	return typeStart, true
}

type cursor struct {
	s      string
	i, end int
}

func (c *cursor) rest() string {
	return c.s[c.i:c.end]
}

func (c *cursor) peek(b byte) bool {
	return c.i < c.end && c.s[c.i] == b
}

func (c *cursor) skipSpace() {
	for c.i < c.end {
		r, n := utf8.DecodeRuneInString(c.rest())
		if !unicode.IsSpace(r) {
			return
		}
		c.i += n
	}
}

func (c *cursor) ident() (int, int, bool) {
	start := c.i
	for c.i < c.end {
		r, n := utf8.DecodeRuneInString(c.rest())
		if (c.i == start && !isIdentStart(r)) || !isIdentPart(r) {
			break
		}
		c.i += n
	}
	return start, c.i, c.i > start
}

// qualified consumes a.b.C and returns the span of the last segment
func (c *cursor) qualified() (int, int, bool) {
	s, e, ok := c.ident()
	if !ok {
		return 0, 0, false
	}
	for {
		save := c.i
		c.skipSpace()
		if !c.peek('.') || strings.HasPrefix(c.rest(), "...") {
			c.i = save
			return s, e, true
		}
		c.i++
		c.skipSpace()
		ns, ne, ok := c.ident()
		if !ok {
			c.i = save
			return s, e, true
		}
		s, e = ns, ne
	}
}

func (c *cursor) skipBalanced(open, close byte) bool {
	depth := 0
	for c.i < c.end {
		switch c.s[c.i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				c.i++
				return true
			}
		}
		c.i++
	}
	return false
}

// skipDims consumes any number of [] pairs
func (c *cursor) skipDims() bool {
	for c.peek('[') {
		c.i++
		c.skipSpace()
		if !c.peek(']') {
			return false
		}
		c.i++
		c.skipSpace()
	}
	return true
}
