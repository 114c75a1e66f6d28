// Package scan implements a single-pass, recovery-oriented tokenizer for
// JSX/TSX component markup. It is deliberately lossy: it recognizes tags,
// className attributes, comments, and strings, and ignores everything else.
// Malformed input never produces an error — unterminated constructs extend
// to end of input and unrecognized bytes are skipped.
package scan

import "sort"

// Scan performs one left-to-right pass over source and notifies every
// listener, in registration order, for each recognized construct.
func Scan(source string, listeners ...Listener) {
	n := len(source)
	lines := buildLineOffsets(source)

	i := 0
	for i < n {
		// Line comment: // to end of line.
		if i+1 < n && source[i] == '/' && source[i+1] == '/' {
			start := i
			i += 2
			for i < n && source[i] != '\n' {
				i++
			}
			line := lineAt(lines, start)
			for _, l := range listeners {
				l.Comment(source[start+2:i], line)
			}
			continue
		}

		// Block comment: /* to */ (non-nesting).
		if i+1 < n && source[i] == '/' && source[i+1] == '*' {
			start := i
			i += 2
			for i+1 < n && !(source[i] == '*' && source[i+1] == '/') {
				i++
			}
			end := n
			if i+1 < n {
				end = i
				i += 2
			} else {
				i = n
			}
			line := lineAt(lines, start)
			for _, l := range listeners {
				l.Comment(source[start+2:end], line)
			}
			continue
		}

		// String literals are consumed verbatim so their contents can never
		// produce false tag or attribute matches.
		if source[i] == '"' || source[i] == '\'' || source[i] == '`' {
			i = skipString(source, i)
			continue
		}

		// Tags.
		if source[i] == '<' && i+1 < n {
			next := source[i+1]

			if next == '/' {
				name, nameEnd := readTagName(source, i+2)
				if name != "" {
					for _, l := range listeners {
						l.TagClose(name)
					}
				}
				j := nameEnd
				for j < n && source[j] != '>' {
					j++
				}
				if j < n {
					j++
				}
				i = j
				continue
			}

			if isASCIILetter(next) {
				name, nameEnd := readTagName(source, i+1)
				if name != "" {
					tagClose := findTagClose(source, nameEnd)
					rawTag := source[i:tagClose]
					selfClosing := isSelfClosing(source, nameEnd)

					for _, l := range listeners {
						l.TagOpen(name, selfClosing, rawTag)
					}

					scanTagAttributes(source, nameEnd, tagClose, lines, rawTag, listeners)

					i = tagClose
					continue
				}
			}
		}

		// Standalone cn()/clsx()/cva() calls outside any tag.
		if !identCharBefore(source, i) {
			fnLen := 0
			switch {
			case hasAt(source, i, "cn("):
				fnLen = 2
			case hasAt(source, i, "clsx("):
				fnLen = 4
			case hasAt(source, i, "cva("):
				fnLen = 3
			}
			if fnLen > 0 {
				if content, end, ok := extractBalancedParens(source, i+fnLen); ok {
					line := lineAt(lines, i)
					for _, l := range listeners {
						l.ClassAttribute(content, line, "")
					}
					i = end + 1
					continue
				}
			}
		}

		i++
	}

	for _, l := range listeners {
		l.FileEnd()
	}
}

// scanTagAttributes searches the span between the tag name and the tag close
// for className= attributes and emits one ClassAttribute event per recognized
// value shape.
func scanTagAttributes(source string, nameEnd, tagClose int, lines []int, rawTag string, listeners []Listener) {
	const key = "className="

	j := nameEnd
	for j+len(key) <= tagClose {
		if !hasAt(source, j, key) {
			j++
			continue
		}

		line := lineAt(lines, j)
		eqEnd := j + len(key)
		afterEq := skipWS(source, eqEnd)

		// className="..."
		if afterEq < tagClose && source[afterEq] == '"' {
			if end, ok := findUnescaped(source, '"', afterEq+1); ok {
				emitClass(listeners, source[afterEq+1:end], line, rawTag)
				j = end + 1
				continue
			}
		}

		// className={...}
		if afterEq < tagClose && source[afterEq] == '{' {
			inner := skipWS(source, afterEq+1)

			// className={'...'} or className={"..."}
			if inner < tagClose && (source[inner] == '\'' || source[inner] == '"') {
				if end, ok := findUnescaped(source, source[inner], inner+1); ok {
					emitClass(listeners, source[inner+1:end], line, rawTag)
					j = end + 1
					continue
				}
			}

			// className={`...`} — template expressions become a single space
			// so only static class text survives.
			if inner < tagClose && source[inner] == '`' {
				if end, ok := findUnescaped(source, '`', inner+1); ok {
					emitClass(listeners, stripTemplateExpressions(source[inner+1:end]), line, rawTag)
					j = end + 1
					continue
				}
			}

			// className={cn(...)} or className={clsx(...)} — the raw call
			// arguments are taken as the class value without evaluation.
			for _, fn := range [...]struct {
				prefix string
				skip   int
			}{{"cn(", 2}, {"clsx(", 4}} {
				if hasAt(source, inner, fn.prefix) {
					if content, end, ok := extractBalancedParens(source, inner+fn.skip); ok {
						emitClass(listeners, content, line, rawTag)
						j = end + 1
					}
					break
				}
			}
			if j > eqEnd {
				continue
			}
		}

		j = eqEnd
	}
}

func emitClass(listeners []Listener, value string, line int, rawTag string) {
	for _, l := range listeners {
		l.ClassAttribute(value, line, rawTag)
	}
}

// buildLineOffsets precomputes the byte offset of each line start so line
// numbers can be resolved by binary search.
func buildLineOffsets(source string) []int {
	offsets := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineAt returns the 1-based line number containing the given byte offset.
func lineAt(offsets []int, offset int) int {
	return sort.SearchInts(offsets, offset+1)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Tag names may contain letters, digits, '.', '-', '_' (covers member
// expressions like motion.div and custom elements).
func isTagNameChar(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '_'
}

func readTagName(source string, start int) (string, int) {
	end := start
	for end < len(source) && isTagNameChar(source[end]) {
		end++
	}
	return source[start:end], end
}

func identCharBefore(source string, i int) bool {
	if i == 0 {
		return false
	}
	c := source[i-1]
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func skipWS(source string, i int) int {
	for i < len(source) && isWS(source[i]) {
		i++
	}
	return i
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// skipString advances past a quoted or back-quoted literal starting at i,
// honoring backslash escapes. Unterminated literals extend to end of input.
func skipString(source string, i int) int {
	quote := source[i]
	i++
	for i < len(source) && source[i] != quote {
		if source[i] == '\\' {
			i++
		}
		i++
	}
	if i < len(source) {
		i++
	}
	return i
}

// findUnescaped returns the offset of the next unescaped target byte at or
// after start.
func findUnescaped(source string, target byte, start int) (int, bool) {
	for start < len(source) {
		if source[start] == '\\' {
			start += 2
			continue
		}
		if source[start] == target {
			return start, true
		}
		start++
	}
	return 0, false
}

func hasAt(source string, at int, prefix string) bool {
	return at+len(prefix) <= len(source) && source[at:at+len(prefix)] == prefix
}

// isSelfClosing reports whether the tag whose attributes begin at fromPos
// ends with '/>'. The scan tracks brace depth and skips string literals so a
// '>' inside an attribute expression is never mistaken for the tag close.
func isSelfClosing(source string, fromPos int) bool {
	n := len(source)
	depth := 0
	for j := fromPos; j < n; {
		c := source[j]
		switch {
		case c == '{':
			depth++
			j++
		case c == '}':
			if depth > 0 {
				depth--
			}
			j++
		case c == '"' || c == '\'' || c == '`':
			j = skipString(source, j)
		case depth == 0 && c == '/' && j+1 < n && source[j+1] == '>':
			return true
		case depth == 0 && c == '>':
			return false
		default:
			j++
		}
	}
	// Unterminated tag: treat as not self-closing.
	return false
}

// findTagClose returns the offset just past the tag's closing '>' or '/>',
// using the same brace/string rules as isSelfClosing. Unterminated tags
// extend to end of input.
func findTagClose(source string, fromPos int) int {
	n := len(source)
	depth := 0
	for j := fromPos; j < n; {
		c := source[j]
		switch {
		case c == '{':
			depth++
			j++
		case c == '}':
			if depth > 0 {
				depth--
			}
			j++
		case c == '"' || c == '\'' || c == '`':
			j = skipString(source, j)
		case depth == 0 && c == '/' && j+1 < n && source[j+1] == '>':
			return j + 2
		case depth == 0 && c == '>':
			return j + 1
		default:
			j++
		}
	}
	return n
}

// extractBalancedParens returns the content between the '(' at openPos and
// its matching ')', skipping string and template literals at any depth.
// ok is false when the parentheses never balance; callers treat that as
// "no event", not an error.
func extractBalancedParens(source string, openPos int) (content string, end int, ok bool) {
	n := len(source)
	if openPos >= n || source[openPos] != '(' {
		return "", 0, false
	}

	depth := 1
	i := openPos + 1
	for i < n && depth > 0 {
		c := source[i]
		if c == '"' || c == '\'' || c == '`' {
			i = skipString(source, i)
			continue
		}
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
		}
		if depth > 0 {
			i++
		}
	}

	if depth != 0 {
		return "", 0, false
	}
	return source[openPos+1 : i], i, true
}

// stripTemplateExpressions replaces each ${...} interpolation (balanced
// braces) with a single space.
func stripTemplateExpressions(template string) string {
	n := len(template)
	out := make([]byte, 0, n)
	i := 0
	for i < n {
		if i+1 < n && template[i] == '$' && template[i+1] == '{' {
			depth := 1
			i += 2
			for i < n && depth > 0 {
				if template[i] == '{' {
					depth++
				} else if template[i] == '}' {
					depth--
				}
				i++
			}
			out = append(out, ' ')
			continue
		}
		out = append(out, template[i])
		i++
	}
	return string(out)
}
