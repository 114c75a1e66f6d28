package extract

import "strings"

// textNonColorPrefixes lists text-* utilities that never set a color.
// Sizes text-2xl..text-9xl are caught by the digit check instead.
var textNonColorPrefixes = []string{
	"text-xs",
	"text-sm",
	"text-base",
	"text-lg",
	"text-xl",
	"text-left",
	"text-center",
	"text-right",
	"text-justify",
	"text-start",
	"text-end",
	"text-wrap",
	"text-nowrap",
	"text-balance",
	"text-pretty",
	"text-ellipsis",
	"text-clip",
	"text-truncate",
	"text-decoration-",
}

type textColorEntry struct {
	tag        string
	colorClass string
}

// TextColorTracker maintains the inherited text-color class across tag
// nesting so currentColor references can be resolved against the nearest
// ancestor's text color. Independent of ContextTracker's background stack.
type TextColorTracker struct {
	stack []textColorEntry
}

func NewTextColorTracker() *TextColorTracker {
	return &TextColorTracker{}
}

// CurrentColor returns the nearest ancestor text-color class, if any.
func (t *TextColorTracker) CurrentColor() (string, bool) {
	if len(t.stack) == 0 {
		return "", false
	}
	return t.stack[len(t.stack)-1].colorClass, true
}

func (t *TextColorTracker) TagOpen(tagName string, selfClosing bool, rawTag string) {
	if selfClosing {
		return
	}
	if cls, ok := findTextColorInRawTag(rawTag); ok {
		t.stack = append(t.stack, textColorEntry{tag: tagName, colorClass: cls})
	}
}

func (t *TextColorTracker) TagClose(tagName string) {
	if n := len(t.stack); n > 0 && t.stack[n-1].tag == tagName {
		t.stack = t.stack[:n-1]
		return
	}
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].tag == tagName {
			t.stack = t.stack[:i]
			return
		}
	}
}

// findTextColorInRawTag returns the first text-color class in a raw tag,
// skipping variant-prefixed occurrences and non-color text utilities.
func findTextColorInRawTag(rawTag string) (string, bool) {
	n := len(rawTag)
	i := 0
	for i+5 < n {
		if rawTag[i] != 't' || rawTag[i+1] != 'e' || rawTag[i+2] != 'x' || rawTag[i+3] != 't' || rawTag[i+4] != '-' {
			i++
			continue
		}
		if i > 0 {
			prev := rawTag[i-1]
			if prev == ':' || !isClassDelimiter(prev) {
				i++
				continue
			}
		}

		start := i
		for i < n && !isClassTerminator(rawTag[i]) {
			i++
		}
		cls := rawTag[start:i]

		if isNonColorTextUtility(cls) {
			continue
		}
		return cls, true
	}
	return "", false
}

func isNonColorTextUtility(cls string) bool {
	for _, prefix := range textNonColorPrefixes {
		if cls == prefix || strings.HasPrefix(cls, prefix+"/") {
			return true
		}
	}
	afterDash := cls[len("text-"):]
	if len(afterDash) > 0 && afterDash[0] >= '0' && afterDash[0] <= '9' {
		return true
	}
	return strings.HasPrefix(cls, "text-opacity-")
}
