package extract

import "strings"

// bgNonColor lists bg-* utilities that do not set a background color and
// must never be picked up as explicit background context.
var bgNonColor = map[string]bool{
	"bg-clip-text": true,
	"bg-no-repeat": true,
	"bg-cover":     true,
	"bg-contain":   true,
	"bg-fixed":     true,
	"bg-local":     true,
	"bg-scroll":    true,
}

// contextEntry is one level of the background/opacity stack. Tag holds the
// tag name, or a synthetic "_annotation_<tag>" key for block-annotation
// entries so the two can never collide with real tag names.
type contextEntry struct {
	tag               string
	bgClass           string
	cumulativeOpacity float64
}

// ContextTracker maintains the nested-container background stack and the
// cumulative ancestor opacity. It owns the block-scope
// @a11y-context-block annotation; single-element annotations belong to
// AnnotationTracker.
type ContextTracker struct {
	containers map[string]string
	defaultBG  string
	stack      []contextEntry
	// pendingBlock holds an unconsumed @a11y-context-block background.
	pendingBlock    string
	hasPendingBlock bool
}

// NewContextTracker creates a tracker with the given container → background
// class mapping and default background. The mapping is not copied; callers
// must not mutate it afterwards.
func NewContextTracker(containers map[string]string, defaultBG string) *ContextTracker {
	return &ContextTracker{
		containers: containers,
		defaultBG:  defaultBG,
	}
}

// CurrentBG returns the effective background class: top of stack, or the
// default when the stack is empty.
func (t *ContextTracker) CurrentBG() string {
	if len(t.stack) == 0 {
		return t.defaultBG
	}
	return t.stack[len(t.stack)-1].bgClass
}

// CurrentOpacity returns the cumulative ancestor opacity (1.0 when empty).
func (t *ContextTracker) CurrentOpacity() float64 {
	if len(t.stack) == 0 {
		return 1.0
	}
	return t.stack[len(t.stack)-1].cumulativeOpacity
}

// ResolvePendingBlock pushes any pending block annotation as a synthetic
// stack entry keyed to tagName. The orchestrator calls this before capturing
// the pre-open background so a block annotation counts as parent context for
// the element it precedes, not as that element's own attribute. A pending
// block aimed at a self-closing element is discarded.
func (t *ContextTracker) ResolvePendingBlock(tagName string, selfClosing bool) {
	if !t.hasPendingBlock {
		return
	}
	bg := t.pendingBlock
	t.pendingBlock = ""
	t.hasPendingBlock = false
	if selfClosing {
		return
	}
	t.stack = append(t.stack, contextEntry{
		tag:               "_annotation_" + tagName,
		bgClass:           bg,
		cumulativeOpacity: t.CurrentOpacity(),
	})
}

// TagOpen updates the stack for a non-self-closing opening tag. An entry is
// pushed when the tag is a configured container, carries an explicit
// background utility, or carries an opacity utility (inheriting the parent
// background so the opacity and background stacks stay level-matched).
func (t *ContextTracker) TagOpen(tagName string, selfClosing bool, rawTag string) {
	if selfClosing {
		return
	}

	opacity, hasOpacity := FindOpacityInRawTag(rawTag)
	cumulative := t.CurrentOpacity()
	if hasOpacity {
		cumulative *= opacity
	}

	if configBG, ok := t.containers[tagName]; ok {
		bg := configBG
		if explicit, found := findExplicitBG(rawTag); found {
			bg = explicit
		}
		t.stack = append(t.stack, contextEntry{tag: tagName, bgClass: bg, cumulativeOpacity: cumulative})
		return
	}

	if bg, found := findExplicitBG(rawTag); found {
		t.stack = append(t.stack, contextEntry{tag: tagName, bgClass: bg, cumulativeOpacity: cumulative})
		return
	}

	if hasOpacity {
		t.stack = append(t.stack, contextEntry{tag: tagName, bgClass: t.CurrentBG(), cumulativeOpacity: cumulative})
	}
}

// TagClose pops the entry matching tagName (real or synthetic annotation
// form). When the top does not match, the stack is truncated down to just
// above the nearest matching entry, silently discarding interleaved
// entries. Unmatched closes are ignored.
func (t *ContextTracker) TagClose(tagName string) {
	annotationKey := "_annotation_" + tagName

	if n := len(t.stack); n > 0 {
		top := t.stack[n-1].tag
		if top == tagName || top == annotationKey {
			t.stack = t.stack[:n-1]
			return
		}
	}

	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].tag == tagName || t.stack[i].tag == annotationKey {
			t.stack = t.stack[:i]
			return
		}
	}
}

// Comment records a block-scope annotation. All other annotation forms are
// owned by AnnotationTracker and ignored here.
func (t *ContextTracker) Comment(content string, line int) {
	trimmed := strings.TrimSpace(content)
	body, ok := strings.CutPrefix(trimmed, "@a11y-context-block")
	if !ok {
		return
	}
	for _, token := range strings.Fields(body) {
		if bg, found := strings.CutPrefix(token, "bg:"); found {
			t.pendingBlock = bg
			t.hasPendingBlock = true
		}
	}
}

// findExplicitBG returns the first explicit background-color utility in a
// raw tag. Variant-prefixed occurrences (dark:bg-*, hover:bg-*), gradient
// utilities, and the fixed non-color set are excluded.
func findExplicitBG(rawTag string) (string, bool) {
	n := len(rawTag)
	i := 0
	for i+3 < n {
		if rawTag[i] != 'b' || rawTag[i+1] != 'g' || rawTag[i+2] != '-' {
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

		if strings.HasPrefix(cls, "bg-linear-") || strings.HasPrefix(cls, "bg-gradient-") || bgNonColor[cls] {
			continue
		}
		return cls, true
	}
	return "", false
}
