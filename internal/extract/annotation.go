package extract

import "strings"

// AnnotationTracker parses per-element annotations out of comments and
// holds them as one-shot pending slots until consumed.
//
// Two forms are recognized:
//
//	@a11y-context bg:<class> [fg:<class>] [no-inherit]
//	a11y-ignore[: <reason>]
//
// Block annotations (@a11y-context-block) belong to ContextTracker.
type AnnotationTracker struct {
	pendingOverride  *Override
	pendingIgnore    string
	hasPendingIgnore bool
}

func NewAnnotationTracker() *AnnotationTracker {
	return &AnnotationTracker{}
}

// TakePendingOverride consumes and returns the pending context override,
// or nil when none is pending.
func (a *AnnotationTracker) TakePendingOverride() *Override {
	ov := a.pendingOverride
	a.pendingOverride = nil
	return ov
}

// TakePendingIgnore consumes and returns the pending suppression reason.
func (a *AnnotationTracker) TakePendingIgnore() (string, bool) {
	if !a.hasPendingIgnore {
		return "", false
	}
	reason := a.pendingIgnore
	a.pendingIgnore = ""
	a.hasPendingIgnore = false
	return reason, true
}

// Comment inspects one comment body. A newer annotation of either kind
// overwrites any not-yet-consumed previous one.
func (a *AnnotationTracker) Comment(content string, line int) {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(trimmed, "@a11y-context-block") {
		return
	}

	if body, ok := strings.CutPrefix(trimmed, "@a11y-context"); ok {
		if ov := parseOverrideParams(body); ov != nil {
			a.pendingOverride = ov
		}
		return
	}

	if rest, ok := strings.CutPrefix(trimmed, "a11y-ignore"); ok {
		reason := ""
		if after, found := strings.CutPrefix(rest, ":"); found {
			reason = strings.TrimSpace(after)
		}
		a.pendingIgnore = reason
		a.hasPendingIgnore = true
	}
}

// parseOverrideParams parses bg:/fg:/no-inherit tokens. At least one of
// bg or fg must be present for the annotation to count.
func parseOverrideParams(params string) *Override {
	var ov Override
	for _, token := range strings.Fields(params) {
		switch {
		case strings.HasPrefix(token, "bg:"):
			ov.BG = token[len("bg:"):]
		case strings.HasPrefix(token, "fg:"):
			ov.FG = token[len("fg:"):]
		case token == "no-inherit":
			ov.NoInherit = true
		}
	}
	if ov.BG == "" && ov.FG == "" {
		return nil
	}
	return &ov
}
