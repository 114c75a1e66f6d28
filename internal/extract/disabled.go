package extract

import "strings"

// DisabledIgnoreReason is the suppression reason synthesized for regions
// on disabled elements. Downstream consumers match it to tell a disabled
// exemption apart from an author-written a11y-ignore.
const DisabledIgnoreReason = "disabled element (WCAG SC 1.4.3 exemption)"

// IsDisabledTag reports whether a raw tag carries a disabled signal.
// Disabled elements are exempt from WCAG 2.1 SC 1.4.3, so downstream
// checks treat their regions as suppressed.
//
// Matches: standalone `disabled`, `disabled={true}`, `disabled={expr}`,
// and aria-disabled set to "true" in string, braced, or braced-quoted
// form. `disabled={false}` and aria-disabled "false" variants are
// explicitly not disabled.
func IsDisabledTag(rawTag string) bool {
	if pos := strings.Index(rawTag, "aria-disabled"); pos >= 0 {
		rest := rawTag[pos+len("aria-disabled"):]
		switch {
		case strings.HasPrefix(rest, `="true"`),
			strings.HasPrefix(rest, `='true'`),
			strings.HasPrefix(rest, `={true}`),
			strings.HasPrefix(rest, `={"true"}`),
			strings.HasPrefix(rest, `={'true'}`):
			return true
		}
	}

	n := len(rawTag)
	for i := 0; i+len("disabled") <= n; {
		if rawTag[i:i+len("disabled")] != "disabled" {
			i++
			continue
		}
		// not the tail of "aria-disabled"
		if i >= 5 && rawTag[i-5:i] == "aria-" {
			i += len("disabled")
			continue
		}
		if i > 0 && !isWS(rawTag[i-1]) {
			i++
			continue
		}

		after := i + len("disabled")
		if after >= n {
			return true
		}
		c := rawTag[after]
		if isWS(c) || c == '>' || c == '/' {
			return true
		}
		if c == '=' && after+1 < n {
			if strings.HasPrefix(rawTag[after+1:], "{false}") {
				i += len("disabled")
				continue
			}
			return true
		}
		i++
	}
	return false
}

// HasDisabledVariant reports whether any class token carries a
// `disabled:` variant prefix, signalling author-provided disabled styling.
func HasDisabledVariant(classContent string) bool {
	for _, cls := range strings.Fields(classContent) {
		if strings.HasPrefix(cls, "disabled:") {
			return true
		}
	}
	return false
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
