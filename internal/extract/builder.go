package extract

import "strings"

// RegionBuilder accumulates one Region per class-attribute event. It is not
// a scan.Listener; the Orchestrator feeds it pre-resolved context for each
// event.
type RegionBuilder struct {
	regions []Region
}

func NewRegionBuilder() *RegionBuilder {
	return &RegionBuilder{}
}

// Record appends a Region built from one class-attribute event. opacity is
// kept only when strictly below 0.999; anything at or above is treated as
// fully opaque and omitted. An empty suppression reason normalizes to
// "suppressed".
func (b *RegionBuilder) Record(content string, line int, rawTag, contextBG string, override *Override, ignoreReason string, hasIgnore bool, opacity float64, hasOpacity bool) {
	region := Region{
		Content:   content,
		StartLine: line,
		ContextBG: contextBG,
	}

	if color, bgColor, ok := extractInlineStyleColors(rawTag); ok {
		region.InlineColor = color
		region.InlineBackgroundColor = bgColor
	}

	if hasOpacity && opacity < 0.999 {
		region.EffectiveOpacity = opacity
		region.HasOpacity = true
	}

	if override != nil {
		region.OverrideBG = override.BG
		region.OverrideFG = override.FG
		region.OverrideNoInherit = override.NoInherit
	}

	if hasIgnore {
		region.Ignored = true
		if ignoreReason == "" {
			region.IgnoreReason = "suppressed"
		} else {
			region.IgnoreReason = ignoreReason
		}
	}

	b.regions = append(b.regions, region)
}

// Regions returns the accumulated regions in source order.
func (b *RegionBuilder) Regions() []Region {
	return b.regions
}

// extractInlineStyleColors pulls quoted color and backgroundColor values
// out of a style={{ ... }} block. The closing }} is located by brace-depth
// matching; an unbalanced block yields nothing.
func extractInlineStyleColors(rawTag string) (color, backgroundColor string, ok bool) {
	const marker = "style={{"
	styleStart := strings.Index(rawTag, marker)
	if styleStart < 0 {
		return "", "", false
	}
	bodyStart := styleStart + len(marker)

	depth := 2
	i := bodyStart
	for i < len(rawTag) && depth > 0 {
		switch rawTag[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth > 0 {
			i++
		}
	}
	if depth != 0 {
		return "", "", false
	}
	body := rawTag[bodyStart:i]

	color = extractStyleProperty(body, "color")
	backgroundColor = extractStyleProperty(body, "backgroundColor")
	if color == "" && backgroundColor == "" {
		return "", "", false
	}
	return color, backgroundColor, true
}

// extractStyleProperty finds a quoted string value for a style property.
// A word-boundary check on the preceding character keeps a "color" search
// from matching inside "backgroundColor".
func extractStyleProperty(body, property string) string {
	n := len(body)
	for i := 0; i+len(property) < n; i++ {
		if i > 0 {
			prev := body[i-1]
			if prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z' || prev >= '0' && prev <= '9' || prev == '_' {
				continue
			}
		}
		if body[i:i+len(property)] != property {
			continue
		}

		j := i + len(property)
		for j < n && isWS(body[j]) {
			j++
		}
		if j >= n || body[j] != ':' {
			continue
		}
		j++
		for j < n && isWS(body[j]) {
			j++
		}
		if j >= n || (body[j] != '\'' && body[j] != '"') {
			continue
		}
		quote := body[j]
		start := j + 1
		end := start
		for end < n && body[end] != quote {
			if body[end] == '\\' {
				end++
			}
			end++
		}
		if end < n {
			return body[start:end]
		}
	}
	return ""
}
