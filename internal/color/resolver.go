package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maypok86/otter"
)

// utilityPrefixes are the class prefixes whose remainder names a color.
var utilityPrefixes = []string{"bg-", "text-", "border-", "ring-", "outline-"}

// resolution is the cached outcome for one class token. Misses are cached
// too; an unknown theme token repeats as often as a palette hit.
type resolution struct {
	hex string
	ok  bool
}

// Resolver turns utility class tokens into hex colors. Lookups hit, in
// order: arbitrary bracket values, configured theme tokens, the default
// palette. Results are cached; the same classes repeat across a codebase.
type Resolver struct {
	tokens map[string]string
	cache  otter.Cache[string, resolution]
}

// NewResolver creates a resolver with an optional theme token → hex map
// layered over the default palette.
func NewResolver(tokens map[string]string) (*Resolver, error) {
	cache, err := otter.MustBuilder[string, resolution](16384).Build()
	if err != nil {
		return nil, fmt.Errorf("building resolution cache: %w", err)
	}
	return &Resolver{tokens: tokens, cache: cache}, nil
}

// Resolve maps one utility class to a hex color. A /NN opacity modifier
// becomes an 8-digit hex alpha byte. Variant prefixes (dark:, hover:) make
// a class unresolvable here; callers strip or skip variants upstream.
func (r *Resolver) Resolve(class string) (string, bool) {
	if class == "" {
		return "", false
	}
	if cached, found := r.cache.Get(class); found {
		return cached.hex, cached.ok
	}

	hex, ok := r.resolve(class)
	r.cache.Set(class, resolution{hex: hex, ok: ok})
	return hex, ok
}

func (r *Resolver) resolve(class string) (string, bool) {
	var name string
	for _, prefix := range utilityPrefixes {
		if rest, found := strings.CutPrefix(class, prefix); found {
			name = rest
			break
		}
	}
	if name == "" {
		return "", false
	}

	// Opacity modifier: bg-red-500/50, text-white/[0.8] is out of scope
	// and left unresolved by the fraction parse below.
	alpha := -1.0
	if base, mod, found := strings.Cut(name, "/"); found {
		n, err := strconv.Atoi(mod)
		if err != nil || n < 0 || n > 100 {
			return "", false
		}
		alpha = float64(n) / 100.0
		name = base
	}

	hex, ok := r.resolveName(name)
	if !ok {
		return "", false
	}
	if alpha >= 0 && alpha < 0.999 {
		hex = StripHexAlpha(hex) + fmt.Sprintf("%02x", uint8(alpha*255.0+0.5))
	}
	return hex, true
}

func (r *Resolver) resolveName(name string) (string, bool) {
	// Arbitrary value: bg-[#0f0], text-[rgb(0_0_0)]. Tailwind encodes
	// spaces as underscores inside brackets.
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		inner := strings.ReplaceAll(name[1:len(name)-1], "_", " ")
		return ToHex(inner)
	}

	if r.tokens != nil {
		if value, found := r.tokens[name]; found {
			return ToHex(value)
		}
	}

	if hex, found := PaletteLookup(name); found {
		return hex, true
	}
	return "", false
}
