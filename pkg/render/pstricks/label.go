package pstricks

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// StarMacro typesets the star glyph used in lattice labels.
const StarMacro = `\StarGame`

// DefaultLabelReplacements maps label text to its math-mode rendering.
// The escaped star `\*` and the bare `*` both become [StarMacro].
var DefaultLabelReplacements = map[string]string{
	`\*`: StarMacro,
	`*`:  StarMacro,
	`{`:  `\{`,
	`}`:  `\}`,
	`|`:  `\,\mid\,`,
}

// LabelRenderer rewrites raw labels into math-mode text. A single pass is
// made over the label, so replacement output is never rewritten again.
type LabelRenderer struct {
	r *strings.Replacer
}

// NewLabelRenderer builds a renderer from DefaultLabelReplacements with
// extra merged on top. An empty replacement value removes a default rule.
func NewLabelRenderer(extra map[string]string) *LabelRenderer {
	rules := maps.Clone(DefaultLabelReplacements)
	for k, v := range extra {
		if v == "" {
			delete(rules, k)
			continue
		}
		rules[k] = v
	}

	// Longer patterns first so `\*` wins over `*` at the same position.
	keys := slices.SortedFunc(maps.Keys(rules), func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		pairs = append(pairs, k, rules[k])
	}
	return &LabelRenderer{r: strings.NewReplacer(pairs...)}
}

// Render returns the math-mode form of raw.
func (l *LabelRenderer) Render(raw string) string {
	return l.r.Replace(raw)
}
