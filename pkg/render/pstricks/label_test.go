package pstricks

import "testing"

func TestLabelRendererDefaults(t *testing.T) {
	r := NewLabelRenderer(nil)

	tests := []struct {
		raw  string
		want string
	}{
		{"0", "0"},
		{"{1*2|*,*2}", `\{1\StarGame2\,\mid\,\StarGame,\StarGame2\}`},
		{"{1*|*,*2,*3}", `\{1\StarGame\,\mid\,\StarGame,\StarGame2,\StarGame3\}`},
		{`a\*b`, `a\StarGameb`},
		{`\*\*`, `\StarGame\StarGame`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := r.Render(tt.raw); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLabelRendererSinglePass(t *testing.T) {
	r := NewLabelRenderer(map[string]string{"a": "{a}"})

	// The braces produced for "a" must not be escaped again.
	if got := r.Render("a"); got != "{a}" {
		t.Errorf("Render(a) = %q, want %q", got, "{a}")
	}
}

func TestLabelRendererOverrides(t *testing.T) {
	r := NewLabelRenderer(map[string]string{
		"*": `\star`,
		"|": "",
	})

	if got := r.Render("1*|2"); got != `1\star|2` {
		t.Errorf("Render() = %q, want %q", got, `1\star|2`)
	}
	if got := r.Render(`\*`); got != `\StarGame` {
		t.Errorf("escaped star = %q, want default %q", got, `\StarGame`)
	}
}
