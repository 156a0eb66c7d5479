package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/dot2pst/pkg/graph"
)

func sampleGraph() *graph.Graph {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: 8, RawLabel: "{1*|*}", Label: `\{1\StarGame\}`, X: 144, Y: 72})
	_ = g.AddNode(graph.Node{ID: 1, RawLabel: "0", Label: "0", X: 36, Y: 18})
	_ = g.AddEdge(1, 8)
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleGraph())

	for _, want := range []string{
		`node1 [label="0", pos="0.5000,0.2500!"];`,
		`node8 [label="{1*|*}", pos="2.0000,1.0000!"];`,
		"node1 -> node8;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}

	if strings.Index(dot, "node1 [") > strings.Index(dot, "node8 [") {
		t.Error("nodes should be written in id order")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	if _, err := Render(context.Background(), ToDOT(sampleGraph()), "pdf"); err == nil {
		t.Error("Render(pdf) should fail")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}
