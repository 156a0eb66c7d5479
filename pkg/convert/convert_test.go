package convert

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/render/pstricks"
)

const header = "digraph G {\n" +
	"\tgraph [rankdir=BT];\n" +
	"\tnode [label=\"\\N\"];\n" +
	"\tgraph [bb=\"0,0,2430,468\"];\n"

const twoNodes = header +
	"\tnode1 [label=0, pos=\"1261,18\", width=\"0.75\", height=\"0.5\"];\n" +
	"\tnode8 [label=\"{1*|*,*2,*3}\", pos=\"1035,90\", width=\"1.6111\", height=\"0.5\"];\n" +
	"\tnode1 -> node8 [pos=\"e,1075.6,77.075 1236.4,25.842 1200.3,37.343 1132.2,59.038 1085.2,73.992\"];\n" +
	"}\n"

const twoNodesWant = `\rput(63.05,0.90){\rnode{node1}{$0$}}` + "\n" +
	`\rput(51.75,4.50){\rnode{node8}{$\{1\StarGame\,\mid\,\StarGame,\StarGame2,\StarGame3\}$}}` + "\n" +
	`\ncLine[nodesep=3pt]{-}{node1}{node8}` + "\n"

func TestConvert(t *testing.T) {
	var out bytes.Buffer
	res, err := Convert(strings.NewReader(twoNodes), &out, Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if out.String() != twoNodesWant {
		t.Errorf("Convert() output =\n%s\nwant\n%s", out.String(), twoNodesWant)
	}
	if res.Nodes != 2 || res.Edges != 1 || res.Scale != pstricks.DefaultScale {
		t.Errorf("Result = %+v", res)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	input := header +
		"\tnode9 [label=c, pos=\"10,10\", width=\"1\"];\n" +
		"\tnode3 [label=b, pos=\"20,20\", width=\"1\"];\n" +
		"\tnode5 [label=a, pos=\"30,30\", width=\"1\"];\n" +
		"\tnode9 -> node3 [pos=\"\"];\n" +
		"\tnode3 -> node5 [pos=\"\"];\n" +
		"\tnode9 -> node5 [pos=\"\"];\n" +
		"}\n"

	var first bytes.Buffer
	if _, err := Convert(strings.NewReader(input), &first, Options{}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		var again bytes.Buffer
		if _, err := Convert(strings.NewReader(input), &again, Options{}); err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if again.String() != first.String() {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, again.String(), first.String())
		}
	}

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	if !strings.Contains(lines[0], "node3") || !strings.Contains(lines[2], "node9") {
		t.Errorf("nodes not in id order: %v", lines[:3])
	}
}

func TestConvertScaleProperty(t *testing.T) {
	input := header + "\tnode1 [label=x, pos=\"1407,90\", width=\"1\"];\n}\n"

	var out bytes.Buffer
	if _, err := Convert(strings.NewReader(input), &out, Options{}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `\rput(70.35,4.50){\rnode{node1}{$x$}}` {
		t.Errorf("output = %q", got)
	}
}

func TestConvertUnknownReference(t *testing.T) {
	input := header +
		"\tnode1 [label=0, pos=\"1,2\", width=\"1\"];\n" +
		"\tnode1 -> node4 [pos=\"\"];\n"

	var out bytes.Buffer
	_, err := Convert(strings.NewReader(input), &out, Options{})
	if !errors.Is(err, errors.ErrCodeUnknownReference) {
		t.Fatalf("Convert() error = %v, want UNKNOWN_REFERENCE", err)
	}
	if out.Len() != 0 {
		t.Errorf("output written before failure: %q", out.String())
	}
}

func TestEffectiveScale(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  float64
	}{
		{"default", twoNodes, Options{}, 0.05},
		{"configured", twoNodes, Options{PSTricks: pstricks.Options{Scale: 0.1}}, 0.1},
		{"width ignored", twoNodes, Options{Width: 243}, 0.05},
		{"fit width", twoNodes, Options{Width: 243, FitWidth: true}, 0.1},
		{"fit without width", twoNodes, Options{FitWidth: true}, 0.05},
		{
			"fit without bounding box",
			strings.Replace(twoNodes, "bb=", "xx=", 1),
			Options{Width: 243, FitWidth: true},
			0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := Convert(strings.NewReader(tt.input), &out, tt.opts)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if res.Scale != tt.want {
				t.Errorf("Scale = %v, want %v", res.Scale, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lattice.dot")
	out := filepath.Join(dir, "lattice.tex")
	if err := os.WriteFile(in, []byte(twoNodes), 0o644); err != nil {
		t.Fatal(err)
	}

	hooks := &recordingHooks{}
	res, err := Run(context.Background(), Options{Input: in, Output: out, Hooks: hooks})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Nodes != 2 || res.Edges != 1 {
		t.Errorf("Result = %+v", res)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != twoNodesWant {
		t.Errorf("output file =\n%s\nwant\n%s", got, twoNodesWant)
	}

	want := []string{"parse-start", "parse-complete", "emit-start", "emit-complete"}
	if strings.Join(hooks.events, ",") != strings.Join(want, ",") {
		t.Errorf("hook events = %v, want %v", hooks.events, want)
	}
}

const twoNodesJSON = `{
  "bbox": {"x0": 0, "y0": 0, "x1": 2430, "y1": 468},
  "nodes": [
    {"id": 8, "label": "{1*|*,*2,*3}", "x": 1035, "y": 90},
    {"id": 1, "label": "0", "x": 1261, "y": 18}
  ],
  "edges": [{"from": 1, "to": 8}]
}`

func TestRunJSONInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lattice.json")
	out := filepath.Join(dir, "lattice.tex")
	if err := os.WriteFile(in, []byte(twoNodesJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Run(context.Background(), Options{Input: in, Output: out, Width: 243, FitWidth: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Nodes != 2 || res.Edges != 1 || res.Scale != 0.1 {
		t.Errorf("Result = %+v", res)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := `\rput(126.10,1.80){\rnode{node1}{$0$}}` + "\n" +
		`\rput(103.50,9.00){\rnode{node8}{$\{1\StarGame\,\mid\,\StarGame,\StarGame2,\StarGame3\}$}}` + "\n" +
		`\ncLine[nodesep=3pt]{-}{node1}{node8}` + "\n"
	if string(got) != want {
		t.Errorf("output file =\n%s\nwant\n%s", got, want)
	}
}

func TestRunJSONInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"nodes": [`, errors.ErrCodeInvalidFormat},
		{"unknown node", `{"nodes": [{"id": 1}], "edges": [{"from": 1, "to": 2}]}`, errors.ErrCodeUnknownReference},
		{"duplicate node", `{"nodes": [{"id": 1}, {"id": 1}], "edges": []}`, errors.ErrCodeDuplicateNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "graph.json")
			out := filepath.Join(dir, "graph.tex")
			if err := os.WriteFile(in, []byte(tt.input), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Run(context.Background(), Options{Input: in, Output: out})
			if !errors.Is(err, tt.code) {
				t.Errorf("Run() error = %v, want %s", err, tt.code)
			}
			if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
				t.Error("output file created for invalid input")
			}
		})
	}
}

func TestConvertRejectsNonFiniteCoordinates(t *testing.T) {
	for _, pos := range []string{"NaN,18", "Inf,18", "1_0,18", "1261,-Inf"} {
		t.Run(pos, func(t *testing.T) {
			input := header + "\tnode1 [label=0, pos=\"" + pos + "\", width=\"0.75\"];\n}\n"
			var out bytes.Buffer
			_, err := Convert(strings.NewReader(input), &out, Options{})
			if !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("Convert() error = %v, want %s", err, errors.ErrCodeInvalidValue)
			}
			if out.Len() != 0 {
				t.Errorf("Convert() wrote %q", out.String())
			}
		})
	}
}

func TestFitWidthIgnoresNonFiniteBoundingBox(t *testing.T) {
	input := strings.Replace(twoNodes, "2430,468", "NaN,468", 1)
	var out bytes.Buffer
	res, err := Convert(strings.NewReader(input), &out, Options{Width: 243, FitWidth: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.Scale != pstricks.DefaultScale {
		t.Errorf("Scale = %v, want %v", res.Scale, pstricks.DefaultScale)
	}
}

func TestIgnoredWidthIsNotLoggedAtInfo(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel})

	var out bytes.Buffer
	if _, err := Convert(strings.NewReader(twoNodes), &out, Options{Width: 243, Logger: logger}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output %q", logs.String())
	}
}

func TestRunTruncatesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dot")
	out := filepath.Join(dir, "out.tex")
	_ = os.WriteFile(in, []byte(twoNodes), 0o644)
	_ = os.WriteFile(out, []byte(strings.Repeat("stale\n", 100)), 0o644)

	if _, err := Run(context.Background(), Options{Input: in, Output: out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got, _ := os.ReadFile(out)
	if string(got) != twoNodesWant {
		t.Errorf("output not truncated:\n%s", got)
	}
}

func TestRunParseErrorLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dot")
	out := filepath.Join(dir, "out.tex")
	bad := header + "\tnodeX [label=0, pos=\"1,2\", width=\"1\"];\n"
	_ = os.WriteFile(in, []byte(bad), 0o644)

	_, err := Run(context.Background(), Options{Input: in, Output: out})
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Fatalf("Run() error = %v, want INVALID_VALUE", err)
	}
	if !strings.Contains(errors.UserMessage(err), "line 5") {
		t.Errorf("UserMessage() = %q, want line number", errors.UserMessage(err))
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file should not exist, stat error = %v", statErr)
	}
}

func TestRunIOErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dot")
	_ = os.WriteFile(in, []byte(twoNodes), 0o644)

	t.Run("missing input", func(t *testing.T) {
		_, err := Run(context.Background(), Options{Input: filepath.Join(dir, "absent.dot"), Output: filepath.Join(dir, "x.tex")})
		if !errors.Is(err, errors.ErrCodeIO) {
			t.Errorf("Run() error = %v, want IO_ERROR", err)
		}
		if !stderrors.Is(err, os.ErrNotExist) {
			t.Errorf("Run() error = %v should wrap os.ErrNotExist", err)
		}
	})

	t.Run("output in missing directory", func(t *testing.T) {
		_, err := Run(context.Background(), Options{Input: in, Output: filepath.Join(dir, "no", "such", "out.tex")})
		if !errors.Is(err, errors.ErrCodeIO) {
			t.Errorf("Run() error = %v, want IO_ERROR", err)
		}
	})
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dot")
	out := filepath.Join(dir, "out.tex")
	_ = os.WriteFile(in, []byte(twoNodes), 0o644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Input: in, Output: out})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	events []string
}

func (h *recordingHooks) OnParseStart(context.Context, string) {
	h.events = append(h.events, "parse-start")
}

func (h *recordingHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
	h.events = append(h.events, "parse-complete")
}

func (h *recordingHooks) OnEmitStart(context.Context, string, int, int) {
	h.events = append(h.events, "emit-start")
}

func (h *recordingHooks) OnEmitComplete(context.Context, string, time.Duration, error) {
	h.events = append(h.events, "emit-complete")
}
