package solver

import (
	"errors"
	"strings"
	"testing"

	"github.com/archplane/archplane/pkg/diagram"
)

func testOptions() Options {
	return Options{
		NodeWidth:  200,
		NodeHeight: 80,
		ColumnGap:  320,
		RowGap:     128,
		PaddingX:   60,
		PaddingY:   60,
	}
}

func TestToDOT(t *testing.T) {
	c := diagram.Prepare(diagram.Graph{
		Nodes: []diagram.Node{{ID: "api"}, {ID: "db"}},
		Edges: []diagram.Edge{
			{ID: "e1", Source: "api", Target: "db", Label: "reads"},
		},
	})

	dot := ToDOT(c, testOptions())

	for _, want := range []string{
		"rankdir=LR",
		"splines=ortho",
		`"api";`,
		`"db";`,
		`"api" -> "db" [label="reads"];`,
		// 320-200 = 120px rank gap, 128-80 = 48px node gap, in inches.
		"ranksep=1.667",
		"nodesep=0.667",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_UnlabeledEdge(t *testing.T) {
	c := diagram.Prepare(diagram.Graph{
		Nodes: []diagram.Node{{ID: "a"}, {ID: "b"}},
		Edges: []diagram.Edge{{ID: "e1", Source: "a", Target: "b"}},
	})

	dot := ToDOT(c, testOptions())

	if !strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("unlabeled edge rendered wrong:\n%s", dot)
	}
	if strings.Contains(dot, "label=") {
		t.Errorf("unexpected label attribute:\n%s", dot)
	}
}

func TestInches(t *testing.T) {
	if got := inches(72); got != 1.0 {
		t.Errorf("inches(72) = %v, want 1.0", got)
	}
	// Degenerate spacing clamps to the minimum instead of producing an
	// invalid DOT attribute.
	if got := inches(0); got != 0.1 {
		t.Errorf("inches(0) = %v, want 0.1", got)
	}
	if got := inches(-40); got != 0.1 {
		t.Errorf("inches(-40) = %v, want 0.1", got)
	}
}

func TestParsePositions(t *testing.T) {
	xdot := `digraph G {
	graph [bb="0,0,500,300"];
	"a"	[height=1.11, pos="100,200", width=2.78];
	"b"	[height=1.11, pos="400,100", width=2.78];
	"a" -> "b"	[pos="e,300,150 200,200 250,180 280,160 300,150"];
}`

	got, err := parsePositions(xdot, testOptions())
	if err != nil {
		t.Fatalf("parsePositions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("parsed %d positions, want 2", len(got))
	}

	// Centers become top-left corners; the y axis flips so y grows
	// downward ("a" sits above "b" in the xdot frame).
	if got["a"].X != 0 || got["a"].Y != -240 {
		t.Errorf(`a = (%v,%v), want (0,-240)`, got["a"].X, got["a"].Y)
	}
	if got["b"].X != 300 || got["b"].Y != -140 {
		t.Errorf(`b = (%v,%v), want (300,-140)`, got["b"].X, got["b"].Y)
	}
	if got["a"].Y >= got["b"].Y {
		t.Error("a must end up above b after the flip")
	}
}

func TestParsePositions_SkipsEdgeStatements(t *testing.T) {
	xdot := `digraph G {
	graph [bb="0,0,100,100"];
	"a"	[pos="50,50"];
	"a" -> "a_worker"	[pos="e,10,10 20,20 30,30"];
}`

	got, err := parsePositions(xdot, testOptions())
	if err != nil {
		t.Fatalf("parsePositions: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("parsed %d positions, want 1 (edge splines skipped)", len(got))
	}
}

func TestParsePositions_Empty(t *testing.T) {
	_, err := parsePositions("digraph G {\n}", testOptions())
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("err = %v, want ErrEmptyResult", err)
	}
}

func TestNormalize(t *testing.T) {
	in := map[string]Position{
		"a": {X: -30, Y: 200},
		"b": {X: 120, Y: -100},
	}

	got := Normalize(in, 60, 40)

	if got["a"].X != 60 || got["b"].Y != 40 {
		t.Error("minimum coordinates must land on the padding")
	}
	// Relative offsets survive the shift.
	if got["b"].X-got["a"].X != 150 {
		t.Errorf("x offset = %v, want 150", got["b"].X-got["a"].X)
	}
	if got["a"].Y-got["b"].Y != 300 {
		t.Errorf("y offset = %v, want 300", got["a"].Y-got["b"].Y)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(nil, 60, 60); got != nil {
		t.Errorf("Normalize(nil) = %v, want nil", got)
	}
}
