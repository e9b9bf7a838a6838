package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/archplane/archplane/pkg/diagram"
)

func TestRootCommandWiring(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{"layout": false, "serve": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestLayoutCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	input := filepath.Join(dir, "graph.json")
	g := diagram.Graph{
		Nodes: []diagram.Node{
			{ID: "web", Category: diagram.CategoryClient},
			{ID: "api", Category: diagram.CategoryService},
		},
		Edges: []diagram.Edge{{ID: "e1", Source: "web", Target: "api"}},
	}
	if err := diagram.WriteFile(g, input); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"layout", "--no-solver", input})

	if err := root.Execute(); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	out, err := diagram.ReadFile(filepath.Join(dir, "graph.layout.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if out.NodeCount() != 2 {
		t.Fatalf("output node count = %d, want 2", out.NodeCount())
	}
	for _, n := range out.Nodes {
		if n.X == 0 && n.Y == 0 {
			t.Errorf("node %s not positioned", n.ID)
		}
	}
}

func TestLayoutCommandMissingInput(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"layout", "--no-solver", "does-not-exist.json"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("expected error for missing input file")
	}
}
