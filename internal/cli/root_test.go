package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// minimalDoc is a valid document with one Z spider and one boundary.
const minimalDoc = `{
  "wire_vertices": {"b0": {"annotation": {"boundary": true, "coord": [0, 0], "input": true, "output": false}}},
  "node_vertices": {"v0": {"annotation": {"coord": [1, 0]}}},
  "undir_edges": {"e0": {"src": "b0", "tgt": "v0"}}
}`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagram.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandStructure(t *testing.T) {
	root := newRootCmd()

	want := []string{"fmt", "info", "render", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestFmtCommand(t *testing.T) {
	path := writeDoc(t, minimalDoc)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"fmt", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("fmt command error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, `"node_vertices"`) {
		t.Errorf("fmt output missing node_vertices: %s", got)
	}
	if !strings.Contains(got, `"v0"`) {
		t.Errorf("fmt output missing vertex name: %s", got)
	}
}

func TestFmtCommandNoScalar(t *testing.T) {
	path := writeDoc(t, minimalDoc)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"fmt", "--no-scalar", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("fmt command error: %v", err)
	}
	if strings.Contains(out.String(), `"scalar"`) {
		t.Error("fmt --no-scalar output should omit scalar")
	}
}

func TestFmtCommandWriteAndOutputConflict(t *testing.T) {
	path := writeDoc(t, minimalDoc)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fmt", "-w", "-o", "other.json", path})

	if err := root.Execute(); err == nil {
		t.Error("fmt -w -o should fail")
	}
}

func TestFmtCommandMissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fmt", "/nonexistent/diagram.json"})

	if err := root.Execute(); err == nil {
		t.Error("fmt on missing file should fail")
	}
}

func TestInfoCommand(t *testing.T) {
	path := writeDoc(t, minimalDoc)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"info", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("info command error: %v", err)
	}
}

func TestRenderCommandDOT(t *testing.T) {
	// The dot format needs neither Graphviz nor librsvg at runtime.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeDoc(t, minimalDoc)
	outPath := filepath.Join(t.TempDir(), "diagram.dot")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "-f", "dot", "--no-cache", "-o", outPath, path})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "graph G") {
		t.Errorf("rendered DOT missing graph declaration: %s", data)
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeDoc(t, minimalDoc)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "-f", "bmp", path})

	if err := root.Execute(); err == nil {
		t.Error("render with invalid format should fail")
	}
}
