package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/palletlab/warevis/pkg/warehouse"
)

func testCLI() *CLI {
	return New(io.Discard, log.FatalLevel)
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	cfg := warehouse.Config{
		ID:         "wh-cli",
		Dimensions: warehouse.Dimensions{Length: 3000, Width: 2000, Height: 800, Unit: "cm"},
		Blocks:     1,
		BlockConfigs: []warehouse.BlockConfig{{
			Rack: warehouse.RackConfig{Floors: 2, Rows: 2, Racks: 4},
		}},
	}
	path := filepath.Join(t.TempDir(), "warehouse.json")
	if err := warehouse.WriteConfigFile(cfg, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandWiring(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"layout", "validate", "render", "serve", "dashboard", "store", "completion"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}

	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q (have %v)", name, got)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	input := writeTestConfig(t)
	output := filepath.Join(t.TempDir(), "out.layout.json")

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", input, "-o", output})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("layout command failed: %v", err)
	}

	l, err := warehouse.ReadLayoutFile(output)
	if err != nil {
		t.Fatalf("output not readable: %v", err)
	}
	if l.RackCount() != 8 {
		t.Errorf("rack count = %d, want 8", l.RackCount())
	}
}

func TestLayoutCommandDefaultOutput(t *testing.T) {
	input := writeTestConfig(t)

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", input})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("layout command failed: %v", err)
	}

	want := filepath.Join(filepath.Dir(input), "warehouse.layout.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	input := writeTestConfig(t)

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"validate", input})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("validate of a good config failed: %v", err)
	}
}

func TestValidateCommandRejectsInvalid(t *testing.T) {
	cfg := warehouse.Config{
		Dimensions: warehouse.Dimensions{Length: 3000, Width: 2000, Height: 800, Unit: "furlong"},
		Blocks:     1,
		BlockConfigs: []warehouse.BlockConfig{{
			Rack: warehouse.RackConfig{Floors: 1, Rows: 1, Racks: 1},
		}},
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := warehouse.WriteConfigFile(cfg, path); err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"validate", path})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("validate should fail on an invalid config")
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeTestConfig(t)
	base := filepath.Join(t.TempDir(), "plan")

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", input, "-o", base, "-f", "svg,json"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("svg output missing: %v", err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Error("svg output should start with an svg element")
	}
	if _, err := warehouse.ReadLayoutFile(base + ".json"); err != nil {
		t.Errorf("json output not a valid layout: %v", err)
	}
}

func TestRenderCommandAcceptsLayoutFile(t *testing.T) {
	input := writeTestConfig(t)
	layoutPath := filepath.Join(t.TempDir(), "wh.layout.json")

	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", input, "-o", layoutPath})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Render straight from the resolved layout.
	base := filepath.Join(t.TempDir(), "fromlayout")
	root = c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", layoutPath, "-o", base, "-f", "json"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render from layout failed: %v", err)
	}

	direct, err := warehouse.ReadLayoutFile(layoutPath)
	if err != nil {
		t.Fatal(err)
	}
	rendered, err := warehouse.ReadLayoutFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(direct, rendered) {
		t.Error("rendering a layout file should not change the geometry")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,json", []string{"svg", "json"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
