package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/galaxy/internal/config"
	"github.com/Faultbox/galaxy/internal/galaxy"
)

// run executes the root command with a config file that pins the galaxy.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := []byte("galaxy:\n  count: 120\n  branches: 4\n  seed: 9\n")
	if err := os.WriteFile(path, cfg, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvCount, "")

	if len(args) > 0 && args[0] != "preset" {
		args = append(args, "--config", path)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGeneratePLY(t *testing.T) {
	out, err := run(t, "generate")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.HasPrefix(out, "ply\n") {
		t.Errorf("output does not start with a PLY header: %q", out[:min(len(out), 20)])
	}
	if !strings.Contains(out, "element vertex 120\n") {
		t.Error("expected 120 vertices from the config file")
	}
}

func TestGenerateFlagsOverrideConfig(t *testing.T) {
	out, err := run(t, "generate", "--format", "csv", "-n", "5")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 5 rows", len(lines))
	}
	if lines[0] != "x,y,z,r,g,b" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := run(t, "generate", "--format", "csv")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	b, err := run(t, "generate", "--format", "csv")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if a != b {
		t.Error("same seed produced different clouds")
	}
	c, err := run(t, "generate", "--format", "csv", "--seed", "10")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if a == c {
		t.Error("different seeds produced the same cloud")
	}
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ply")
	out, err := run(t, "generate", "-o", path)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(out, "Wrote 120 points") {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("ply\n")) {
		t.Error("file is not PLY")
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"generate", "--format", "obj"}, "unknown format"},
		{"bad branches", []string{"generate", "--branches", "0"}, "branches"},
		{"extra args", []string{"generate", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--bins", "4")
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	for _, want := range []string{"Points:   120", "Arms (4):", "    0  30", "    3  30", "Radius histogram:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRadiusHistogram(t *testing.T) {
	cloud := &galaxy.PointCloud{
		Positions: []float32{
			0.5, 0, 0,
			0, 9, 1.5,
			3, 0, 4, // distance 5, past the radius
		},
		Colors: make([]float32, 9),
	}
	got := radiusHistogram(cloud, 2, 2)
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("radiusHistogram() = %v, want [1 2]", got)
	}
	if h := radiusHistogram(cloud, 0, 3); h[0]+h[1]+h[2] != 0 {
		t.Errorf("zero radius histogram = %v, want empty", h)
	}
}

func TestPreset(t *testing.T) {
	out, err := run(t, "preset")
	if err != nil {
		t.Fatalf("preset error = %v", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("preset is not YAML: %v", err)
	}
	if cfg.Galaxy.Parameters != galaxy.DefaultParameters() {
		t.Errorf("preset parameters = %+v, want defaults", cfg.Galaxy.Parameters)
	}
}

func TestWriteFileErrors(t *testing.T) {
	cloud := &galaxy.PointCloud{}
	dir := t.TempDir()

	if err := writeFile(filepath.Join(dir, "missing", "out.ply"), cloud, galaxy.WritePLY); err == nil {
		t.Error("expected create error for a missing directory")
	}

	failing := func(io.Writer, *galaxy.PointCloud) error { return errors.New("disk full") }
	path := filepath.Join(dir, "out.ply")
	err := writeFile(path, cloud, failing)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("writeFile() error = %v, want the write error", err)
	}

	if err := writeFile(path, cloud, galaxy.WritePLY); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "element vertex 0") {
		t.Errorf("file = %q, want an empty PLY", data)
	}
}
