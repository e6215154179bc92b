package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestApp(t *testing.T) {
	app := App()

	if app.Name != "hashsnap-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "hashsnap-cli")
	}
	if app.Version == "" {
		t.Error("Version should not be empty")
	}

	want := []string{"list", "inspect", "dump", "seed", "stats", "prune"}
	got := make(map[string]bool)
	for _, cmd := range app.Commands {
		got[cmd.Name] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	app := App()

	flags := make(map[string]cli.Flag)
	for _, f := range app.Flags {
		flags[f.Names()[0]] = f
	}

	cf, ok := flags["config"].(*cli.StringFlag)
	if !ok {
		t.Fatal("config flag missing")
	}
	if len(cf.EnvVars) == 0 || cf.EnvVars[0] != "HASHSNAP_CONFIG" {
		t.Error("config flag should have HASHSNAP_CONFIG env var")
	}

	of, ok := flags["output"].(*cli.StringFlag)
	if !ok {
		t.Fatal("output flag missing")
	}
	if of.Value != "table" {
		t.Errorf("output default = %q, want %q", of.Value, "table")
	}

	if _, ok := flags["data-dir"]; !ok {
		t.Error("data-dir flag missing")
	}
}

func TestApp_RejectsInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
table:
  shards: 12
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	app := App()
	err := app.Run([]string{"hashsnap-cli", "--config", configPath, "list"})
	if err == nil {
		t.Error("Run() should fail for a non power of two shard count")
	}
}

func TestSeedListInspectDump(t *testing.T) {
	dataDir := t.TempDir()

	run := func(args ...string) error {
		app := App()
		return app.Run(append([]string{"hashsnap-cli", "--data-dir", dataDir}, args...))
	}

	if err := run("seed", "--records", "25", "--seed", "42"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		t.Fatalf("read data dir: %v", err)
	}
	var snapPath string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".snap") {
			snapPath = filepath.Join(dataDir, e.Name())
		}
	}
	if snapPath == "" {
		t.Fatal("seed did not create a .snap file")
	}

	if err := run("list"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := run("--output", "json", "inspect", snapPath); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if err := run("dump", "--max", "5", snapPath); err != nil {
		t.Fatalf("dump: %v", err)
	}

	// A bare id resolves against the data dir.
	id := strings.TrimSuffix(filepath.Base(snapPath), ".snap")
	if err := run("dump", "--max", "1", id); err != nil {
		t.Fatalf("dump by id: %v", err)
	}

	if err := run("--output", "json", "stats"); err != nil {
		t.Fatalf("stats: %v", err)
	}
}

func TestStatsGauges(t *testing.T) {
	dataDir := t.TempDir()

	run := func(args ...string) error {
		app := App()
		return app.Run(append([]string{"hashsnap-cli", "--data-dir", dataDir}, args...))
	}

	if err := run("seed", "--records", "7"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := run("stats"); err != nil {
		t.Fatalf("stats: %v", err)
	}

	// An empty data dir has nothing to load.
	empty := t.TempDir()
	app := App()
	err := app.Run([]string{"hashsnap-cli", "--data-dir", empty, "stats"})
	if err == nil {
		t.Error("stats should fail when no snapshot exists")
	}
}

func TestPruneKeepsFreshSnapshots(t *testing.T) {
	dataDir := t.TempDir()

	run := func(args ...string) error {
		app := App()
		return app.Run(append([]string{"hashsnap-cli", "--data-dir", dataDir}, args...))
	}

	if err := run("seed", "--records", "1"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := run("seed", "--records", "1"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Both snapshots are younger than the retention window, so prune
	// must keep them even with --keep 1.
	if err := run("prune", "--keep", "1"); err != nil {
		t.Fatalf("prune: %v", err)
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		t.Fatalf("read data dir: %v", err)
	}
	count := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".snap") {
			count++
		}
	}
	if count != 2 {
		t.Errorf("snapshot count after prune = %d, want 2", count)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.in); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
