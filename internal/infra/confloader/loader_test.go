package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Storage struct {
		DataDir      string `koanf:"data_dir"`
		SnapshotKeep int    `koanf:"snapshot_keep"`
	} `koanf:"storage"`
	Table struct {
		Shards          int  `koanf:"shards"`
		PooledAllocator bool `koanf:"pooled_allocator"`
	} `koanf:"table"`
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
storage:
  data_dir: "/var/lib/hashsnap"
  snapshot_keep: 3
table:
  shards: 32
  pooled_allocator: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	l := NewLoader()
	if err := l.LoadFile(configPath); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if dir := l.GetString("storage.data_dir"); dir != "/var/lib/hashsnap" {
		t.Errorf("storage.data_dir = %q, want %q", dir, "/var/lib/hashsnap")
	}

	if !l.GetBool("table.pooled_allocator") {
		t.Error("table.pooled_allocator should be true")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	err := l.LoadFile("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	// Empty path should not error
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("HASHSNAP_STORAGE__DATA_DIR", "/tmp/snapshots")
	t.Setenv("HASHSNAP_TABLE__POOLED_ALLOCATOR", "true")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if dir := l.GetString("storage.data_dir"); dir != "/tmp/snapshots" {
		t.Errorf("storage.data_dir = %q, want %q", dir, "/tmp/snapshots")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_TABLE__SHARDS", "64")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if shards := l.GetString("table.shards"); shards != "64" {
		t.Errorf("table.shards = %q, want %q", shards, "64")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	data := map[string]any{
		"storage.data_dir": "/data",
		"debug":            true,
	}

	if err := l.LoadMap(data); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if dir := l.GetString("storage.data_dir"); dir != "/data" {
		t.Errorf("storage.data_dir = %q, want %q", dir, "/data")
	}

	if !l.GetBool("debug") {
		t.Error("debug should be true")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
storage:
  data_dir: "/from-file"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("HASHSNAP_STORAGE__DATA_DIR", "/from-env")

	l := NewLoader(WithConfigFile(configPath))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Environment should override file
	if cfg.Storage.DataDir != "/from-env" {
		t.Errorf("DataDir = %q, want %q (env should override file)",
			cfg.Storage.DataDir, "/from-env")
	}
}

func TestLoader_Unmarshal(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
storage:
  data_dir: "/var/lib/hashsnap"
  snapshot_keep: 3
table:
  shards: 32
  pooled_allocator: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	l := NewLoader(WithConfigFile(configPath))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.DataDir != "/var/lib/hashsnap" {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, "/var/lib/hashsnap")
	}
	if cfg.Storage.SnapshotKeep != 3 {
		t.Errorf("SnapshotKeep = %d, want 3", cfg.Storage.SnapshotKeep)
	}
	if cfg.Table.Shards != 32 {
		t.Errorf("Shards = %d, want 32", cfg.Table.Shards)
	}
	if !cfg.Table.PooledAllocator {
		t.Error("PooledAllocator should be true")
	}
}

func TestLoader_IsLoaded(t *testing.T) {
	l := NewLoader()

	if l.IsLoaded() {
		t.Error("IsLoaded() should be false before Load()")
	}

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}

func TestLoader_All(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{
		"key1": "value1",
		"key2": "value2",
	})

	all := l.All()
	if len(all) < 2 {
		t.Errorf("All() returned %d keys, want at least 2", len(all))
	}
}

func TestLoader_Keys(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{
		"key1": "value1",
		"key2": "value2",
	})

	keys := l.Keys()
	if len(keys) < 2 {
		t.Errorf("Keys() returned %d keys, want at least 2", len(keys))
	}
}

func TestLoader_GetInt(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{
		"port": 8080,
	})

	if port := l.GetInt("port"); port != 8080 {
		t.Errorf("GetInt(port) = %d, want %d", port, 8080)
	}
}
