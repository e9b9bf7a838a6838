package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/archplane/archplane/pkg/layout"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.LayoutConfig() != layout.DefaultConfig() {
		t.Error("missing file must yield default layout config")
	}
}

func TestLoad_PartialFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[server]
addr = ":9090"

[cache]
redis_addr = "localhost:6379"
ttl = "1h"

[layout]
column_gap = 400.0
passes = 6
solver_timeout = "250ms"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache.RedisAddr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL.Duration)
	}

	lc := cfg.LayoutConfig()
	if lc.ColumnGap != 400 {
		t.Errorf("ColumnGap = %v, want 400", lc.ColumnGap)
	}
	if lc.Passes != 6 {
		t.Errorf("Passes = %d, want 6", lc.Passes)
	}
	if lc.SolverTimeout != 250*time.Millisecond {
		t.Errorf("SolverTimeout = %v, want 250ms", lc.SolverTimeout)
	}
	// Keys absent from the file keep their defaults.
	if lc.NodeWidth != layout.DefaultNodeWidth {
		t.Errorf("NodeWidth = %v, want default %v", lc.NodeWidth, layout.DefaultNodeWidth)
	}
	if cfg.Store.Database != "archplane" {
		t.Errorf("Store.Database = %q, want archplane", cfg.Store.Database)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\naddr = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nttl = \"soon\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unparsable duration")
	}
}
