package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Global.ListenAddr != "127.0.0.1:50051" {
		t.Fatalf("unexpected default listen addr %q", cfg.Global.ListenAddr)
	}
	if cfg.Local.RequestTimeout != 3*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.Local.RequestTimeout)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dstore.yaml")
	body := `
logger:
  level: DEBUG
  json: true
global:
  listen_addr: 0.0.0.0:60000
  chunk_bytes: 4096
local:
  addr: 10.0.0.5:60001
  global_addr: 10.0.0.1:60000
  request_timeout: 10s
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Global.ListenAddr != "0.0.0.0:60000" {
		t.Fatalf("listen addr not overridden: %q", cfg.Global.ListenAddr)
	}
	if cfg.Global.ChunkBytes != 4096 {
		t.Fatalf("chunk bytes not overridden: %d", cfg.Global.ChunkBytes)
	}
	if cfg.Local.RequestTimeout != 10*time.Second {
		t.Fatalf("timeout not overridden: %v", cfg.Local.RequestTimeout)
	}
	if !cfg.Logger.JSON {
		t.Fatal("logger json not overridden")
	}
	// Sections absent from the file keep their defaults.
	if cfg.Global.HTTPPort != "8080" {
		t.Fatalf("http port default lost: %q", cfg.Global.HTTPPort)
	}
}
