package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load without config file: %v", err)
	}

	if cfg.Port != 3000 {
		t.Fatalf("port = %d", cfg.Port)
	}
	if cfg.Mode != "release" {
		t.Fatalf("mode = %q", cfg.Mode)
	}
	if cfg.StaticPath != "./public" {
		t.Fatalf("static_path = %q", cfg.StaticPath)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Fatalf("ping_period = %v", cfg.PingPeriod)
	}
	if cfg.JoinLimit != 10 || cfg.JoinInterval != 10*time.Second {
		t.Fatalf("join limits = %d per %v", cfg.JoinLimit, cfg.JoinInterval)
	}
	if len(cfg.ICEServers) != 1 || len(cfg.ICEServers[0].URLs) != 1 {
		t.Fatalf("ice_servers = %+v", cfg.ICEServers)
	}
	if cfg.Tunnel.Enabled {
		t.Fatal("tunnel enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_ENV", "test")

	yaml := []byte(`
mode: debug
port: 8443
join_limit: 3
ice_servers:
  - urls: ["turn:turn.example.com:3478"]
    username: u
    credential: p
tunnel:
  enabled: true
  subdomain: live3
`)
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "config.test.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != "debug" || cfg.Port != 8443 || cfg.JoinLimit != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ICEServers[0].Username != "u" || cfg.ICEServers[0].Credential != "p" {
		t.Fatalf("ice_servers = %+v", cfg.ICEServers)
	}
	if !cfg.Tunnel.Enabled || cfg.Tunnel.Subdomain != "live3" {
		t.Fatalf("tunnel = %+v", cfg.Tunnel)
	}
	// File values must not clobber unrelated defaults.
	if cfg.ReadLimit != 32768 {
		t.Fatalf("read_limit = %d", cfg.ReadLimit)
	}
}
