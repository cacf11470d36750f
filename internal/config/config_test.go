package config

import (
	"os"
	"path/filepath"
	"testing"

	"minishop/internal/routing"
)

func TestLoadDefaultsToLocalMode(t *testing.T) {
	t.Setenv("ACTIVE_PROFILE", "")
	t.Setenv("E2E_CLUSTER_MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("BASE_URL", "")

	cfg := Load(false)
	if cfg.Mode != routing.ModeLocal {
		t.Fatalf("want local mode, got %s", cfg.Mode)
	}
	if cfg.Port != "8700" {
		t.Fatalf("want default port 8700, got %s", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:8700" {
		t.Fatalf("base url should default to localhost:port, got %s", cfg.BaseURL)
	}
}

func TestClusterModeFromProfile(t *testing.T) {
	t.Setenv("ACTIVE_PROFILE", "e2e-cluster")
	t.Setenv("E2E_CLUSTER_MODE", "")

	if cfg := Load(false); cfg.Mode != routing.ModeCluster {
		t.Fatalf("profile containing cluster should force cluster mode, got %s", cfg.Mode)
	}
}

func TestClusterModeFromEnvFlag(t *testing.T) {
	t.Setenv("ACTIVE_PROFILE", "test")
	t.Setenv("E2E_CLUSTER_MODE", "true")

	if cfg := Load(false); cfg.Mode != routing.ModeCluster {
		t.Fatalf("E2E_CLUSTER_MODE=true should force cluster mode, got %s", cfg.Mode)
	}
}

func TestClusterModeFromProcessFlag(t *testing.T) {
	t.Setenv("ACTIVE_PROFILE", "test")
	t.Setenv("E2E_CLUSTER_MODE", "false")

	if cfg := Load(true); cfg.Mode != routing.ModeCluster {
		t.Fatal("process flag should force cluster mode")
	}
}

func TestClusterConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	yaml := `
baseUrl: http://cluster.local
services:
  order:
    url: http://svc-order
    contextPath: /v2
  payment:
    contextPath: /pay/
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ACTIVE_PROFILE", "cluster")
	t.Setenv("CLUSTER_CONFIG", path)

	cfg := Load(false)
	resolver := cfg.Resolver()

	if got := resolver.URL("/api/orders"); got != "http://svc-order/v2/api/orders" {
		t.Fatalf("order override not applied: %s", got)
	}
	if got := resolver.URL("/api/payments"); got != "http://cluster.local:8082/pay/api/payments" {
		t.Fatalf("payment override not applied: %s", got)
	}
	// unconfigured service falls back entirely
	if got := resolver.URL("/api/users"); got != "http://cluster.local:8085/user-service/api/users" {
		t.Fatalf("user fallback wrong: %s", got)
	}
}
