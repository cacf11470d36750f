package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"minishop/internal/routing"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	BaseURL       string
	ActiveProfile string
	Mode          routing.DeploymentMode

	ClusterBaseURL  string
	ClusterServices map[string]routing.ServiceOverride
}

// Load reads configuration from the environment, resolving the
// deployment mode exactly once. clusterFlag is the process-level
// override (the -cluster command line flag); E2E_CLUSTER_MODE is the
// environment-level one.
func Load(clusterFlag bool) Config {
	cfg := Config{
		Port:          getenv("PORT", "8700"),
		DBDSN:         getenv("DB_DSN", "minishop.db"),
		LogFile:       os.Getenv("LOG_FILE"),
		BaseURL:       os.Getenv("BASE_URL"),
		ActiveProfile: getenv("ACTIVE_PROFILE", "test"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	envFlag := os.Getenv("E2E_CLUSTER_MODE") == "true"
	cfg.Mode = routing.DetectMode(cfg.ActiveProfile, clusterFlag, envFlag)

	cfg.ClusterBaseURL = getenv("CLUSTER_BASE_URL", "http://localhost")
	if path := os.Getenv("CLUSTER_CONFIG"); path != "" {
		if err := cfg.loadClusterFile(path); err != nil {
			log.Printf("[warn] could not load cluster config %s: %v", path, err)
		}
	}

	log.Printf("[config] PORT=%s MODE=%s BASE_URL=%s DB_DSN=%s", cfg.Port, cfg.Mode, cfg.BaseURL, cfg.DBDSN)
	return cfg
}

// clusterFile mirrors the YAML shape:
//
//	baseUrl: http://cluster.local
//	services:
//	  order:
//	    url: http://svc-order
//	    contextPath: /v2
type clusterFile struct {
	BaseURL  string                             `yaml:"baseUrl"`
	Services map[string]routing.ServiceOverride `yaml:"services"`
}

func (c *Config) loadClusterFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f clusterFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}
	if f.BaseURL != "" {
		c.ClusterBaseURL = f.BaseURL
	}
	c.ClusterServices = f.Services
	return nil
}

// Resolver builds the service URL resolver for the loaded mode.
func (c Config) Resolver() *routing.Resolver {
	cluster := routing.NewCluster(c.ClusterBaseURL, c.ClusterServices)
	return routing.NewResolver(c.Mode, c.BaseURL, cluster)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
