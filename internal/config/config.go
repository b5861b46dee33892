package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Registry backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	DataDir        string        `yaml:"data_dir"`
	DBPath         string        `yaml:"db_path"`
	LogLevel       string        `yaml:"log_level"`
	StaticDir      string        `yaml:"static_dir"`
	BlockedPageURL string        `yaml:"blocked_url"`
	Store          string        `yaml:"store"`
	RedisURL       string        `yaml:"redis_url"`
	APIRate        float64       `yaml:"api_rate"`
	Swagger        bool          `yaml:"swagger"`
	TabTTL         time.Duration `yaml:"tab_ttl"`
	NodeID         int64         `yaml:"node_id"`
}

// Default returns the built-in configuration. The daemon only listens on loopback unless
// told otherwise.
func Default() Config {
	return Config{
		Addr:     "127.0.0.1:8080",
		DataDir:  "data",
		LogLevel: "info",
		Store:    StoreSQLite,
		RedisURL: "redis://127.0.0.1:6379/0",
		APIRate:  20,
		Swagger:  true,
	}
}

// Load builds the configuration from defaults, then the YAML file named by VISITCAP_CONFIG
// when set, then VISITCAP_* environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("VISITCAP_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "visitcap.db")
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	if cfg.StaticDir == "" {
		cfg.StaticDir = detectStaticDir()
	}
	if cfg.StaticDir != "" {
		cfg.StaticDir = filepath.Clean(cfg.StaticDir)
	}
	if cfg.BlockedPageURL == "" {
		cfg.BlockedPageURL = blockedURLFor(cfg.Addr)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setString("VISITCAP_ADDR", &cfg.Addr)
	setString("VISITCAP_DATA_DIR", &cfg.DataDir)
	setString("VISITCAP_DB_PATH", &cfg.DBPath)
	setString("VISITCAP_LOG_LEVEL", &cfg.LogLevel)
	setString("VISITCAP_STATIC_DIR", &cfg.StaticDir)
	setString("VISITCAP_BLOCKED_URL", &cfg.BlockedPageURL)
	setString("VISITCAP_STORE", &cfg.Store)
	setString("VISITCAP_REDIS_URL", &cfg.RedisURL)

	if v := os.Getenv("VISITCAP_API_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("VISITCAP_API_RATE: %w", err)
		}
		cfg.APIRate = rate
	}
	if v := os.Getenv("VISITCAP_SWAGGER"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("VISITCAP_SWAGGER: %w", err)
		}
		cfg.Swagger = enabled
	}
	if v := os.Getenv("VISITCAP_TAB_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("VISITCAP_TAB_TTL: %w", err)
		}
		cfg.TabTTL = ttl
	}
	if v := os.Getenv("VISITCAP_NODE_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("VISITCAP_NODE_ID: %w", err)
		}
		cfg.NodeID = id
	}
	return nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.APIRate < 0 {
		return fmt.Errorf("api rate must not be negative")
	}
	if c.TabTTL < 0 {
		return fmt.Errorf("tab ttl must not be negative")
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("node id %d out of range 0-1023", c.NodeID)
	}
	return nil
}

// blockedURLFor points at the daemon's own blocked page. Wildcard listen hosts become loopback.
func blockedURLFor(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://127.0.0.1:8080/blocked"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/blocked"
}

func detectStaticDir() string {
	candidates := []string{
		"./popup",
		"./web/popup",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "popup.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
