package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded once at startup and passed to
// the components that need it.
type Config struct {
	// Addr is the listen address. The server is a local companion to the
	// desktop UI, so the default binds loopback only.
	Addr string
	// AllowedOrigins feeds CORS for the dev UI server.
	AllowedOrigins []string
	// DataDir holds the database file, the gateway settings blob and the
	// rendered receipts.
	DataDir string
	// StoreName appears on receipt headers.
	StoreName string
}

// Load reads .env (when present) and the environment, filling defaults for
// anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := &Config{
		Addr:           envOr("POS_ADDR", "127.0.0.1:8080"),
		AllowedOrigins: strings.Split(envOr("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		DataDir:        envOr("DATA_DIR", "./data"),
		StoreName:      envOr("STORE_NAME", "GNS Super Market"),
	}
	return cfg
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "gns_pos.db")
}

func (c *Config) ReceiptsDir() string {
	return filepath.Join(c.DataDir, "receipts")
}

func (c *Config) SMSSettingsPath() string {
	return filepath.Join(c.DataDir, "sms-settings.json")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
