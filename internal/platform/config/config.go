package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is resolved once at startup and passed by value to constructors.
type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	VaultURL     string
	PublisherURL string // "" when no publisher is deployed

	UpstreamTimeout time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	vaultDomain := getEnv("RELAYSMS_VAULT_DOMAIN", "")
	if vaultDomain == "" {
		return Config{}, fmt.Errorf("RELAYSMS_VAULT_DOMAIN is required")
	}

	cfg := Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		VaultURL:        baseURL(vaultDomain, getEnv("RELAYSMS_VAULT_PORT", "443")),
		UpstreamTimeout: time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 30)),
		ShutdownTimeout: time.Second * time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)),
	}

	if publisherDomain := getEnv("RELAYSMS_PUBLISHER_DOMAIN", ""); publisherDomain != "" {
		cfg.PublisherURL = baseURL(publisherDomain, getEnv("RELAYSMS_PUBLISHER_PORT", "443"))
	}

	if cfg.UpstreamTimeout <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

// baseURL joins a domain and a port; a domain without scheme gets https.
func baseURL(domain, port string) string {
	domain = strings.TrimRight(strings.TrimSpace(domain), "/")
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}
	if port == "" {
		return domain
	}
	return domain + ":" + port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
