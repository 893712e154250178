package config

import (
	"crypto/rand"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultBackendURL = "http://localhost:5000"

type Config struct {
	ListenAddr     string
	BackendBaseURL string
	ThemeCachePath string
	SessionKey     []byte
	CSRFKey        []byte
	CookieSecure   bool
	KafkaBrokers   []string
	KafkaTopic     string
	Debug          bool
}

// Load reads configuration from the environment, picking up a .env file when
// one is present in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.L().Warn("failed to load .env file", zap.Error(err))
	}

	cfg := &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		BackendBaseURL: normalizeBackendURL(os.Getenv("BACKEND_BASE_URL")),
		ThemeCachePath: getEnv("THEME_CACHE_PATH", "./theme_cache.json"),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		KafkaTopic:     getEnv("AUDIT_KAFKA_TOPIC", "admin-audit"),
		Debug:          getEnv("DEBUG", "false") == "true",
	}

	if brokers := os.Getenv("AUDIT_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	cfg.SessionKey = keyFromEnv("SESSION_KEY")
	cfg.CSRFKey = keyFromEnv("CSRF_KEY")

	return cfg, nil
}

// normalizeBackendURL applies the override when present, forcing unencrypted
// transport for loopback hosts: local development backends have no TLS, and a
// stray https:// override would otherwise fail the handshake.
func normalizeBackendURL(override string) string {
	if override == "" {
		return defaultBackendURL
	}
	base := strings.TrimRight(override, "/")
	u, err := url.Parse(base)
	if err != nil {
		zap.L().Warn("invalid BACKEND_BASE_URL, using default", zap.String("url", override))
		return defaultBackendURL
	}
	if u.Scheme == "https" && isLoopbackHost(u.Hostname()) {
		u.Scheme = "http"
		return u.String()
	}
	return base
}

func isLoopbackHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1" ||
		strings.HasSuffix(host, ".localhost")
}

func keyFromEnv(name string) []byte {
	if v := os.Getenv(name); v != "" {
		return []byte(v)
	}
	zap.L().Warn("key not set, generating a random one; sessions will not survive a restart", zap.String("env", name))
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		zap.L().Fatal("failed to read random bytes", zap.Error(err))
	}
	return b
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
