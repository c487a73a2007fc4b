package enneabot

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// BotConfig holds everything needed to run the quiz service.
// Use NewBotConfigFromEnv() to load it from environment variables (.env file
// supported).
type BotConfig struct {
	// ListenAddr is the HTTP listen address (default ":3000").
	ListenAddr string
	// DataFile is the tab-separated classification table source.
	DataFile string
	// SQLitePath is the result database file (default "./enneagram.db").
	SQLitePath string
	// RedisAddr switches sessions to the redis backend when non-empty.
	RedisAddr string
	// SessionTTL expires idle redis sessions; 0 keeps them forever.
	SessionTTL time.Duration
	// PublicDir is served as static files when non-empty.
	PublicDir string
	// RestartKeyword resets a session from any step (default "테스트").
	RestartKeyword string
	// Debug enables verbose logging.
	Debug bool
}

// NewBotConfigFromEnv loads configuration from environment variables,
// reading a .env file first when present.
func NewBotConfigFromEnv() *BotConfig {
	loadDotEnv()

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "0"))
	if err != nil {
		sessionTTL = 0
	}

	return &BotConfig{
		ListenAddr:     getEnv("LISTEN_ADDR", ":3000"),
		DataFile:       getEnv("DATA_FILE", "data/enneagram_full_combinations.csv"),
		SQLitePath:     getEnv("SQLITE_PATH", "./enneagram.db"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		SessionTTL:     sessionTTL,
		PublicDir:      getEnv("PUBLIC_DIR", "public"),
		RestartKeyword: getEnv("RESTART_KEYWORD", DefaultRestartKeyword),
		Debug:          toBool(getEnv("DEBUG", "false")),
	}
}

// Summary returns a human-readable configuration summary.
func (c *BotConfig) Summary() string {
	sessions := "in-memory"
	if c.RedisAddr != "" {
		sessions = fmt.Sprintf("redis (%s, ttl=%s)", c.RedisAddr, c.SessionTTL)
	}
	return fmt.Sprintf(
		"Listen: %s | Data: %s | DB: %s | Sessions: %s | Debug: %v",
		c.ListenAddr, c.DataFile, c.SQLitePath, sessions, c.Debug,
	)
}

// --- internal helpers ---

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return strings.TrimSpace(val)
}

func toBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// loadDotEnv attempts to load a .env file from the current directory.
// It silently ignores errors (file not found, parse errors).
func loadDotEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, val)
		}
	}
}
