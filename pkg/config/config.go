package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// Backend is the hotel-booking REST API this gateway fronts.
	Backend BackendConfig

	// Session state (tokens, pending booking drafts) lives server-side,
	// keyed by a browser cookie. With DATABASE_URL unset the gateway falls
	// back to an in-memory store, which is fine for local dev.
	DatabaseURL    string
	MigrationsPath string

	Session SessionConfig

	// AllowedOrigins is a comma-separated allowlist of origins allowed to
	// call the gateway from a separately hosted frontend. Example:
	//   https://stay.example.com,http://localhost:5173
	AllowedOrigins []string
}

type BackendConfig struct {
	// BaseURL is the booking API root, e.g. https://api.example.com/api/v1
	BaseURL string

	// TimeoutSeconds applies to every outgoing backend request.
	TimeoutSeconds int
}

type SessionConfig struct {
	CookieName string

	// LoginPath is where the browser is redirected when a session can no
	// longer be refreshed.
	LoginPath string

	// TTLHours bounds how long an idle session (and its pending booking
	// snapshot) is kept before the store may drop it.
	TTLHours int
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Cloud Run sets PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8081"
		}
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		Backend: BackendConfig{
			BaseURL:        env("BACKEND_BASE_URL", "http://localhost:8080/api/v1"),
			TimeoutSeconds: envInt("BACKEND_TIMEOUT_SECONDS", 20),
		},
		Session: SessionConfig{
			CookieName: env("SESSION_COOKIE_NAME", "stayfront_session"),
			LoginPath:  env("SESSION_LOGIN_PATH", "/login"),
			TTLHours:   envInt("SESSION_TTL_HOURS", 72),
		},
		AllowedOrigins: envList("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return fallback
		}
		n = n*10 + int(v[i]-'0')
	}
	return n
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ',' {
			s := v[start:i]
			start = i + 1
			// trim spaces
			for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r') {
				s = s[1:]
			}
			for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t' || s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
				s = s[:len(s)-1]
			}
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
