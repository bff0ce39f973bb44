package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    []byte
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	GoogleClientID string
	FrontendURL    string
	TemplatesDir   string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ResetTokenTTL   time.Duration

	// Debug disables the Secure flag on session cookies so the frontend
	// can talk to the server over plain http during development.
	Debug bool
}

func LoadConfig() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("SMTP_PORT must be a number")
		}
		smtpPort = p
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}

	return &Config{
		Port:         getenvDefault("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    []byte(secret),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    from,

		GoogleClientID: os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		FrontendURL:    getenvDefault("FRONTEND_URL", "http://localhost:5173"),
		TemplatesDir:   getenvDefault("TEMPLATES_DIR", "templates"),

		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		ResetTokenTTL:   time.Hour,

		Debug: os.Getenv("DEBUG") == "true",
	}, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
