package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Seed    SeedConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// BookingConfig tunes the session policy windows.
type BookingConfig struct {
	CancelNotice time.Duration
	JoinWindow   time.Duration
}

// SeedConfig controls demo fixture loading at startup.
type SeedConfig struct {
	Enabled         bool
	Tutors          int
	Students        int
	RandomizeBooked bool
	RandomSeed      int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Booking = BookingConfig{
		CancelNotice: parseDuration(v.GetString("BOOKING_CANCEL_NOTICE"), 24*time.Hour),
		JoinWindow:   parseDuration(v.GetString("SESSION_JOIN_WINDOW"), 15*time.Minute),
	}

	cfg.Seed = SeedConfig{
		Enabled:         v.GetBool("SEED_DEMO_DATA"),
		Tutors:          v.GetInt("SEED_TUTORS"),
		Students:        v.GetInt("SEED_STUDENTS"),
		RandomizeBooked: v.GetBool("SEED_RANDOMIZE_BOOKED"),
		RandomSeed:      v.GetInt64("SEED_RANDOM_SEED"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("BOOKING_CANCEL_NOTICE", "24h")
	v.SetDefault("SESSION_JOIN_WINDOW", "15m")

	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("SEED_TUTORS", 12)
	v.SetDefault("SEED_STUDENTS", 30)
	v.SetDefault("SEED_RANDOMIZE_BOOKED", true)
	v.SetDefault("SEED_RANDOM_SEED", 0)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
