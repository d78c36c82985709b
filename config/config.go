package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is loaded once at startup and
// injected into the components that need it; nothing mutates it afterwards.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Google Calendar service-account credentials.
	GoogleServiceAccountEmail string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	GooglePrivateKey          string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleCalendarID          string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// Booking rules.
	TimeZone           string `mapstructure:"TIME_ZONE"`
	OpenHour           int    `mapstructure:"OPEN_HOUR"`
	CloseHour          int    `mapstructure:"CLOSE_HOUR"`
	AppointmentMinutes int    `mapstructure:"APPOINTMENT_MINUTES"`
	EventColorID       string `mapstructure:"EVENT_COLOR_ID"`
}

// LoadConfig reads config.yaml (current or config directory) plus environment
// variables and returns the resulting configuration.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "")
	viper.SetDefault("TIME_ZONE", "America/Montevideo")
	viper.SetDefault("OPEN_HOUR", 11)
	viper.SetDefault("CLOSE_HOUR", 18)
	viper.SetDefault("APPOINTMENT_MINUTES", 60)
	viper.SetDefault("EVENT_COLOR_ID", "10")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Env files store the private key with literal "\n" sequences.
	cfg.GooglePrivateKey = strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")

	if cfg.CloseHour <= cfg.OpenHour {
		return nil, fmt.Errorf("invalid business hours: open=%d close=%d", cfg.OpenHour, cfg.CloseHour)
	}

	return &cfg, nil
}

// Location resolves the operating timezone. All business-hour and "today"
// comparisons happen in this location, never in UTC.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// AppointmentDuration is the fixed length of every booking.
func (c *Config) AppointmentDuration() time.Duration {
	return time.Duration(c.AppointmentMinutes) * time.Minute
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
