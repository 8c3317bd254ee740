// Package config loads settings from environment variables, optionally
// preloaded from a .env file, with validated ranges and sensible
// defaults for every key.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	// WLED output
	WLEDHost       string
	LEDCount       int
	OutputMode     string // "udp" or "http"
	UDPPort        int
	HTTPTimeout    time.Duration
	HTTPMaxRetries int

	// MQTT ingest
	MQTTBroker   string
	MQTTPort     int
	MQTTLocation string
	MQTTUsername string
	MQTTPassword string

	// Beacon lifecycle
	BeaconTimeout time.Duration
	BeaconFadeOut time.Duration

	// Animation
	UpdateInterval time.Duration
	TrailLength    int
	FadeFactor     float64

	// Simulator grid
	SimRows int
	SimCols int

	LogLevel string
}

func setDefaults() {
	viper.SetDefault("WLED_HOST", "wled.local")
	viper.SetDefault("LED_COUNT", 60)
	viper.SetDefault("OUTPUT_MODE", "udp")
	viper.SetDefault("UDP_PORT", 21324)
	viper.SetDefault("HTTP_TIMEOUT", 1.0)
	viper.SetDefault("HTTP_MAX_RETRIES", 3)

	viper.SetDefault("MQTT_BROKER", "localhost")
	viper.SetDefault("MQTT_PORT", 1883)
	viper.SetDefault("MQTT_LOCATION", "balkon")
	viper.SetDefault("MQTT_USERNAME", "")
	viper.SetDefault("MQTT_PASSWORD", "")

	viper.SetDefault("BEACON_TIMEOUT_SECONDS", 6.0)
	viper.SetDefault("BEACON_FADE_OUT_SECONDS", 4.0)

	viper.SetDefault("UPDATE_INTERVAL", 0.2)
	viper.SetDefault("TRAIL_LENGTH", 10)
	viper.SetDefault("FADE_FACTOR", 0.75)

	viper.SetDefault("SIM_ROWS", 10)
	viper.SetDefault("SIM_COLS", 6)

	viper.SetDefault("LOG_LEVEL", "info")
}

func seconds(key string) time.Duration {
	return time.Duration(viper.GetFloat64(key) * float64(time.Second))
}

// Load reads configuration from the environment. If envFile exists it
// is loaded into the environment first, so file values act as defaults
// below real environment variables.
func Load(envFile string) (*Config, error) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{
		WLEDHost:       viper.GetString("WLED_HOST"),
		LEDCount:       viper.GetInt("LED_COUNT"),
		OutputMode:     viper.GetString("OUTPUT_MODE"),
		UDPPort:        viper.GetInt("UDP_PORT"),
		HTTPTimeout:    seconds("HTTP_TIMEOUT"),
		HTTPMaxRetries: viper.GetInt("HTTP_MAX_RETRIES"),

		MQTTBroker:   viper.GetString("MQTT_BROKER"),
		MQTTPort:     viper.GetInt("MQTT_PORT"),
		MQTTLocation: viper.GetString("MQTT_LOCATION"),
		MQTTUsername: viper.GetString("MQTT_USERNAME"),
		MQTTPassword: viper.GetString("MQTT_PASSWORD"),

		BeaconTimeout: seconds("BEACON_TIMEOUT_SECONDS"),
		BeaconFadeOut: seconds("BEACON_FADE_OUT_SECONDS"),

		UpdateInterval: seconds("UPDATE_INTERVAL"),
		TrailLength:    viper.GetInt("TRAIL_LENGTH"),
		FadeFactor:     viper.GetFloat64("FADE_FACTOR"),

		SimRows: viper.GetInt("SIM_ROWS"),
		SimCols: viper.GetInt("SIM_COLS"),

		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	return cfg, nil
}

// Validate checks every value is inside its documented range. Any
// failure here is fatal at startup; nothing runs on a bad config.
func (c *Config) Validate() error {
	if c.LEDCount < 1 {
		return fmt.Errorf("LED_COUNT must be >= 1, got %d", c.LEDCount)
	}
	if c.OutputMode != "udp" && c.OutputMode != "http" {
		return fmt.Errorf("OUTPUT_MODE must be 'udp' or 'http', got %q", c.OutputMode)
	}
	if c.UDPPort < 1 || c.UDPPort > 65535 {
		return fmt.Errorf("UDP_PORT must be in [1, 65535], got %d", c.UDPPort)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.HTTPMaxRetries < 1 {
		return fmt.Errorf("HTTP_MAX_RETRIES must be >= 1, got %d", c.HTTPMaxRetries)
	}
	if c.MQTTPort < 1 || c.MQTTPort > 65535 {
		return fmt.Errorf("MQTT_PORT must be in [1, 65535], got %d", c.MQTTPort)
	}
	if c.BeaconTimeout < 0 {
		return fmt.Errorf("BEACON_TIMEOUT_SECONDS must be >= 0, got %s", c.BeaconTimeout)
	}
	if c.BeaconFadeOut <= 0 {
		return fmt.Errorf("BEACON_FADE_OUT_SECONDS must be positive, got %s", c.BeaconFadeOut)
	}
	if c.UpdateInterval <= 0 {
		return fmt.Errorf("UPDATE_INTERVAL must be positive, got %s", c.UpdateInterval)
	}
	if c.TrailLength < 1 {
		return fmt.Errorf("TRAIL_LENGTH must be >= 1, got %d", c.TrailLength)
	}
	if c.FadeFactor <= 0 || c.FadeFactor > 1 {
		return fmt.Errorf("FADE_FACTOR must be in (0, 1], got %g", c.FadeFactor)
	}
	if c.SimRows < 1 || c.SimCols < 1 {
		return fmt.Errorf("SIM_ROWS and SIM_COLS must be >= 1, got %dx%d", c.SimRows, c.SimCols)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// ValidateSimulator additionally requires the display grid to cover the
// strip exactly.
func (c *Config) ValidateSimulator() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.SimRows*c.SimCols != c.LEDCount {
		return fmt.Errorf("SIM_ROWS (%d) x SIM_COLS (%d) = %d does not equal LED_COUNT (%d)",
			c.SimRows, c.SimCols, c.SimRows*c.SimCols, c.LEDCount)
	}
	return nil
}
