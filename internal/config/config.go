package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	HolidaysNone        = "none"
	HolidaysFile        = "file"
	HolidaysXMLCalendar = "xmlcalendar"
	HolidaysComposite   = "composite"
)

// Config represents application configuration
type Config struct {
	Counter  CounterConfig  `mapstructure:"counter"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// CounterConfig holds the defaults used when the weekday or exclusion
// arguments are omitted on the command line.
type CounterConfig struct {
	Weekdays   []int    `mapstructure:"weekdays" validate:"required,min=1,dive,min=0,max=6"`
	Exclusions []string `mapstructure:"exclusions"`
}

// HolidaysConfig represents the additional exclusion source
type HolidaysConfig struct {
	Type    string `mapstructure:"type" validate:"omitempty,oneof=none file xmlcalendar composite"`
	File    string `mapstructure:"file"`
	URL     string `mapstructure:"url" validate:"omitempty,url"` // may contain {year}
	Timeout string `mapstructure:"timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Counter: CounterConfig{
			Weekdays:   []int{0, 1, 2, 3, 4, 5, 6},
			Exclusions: []string{},
		},
		Holidays: HolidaysConfig{
			Type:    HolidaysNone,
			Timeout: "10s",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from file. An empty configPath searches the
// default locations; not finding a file there is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("counter.weekdays", def.Counter.Weekdays)
	v.SetDefault("counter.exclusions", def.Counter.Exclusions)
	v.SetDefault("holidays.type", def.Holidays.Type)
	v.SetDefault("holidays.file", "")
	v.SetDefault("holidays.url", "")
	v.SetDefault("holidays.timeout", def.Holidays.Timeout)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", def.Log.Level)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.day-counter")
		v.AddConfigPath("/etc/day-counter")
	}

	// Read environment variables, e.g. DAYCOUNT_LOG_LEVEL
	v.SetEnvPrefix("DAYCOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

var validate = validator.New()

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}

	switch c.Holidays.GetType() {
	case HolidaysFile:
		if c.Holidays.File == "" {
			return fmt.Errorf("holidays.file is required for file type")
		}
	case HolidaysXMLCalendar:
		if c.Holidays.URL == "" {
			return fmt.Errorf("holidays.url is required for xmlcalendar type")
		}
	case HolidaysComposite:
		if c.Holidays.URL == "" || c.Holidays.File == "" {
			return fmt.Errorf("holidays.url and holidays.file are required for composite type")
		}
	}

	if c.Holidays.Timeout != "" {
		if _, err := time.ParseDuration(c.Holidays.Timeout); err != nil {
			return fmt.Errorf("holidays.timeout: %w", err)
		}
	}

	return nil
}

// GetType returns the holiday source type, defaulting to none
func (c *HolidaysConfig) GetType() string {
	if c.Type == "" {
		return HolidaysNone
	}
	return c.Type
}

// GetTimeout returns the HTTP timeout for remote holiday sources
func (c *HolidaysConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// GetLevel returns the log level, defaulting to warn
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return "warn"
	}
	return c.Level
}
