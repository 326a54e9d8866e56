// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Browser() BrowserConfig
	Humanoid() HumanoidConfig

	// Browser Setters
	SetBrowserHeadless(bool)
	SetBrowserURL(string)

	// Humanoid Setters
	SetHumanoidSeed(int64)
}

// Config holds the entire application configuration. Sections are exported so
// viper can decode into them; callers go through the Interface getters.
type Config struct {
	LoggerSection   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	BrowserSection  BrowserConfig  `mapstructure:"browser" yaml:"browser"`
	HumanoidSection HumanoidConfig `mapstructure:"humanoid" yaml:"humanoid"`
}

var _ Interface = (*Config)(nil)

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerSection }
func (c *Config) Browser() BrowserConfig   { return c.BrowserSection }
func (c *Config) Humanoid() HumanoidConfig { return c.HumanoidSection }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetBrowserHeadless(b bool) { c.BrowserSection.Headless = b }
func (c *Config) SetBrowserURL(u string)    { c.BrowserSection.URL = u }
func (c *Config) SetHumanoidSeed(s int64)   { c.HumanoidSection.Seed = s }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// BrowserConfig holds settings for the headless browser the pointer is driven in.
type BrowserConfig struct {
	Headless     bool     `mapstructure:"headless" yaml:"headless"`
	URL          string   `mapstructure:"url" yaml:"url"`
	WindowWidth  int      `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight int      `mapstructure:"window_height" yaml:"window_height"`
	Args         []string `mapstructure:"args" yaml:"args"`
	ExecPath     string   `mapstructure:"exec_path" yaml:"exec_path"`

	// MaxEventsPerSecond caps how fast mouse events reach the browser. Zero disables the limit.
	MaxEventsPerSecond float64       `mapstructure:"max_events_per_second" yaml:"max_events_per_second"`
	NavigationTimeout  time.Duration `mapstructure:"navigation_timeout" yaml:"navigation_timeout"`
	ActionTimeout      time.Duration `mapstructure:"action_timeout" yaml:"action_timeout"`
}

// NewDefaultConfig creates a new configuration with default values populated.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "humanmouse")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.url", "about:blank")
	v.SetDefault("browser.window_width", 1280)
	v.SetDefault("browser.window_height", 800)
	v.SetDefault("browser.max_events_per_second", 250.0)
	v.SetDefault("browser.navigation_timeout", "60s")
	v.SetDefault("browser.action_timeout", "10s")

	// Initialize all Humanoid defaults using the centralized function in humanoid_config.go.
	setHumanoidDefaults(v)
}

// EnvPrefix is prepended to every environment override, e.g.
// HUMANMOUSE_BROWSER_HEADLESS or HUMANMOUSE_HUMANOID_STEP_DELAY_MAX.
const EnvPrefix = "HUMANMOUSE"

// BindEnvironment makes every key registered by SetDefaults overridable from
// the environment. Call it after SetDefaults.
func BindEnvironment(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.BrowserSection.Validate(); err != nil {
		return fmt.Errorf("browser configuration invalid: %w", err)
	}
	if err := c.HumanoidSection.ToHumanoid().Validate(); err != nil {
		return fmt.Errorf("humanoid configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the Browser configuration.
func (b *BrowserConfig) Validate() error {
	if b.WindowWidth <= 0 || b.WindowHeight <= 0 {
		return fmt.Errorf("window_width and window_height must be positive integers")
	}
	if b.MaxEventsPerSecond < 0 {
		return fmt.Errorf("max_events_per_second must not be negative")
	}
	if b.NavigationTimeout <= 0 || b.ActionTimeout <= 0 {
		return fmt.Errorf("navigation_timeout and action_timeout must be positive durations")
	}
	return nil
}

// MarshalYAML writes the timeouts as duration strings ("1m", "10s") so the
// output can be fed back as a config file.
func (b BrowserConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Headless           bool     `yaml:"headless"`
		URL                string   `yaml:"url"`
		WindowWidth        int      `yaml:"window_width"`
		WindowHeight       int      `yaml:"window_height"`
		Args               []string `yaml:"args"`
		ExecPath           string   `yaml:"exec_path"`
		MaxEventsPerSecond float64  `yaml:"max_events_per_second"`
		NavigationTimeout  string   `yaml:"navigation_timeout"`
		ActionTimeout      string   `yaml:"action_timeout"`
	}{
		Headless:           b.Headless,
		URL:                b.URL,
		WindowWidth:        b.WindowWidth,
		WindowHeight:       b.WindowHeight,
		Args:               b.Args,
		ExecPath:           b.ExecPath,
		MaxEventsPerSecond: b.MaxEventsPerSecond,
		NavigationTimeout:  durationString(b.NavigationTimeout),
		ActionTimeout:      durationString(b.ActionTimeout),
	}, nil
}

// durationString formats d like time.Duration.String without the trailing
// zero units, so one minute is "1m" rather than "1m0s".
func durationString(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
