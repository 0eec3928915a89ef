package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/toast"
)

const (
	// ConfigFileName is the base name of the configuration file.
	ConfigFileName = "toastkit"

	// DefaultPort is the default server port.
	DefaultPort = 3100

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is the default Prometheus endpoint.
	DefaultMetricsPath = "/metrics"

	// DefaultRatePerSec is the default limit for toast creation requests.
	DefaultRatePerSec = 20
)

// extensions lists the supported config file extensions in lookup order.
var extensions = []string{".json", ".yaml", ".yml", ".toml"}

// Config represents the complete toastkit configuration.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`

	// Toast contains the process-wide toast defaults.
	Toast ToastConfig `json:"toast" yaml:"toast" toml:"toast"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics" toml:"metrics"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log" toml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`

	// StyleSheet is an optional path to a CSS file served as the toast
	// stylesheet. The built-in stylesheet is used when empty.
	StyleSheet string `json:"styleSheet,omitempty" yaml:"styleSheet,omitempty" toml:"styleSheet,omitempty"`

	// RatePerSec limits toast creation requests per second. Unset means
	// DefaultRatePerSec; 0 disables limiting.
	RatePerSec *float64 `json:"ratePerSec,omitempty" yaml:"ratePerSec,omitempty" toml:"ratePerSec,omitempty"`

	// Burst is the rate limiter burst size. Defaults to RatePerSec, at
	// least 1.
	Burst int `json:"burst,omitempty" yaml:"burst,omitempty" toml:"burst,omitempty"`
}

// ToastConfig contains toast defaults applied through toast.SetDefaults.
type ToastConfig struct {
	// Duration is the auto-dismiss delay in milliseconds.
	Duration *int `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`

	// Style is merged into the default inline style.
	Style map[string]string `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes the metrics endpoint.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty"`

	// Path is the metrics endpoint path.
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    DefaultMetricsPath,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory, trying each
// supported extension in turn.
func Load(dir string) (*Config, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, ConfigFileName+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No " + ConfigFileName + ".json, .yaml or .toml found in " + dir).
		WithSuggestion("Create toastkit.json or pass --config")
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.New("E101").Wrap(err)
	}
	return Load(dir)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail(path + " does not exist")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return errors.New("E103").WithSuggestion("Rename " + filepath.Base(path) + " to toastkit.json")
	}
	if err != nil {
		return errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}
	return nil
}

// SaveTo writes the configuration to the specified path, encoded by its
// extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	default:
		return errors.New("E103")
	}
	if err != nil {
		return errors.New("E101").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.RatePerSec == nil {
		rps := float64(DefaultRatePerSec)
		c.Server.RatePerSec = &rps
	}
	if c.Server.Burst <= 0 && *c.Server.RatePerSec > 0 {
		c.Server.Burst = max(int(*c.Server.RatePerSec), 1)
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102")
	}
	if c.Server.RatePerSec != nil && *c.Server.RatePerSec < 0 {
		return errors.Newf(errors.CategoryConfig, "ratePerSec must not be negative")
	}
	if c.Toast.Duration != nil && *c.Toast.Duration < 0 {
		return errors.New("E104")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.Newf(errors.CategoryConfig, "unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Newf(errors.CategoryConfig, "unknown log format %q", c.Log.Format)
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// RateLimit returns the toast creation limit and burst. A zero rate
// disables limiting.
func (c *Config) RateLimit() (perSec float64, burst int) {
	perSec = DefaultRatePerSec
	if c.Server.RatePerSec != nil {
		perSec = *c.Server.RatePerSec
	}
	if perSec <= 0 {
		return 0, 0
	}
	burst = c.Server.Burst
	if burst <= 0 {
		burst = max(int(perSec), 1)
	}
	return perSec, burst
}

// ToastDefaults returns the toast section as a partial defaults update.
func (c *Config) ToastDefaults() toast.Partial {
	p := toast.Partial{}
	if c.Toast.Duration != nil {
		p.Duration = toast.Int(*c.Toast.Duration)
	}
	if len(c.Toast.Style) > 0 {
		p.Style = make(map[string]string, len(c.Toast.Style))
		for k, v := range c.Toast.Style {
			p.Style[k] = v
		}
	}
	return p
}

// Logger builds a slog.Logger from the log section.
func (c *Config) Logger() *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
