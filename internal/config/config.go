package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/natefinch/atomic"

	"github.com/vango-dev/markup/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3030

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where the preview server exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultBufferSize is the read size used when escaping streams.
	DefaultBufferSize = 4096

	// DefaultNamespace is the Prometheus namespace.
	DefaultNamespace = "markup"

	// DefaultTracerName is the OpenTelemetry tracer name.
	DefaultTracerName = "markup"
)

// Config represents the complete markup.json configuration.
type Config struct {
	// Server contains preview server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Escape contains settings for the escape command.
	Escape EscapeConfig `json:"escape,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Output contains remote output settings.
	Output OutputConfig `json:"output,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// MetricsPath is the route serving Prometheus metrics.
	// Set to "-" to disable the route.
	MetricsPath string `json:"metricsPath,omitempty"`
}

// EscapeConfig contains settings for the escape command.
type EscapeConfig struct {
	// BufferSize is the size of each read from the escaping stream.
	BufferSize int `json:"bufferSize,omitempty"`

	// Attr selects the attribute entity table.
	Attr bool `json:"attr,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// TracerName is the name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// OutputConfig contains remote output settings.
type OutputConfig struct {
	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// S3Bucket is the default bucket for s3:// outputs without a bucket.
	S3Bucket string `json:"s3Bucket,omitempty"`

	// S3Prefix is prepended to every uploaded key.
	S3Prefix string `json:"s3Prefix,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from markup.json in dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E022").
				WithDetail("No " + ConfigFileName + " found at " + path).
				Wrap(err)
		}
		return nil, errors.New("E021").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E021").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo atomically writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E021").Wrap(err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.New("E021").Wrap(err)
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
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Escape.BufferSize == 0 {
		c.Escape.BufferSize = DefaultBufferSize
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E020").
			WithDetail("server.port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if c.Escape.BufferSize < 1 {
		return errors.New("E020").
			WithDetail("escape.bufferSize must be at least 1, got " + strconv.Itoa(c.Escape.BufferSize))
	}
	if p := c.Server.MetricsPath; p != "-" && (p == "" || p[0] != '/') {
		return errors.New("E020").
			WithDetail(`server.metricsPath must start with "/" or be "-", got ` + strconv.Quote(p))
	}
	return nil
}

// MetricsEnabled reports whether the metrics route is served.
func (c *Config) MetricsEnabled() bool {
	return c.Server.MetricsPath != "-"
}

// Address returns the host:port the preview server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find markup.json.
// Returns the directory containing it, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E022").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest markup.json at or
// above the working directory. Without one, it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}
