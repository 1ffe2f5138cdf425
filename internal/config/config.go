package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the binaries look for an optional configuration file.
const DefaultPath = "configs/config.yaml"

// ReaderConfig controls how count-log rows are tokenized and parsed.
type ReaderConfig struct {
	Delimiter       string `yaml:"delimiter"`
	TimestampLayout string `yaml:"timestamp_layout"`
}

// NATSConfig holds the connection settings for the NATS summary publisher.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// WriterDef defines a single summary writer.
type WriterDef struct {
	Type    string     `yaml:"type"`
	Enabled bool       `yaml:"enabled"`
	NATS    NATSConfig `yaml:"nats"`
}

// APIConfig holds the settings of the HTTP summary API.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// CaptureConfig controls how pcap-counts buckets packets into count-log rows.
type CaptureConfig struct {
	Period          string `yaml:"period"`
	TimestampLayout string `yaml:"timestamp_layout"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Reader  ReaderConfig  `yaml:"reader"`
	Writers []WriterDef   `yaml:"writers"`
	API     APIConfig     `yaml:"api"`
	Capture CaptureConfig `yaml:"capture"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{
			Delimiter:       " ",
			TimestampLayout: "2006-01-02T15:04:05",
		},
		Writers: []WriterDef{
			{Type: "text", Enabled: true},
		},
		API: APIConfig{
			ListenAddr: ":8080",
		},
		Capture: CaptureConfig{
			Period:          "30m",
			TimestampLayout: "2006-01-02T15:04:05",
		},
	}
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
// Fields missing from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like LoadConfig but falls back to Default when the file does not exist.
func LoadOrDefault(filePath string) (*Config, error) {
	cfg, err := LoadConfig(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if len([]rune(c.Reader.Delimiter)) != 1 {
		return fmt.Errorf("reader delimiter must be a single character, got %q", c.Reader.Delimiter)
	}
	if c.Reader.TimestampLayout == "" {
		return fmt.Errorf("reader timestamp_layout must not be empty")
	}
	if _, err := c.CapturePeriod(); err != nil {
		return err
	}
	if c.Capture.TimestampLayout == "" {
		return fmt.Errorf("capture timestamp_layout must not be empty")
	}
	return nil
}

// CapturePeriod parses the capture bucketing period.
func (c *Config) CapturePeriod() (time.Duration, error) {
	period, err := time.ParseDuration(c.Capture.Period)
	if err != nil {
		return 0, fmt.Errorf("invalid capture period: %w", err)
	}
	if period <= 0 {
		return 0, fmt.Errorf("capture period must be a positive duration")
	}
	return period, nil
}

// DelimiterRune returns the reader delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Reader.Delimiter)[0]
}
