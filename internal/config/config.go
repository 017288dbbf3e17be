// Package config handles configuration loading for MktoWs clients.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows sensitive values
// like the API encryption key to be injected at runtime.
//
// # Configuration Sections
//
//   - service: service description URL and SOAP endpoint override
//   - credentials: API user ID and encryption key
//   - transport: TLS versions and HTTP timeouts
//   - logging: log level and output format
//
// # Example Configuration
//
//	service:
//	  wsdl: http://app.marketo.com/soap/mktows/2_3?WSDL
//
//	credentials:
//	  userId: demo17_1234
//	  encryptionKey: ${MKTOWS_ENCRYPTION_KEY}
//
//	transport:
//	  minTlsVersion: "1.2"
//	  timeout: 30s
//
//	logging:
//	  level: info
//	  format: text
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-mktows/pkg/mktows"
	"github.com/sirosfoundation/go-mktows/pkg/transport"
)

// Config is the root configuration structure
type Config struct {
	Service     ServiceConfig     `yaml:"service"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Transport   TransportConfig   `yaml:"transport"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServiceConfig holds service description settings
type ServiceConfig struct {
	// WSDL is the service description URL
	WSDL string `yaml:"wsdl"`
	// Endpoint overrides the SOAP endpoint declared by the description
	Endpoint string `yaml:"endpoint"`
}

// CredentialsConfig holds API credentials
type CredentialsConfig struct {
	UserID string `yaml:"userId"`
	// EncryptionKey can be an env var reference like ${MKTOWS_ENCRYPTION_KEY}
	EncryptionKey string `yaml:"encryptionKey"`
}

// TransportConfig holds HTTP and TLS settings
type TransportConfig struct {
	MinTLSVersion   string        `yaml:"minTlsVersion"`
	MaxTLSVersion   string        `yaml:"maxTlsVersion"`
	Timeout         time.Duration `yaml:"timeout"`
	IdleConnTimeout time.Duration `yaml:"idleConnTimeout"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Validate
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Service.WSDL == "" {
		c.Service.WSDL = mktows.DefaultWSDL
	}
	if c.Transport.MinTLSVersion == "" {
		c.Transport.MinTLSVersion = "1.2"
	}
	if c.Transport.MaxTLSVersion == "" {
		c.Transport.MaxTLSVersion = "1.3"
	}
	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = 30 * time.Second
	}
	if c.Transport.IdleConnTimeout == 0 {
		c.Transport.IdleConnTimeout = 90 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

func (c *Config) validate() error {
	if c.Credentials.UserID == "" {
		return fmt.Errorf("credentials.userId is required")
	}
	if c.Credentials.EncryptionKey == "" {
		return fmt.Errorf("credentials.encryptionKey is required")
	}

	if _, err := tlsVersion(c.Transport.MinTLSVersion); err != nil {
		return fmt.Errorf("transport.minTlsVersion: %w", err)
	}
	if _, err := tlsVersion(c.Transport.MaxTLSVersion); err != nil {
		return fmt.Errorf("transport.maxTlsVersion: %w", err)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
		// Valid formats
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json', got '%s'", c.Logging.Format)
	}

	return nil
}

func tlsVersion(v string) (uint16, error) {
	switch v {
	case "1.2":
		return transport.TLS12, nil
	case "1.3":
		return transport.TLS13, nil
	}
	return 0, fmt.Errorf("must be '1.2' or '1.3', got '%s'", v)
}

// ClientConfig maps the loaded configuration onto a client configuration.
// The result carries the logger built from the logging section.
func (c *Config) ClientConfig() *mktows.Config {
	minVersion, _ := tlsVersion(c.Transport.MinTLSVersion)
	maxVersion, _ := tlsVersion(c.Transport.MaxTLSVersion)

	return &mktows.Config{
		WSDL:          c.Service.WSDL,
		Endpoint:      c.Service.Endpoint,
		UserID:        c.Credentials.UserID,
		EncryptionKey: c.Credentials.EncryptionKey,
		Transport: &transport.Config{
			MinTLSVersion:   minVersion,
			MaxTLSVersion:   maxVersion,
			CipherSuites:    transport.RecommendedTLS12CipherSuites,
			Timeout:         c.Transport.Timeout,
			IdleConnTimeout: c.Transport.IdleConnTimeout,
		},
		Logger: c.Logger(),
	}
}

// Logger builds a slog logger from the logging section, writing to stderr.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	switch c.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
