package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Values come from the yaml
// config file with environment-variable overrides; API credentials are
// expected to arrive through the environment only.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// A full pipeline run includes one LLM call and several hosting API calls,
		// so this defaults well above typical API timeouts.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"4m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Generator configures the LLM completion provider.
	Generator struct {
		// GeminiAPIKey authenticates against the Gemini API. Environment only.
		GeminiAPIKey string `env:"GEMINI_API_KEY" yaml:"-"`
		// Model is the Gemini model identifier used for generation
		Model string `env:"GENERATOR_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
		// Timeout bounds a single completion call
		Timeout time.Duration `env:"GENERATOR_TIMEOUT" env-default:"3m" yaml:"timeout"`
		// MaxAttachmentBytes caps the decoded size of a single attachment
		MaxAttachmentBytes int `env:"GENERATOR_MAX_ATTACHMENT_BYTES" env-default:"1048576" yaml:"maxAttachmentBytes"`
	} `yaml:"generator"`

	// Publisher configures the source-hosting provider.
	Publisher struct {
		// GitHubToken is a personal access token with repo scope. Environment only.
		GitHubToken string `env:"GITHUB_TOKEN" yaml:"-"`
		// Owner is the account generated repositories are created under; used
		// for pages URL derivation and logging
		Owner string `env:"GITHUB_OWNER" yaml:"owner"`
		// RepoPrefix is prepended to generated repository names
		RepoPrefix string `env:"PUBLISHER_REPO_PREFIX" env-default:"site" yaml:"repoPrefix"`
		// Timeout bounds a single hosting API call
		Timeout time.Duration `env:"PUBLISHER_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"publisher"`

	// JWT configures optional bearer authentication on the intake endpoint.
	// Authentication is disabled when PublicKey is empty.
	JWT struct {
		// PublicKey is a PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is a PEM-encoded RSA private key used by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"-"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
