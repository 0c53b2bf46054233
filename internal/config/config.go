// Package config defines the global configuration structure for the raincast
// service. Configuration is loaded once at process initialization and is
// immutable thereafter. It follows 12-Factor App principles by strictly
// separating code from configuration.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Built-in Defaults (Lowest)
//
// Any invalid value causes startup to fail immediately (fail fast). A missing
// model artifact file, by contrast, is not a configuration error: the process
// starts degraded and reports the failure through the health endpoint.
package config

import "path/filepath"

// Default artifact locations, relative to Models.BaseDir. Each can be
// overridden wholesale via RAIN_MODEL_PATH / PRECIP_MODEL_PATH.
const (
	defaultRainModelFile   = "rain_or_not/classifier.json.zst"
	defaultPrecipModelFile = "precipitation_fall/regressor.json.zst"
)

// Config is the top-level configuration struct for the raincast service.
// It is populated once during process initialization and never modified.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"raincast-api"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Domain Configurations
	Server        ServerConfig
	Models        ModelsConfig
	Project       ProjectConfig
	Security      SecurityConfig
	Observability ObservabilityConfig

	// Build Metadata (Injected via ldflags, not Env)
	Build BuildInfo
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// ModelsConfig holds the file-system locations of the two serialized model
// artifacts. Explicit paths win over the BaseDir-derived defaults.
type ModelsConfig struct {
	BaseDir    string `envconfig:"MODEL_BASE_DIR" default:"models"`
	RainPath   string `envconfig:"RAIN_MODEL_PATH"`
	PrecipPath string `envconfig:"PRECIP_MODEL_PATH"`
}

// ResolvedRainPath returns the classifier artifact path, falling back to the
// built-in location under BaseDir when no override is set.
func (m ModelsConfig) ResolvedRainPath() string {
	if m.RainPath != "" {
		return m.RainPath
	}
	return filepath.Join(m.BaseDir, defaultRainModelFile)
}

// ResolvedPrecipPath returns the regressor artifact path, falling back to the
// built-in location under BaseDir when no override is set.
func (m ModelsConfig) ResolvedPrecipPath() string {
	if m.PrecipPath != "" {
		return m.PrecipPath
	}
	return filepath.Join(m.BaseDir, defaultPrecipModelFile)
}

// ProjectConfig holds values published in the service descriptor document.
type ProjectConfig struct {
	RepoURL string `envconfig:"GITHUB_URL" default:"https://github.com/raincast/raincast" validate:"url"`
}

// SecurityConfig holds cross-origin access settings.
type SecurityConfig struct {
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// ObservabilityConfig holds telemetry settings.
type ObservabilityConfig struct {
	MetricNamespace string `envconfig:"METRIC_NAMESPACE" default:"raincast"`
}

// BuildInfo holds build-time metadata injected via ldflags.
// These values are NOT populated from environment variables.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
