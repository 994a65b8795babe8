package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvAddr             = "IDNUMBERS_ADDR"
	EnvLogLevel         = "IDNUMBERS_LOG_LEVEL"
	EnvLogFormat        = "IDNUMBERS_LOG_FORMAT"
	EnvMaxBatchSize     = "IDNUMBERS_MAX_BATCH_SIZE"
	EnvBatchConcurrency = "IDNUMBERS_BATCH_CONCURRENCY"
	EnvShutdownTimeout  = "IDNUMBERS_SHUTDOWN_TIMEOUT"
	EnvMetricsEnabled   = "IDNUMBERS_METRICS_ENABLED"
	EnvConfigFile       = "IDNUMBERS_CONFIG"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr             string        `yaml:"addr" validate:"required"`
	LogLevel         string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat        string        `yaml:"log_format" validate:"oneof=json text"`
	MaxBatchSize     int           `yaml:"max_batch_size" validate:"min=1,max=10000"`
	BatchConcurrency int           `yaml:"batch_concurrency" validate:"min=1,max=1024"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
	MetricsEnabled   bool          `yaml:"metrics_enabled"`
}

// Default returns the settings used when nothing overrides them.
func Default() Server {
	return Server{
		Addr:             ":8080",
		LogLevel:         "info",
		LogFormat:        "json",
		MaxBatchSize:     100,
		BatchConcurrency: 8,
		ShutdownTimeout:  10 * time.Second,
		MetricsEnabled:   true,
	}
}

// Load layers the configuration: defaults, then the YAML file at path (when
// path is not empty), then environment variables. The result is validated.
func Load(path string) (Server, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return Server{}, err
		}
	}
	cfg, err := FromEnv(cfg)
	if err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto base. Keys absent from the
// file keep their base values.
func LoadFile(path string, base Server) (Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Server{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Server{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays IDNUMBERS_* environment variables onto base so main stays lean.
func FromEnv(base Server) (Server, error) {
	cfg := base
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	var errs []error
	if v := os.Getenv(EnvMaxBatchSize); v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envError(EnvMaxBatchSize, err))
		cfg.MaxBatchSize = n
	}
	if v := os.Getenv(EnvBatchConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envError(EnvBatchConcurrency, err))
		cfg.BatchConcurrency = n
	}
	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		errs = append(errs, envError(EnvShutdownTimeout, err))
		cfg.ShutdownTimeout = d
	}
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envError(EnvMetricsEnabled, err))
		cfg.MetricsEnabled = b
	}
	if err := errors.Join(errs...); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func envError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings against their constraints.
func (s Server) Validate() error {
	if err := configValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
