package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// DefaultConfigFileName is auto-detected in the working directory, then the
// user home directory, when no explicit config path is given.
const DefaultConfigFileName = ".ratchet.yaml"

// RatchetYAMLConfig represents the complete .ratchet.yaml file structure.
// Duration fields are strings ("3s", "10m") parsed during resolution.
type RatchetYAMLConfig struct {
	Project      *ProjectConfig          `yaml:"project"`
	Models       *ModelsConfig           `yaml:"models"`
	Agent        *AgentConfig            `yaml:"agent"`
	Sandbox      *models.SandboxPolicy   `yaml:"sandbox"`
	Orchestrator *OrchestratorYAMLConfig `yaml:"orchestrator"`
	Review       *ReviewYAMLConfig       `yaml:"review"`
	Guard        *GuardConfig            `yaml:"guard"`
	Retention    *RetentionYAMLConfig    `yaml:"retention"`
}

// OrchestratorYAMLConfig holds orchestrator settings from YAML.
type OrchestratorYAMLConfig struct {
	AutoContinueDelay        string `yaml:"auto_continue_delay,omitempty"`
	SessionTimeout           string `yaml:"session_timeout,omitempty"`
	MaxConsecutiveToolErrors int    `yaml:"max_consecutive_tool_errors,omitempty"`
	FailureStopThreshold     int    `yaml:"failure_stop_threshold,omitempty"`
	TransportRetryWindow     int    `yaml:"transport_retry_window,omitempty"`
	StorageBackoffInitial    string `yaml:"storage_backoff_initial,omitempty"`
	StorageBackoffCap        string `yaml:"storage_backoff_cap,omitempty"`
}

// ReviewYAMLConfig holds review settings from YAML.
type ReviewYAMLConfig struct {
	DeepEvery            int    `yaml:"deep_every,omitempty"`
	QuickRatingThreshold int    `yaml:"quick_rating_threshold,omitempty"`
	MaxQuickSinceDeep    int    `yaml:"max_quick_since_deep,omitempty"`
	Workers              int    `yaml:"workers,omitempty"`
	DeepTimeout          string `yaml:"deep_timeout,omitempty"`
	RecentSessions       int    `yaml:"recent_sessions,omitempty"`
}

// RetentionYAMLConfig holds retention settings from YAML.
type RetentionYAMLConfig struct {
	EventTTL              string `yaml:"event_ttl,omitempty"`
	SweepInterval         string `yaml:"sweep_interval,omitempty"`
	StaleInitializerAfter string `yaml:"stale_initializer_after,omitempty"`
	StaleCodingAfter      string `yaml:"stale_coding_after,omitempty"`
	StaleReviewAfter      string `yaml:"stale_review_after,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// configPath may be empty, in which case .ratchet.yaml is auto-detected in
// the working directory, then the home directory; if neither exists the
// built-in defaults are used. An explicit path that does not exist is an
// error.
//
// Steps performed:
//  1. Resolve the configuration file path
//  2. Read YAML and expand environment variables
//  3. Merge user values over built-in defaults, parse durations
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configPath string) (*Config, error) {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	log := slog.With("config_path", path)
	if path == "" {
		log = slog.With("config_path", "(built-in defaults)")
	}
	log.Info("Initializing configuration")

	cfg, err := load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"initializer_model", cfg.Models.Initializer,
		"coding_model", cfg.Models.Coding,
		"sandbox_kind", cfg.SandboxDefaults.Kind,
		"review_workers", cfg.Review.Workers)

	return cfg, nil
}

// resolveConfigPath determines which configuration file to read. An explicit
// path must exist; auto-detection quietly falls back to built-in defaults.
func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
			}
			return "", err
		}
		return configPath, nil
	}

	if _, err := os.Stat(DefaultConfigFileName); err == nil {
		return DefaultConfigFileName, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// No config file anywhere: run on built-in defaults.
	return "", nil
}

// load is the internal loader (not exported)
func load(_ context.Context, path string) (*Config, error) {
	raw := &RatchetYAMLConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewLoadError(path, err)
		}

		// Expand environment variables using {{.VAR}} template syntax.
		// Note: ExpandEnv passes through original data on parse/execution
		// errors, allowing the YAML parser to handle the content (or fail
		// with a clearer error message).
		data = ExpandEnv(data)

		if err := yaml.Unmarshal(data, raw); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	// Merge user-provided sections over built-in defaults. Plain-value
	// sections merge structurally; duration-bearing sections resolve
	// field by field.
	project := DefaultProjectConfig()
	if raw.Project != nil {
		if err := mergo.Merge(project, raw.Project, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge project config: %w", err)
		}
	}

	modelsCfg := DefaultModelsConfig()
	if raw.Models != nil {
		if err := mergo.Merge(modelsCfg, raw.Models, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge models config: %w", err)
		}
	}

	agent := DefaultAgentConfig()
	if raw.Agent != nil {
		if err := mergo.Merge(agent, raw.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent config: %w", err)
		}
	}

	sandbox := DefaultSandboxPolicy()
	if raw.Sandbox != nil {
		sandbox = raw.Sandbox.Merge(DefaultSandboxPolicy())
	}

	guard := DefaultGuardConfig()
	if raw.Guard != nil {
		guard = raw.Guard
	}

	return &Config{
		configPath:      path,
		Project:         project,
		Models:          modelsCfg,
		Agent:           agent,
		SandboxDefaults: sandbox,
		Orchestrator:    resolveOrchestratorConfig(raw.Orchestrator),
		Review:          resolveReviewConfig(raw.Review),
		Guard:           guard,
		Retention:       resolveRetentionConfig(raw.Retention),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

// resolveOrchestratorConfig resolves orchestrator configuration from YAML,
// applying defaults.
func resolveOrchestratorConfig(y *OrchestratorYAMLConfig) *OrchestratorConfig {
	cfg := DefaultOrchestratorConfig()
	if y == nil {
		return cfg
	}

	cfg.AutoContinueDelay = parseDurationOr(y.AutoContinueDelay, cfg.AutoContinueDelay, "orchestrator.auto_continue_delay")
	cfg.SessionTimeout = parseDurationOr(y.SessionTimeout, cfg.SessionTimeout, "orchestrator.session_timeout")
	cfg.StorageBackoffInitial = parseDurationOr(y.StorageBackoffInitial, cfg.StorageBackoffInitial, "orchestrator.storage_backoff_initial")
	cfg.StorageBackoffCap = parseDurationOr(y.StorageBackoffCap, cfg.StorageBackoffCap, "orchestrator.storage_backoff_cap")

	if y.MaxConsecutiveToolErrors > 0 {
		cfg.MaxConsecutiveToolErrors = y.MaxConsecutiveToolErrors
	}
	if y.FailureStopThreshold > 0 {
		cfg.FailureStopThreshold = y.FailureStopThreshold
	}
	if y.TransportRetryWindow > 0 {
		cfg.TransportRetryWindow = y.TransportRetryWindow
	}

	return cfg
}

// resolveReviewConfig resolves review configuration from YAML, applying defaults.
func resolveReviewConfig(y *ReviewYAMLConfig) *ReviewConfig {
	cfg := DefaultReviewConfig()
	if y == nil {
		return cfg
	}

	if y.DeepEvery > 0 {
		cfg.DeepEvery = y.DeepEvery
	}
	if y.QuickRatingThreshold > 0 {
		cfg.QuickRatingThreshold = y.QuickRatingThreshold
	}
	if y.MaxQuickSinceDeep > 0 {
		cfg.MaxQuickSinceDeep = y.MaxQuickSinceDeep
	}
	if y.Workers > 0 {
		cfg.Workers = y.Workers
	}
	if y.RecentSessions > 0 {
		cfg.RecentSessions = y.RecentSessions
	}
	cfg.DeepTimeout = parseDurationOr(y.DeepTimeout, cfg.DeepTimeout, "review.deep_timeout")

	return cfg
}

// resolveRetentionConfig resolves retention configuration from YAML, applying defaults.
func resolveRetentionConfig(y *RetentionYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()
	if y == nil {
		return cfg
	}

	cfg.EventTTL = parseDurationOr(y.EventTTL, cfg.EventTTL, "retention.event_ttl")
	cfg.SweepInterval = parseDurationOr(y.SweepInterval, cfg.SweepInterval, "retention.sweep_interval")
	cfg.StaleInitializerAfter = parseDurationOr(y.StaleInitializerAfter, cfg.StaleInitializerAfter, "retention.stale_initializer_after")
	cfg.StaleCodingAfter = parseDurationOr(y.StaleCodingAfter, cfg.StaleCodingAfter, "retention.stale_coding_after")
	cfg.StaleReviewAfter = parseDurationOr(y.StaleReviewAfter, cfg.StaleReviewAfter, "retention.stale_review_after")

	return cfg
}

// parseDurationOr parses a duration string, logging and falling back to the
// default on empty or invalid input.
func parseDurationOr(value string, fallback time.Duration, field string) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field,
			"value", value,
			"default", fallback,
			"error", err)
		return fallback
	}
	return d
}
