package config

import (
	"fmt"
	"regexp"

	units "github.com/docker/go-units"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateModels(); err != nil {
		return fmt.Errorf("models validation failed: %w", err)
	}

	if err := v.validateAgent(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateSandbox(); err != nil {
		return fmt.Errorf("sandbox validation failed: %w", err)
	}

	if err := v.validateOrchestrator(); err != nil {
		return fmt.Errorf("orchestrator validation failed: %w", err)
	}

	if err := v.validateReview(); err != nil {
		return fmt.Errorf("review validation failed: %w", err)
	}

	if err := v.validateGuard(); err != nil {
		return fmt.Errorf("guard validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateModels() error {
	m := v.cfg.Models
	if m.Initializer == "" {
		return NewValidationError("models", "initializer", ErrMissingRequiredField)
	}
	if m.Coding == "" {
		return NewValidationError("models", "coding", ErrMissingRequiredField)
	}
	if m.Review == "" {
		return NewValidationError("models", "review", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateAgent() error {
	a := v.cfg.Agent
	if a.Binary == "" {
		return NewValidationError("agent", "binary", ErrMissingRequiredField)
	}
	if a.MaxLineBytes < 64*1024 {
		return NewValidationError("agent", "max_line_bytes",
			fmt.Errorf("%w: must be at least 65536", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateSandbox() error {
	p := v.cfg.SandboxDefaults

	switch p.Kind {
	case models.SandboxNone, models.SandboxContainer, models.SandboxCloud:
	default:
		return NewValidationError("sandbox", "kind",
			fmt.Errorf("%w: %q (expected none, container or cloud)", ErrInvalidValue, p.Kind))
	}

	if p.Kind == models.SandboxContainer {
		if p.Image == "" {
			return NewValidationError("sandbox", "image", ErrMissingRequiredField)
		}
		if p.Memory != "" {
			if _, err := units.RAMInBytes(p.Memory); err != nil {
				return NewValidationError("sandbox", "memory_limit",
					fmt.Errorf("%w: %q: %v", ErrInvalidValue, p.Memory, err))
			}
		}
		if p.CPUs <= 0 {
			return NewValidationError("sandbox", "cpu_limit",
				fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}

	if p.ExecTimeoutSeconds <= 0 {
		return NewValidationError("sandbox", "exec_timeout_seconds",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.SessionTimeoutSeconds <= 0 {
		return NewValidationError("sandbox", "session_timeout_seconds",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateOrchestrator() error {
	o := v.cfg.Orchestrator
	if o.AutoContinueDelay < 0 {
		return NewValidationError("orchestrator", "auto_continue_delay",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if o.SessionTimeout <= 0 {
		return NewValidationError("orchestrator", "session_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if o.MaxConsecutiveToolErrors < 1 {
		return NewValidationError("orchestrator", "max_consecutive_tool_errors",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if o.FailureStopThreshold < 1 {
		return NewValidationError("orchestrator", "failure_stop_threshold",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if o.TransportRetryWindow < 0 {
		return NewValidationError("orchestrator", "transport_retry_window",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if o.StorageBackoffInitial <= 0 {
		return NewValidationError("orchestrator", "storage_backoff_initial",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if o.StorageBackoffCap < o.StorageBackoffInitial {
		return NewValidationError("orchestrator", "storage_backoff_cap",
			fmt.Errorf("%w: must be >= storage_backoff_initial", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateReview() error {
	r := v.cfg.Review
	if r.DeepEvery < 1 {
		return NewValidationError("review", "deep_every",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if r.QuickRatingThreshold < 1 || r.QuickRatingThreshold > 10 {
		return NewValidationError("review", "quick_rating_threshold",
			fmt.Errorf("%w: must be between 1 and 10", ErrInvalidValue))
	}
	if r.MaxQuickSinceDeep < 1 {
		return NewValidationError("review", "max_quick_since_deep",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if r.Workers < 1 || r.Workers > 16 {
		return NewValidationError("review", "workers",
			fmt.Errorf("%w: must be between 1 and 16", ErrInvalidValue))
	}
	if r.DeepTimeout <= 0 {
		return NewValidationError("review", "deep_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.RecentSessions < 1 {
		return NewValidationError("review", "recent_sessions",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateGuard() error {
	for _, pattern := range v.cfg.Guard.ExtraDenyPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return NewValidationError("guard", "extra_deny_patterns",
				fmt.Errorf("%w: %q: %v", ErrInvalidValue, pattern, err))
		}
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "event_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.SweepInterval <= 0 {
		return NewValidationError("retention", "sweep_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.StaleInitializerAfter <= 0 || r.StaleCodingAfter <= 0 || r.StaleReviewAfter <= 0 {
		return NewValidationError("retention", "stale_thresholds",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
