package config

import "github.com/ratchet-works/ratchet/pkg/models"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. All sections are fully resolved:
// defaults applied, durations parsed, validation passed.
type Config struct {
	configPath string // Path the configuration was loaded from ("" = built-in defaults)

	// Project placement and iteration limits
	Project *ProjectConfig

	// Model selection per session kind
	Models *ModelsConfig

	// External agent process settings
	Agent *AgentConfig

	// Sandbox policy applied to projects that do not carry their own
	SandboxDefaults models.SandboxPolicy

	// Session loop timing and failure thresholds
	Orchestrator *OrchestratorConfig

	// Quality review cadence and worker pool
	Review *ReviewConfig

	// Command guard extensions
	Guard *GuardConfig

	// Event retention and stale-session sweeping
	Retention *RetentionConfig
}

// ConfigPath returns the path configuration was loaded from, or the empty
// string when built-in defaults are in effect.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// ModelFor returns the configured model for a session kind.
func (c *Config) ModelFor(kind models.SessionKind) string {
	switch kind {
	case models.SessionKindInitializer:
		return c.Models.Initializer
	case models.SessionKindReview:
		return c.Models.Review
	default:
		return c.Models.Coding
	}
}
