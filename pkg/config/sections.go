package config

import (
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// ProjectConfig controls where project workspaces live and how long the
// session loop may run.
type ProjectConfig struct {
	// GenerationsDir is the directory relative project paths are placed
	// under. Absolute project paths are used as-is.
	GenerationsDir string `yaml:"generations_dir"`

	// DefaultSpecPath is consulted when project creation names no spec.
	DefaultSpecPath string `yaml:"default_spec_path"`

	// MaxIterations caps coding sessions per run. 0 means unlimited.
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultProjectConfig returns the built-in project defaults.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		GenerationsDir:  "generations",
		DefaultSpecPath: "specs/app_spec.txt",
		MaxIterations:   0,
	}
}

// ModelsConfig selects the model per session kind. The initializer gets the
// strongest model since its plan quality bounds everything downstream.
type ModelsConfig struct {
	Initializer string `yaml:"initializer"`
	Coding      string `yaml:"coding"`
	Review      string `yaml:"review"`
}

// DefaultModelsConfig returns the built-in model defaults.
func DefaultModelsConfig() *ModelsConfig {
	return &ModelsConfig{
		Initializer: "claude-opus-4-5-20251101",
		Coding:      "claude-sonnet-4-5-20250929",
		Review:      "claude-sonnet-4-5-20250929",
	}
}

// AgentConfig holds settings for the spawned agent CLI process.
type AgentConfig struct {
	// Binary is the agent executable looked up on PATH.
	Binary string `yaml:"binary"`

	// MaxLineBytes bounds a single stream-JSON line read from the agent.
	// Longer lines are discarded with a notice instead of killing the session.
	MaxLineBytes int `yaml:"max_line_bytes"`

	// ExtraArgs are appended verbatim to every agent invocation.
	ExtraArgs []string `yaml:"extra_args"`
}

// DefaultAgentConfig returns the built-in agent process defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		Binary:       "claude",
		MaxLineBytes: 10 * 1024 * 1024,
	}
}

// OrchestratorConfig contains session loop timing and failure thresholds.
type OrchestratorConfig struct {
	// AutoContinueDelay is the pause between a finished session and the
	// next one, leaving a window for stop requests.
	AutoContinueDelay time.Duration

	// SessionTimeout is the soft wall-clock cap for one session when the
	// project policy sets none. Crossing it asks the agent to wrap up.
	SessionTimeout time.Duration

	// MaxConsecutiveToolErrors ends a session early once this many tool
	// calls fail back to back.
	MaxConsecutiveToolErrors int

	// FailureStopThreshold stops the project loop after this many
	// consecutive failed sessions. Cancelled sessions do not count.
	FailureStopThreshold int

	// TransportRetryWindow is the number of leading agent events within
	// which a transport drop is retried once instead of failing the session.
	TransportRetryWindow int

	// StorageBackoffInitial and StorageBackoffCap bound the exponential
	// backoff applied between sessions after storage write failures.
	StorageBackoffInitial time.Duration
	StorageBackoffCap     time.Duration
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		AutoContinueDelay:        3 * time.Second,
		SessionTimeout:           30 * time.Minute,
		MaxConsecutiveToolErrors: 5,
		FailureStopThreshold:     2,
		TransportRetryWindow:     10,
		StorageBackoffInitial:    1 * time.Second,
		StorageBackoffCap:        60 * time.Second,
	}
}

// ReviewConfig controls quality check cadence and the async review pool.
type ReviewConfig struct {
	// DeepEvery triggers a deep review on every Nth coding session.
	DeepEvery int

	// QuickRatingThreshold triggers a deep review when the quick rating
	// falls below it.
	QuickRatingThreshold int

	// MaxQuickSinceDeep forces a deep review after this many consecutive
	// quick-only checks.
	MaxQuickSinceDeep int

	// Workers is the size of the deep-review worker pool.
	Workers int

	// DeepTimeout caps a single deep review invocation.
	DeepTimeout time.Duration

	// RecentSessions is how many recent session summaries a deep review
	// receives as context.
	RecentSessions int
}

// DefaultReviewConfig returns the built-in review defaults.
func DefaultReviewConfig() *ReviewConfig {
	return &ReviewConfig{
		DeepEvery:            5,
		QuickRatingThreshold: 7,
		MaxQuickSinceDeep:    5,
		Workers:              2,
		DeepTimeout:          3 * time.Minute,
		RecentSessions:       5,
	}
}

// GuardConfig extends the built-in command denylist.
type GuardConfig struct {
	// ExtraDenyPatterns are additional regular expressions matched against
	// sandbox commands. They extend, never replace, the built-in list.
	ExtraDenyPatterns []string `yaml:"extra_deny_patterns"`
}

// DefaultGuardConfig returns the built-in guard defaults.
func DefaultGuardConfig() *GuardConfig {
	return &GuardConfig{}
}

// RetentionConfig controls stream event retention and the stale-session sweep.
type RetentionConfig struct {
	// EventTTL is the maximum age of persisted stream events before the
	// sweep deletes them. Per-session cleanup handles the normal case;
	// this is a safety net.
	EventTTL time.Duration

	// SweepInterval is how often the cleanup loop runs. It must be short
	// enough to catch review sessions going stale within minutes.
	SweepInterval time.Duration

	// StaleInitializerAfter, StaleCodingAfter and StaleReviewAfter are the
	// per-kind heartbeat ages past which a running session is cancelled.
	StaleInitializerAfter time.Duration
	StaleCodingAfter      time.Duration
	StaleReviewAfter      time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:              1 * time.Hour,
		SweepInterval:         1 * time.Minute,
		StaleInitializerAfter: 30 * time.Minute,
		StaleCodingAfter:      10 * time.Minute,
		StaleReviewAfter:      5 * time.Minute,
	}
}

// DefaultSandboxPolicy returns the sandbox policy applied to projects
// created without one.
func DefaultSandboxPolicy() models.SandboxPolicy {
	return models.SandboxPolicy{
		Kind:                  models.SandboxContainer,
		Image:                 "node:20-slim",
		Memory:                "2g",
		CPUs:                  2.0,
		Network:               "bridge",
		ExecTimeoutSeconds:    120,
		SessionTimeoutSeconds: 1800,
	}
}
