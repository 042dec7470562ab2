// Package models contains business domain types shared across packages.
// It is a leaf package: nothing here may import the generated ent code.
package models

import "dario.cat/mergo"

// SandboxKind selects the execution backend for agent commands.
type SandboxKind string

const (
	SandboxNone      SandboxKind = "none"
	SandboxContainer SandboxKind = "container"
	SandboxCloud     SandboxKind = "cloud"
)

// SandboxPolicy is the per-project sandbox configuration, persisted as JSON
// on the project row. Zero values fall back to the global defaults at
// provisioning time.
type SandboxPolicy struct {
	Kind    SandboxKind `json:"kind" yaml:"kind"`
	Image   string      `json:"image,omitempty" yaml:"image"`
	Memory  string      `json:"memory_limit,omitempty" yaml:"memory_limit"` // e.g. "2g"
	CPUs    float64     `json:"cpu_limit,omitempty" yaml:"cpu_limit"`
	Network string      `json:"network,omitempty" yaml:"network"`

	// ExecTimeoutSeconds caps a single exec tool call inside the sandbox.
	ExecTimeoutSeconds int `json:"exec_timeout_seconds,omitempty" yaml:"exec_timeout_seconds"`

	// SessionTimeoutSeconds is the soft wall-clock cap for a whole session.
	// Crossing it injects a cooperative cancel.
	SessionTimeoutSeconds int `json:"session_timeout_seconds,omitempty" yaml:"session_timeout_seconds"`

	// Setup commands run once after the container is created. Failures are
	// logged but do not abort provisioning.
	Setup []string `json:"setup,omitempty" yaml:"setup"`
}

// Merge returns a copy of p with zero-valued fields filled from defaults.
func (p SandboxPolicy) Merge(defaults SandboxPolicy) SandboxPolicy {
	out := p
	// Only fails on non-struct/nil arguments, which cannot happen here.
	_ = mergo.Merge(&out, defaults)
	return out
}
