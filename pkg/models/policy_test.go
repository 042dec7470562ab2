package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSandboxPolicyMerge(t *testing.T) {
	defaults := SandboxPolicy{
		Kind:                  SandboxContainer,
		Image:                 "node:20-slim",
		Memory:                "2g",
		CPUs:                  2.0,
		Network:               "bridge",
		ExecTimeoutSeconds:    120,
		SessionTimeoutSeconds: 1800,
		Setup:                 []string{"npm config set fund false"},
	}

	tests := []struct {
		name   string
		policy SandboxPolicy
		check  func(t *testing.T, out SandboxPolicy)
	}{
		{
			name:   "zero policy takes every default",
			policy: SandboxPolicy{},
			check: func(t *testing.T, out SandboxPolicy) {
				assert.Equal(t, defaults, out)
			},
		},
		{
			name: "explicit fields win over defaults",
			policy: SandboxPolicy{
				Kind:   SandboxNone,
				Image:  "python:3.12-slim",
				Memory: "4g",
			},
			check: func(t *testing.T, out SandboxPolicy) {
				assert.Equal(t, SandboxNone, out.Kind)
				assert.Equal(t, "python:3.12-slim", out.Image)
				assert.Equal(t, "4g", out.Memory)
				// Unset fields still fall back.
				assert.Equal(t, 2.0, out.CPUs)
				assert.Equal(t, "bridge", out.Network)
				assert.Equal(t, 120, out.ExecTimeoutSeconds)
			},
		},
		{
			name:   "session timeout override keeps remaining defaults",
			policy: SandboxPolicy{SessionTimeoutSeconds: 3600},
			check: func(t *testing.T, out SandboxPolicy) {
				assert.Equal(t, 3600, out.SessionTimeoutSeconds)
				assert.Equal(t, SandboxContainer, out.Kind)
				assert.Equal(t, "node:20-slim", out.Image)
			},
		},
		{
			name:   "setup commands are not merged element-wise",
			policy: SandboxPolicy{Setup: []string{"apt-get update"}},
			check: func(t *testing.T, out SandboxPolicy) {
				assert.Equal(t, []string{"apt-get update"}, out.Setup)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.policy.Merge(defaults))
		})
	}
}

func TestSandboxPolicyMergeDoesNotMutateReceiver(t *testing.T) {
	p := SandboxPolicy{Image: "custom:latest"}
	_ = p.Merge(SandboxPolicy{Kind: SandboxContainer, Memory: "2g"})
	assert.Equal(t, SandboxPolicy{Image: "custom:latest"}, p)
}

func TestProgressDone(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     bool
	}{
		{name: "empty roadmap is not done", progress: Progress{}, want: false},
		{name: "partial completion is not done", progress: Progress{TotalTasks: 10, CompletedTasks: 9}, want: false},
		{name: "all tasks complete is done", progress: Progress{TotalTasks: 10, CompletedTasks: 10}, want: true},
		{name: "failing tests do not block done", progress: Progress{TotalTasks: 2, CompletedTasks: 2, TotalTests: 5, PassedTests: 3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.progress.Done(), "progress %+v", tt.progress)
		})
	}
}
