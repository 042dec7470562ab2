package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
)

func validTestConfig(t *testing.T) *Config {
	cfg, err := load(context.Background(), "")
	require.NoError(t, err)
	return cfg
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "empty coding model",
			mutate:  func(c *Config) { c.Models.Coding = "" },
			wantErr: "models validation failed",
		},
		{
			name:    "empty agent binary",
			mutate:  func(c *Config) { c.Agent.Binary = "" },
			wantErr: "agent validation failed",
		},
		{
			name:    "tiny line buffer",
			mutate:  func(c *Config) { c.Agent.MaxLineBytes = 1024 },
			wantErr: "agent validation failed",
		},
		{
			name:    "unknown sandbox kind",
			mutate:  func(c *Config) { c.SandboxDefaults.Kind = "vm" },
			wantErr: "sandbox validation failed",
		},
		{
			name:    "container without image",
			mutate:  func(c *Config) { c.SandboxDefaults.Image = "" },
			wantErr: "sandbox validation failed",
		},
		{
			name:    "bad memory limit",
			mutate:  func(c *Config) { c.SandboxDefaults.Memory = "lots" },
			wantErr: "sandbox validation failed",
		},
		{
			name: "none sandbox skips container checks",
			mutate: func(c *Config) {
				c.SandboxDefaults.Kind = models.SandboxNone
				c.SandboxDefaults.Image = ""
				c.SandboxDefaults.Memory = ""
				c.SandboxDefaults.CPUs = 0
			},
			wantErr: "",
		},
		{
			name:    "zero failure stop threshold",
			mutate:  func(c *Config) { c.Orchestrator.FailureStopThreshold = 0 },
			wantErr: "orchestrator validation failed",
		},
		{
			name: "backoff cap below initial",
			mutate: func(c *Config) {
				c.Orchestrator.StorageBackoffCap = c.Orchestrator.StorageBackoffInitial / 2
			},
			wantErr: "orchestrator validation failed",
		},
		{
			name:    "rating threshold out of range",
			mutate:  func(c *Config) { c.Review.QuickRatingThreshold = 11 },
			wantErr: "review validation failed",
		},
		{
			name:    "too many review workers",
			mutate:  func(c *Config) { c.Review.Workers = 64 },
			wantErr: "review validation failed",
		},
		{
			name:    "invalid guard pattern",
			mutate:  func(c *Config) { c.Guard.ExtraDenyPatterns = []string{"(unclosed"} },
			wantErr: "guard validation failed",
		},
		{
			name:    "zero event ttl",
			mutate:  func(c *Config) { c.Retention.EventTTL = 0 },
			wantErr: "retention validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
