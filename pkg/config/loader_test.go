package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// isolateConfigFiles makes sure auto-detection finds nothing.
func isolateConfigFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestInitialize_BuiltinDefaults(t *testing.T) {
	isolateConfigFiles(t)

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ConfigPath())
	assert.Equal(t, "generations", cfg.Project.GenerationsDir)
	assert.Equal(t, 0, cfg.Project.MaxIterations)
	assert.Equal(t, "claude", cfg.Agent.Binary)
	assert.Equal(t, "claude-opus-4-5-20251101", cfg.Models.Initializer)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.Models.Coding)
	assert.Equal(t, models.SandboxContainer, cfg.SandboxDefaults.Kind)
	assert.Equal(t, "node:20-slim", cfg.SandboxDefaults.Image)
	assert.Equal(t, 3*time.Second, cfg.Orchestrator.AutoContinueDelay)
	assert.Equal(t, 2, cfg.Orchestrator.FailureStopThreshold)
	assert.Equal(t, 5, cfg.Review.DeepEvery)
	assert.Equal(t, 2, cfg.Review.Workers)
	assert.Equal(t, 30*time.Minute, cfg.Retention.StaleInitializerAfter)
	assert.Equal(t, 10*time.Minute, cfg.Retention.StaleCodingAfter)
	assert.Equal(t, 5*time.Minute, cfg.Retention.StaleReviewAfter)
}

func TestInitialize_FromFile(t *testing.T) {
	isolateConfigFiles(t)
	t.Setenv("RATCHET_TEST_MODEL", "claude-opus-4-5-20251101")

	dir := t.TempDir()
	path := filepath.Join(dir, "ratchet.yaml")
	yamlContent := `
project:
  generations_dir: builds
  max_iterations: 25
models:
  coding: "{{.RATCHET_TEST_MODEL}}"
agent:
  binary: claude-dev
sandbox:
  image: python:3.12-slim
  memory_limit: 4g
orchestrator:
  auto_continue_delay: 10s
  failure_stop_threshold: 3
review:
  workers: 4
guard:
  extra_deny_patterns:
    - 'docker\s+system\s+prune'
retention:
  stale_coding_after: 20m
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath())

	// Overridden values
	assert.Equal(t, "builds", cfg.Project.GenerationsDir)
	assert.Equal(t, 25, cfg.Project.MaxIterations)
	assert.Equal(t, "claude-opus-4-5-20251101", cfg.Models.Coding)
	assert.Equal(t, "claude-dev", cfg.Agent.Binary)
	assert.Equal(t, "python:3.12-slim", cfg.SandboxDefaults.Image)
	assert.Equal(t, "4g", cfg.SandboxDefaults.Memory)
	assert.Equal(t, 10*time.Second, cfg.Orchestrator.AutoContinueDelay)
	assert.Equal(t, 3, cfg.Orchestrator.FailureStopThreshold)
	assert.Equal(t, 4, cfg.Review.Workers)
	assert.Equal(t, []string{`docker\s+system\s+prune`}, cfg.Guard.ExtraDenyPatterns)
	assert.Equal(t, 20*time.Minute, cfg.Retention.StaleCodingAfter)

	// Untouched values keep their defaults
	assert.Equal(t, "claude-opus-4-5-20251101", cfg.Models.Initializer)
	assert.Equal(t, models.SandboxContainer, cfg.SandboxDefaults.Kind)
	assert.Equal(t, 2.0, cfg.SandboxDefaults.CPUs)
	assert.Equal(t, 60*time.Second, cfg.Orchestrator.StorageBackoffCap)
	assert.Equal(t, 5, cfg.Review.DeepEvery)
	assert.Equal(t, 1*time.Minute, cfg.Retention.SweepInterval)
}

func TestInitialize_ExplicitPathMissing(t *testing.T) {
	isolateConfigFiles(t)

	_, err := Initialize(context.Background(), "/nonexistent/ratchet.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestInitialize_AutoDetectInWorkingDir(t *testing.T) {
	isolateConfigFiles(t)

	require.NoError(t, os.WriteFile(DefaultConfigFileName, []byte("agent:\n  binary: claude-local\n"), 0o644))

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFileName, cfg.ConfigPath())
	assert.Equal(t, "claude-local", cfg.Agent.Binary)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	isolateConfigFiles(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ratchet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models: [not: a: mapping"), 0o644))

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidYAML))
}

func TestInitialize_ValidationFailure(t *testing.T) {
	isolateConfigFiles(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ratchet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sandbox:\n  kind: vm\n"), 0o644))

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sandbox validation failed")
}

func TestInitialize_InvalidDurationFallsBack(t *testing.T) {
	isolateConfigFiles(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ratchet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orchestrator:\n  auto_continue_delay: soon\n"), 0o644))

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Orchestrator.AutoContinueDelay)
}

func TestModelFor(t *testing.T) {
	isolateConfigFiles(t)

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, cfg.Models.Initializer, cfg.ModelFor(models.SessionKindInitializer))
	assert.Equal(t, cfg.Models.Coding, cfg.ModelFor(models.SessionKindCoding))
	assert.Equal(t, cfg.Models.Review, cfg.ModelFor(models.SessionKindReview))
}
