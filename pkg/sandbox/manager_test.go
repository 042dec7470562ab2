package sandbox

import (
	"context"
	"log/slog"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

func testDefaults() models.SandboxPolicy {
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

// managerWithFakeDocker wires a Manager to a scripted Engine API so
// container policies can be exercised without a daemon.
func managerWithFakeDocker(api *fakeDockerAPI) *Manager {
	m := NewManager(guard.NewGate(nil), testDefaults(), slog.Default())
	m.newAPI = func(ctx context.Context) (dockerAPI, error) { return api, nil }
	return m
}

func TestManagerAcquireSupersedes(t *testing.T) {
	ctx := context.Background()
	m := NewManager(guard.NewGate(nil), testDefaults(), slog.Default())

	ref := ProjectRef{
		ID:        "p1",
		Workspace: t.TempDir(),
		Policy:    models.SandboxPolicy{Kind: models.SandboxNone},
	}

	first, err := m.Acquire(ctx, ref, false)
	require.NoError(t, err)

	result, err := first.Exec(ctx, "echo one", 0)
	require.NoError(t, err)
	assert.Equal(t, "one\n", result.Stdout)

	second, err := m.Acquire(ctx, ref, false)
	require.NoError(t, err)

	// The older handle is dead; the newer one works.
	_, err = first.Exec(ctx, "echo stale", 0)
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))

	result, err = second.Exec(ctx, "echo two", 0)
	require.NoError(t, err)
	assert.Equal(t, "two\n", result.Stdout)
}

func TestManagerDestroyInvalidatesHandle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(guard.NewGate(nil), testDefaults(), slog.Default())

	ref := ProjectRef{
		ID:        "p2",
		Workspace: t.TempDir(),
		Policy:    models.SandboxPolicy{Kind: models.SandboxNone},
	}

	h, err := m.Acquire(ctx, ref, false)
	require.NoError(t, err)
	require.NoError(t, m.Destroy(ctx, ref))

	_, err = h.Exec(ctx, "echo dead", 0)
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))
}

func TestManagerHandleDestroySpendsItself(t *testing.T) {
	ctx := context.Background()
	m := NewManager(guard.NewGate(nil), testDefaults(), slog.Default())

	ref := ProjectRef{
		ID:        "p3",
		Workspace: t.TempDir(),
		Policy:    models.SandboxPolicy{Kind: models.SandboxNone},
	}

	h, err := m.Acquire(ctx, ref, false)
	require.NoError(t, err)
	require.NoError(t, h.Destroy(ctx))

	err = h.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))
}

func TestManagerPolicyMergeFillsDefaults(t *testing.T) {
	ctx := context.Background()
	m := NewManager(guard.NewGate(nil), testDefaults(), slog.Default())

	// Policy only names the kind; the exec timeout arrives via defaults.
	ref := ProjectRef{
		ID:        "p4",
		Workspace: t.TempDir(),
		Policy:    models.SandboxPolicy{Kind: models.SandboxNone},
	}

	h, err := m.Acquire(ctx, ref, false)
	require.NoError(t, err)

	hs, ok := h.(*handle)
	require.True(t, ok)
	inner, ok := hs.backend.(*hostSandbox)
	require.True(t, ok)
	assert.Equal(t, 120, inner.policy.ExecTimeoutSeconds)
}

func TestManagerCloudKindUnavailable(t *testing.T) {
	ctx := context.Background()
	m := NewManager(guard.NewGate(nil), testDefaults(), slog.Default())

	ref := ProjectRef{
		ID:        "p5",
		Workspace: t.TempDir(),
		Policy:    models.SandboxPolicy{Kind: models.SandboxCloud},
	}

	_, err := m.Acquire(ctx, ref, false)
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))
}

func TestManagerContainerUsesInjectedAPI(t *testing.T) {
	ctx := context.Background()

	inspected := 0
	api := &fakeDockerAPI{}
	api.ContainerInspectFunc = func(ctx context.Context, id string) (container.InspectResponse, error) {
		inspected++
		return runningInspect("abc"), nil
	}

	m := managerWithFakeDocker(api)
	ref := ProjectRef{ID: "p6", Workspace: t.TempDir()}

	h, err := m.Acquire(ctx, ref, false)
	require.NoError(t, err)
	assert.Equal(t, models.SandboxContainer, h.Kind())
	assert.Equal(t, 1, inspected, "adoption inspects the named container")
}

func TestManagerFreshDestroysBeforeStart(t *testing.T) {
	ctx := context.Background()

	removed := 0
	api := &fakeDockerAPI{}
	api.ContainerRemoveFunc = func(ctx context.Context, id string, options container.RemoveOptions) error {
		removed++
		return nil
	}

	m := managerWithFakeDocker(api)
	ref := ProjectRef{ID: "p7", Workspace: t.TempDir()}

	_, err := m.Acquire(ctx, ref, true)
	require.NoError(t, err)
	assert.Equal(t, 1, removed, "fresh acquisition removes any prior container")
}
