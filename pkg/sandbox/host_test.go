package sandbox

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

func hostRef(t *testing.T) ProjectRef {
	t.Helper()
	return ProjectRef{
		ID:        "host-project",
		Workspace: t.TempDir(),
		Policy: models.SandboxPolicy{
			Kind:               models.SandboxNone,
			ExecTimeoutSeconds: 10,
		},
	}
}

func TestHostSandboxExec(t *testing.T) {
	ctx := context.Background()
	gate := guard.NewGate(nil)

	t.Run("runs in the workspace directory", func(t *testing.T) {
		ref := hostRef(t)
		s := newHostSandbox(gate, ref, slog.Default())
		require.NoError(t, s.Start(ctx))

		result, err := s.Exec(ctx, "pwd", 0)
		require.NoError(t, err)
		assert.Equal(t, ref.Workspace+"\n", result.Stdout)
		assert.Equal(t, 0, result.ExitCode)
	})

	t.Run("captures stderr and non-zero exit codes", func(t *testing.T) {
		s := newHostSandbox(gate, hostRef(t), slog.Default())

		result, err := s.Exec(ctx, "echo oops >&2; exit 3", 0)
		require.NoError(t, err)
		assert.Equal(t, "oops\n", result.Stderr)
		assert.Equal(t, 3, result.ExitCode)
		assert.False(t, result.Killed)
	})

	t.Run("denies base patterns", func(t *testing.T) {
		s := newHostSandbox(gate, hostRef(t), slog.Default())

		_, err := s.Exec(ctx, "sudo rm -rf /", 0)
		require.Error(t, err)
		assert.Equal(t, services.KindSecurityDenied, services.KindOf(err))
	})

	t.Run("denies host-only patterns", func(t *testing.T) {
		s := newHostSandbox(gate, hostRef(t), slog.Default())

		_, err := s.Exec(ctx, "apt-get install -y cowsay", 0)
		require.Error(t, err)
		assert.Equal(t, services.KindSecurityDenied, services.KindOf(err))
	})

	t.Run("kills the process tree on timeout", func(t *testing.T) {
		s := newHostSandbox(gate, hostRef(t), slog.Default())

		start := time.Now()
		result, err := s.Exec(ctx, "sleep 30", 200*time.Millisecond)
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.Equal(t, services.KindTimeout, services.KindOf(err))
		require.NotNil(t, result)
		assert.True(t, result.Killed)
		assert.Less(t, elapsed, 5*time.Second, "timeout must not wait for the sleep")
	})

	t.Run("cancellation kills the command", func(t *testing.T) {
		s := newHostSandbox(gate, hostRef(t), slog.Default())

		cancelCtx, cancel := context.WithCancel(ctx)
		go func() {
			time.Sleep(100 * time.Millisecond)
			cancel()
		}()

		result, err := s.Exec(cancelCtx, "sleep 30", 10*time.Second)
		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, result)
		assert.True(t, result.Killed)
	})
}

func TestHostSandboxHealth(t *testing.T) {
	ctx := context.Background()
	gate := guard.NewGate(nil)

	ref := hostRef(t)
	s := newHostSandbox(gate, ref, slog.Default())
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Health(ctx))

	missing := ref
	missing.Workspace = ref.Workspace + "/does-not-exist"
	s2 := newHostSandbox(gate, missing, slog.Default())
	err := s2.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))
}
