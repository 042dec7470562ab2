package sandbox

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// fakeDockerAPI scripts the Docker Engine API per test. Unset funcs return
// benign defaults so each test overrides only what it asserts on.
type fakeDockerAPI struct {
	PingFunc                 func(ctx context.Context) (types.Ping, error)
	ImagePullFunc            func(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ContainerInspectFunc     func(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerCreateFunc      func(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStartFunc       func(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStopFunc        func(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemoveFunc      func(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerExecCreateFunc  func(ctx context.Context, ctr string, options container.ExecOptions) (types.IDResponse, error)
	ContainerExecAttachFunc  func(ctx context.Context, execID string, config container.ExecStartOptions) (types.HijackedResponse, error)
	ContainerExecInspectFunc func(ctx context.Context, execID string) (container.ExecInspect, error)
}

func (f *fakeDockerAPI) Ping(ctx context.Context) (types.Ping, error) {
	if f.PingFunc != nil {
		return f.PingFunc(ctx)
	}
	return types.Ping{}, nil
}

func (f *fakeDockerAPI) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	if f.ImagePullFunc != nil {
		return f.ImagePullFunc(ctx, refStr, options)
	}
	return io.NopCloser(strings.NewReader("{}")), nil
}

func (f *fakeDockerAPI) ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error) {
	if f.ContainerInspectFunc != nil {
		return f.ContainerInspectFunc(ctx, containerID)
	}
	return container.InspectResponse{}, errdefs.NotFound(errors.New("no such container"))
}

func (f *fakeDockerAPI) ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error) {
	if f.ContainerCreateFunc != nil {
		return f.ContainerCreateFunc(ctx, config, hostConfig, networkingConfig, platform, containerName)
	}
	return container.CreateResponse{ID: "fake-container-id"}, nil
}

func (f *fakeDockerAPI) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	if f.ContainerStartFunc != nil {
		return f.ContainerStartFunc(ctx, containerID, options)
	}
	return nil
}

func (f *fakeDockerAPI) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	if f.ContainerStopFunc != nil {
		return f.ContainerStopFunc(ctx, containerID, options)
	}
	return nil
}

func (f *fakeDockerAPI) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	if f.ContainerRemoveFunc != nil {
		return f.ContainerRemoveFunc(ctx, containerID, options)
	}
	return nil
}

func (f *fakeDockerAPI) ContainerExecCreate(ctx context.Context, ctr string, options container.ExecOptions) (types.IDResponse, error) {
	if f.ContainerExecCreateFunc != nil {
		return f.ContainerExecCreateFunc(ctx, ctr, options)
	}
	return types.IDResponse{ID: "fake-exec-id"}, nil
}

func (f *fakeDockerAPI) ContainerExecAttach(ctx context.Context, execID string, config container.ExecStartOptions) (types.HijackedResponse, error) {
	if f.ContainerExecAttachFunc != nil {
		return f.ContainerExecAttachFunc(ctx, execID, config)
	}
	return hijackedOutput("", ""), nil
}

func (f *fakeDockerAPI) ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error) {
	if f.ContainerExecInspectFunc != nil {
		return f.ContainerExecInspectFunc(ctx, execID)
	}
	return container.ExecInspect{ExitCode: 0}, nil
}

// hijackedOutput builds a HijackedResponse whose reader yields the given
// stdout/stderr through the daemon's multiplexed stream framing.
func hijackedOutput(stdout, stderr string) types.HijackedResponse {
	var framed bytes.Buffer
	if stdout != "" {
		_, _ = stdcopy.NewStdWriter(&framed, stdcopy.Stdout).Write([]byte(stdout))
	}
	if stderr != "" {
		_, _ = stdcopy.NewStdWriter(&framed, stdcopy.Stderr).Write([]byte(stderr))
	}
	conn, _ := net.Pipe()
	return types.HijackedResponse{
		Conn:   conn,
		Reader: bufio.NewReader(bytes.NewReader(framed.Bytes())),
	}
}

func testProjectRef() ProjectRef {
	return ProjectRef{
		ID:        "11111111-2222-3333-4444-555555555555",
		Workspace: "/tmp/ratchet-test-workspace",
		Policy: models.SandboxPolicy{
			Kind:                  models.SandboxContainer,
			Image:                 "node:20-slim",
			Memory:                "2g",
			CPUs:                  2.0,
			Network:               "bridge",
			ExecTimeoutSeconds:    120,
			SessionTimeoutSeconds: 1800,
		},
	}
}

func runningInspect(id string) container.InspectResponse {
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:    id,
			State: &container.State{Status: "running", Running: true},
		},
	}
}

func stoppedInspect(id string) container.InspectResponse {
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:    id,
			State: &container.State{Status: "exited", Running: false},
		},
	}
}

func TestContainerSandboxStart(t *testing.T) {
	ctx := context.Background()
	gate := guard.NewGate(nil)

	t.Run("adopts a running container without creating", func(t *testing.T) {
		api := &fakeDockerAPI{
			ContainerInspectFunc: func(ctx context.Context, id string) (container.InspectResponse, error) {
				assert.Equal(t, "project-11111111-2222-3333-4444-555555555555", id)
				return runningInspect("abc"), nil
			},
			ContainerCreateFunc: func(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, name string) (container.CreateResponse, error) {
				t.Fatal("ContainerCreate must not be called when adopting")
				return container.CreateResponse{}, nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		require.NoError(t, s.Start(ctx))
	})

	t.Run("restarts a stopped container in place", func(t *testing.T) {
		started := ""
		api := &fakeDockerAPI{
			ContainerInspectFunc: func(ctx context.Context, id string) (container.InspectResponse, error) {
				return stoppedInspect("abc"), nil
			},
			ContainerStartFunc: func(ctx context.Context, id string, options container.StartOptions) error {
				started = id
				return nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		require.NoError(t, s.Start(ctx))
		assert.Equal(t, "project-11111111-2222-3333-4444-555555555555", started)
	})

	t.Run("creates with workspace mount, labels and resource caps", func(t *testing.T) {
		var gotConfig *container.Config
		var gotHost *container.HostConfig
		startedIDs := []string{}

		api := &fakeDockerAPI{
			ContainerCreateFunc: func(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, name string) (container.CreateResponse, error) {
				gotConfig = config
				gotHost = hostConfig
				assert.Equal(t, "project-11111111-2222-3333-4444-555555555555", name)
				return container.CreateResponse{ID: "new-id"}, nil
			},
			ContainerStartFunc: func(ctx context.Context, id string, options container.StartOptions) error {
				startedIDs = append(startedIDs, id)
				return nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		require.NoError(t, s.Start(ctx))

		require.NotNil(t, gotConfig)
		assert.Equal(t, "node:20-slim", gotConfig.Image)
		assert.Equal(t, []string{"sleep", "infinity"}, gotConfig.Cmd)
		assert.Equal(t, MountPath, gotConfig.WorkingDir)
		assert.Equal(t, "true", gotConfig.Labels[labelManaged])
		assert.Equal(t, "11111111-2222-3333-4444-555555555555", gotConfig.Labels[labelProject])

		require.NotNil(t, gotHost)
		assert.Equal(t, []string{"/tmp/ratchet-test-workspace:" + MountPath}, gotHost.Binds)
		assert.Equal(t, int64(2*1024*1024*1024), gotHost.Resources.Memory)
		assert.Equal(t, int64(2e9), gotHost.Resources.NanoCPUs)
		assert.Equal(t, container.NetworkMode("bridge"), gotHost.NetworkMode)

		assert.Equal(t, []string{"new-id"}, startedIDs)
	})

	t.Run("pulls the image when create reports it missing", func(t *testing.T) {
		pulled := ""
		creates := 0
		api := &fakeDockerAPI{
			ContainerCreateFunc: func(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, name string) (container.CreateResponse, error) {
				creates++
				if creates == 1 {
					return container.CreateResponse{}, errdefs.NotFound(errors.New("no such image"))
				}
				return container.CreateResponse{ID: "after-pull"}, nil
			},
			ImagePullFunc: func(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
				pulled = refStr
				return io.NopCloser(strings.NewReader("{}")), nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		require.NoError(t, s.Start(ctx))
		assert.Equal(t, "node:20-slim", pulled)
		assert.Equal(t, 2, creates)
	})

	t.Run("daemon failure surfaces as sandbox_unavailable", func(t *testing.T) {
		api := &fakeDockerAPI{
			ContainerInspectFunc: func(ctx context.Context, id string) (container.InspectResponse, error) {
				return container.InspectResponse{}, errors.New("connection refused")
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		err := s.Start(ctx)
		require.Error(t, err)
		assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))
	})

	t.Run("setup command failures do not abort provisioning", func(t *testing.T) {
		ref := testProjectRef()
		ref.Policy.Setup = []string{"corepack enable", "sudo rm -rf /"}

		execCmds := [][]string{}
		api := &fakeDockerAPI{
			ContainerExecCreateFunc: func(ctx context.Context, ctr string, options container.ExecOptions) (types.IDResponse, error) {
				execCmds = append(execCmds, options.Cmd)
				return types.IDResponse{ID: "setup-exec"}, nil
			},
			ContainerExecInspectFunc: func(ctx context.Context, execID string) (container.ExecInspect, error) {
				return container.ExecInspect{ExitCode: 1}, nil
			},
		}

		s := newContainerSandbox(api, gate, ref, slog.Default())
		require.NoError(t, s.Start(ctx))

		// The sudo command is blocked by the gate before reaching the
		// daemon; the failed corepack exec is logged, not fatal.
		require.Len(t, execCmds, 1)
		assert.Contains(t, execCmds[0][len(execCmds[0])-1], "corepack enable")
	})
}

func TestContainerSandboxExec(t *testing.T) {
	ctx := context.Background()
	gate := guard.NewGate(nil)

	t.Run("demuxes stdout and stderr and wraps in timeout", func(t *testing.T) {
		var gotExec container.ExecOptions
		api := &fakeDockerAPI{
			ContainerExecCreateFunc: func(ctx context.Context, ctr string, options container.ExecOptions) (types.IDResponse, error) {
				gotExec = options
				return types.IDResponse{ID: "e1"}, nil
			},
			ContainerExecAttachFunc: func(ctx context.Context, execID string, config container.ExecStartOptions) (types.HijackedResponse, error) {
				return hijackedOutput("hello\n", "warning\n"), nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		result, err := s.Exec(ctx, "echo hello", 30*time.Second)
		require.NoError(t, err)

		assert.Equal(t, "hello\n", result.Stdout)
		assert.Equal(t, "warning\n", result.Stderr)
		assert.Equal(t, 0, result.ExitCode)
		assert.False(t, result.Killed)

		assert.Equal(t, []string{"timeout", "-k", "5", "30", "sh", "-lc", "echo hello"}, gotExec.Cmd)
		assert.Equal(t, MountPath, gotExec.WorkingDir)
		assert.True(t, gotExec.AttachStdout)
		assert.True(t, gotExec.AttachStderr)
	})

	t.Run("zero timeout falls back to the policy default", func(t *testing.T) {
		var gotExec container.ExecOptions
		api := &fakeDockerAPI{
			ContainerExecCreateFunc: func(ctx context.Context, ctr string, options container.ExecOptions) (types.IDResponse, error) {
				gotExec = options
				return types.IDResponse{ID: "e1"}, nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		_, err := s.Exec(ctx, "true", 0)
		require.NoError(t, err)
		assert.Equal(t, "120", gotExec.Cmd[3])
	})

	t.Run("exit 124 maps to a timeout error with Killed set", func(t *testing.T) {
		api := &fakeDockerAPI{
			ContainerExecAttachFunc: func(ctx context.Context, execID string, config container.ExecStartOptions) (types.HijackedResponse, error) {
				return hijackedOutput("partial", ""), nil
			},
			ContainerExecInspectFunc: func(ctx context.Context, execID string) (container.ExecInspect, error) {
				return container.ExecInspect{ExitCode: timeoutExitCode}, nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		result, err := s.Exec(ctx, "sleep 600", time.Second)
		require.Error(t, err)
		assert.Equal(t, services.KindTimeout, services.KindOf(err))
		require.NotNil(t, result)
		assert.True(t, result.Killed)
		assert.Equal(t, timeoutExitCode, result.ExitCode)
		assert.Equal(t, "partial", result.Stdout)
	})

	t.Run("non-zero exit is a result, not an error", func(t *testing.T) {
		api := &fakeDockerAPI{
			ContainerExecInspectFunc: func(ctx context.Context, execID string) (container.ExecInspect, error) {
				return container.ExecInspect{ExitCode: 2}, nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		result, err := s.Exec(ctx, "grep nothing", time.Second)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ExitCode)
	})
}

func TestContainerSandboxStopAndDestroy(t *testing.T) {
	ctx := context.Background()
	gate := guard.NewGate(nil)

	t.Run("stop keeps the container unless remove is set", func(t *testing.T) {
		stopped, removed := 0, 0
		api := &fakeDockerAPI{
			ContainerStopFunc: func(ctx context.Context, id string, options container.StopOptions) error {
				stopped++
				return nil
			},
			ContainerRemoveFunc: func(ctx context.Context, id string, options container.RemoveOptions) error {
				removed++
				return nil
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		require.NoError(t, s.Stop(ctx, false))
		assert.Equal(t, 1, stopped)
		assert.Equal(t, 0, removed)

		require.NoError(t, s.Stop(ctx, true))
		assert.Equal(t, 2, stopped)
		assert.Equal(t, 1, removed)
	})

	t.Run("destroy tolerates a container that is already gone", func(t *testing.T) {
		api := &fakeDockerAPI{
			ContainerStopFunc: func(ctx context.Context, id string, options container.StopOptions) error {
				return errdefs.NotFound(errors.New("no such container"))
			},
			ContainerRemoveFunc: func(ctx context.Context, id string, options container.RemoveOptions) error {
				return errdefs.NotFound(errors.New("no such container"))
			},
		}

		s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
		require.NoError(t, s.Destroy(ctx))
	})
}

func TestContainerSandboxHealth(t *testing.T) {
	ctx := context.Background()
	gate := guard.NewGate(nil)

	api := &fakeDockerAPI{
		ContainerInspectFunc: func(ctx context.Context, id string) (container.InspectResponse, error) {
			return runningInspect("abc"), nil
		},
	}
	s := newContainerSandbox(api, gate, testProjectRef(), slog.Default())
	require.NoError(t, s.Health(ctx))

	api.ContainerInspectFunc = func(ctx context.Context, id string) (container.InspectResponse, error) {
		return stoppedInspect("abc"), nil
	}
	err := s.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))
}

func TestCappedBuffer(t *testing.T) {
	b := newCappedBuffer(8)
	n, err := b.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, 10, n, "Write must report full consumption to keep demuxing alive")
	assert.Equal(t, "01234567\n... [output truncated]", b.String())

	small := newCappedBuffer(8)
	_, _ = small.Write([]byte("ok"))
	assert.Equal(t, "ok", small.String())
}
