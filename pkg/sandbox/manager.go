package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// errSuperseded is wrapped into the sandbox_unavailable error a stale
// handle returns after a newer Acquire or a Destroy won the project slot.
var errSuperseded = errors.New("sandbox handle superseded by a newer start")

// Manager owns sandbox lifecycles keyed by project identity. It guarantees
// at most one live sandbox per project: every Acquire supersedes earlier
// handles, whose operations then fail with sandbox_unavailable.
type Manager struct {
	gate     *guard.Gate
	defaults models.SandboxPolicy
	logger   *slog.Logger

	// newAPI creates the Docker client on first container use. Tests swap
	// in a scripted fake.
	newAPI func(ctx context.Context) (dockerAPI, error)

	apiMu sync.Mutex
	api   dockerAPI

	mu    sync.Mutex
	slots map[string]*projectSlot
}

// projectSlot serializes lifecycle operations for one project. startMu is
// held across long operations (image pull, container start); mu guards only
// the generation counter and live backend pointer.
type projectSlot struct {
	startMu sync.Mutex

	mu      sync.Mutex
	gen     uint64
	backend Sandbox
}

// NewManager creates a sandbox manager with the given command gate and
// policy defaults. The Docker client is established lazily on the first
// container acquisition.
func NewManager(gate *guard.Gate, defaults models.SandboxPolicy, logger *slog.Logger) *Manager {
	return &Manager{
		gate:     gate,
		defaults: defaults,
		logger:   logger,
		newAPI:   newDockerAPI,
		slots:    make(map[string]*projectSlot),
	}
}

// Acquire provisions (or adopts) the sandbox for a project and returns a
// handle bound to this acquisition. fresh forces a destroy-and-recreate
// instead of adopting an existing environment. Any handle from an earlier
// Acquire for the same project is invalidated before the runtime is touched.
func (m *Manager) Acquire(ctx context.Context, ref ProjectRef, fresh bool) (Sandbox, error) {
	slot := m.slot(ref.ID)
	slot.startMu.Lock()
	defer slot.startMu.Unlock()

	ref.Policy = ref.Policy.Merge(m.defaults)

	backend, err := m.backendFor(ctx, ref)
	if err != nil {
		return nil, err
	}

	// Supersede first so in-flight calls on the old handle fail instead of
	// racing the new sandbox.
	slot.mu.Lock()
	slot.gen++
	gen := slot.gen
	slot.backend = nil
	slot.mu.Unlock()

	if fresh {
		if err := backend.Destroy(ctx); err != nil {
			m.logger.Warn("Failed to destroy previous sandbox before fresh start",
				"project_id", ref.ID, "error", err)
		}
	}

	if err := backend.Start(ctx); err != nil {
		return nil, err
	}

	slot.mu.Lock()
	slot.backend = backend
	slot.mu.Unlock()

	return &handle{slot: slot, gen: gen, backend: backend}, nil
}

// Destroy removes a project's sandbox unconditionally, invalidating any
// outstanding handle. Used on project deletion and policy changes. The
// workspace directory is never touched.
func (m *Manager) Destroy(ctx context.Context, ref ProjectRef) error {
	slot := m.slot(ref.ID)
	slot.startMu.Lock()
	defer slot.startMu.Unlock()

	slot.mu.Lock()
	slot.gen++
	backend := slot.backend
	slot.backend = nil
	slot.mu.Unlock()

	if backend == nil {
		ref.Policy = ref.Policy.Merge(m.defaults)
		if ref.Policy.Kind != models.SandboxContainer {
			return nil
		}
		b, err := m.backendFor(ctx, ref)
		if err != nil {
			return err
		}
		backend = b
	}
	return backend.Destroy(ctx)
}

func (m *Manager) slot(projectID string) *projectSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[projectID]
	if !ok {
		s = &projectSlot{}
		m.slots[projectID] = s
	}
	return s
}

func (m *Manager) backendFor(ctx context.Context, ref ProjectRef) (Sandbox, error) {
	switch ref.Policy.Kind {
	case models.SandboxNone:
		return newHostSandbox(m.gate, ref, m.logger), nil
	case models.SandboxCloud:
		return cloudSandbox{}, nil
	case models.SandboxContainer:
		api, err := m.dockerAPI(ctx)
		if err != nil {
			return nil, services.NewSandboxUnavailableError(err)
		}
		return newContainerSandbox(api, m.gate, ref, m.logger), nil
	default:
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("unknown sandbox kind %q", ref.Policy.Kind))
	}
}

func (m *Manager) dockerAPI(ctx context.Context) (dockerAPI, error) {
	m.apiMu.Lock()
	defer m.apiMu.Unlock()
	if m.api != nil {
		return m.api, nil
	}
	api, err := m.newAPI(ctx)
	if err != nil {
		return nil, err
	}
	m.api = api
	return api, nil
}

// handle is the Sandbox issued by Acquire. It forwards to the backend while
// it is the project's current acquisition and fails once superseded.
type handle struct {
	slot    *projectSlot
	gen     uint64
	backend Sandbox
}

func (h *handle) current() error {
	h.slot.mu.Lock()
	defer h.slot.mu.Unlock()
	if h.slot.gen != h.gen {
		return services.NewSandboxUnavailableError(errSuperseded)
	}
	return nil
}

func (h *handle) Kind() models.SandboxKind { return h.backend.Kind() }

func (h *handle) Start(ctx context.Context) error {
	if err := h.current(); err != nil {
		return err
	}
	return h.backend.Start(ctx)
}

func (h *handle) Exec(ctx context.Context, command string, timeout time.Duration) (*ExecResult, error) {
	if err := h.current(); err != nil {
		return nil, err
	}
	return h.backend.Exec(ctx, command, timeout)
}

func (h *handle) Stop(ctx context.Context, remove bool) error {
	if err := h.current(); err != nil {
		return err
	}
	return h.backend.Stop(ctx, remove)
}

func (h *handle) Destroy(ctx context.Context) error {
	if err := h.current(); err != nil {
		return err
	}
	err := h.backend.Destroy(ctx)

	// The handle is spent either way; only invalidate if still current.
	h.slot.mu.Lock()
	if h.slot.gen == h.gen {
		h.slot.gen++
		h.slot.backend = nil
	}
	h.slot.mu.Unlock()
	return err
}

func (h *handle) Health(ctx context.Context) error {
	if err := h.current(); err != nil {
		return err
	}
	return h.backend.Health(ctx)
}
