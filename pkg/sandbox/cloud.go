package sandbox

import (
	"context"
	"errors"
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// errCloudUnprovisioned is returned by every cloud sandbox operation. The
// kind is accepted by configuration so policies can be written ahead of a
// backing implementation, but no provider is wired in this build.
var errCloudUnprovisioned = errors.New("cloud sandbox kind is recognized but no provider is configured")

// cloudSandbox is the placeholder backend for policy kind "cloud".
type cloudSandbox struct{}

func (cloudSandbox) Kind() models.SandboxKind { return models.SandboxCloud }

func (cloudSandbox) Start(ctx context.Context) error {
	return services.NewSandboxUnavailableError(errCloudUnprovisioned)
}

func (cloudSandbox) Exec(ctx context.Context, command string, timeout time.Duration) (*ExecResult, error) {
	return nil, services.NewSandboxUnavailableError(errCloudUnprovisioned)
}

func (cloudSandbox) Stop(ctx context.Context, remove bool) error { return nil }

func (cloudSandbox) Destroy(ctx context.Context) error { return nil }

func (cloudSandbox) Health(ctx context.Context) error {
	return services.NewSandboxUnavailableError(errCloudUnprovisioned)
}
