package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// mcpPath is where the streamable HTTP handler is mounted.
const mcpPath = "/mcp"

// Host serves registered bridges over a loopback HTTP listener. The agent
// CLI connects with a per-session bearer token; the token picks which
// session's Bridge answers, so concurrent projects never share a tool
// surface. Unknown or missing tokens are refused before the MCP handler
// runs.
type Host struct {
	logger *slog.Logger

	mu      sync.Mutex
	ln      net.Listener
	srv     *http.Server
	bridges map[string]*Bridge
}

// NewHost creates an unstarted Host.
func NewHost(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		logger:  logger.With(slog.String("component", "bridge_host")),
		bridges: make(map[string]*Bridge),
	}
}

// Start binds a random loopback port and begins serving. Idempotent
// against double starts.
func (h *Host) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ln != nil {
		return nil
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("bind bridge listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(mcpPath, h.authenticate(mcpsdk.NewStreamableHTTPHandler(h.serverFor, nil)))

	h.ln = ln
	h.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := h.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("Bridge listener failed", slog.String("error", err.Error()))
		}
	}()

	h.logger.Info("Bridge host listening", slog.String("addr", ln.Addr().String()))
	return nil
}

// Close stops the listener and drops all registrations.
func (h *Host) Close(ctx context.Context) error {
	h.mu.Lock()
	srv := h.srv
	h.srv = nil
	h.ln = nil
	h.bridges = make(map[string]*Bridge)
	h.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Register adds a bridge and returns the bearer token that routes to it.
func (h *Host) Register(b *Bridge) string {
	token := uuid.NewString()
	h.mu.Lock()
	h.bridges[token] = b
	h.mu.Unlock()
	return token
}

// Unregister removes a token. Safe to call with tokens already gone.
func (h *Host) Unregister(token string) {
	h.mu.Lock()
	delete(h.bridges, token)
	h.mu.Unlock()
}

// BaseURL reports the loopback endpoint, valid after Start.
func (h *Host) BaseURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ln == nil {
		return ""
	}
	return "http://" + h.ln.Addr().String() + mcpPath
}

// MCPConfig renders the agent CLI's --mcp-config document pointing at
// this host with the given session token.
func (h *Host) MCPConfig(token string) (string, error) {
	url := h.BaseURL()
	if url == "" {
		return "", fmt.Errorf("bridge host is not started")
	}
	cfg := map[string]any{
		"mcpServers": map[string]any{
			ServerName: map[string]any{
				"type": "http",
				"url":  url,
				"headers": map[string]string{
					"Authorization": "Bearer " + token,
				},
			},
		},
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode mcp config: %w", err)
	}
	return string(raw), nil
}

func (h *Host) lookup(token string) *Bridge {
	if token == "" {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bridges[token]
}

// serverFor resolves the MCP server for a request. The authenticate
// wrapper has already vetted the token; a nil return here covers the
// window where a session unregistered mid-request.
func (h *Host) serverFor(r *http.Request) *mcpsdk.Server {
	b := h.lookup(bearerToken(r))
	if b == nil {
		return nil
	}
	return b.Server()
}

func (h *Host) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if h.lookup(token) == nil {
			h.logger.Warn("Rejected bridge request with unknown token",
				slog.String("remote", r.RemoteAddr))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, prefix))
}
