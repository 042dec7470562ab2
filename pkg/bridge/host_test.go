package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bearerTransport struct {
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func startHost(t *testing.T) *Host {
	t.Helper()
	h := NewHost(testLogger())
	require.NoError(t, h.Start())
	t.Cleanup(func() { _ = h.Close(context.Background()) })
	return h
}

func connectOverHTTP(t *testing.T, endpoint, token string) *mcpsdk.ClientSession {
	t.Helper()
	transport := &mcpsdk.StreamableClientTransport{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Transport: &bearerTransport{token: token}},
	}
	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "host-test", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), transport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestHostServesRegisteredBridge(t *testing.T) {
	f := newBridgeFixture(t)
	h := startHost(t)
	token := h.Register(f.bridge)
	defer h.Unregister(token)

	session := connectOverHTTP(t, h.BaseURL(), token)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 16)

	res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: "task_status"})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := res.Content[0].(*mcpsdk.TextContent).Text
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &body))
	assert.Equal(t, false, body["complete"])
}

func TestHostRejectsUnknownToken(t *testing.T) {
	f := newBridgeFixture(t)
	h := startHost(t)
	token := h.Register(f.bridge)
	defer h.Unregister(token)

	// No Authorization header at all.
	resp, err := http.Get(h.BaseURL())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Well-formed header, wrong token.
	req, err := http.NewRequest(http.MethodPost, h.BaseURL(), strings.NewReader("{}"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	req.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestHostUnregisterRevokesAccess(t *testing.T) {
	f := newBridgeFixture(t)
	h := startHost(t)
	token := h.Register(f.bridge)

	session := connectOverHTTP(t, h.BaseURL(), token)
	_, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	h.Unregister(token)

	_, err = session.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: "task_status"})
	assert.Error(t, err, "revoked tokens must not reach the bridge")
}

func TestHostMCPConfig(t *testing.T) {
	f := newBridgeFixture(t)
	h := startHost(t)
	token := h.Register(f.bridge)
	defer h.Unregister(token)

	rendered, err := h.MCPConfig(token)
	require.NoError(t, err)

	var cfg struct {
		Servers map[string]struct {
			Type    string            `json:"type"`
			URL     string            `json:"url"`
			Headers map[string]string `json:"headers"`
		} `json:"mcpServers"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &cfg))

	entry, ok := cfg.Servers[ServerName]
	require.True(t, ok, "config must be keyed by the server name")
	assert.Equal(t, "http", entry.Type)
	assert.Equal(t, h.BaseURL(), entry.URL)
	assert.Equal(t, "Bearer "+token, entry.Headers["Authorization"])
}

func TestHostStartIdempotent(t *testing.T) {
	h := startHost(t)
	url := h.BaseURL()
	require.NotEmpty(t, url)
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:"))
	assert.True(t, strings.HasSuffix(url, mcpPath))

	require.NoError(t, h.Start())
	assert.Equal(t, url, h.BaseURL())
}

func TestHostBaseURLBeforeStart(t *testing.T) {
	h := NewHost(testLogger())
	assert.Empty(t, h.BaseURL())
}
