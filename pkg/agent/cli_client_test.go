package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// writeAgentScript installs an executable shell script standing in for
// the agent binary. Scripts must consume stdin before exiting so the
// prompt write never blocks.
func writeAgentScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-agent")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func newTestCLIClient(t *testing.T, binary, authToken string, maxLineBytes int) *CLIClient {
	t.Helper()
	cfg := &config.AgentConfig{Binary: binary, MaxLineBytes: maxLineBytes}
	return NewCLIClient(cfg, authToken, testLogger())
}

func collectEvents(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var out []Event
	deadline := time.After(30 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-deadline:
			t.Fatal("timed out draining agent events")
		}
	}
}

func TestCLIClientHappyPath(t *testing.T) {
	script := writeAgentScript(t, `cat >/dev/null
cat <<'EOF'
{"type":"system","subtype":"init","session_id":"agent-1","model":"model-x"}
{"type":"assistant","message":{"content":[{"type":"text","text":"hello"},{"type":"tool_use","id":"tu_1","name":"task_status","input":{}}]}}
{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_1","content":"3 tasks open"}]}}
{"type":"result","subtype":"success","is_error":false,"duration_ms":42,"usage":{"input_tokens":11,"output_tokens":7}}
EOF
`)
	client := newTestCLIClient(t, script, "", 0)

	ch, err := client.Run(context.Background(), Invocation{SessionID: "s1", Kind: "coding", Prompt: "go"})
	require.NoError(t, err)
	events := collectEvents(t, ch)
	require.Len(t, events, 5)

	start := events[0].(StartEvent)
	assert.Equal(t, "agent-1", start.AgentSessionID)

	assert.Equal(t, "hello", events[1].(TextEvent).Text)
	assert.Equal(t, "task_status", events[2].(ToolUseEvent).Name)

	res := events[3].(ToolResultEvent)
	assert.Equal(t, "task_status", res.Name)
	assert.Equal(t, "3 tasks open", res.Content)

	end := events[4].(EndEvent)
	assert.Equal(t, EndCompleted, end.Status)
	assert.Equal(t, 42*time.Millisecond, end.Duration)
	assert.Equal(t, int64(11), end.Tokens.Input)
	assert.Equal(t, int64(7), end.Tokens.Output)
}

func TestCLIClientPromptAndTokenForwarding(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "capture")
	script := writeAgentScript(t, `cat > "$CAPTURE_DIR/stdin.txt"
printf '%s' "$AGENT_AUTH_TOKEN" > "$CAPTURE_DIR/token.txt"
cat <<'EOF'
{"type":"result","subtype":"success","is_error":false,"duration_ms":1}
EOF
`)
	require.NoError(t, os.MkdirAll(capture, 0o755))
	client := newTestCLIClient(t, script, "bridge-token-123", 0)

	ch, err := client.Run(context.Background(), Invocation{
		Prompt: "the session prompt",
		Env:    []string{"CAPTURE_DIR=" + capture},
	})
	require.NoError(t, err)
	events := collectEvents(t, ch)
	require.NotEmpty(t, events)
	assert.Equal(t, EndCompleted, events[len(events)-1].(EndEvent).Status)

	stdin, err := os.ReadFile(filepath.Join(capture, "stdin.txt"))
	require.NoError(t, err)
	assert.Equal(t, "the session prompt", string(stdin))

	token, err := os.ReadFile(filepath.Join(capture, "token.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bridge-token-123", string(token))
}

func TestCLIClientOverlongLineRecovery(t *testing.T) {
	script := writeAgentScript(t, `cat >/dev/null
printf '%s\n' '{"type":"system","subtype":"init","session_id":"a","model":"m"}'
head -c 5000 /dev/zero | tr '\0' 'x'
printf '\n'
printf '%s\n' '{"type":"assistant","message":{"content":[{"type":"text","text":"still here"}]}}'
printf '%s\n' '{"type":"result","subtype":"success","is_error":false,"duration_ms":5}'
`)
	client := newTestCLIClient(t, script, "", 1024)

	ch, err := client.Run(context.Background(), Invocation{Prompt: "p"})
	require.NoError(t, err)
	events := collectEvents(t, ch)
	require.Len(t, events, 4)

	_, ok := events[0].(StartEvent)
	require.True(t, ok)

	transport := events[1].(ErrorEvent)
	assert.Equal(t, services.KindAgentTransport, transport.Kind)
	assert.Contains(t, transport.Message, "exceeded 1024 bytes")

	assert.Equal(t, "still here", events[2].(TextEvent).Text)
	assert.Equal(t, EndCompleted, events[3].(EndEvent).Status)
}

func TestCLIClientProcessFailure(t *testing.T) {
	script := writeAgentScript(t, `cat >/dev/null
echo "credential store locked" >&2
exit 3
`)
	client := newTestCLIClient(t, script, "", 0)

	ch, err := client.Run(context.Background(), Invocation{Prompt: "p"})
	require.NoError(t, err)
	events := collectEvents(t, ch)
	require.Len(t, events, 2)

	errEv := events[0].(ErrorEvent)
	assert.Equal(t, services.KindAgentTransport, errEv.Kind)
	assert.Contains(t, errEv.Message, "exit status 3")
	assert.Contains(t, errEv.Message, "credential store locked")

	assert.Equal(t, EndFailed, events[1].(EndEvent).Status)
}

func TestCLIClientMissingResultLine(t *testing.T) {
	script := writeAgentScript(t, `cat >/dev/null
printf '%s\n' '{"type":"assistant","message":{"content":[{"type":"text","text":"partial"}],"usage":{"input_tokens":9,"output_tokens":4}}}'
`)
	client := newTestCLIClient(t, script, "", 0)

	ch, err := client.Run(context.Background(), Invocation{Prompt: "p"})
	require.NoError(t, err)
	events := collectEvents(t, ch)
	require.Len(t, events, 3)

	errEv := events[1].(ErrorEvent)
	assert.Contains(t, errEv.Message, "without a result line")

	end := events[2].(EndEvent)
	assert.Equal(t, EndFailed, end.Status)
	assert.Equal(t, int64(9), end.Tokens.Input, "tokens fall back to the accumulated assistant usage")
}

func TestCLIClientCancellationKillsProcessGroup(t *testing.T) {
	script := writeAgentScript(t, `cat >/dev/null
printf '%s\n' '{"type":"system","subtype":"init","session_id":"a","model":"m"}'
sleep 30
`)
	client := newTestCLIClient(t, script, "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := client.Run(ctx, Invocation{Prompt: "p"})
	require.NoError(t, err)

	first := <-ch
	_, ok := first.(StartEvent)
	require.True(t, ok)

	begun := time.Now()
	cancel()
	events := collectEvents(t, ch)

	require.NotEmpty(t, events)
	end, ok := events[len(events)-1].(EndEvent)
	require.True(t, ok)
	assert.Equal(t, EndCancelled, end.Status)
	assert.Less(t, time.Since(begun), 10*time.Second, "cancellation must not wait out the sleep")
}

func TestCLIClientBinaryNotFound(t *testing.T) {
	client := newTestCLIClient(t, "/nonexistent/agent-binary", "", 0)

	_, err := client.Run(context.Background(), Invocation{Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, services.KindAgentTransport, services.KindOf(err))
}

func TestCLIClientBuildArgs(t *testing.T) {
	cfg := &config.AgentConfig{Binary: "agent", MaxLineBytes: 1 << 20, ExtraArgs: []string{"--beta"}}
	client := NewCLIClient(cfg, "", testLogger())

	args := client.buildArgs(Invocation{
		Model:        "model-y",
		MCPConfig:    `{"mcpServers":{}}`,
		AllowedTools: []string{"mcp__task-manager__exec", "mcp__task-manager__get_next_task"},
		MaxTurns:     80,
	})

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-p --verbose --output-format stream-json")
	assert.Contains(t, joined, "--dangerously-skip-permissions")
	assert.Contains(t, joined, "--model model-y")
	assert.Contains(t, joined, `--mcp-config {"mcpServers":{}}`)
	assert.Contains(t, joined, "--allowedTools mcp__task-manager__exec,mcp__task-manager__get_next_task")
	assert.Contains(t, joined, "--max-turns 80")
	assert.Equal(t, "--beta", args[len(args)-1])
}

func TestCLIClientDefaultsMaxLineBytes(t *testing.T) {
	cfg := &config.AgentConfig{Binary: "agent"}
	client := NewCLIClient(cfg, "", testLogger())
	assert.Equal(t, config.DefaultAgentConfig().MaxLineBytes, client.maxLineBytes)
}
