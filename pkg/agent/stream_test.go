package agent

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDecoder(t *testing.T) *streamDecoder {
	t.Helper()
	d := newStreamDecoder(testLogger())
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	calls := 0
	d.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return d
}

func TestStreamDecoderInit(t *testing.T) {
	d := newTestDecoder(t)

	events := d.decode([]byte(`{"type":"system","subtype":"init","session_id":"agent-abc","model":"sonnet-x"}`))
	require.Len(t, events, 1)

	start, ok := events[0].(StartEvent)
	require.True(t, ok)
	assert.Equal(t, "agent-abc", start.AgentSessionID)
	assert.Equal(t, "sonnet-x", start.Model)
}

func TestStreamDecoderAssistantBlocks(t *testing.T) {
	d := newTestDecoder(t)

	line := `{"type":"assistant","message":{"content":[` +
		`{"type":"text","text":"working on it"},` +
		`{"type":"tool_use","id":"tu_1","name":"get_next_task","input":{"verbose": true}}` +
		`],"usage":{"input_tokens":100,"output_tokens":20}}}`
	events := d.decode([]byte(line))
	require.Len(t, events, 2)

	text, ok := events[0].(TextEvent)
	require.True(t, ok)
	assert.Equal(t, "working on it", text.Text)

	use, ok := events[1].(ToolUseEvent)
	require.True(t, ok)
	assert.Equal(t, "tu_1", use.ID)
	assert.Equal(t, "get_next_task", use.Name)
	assert.JSONEq(t, `{"verbose":true}`, use.Input)

	assert.Equal(t, models.TokenUsage{Input: 100, Output: 20}, d.accumulatedTokens())
}

func TestStreamDecoderToolResultResolution(t *testing.T) {
	d := newTestDecoder(t)

	d.decode([]byte(`{"type":"assistant","message":{"content":[{"type":"tool_use","id":"tu_9","name":"exec","input":{"command":"ls"}}]}}`))
	events := d.decode([]byte(`{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_9","content":"file.txt","is_error":false}]}}`))
	require.Len(t, events, 1)

	res, ok := events[0].(ToolResultEvent)
	require.True(t, ok)
	assert.Equal(t, "tu_9", res.ToolUseID)
	assert.Equal(t, "exec", res.Name)
	assert.Equal(t, "file.txt", res.Content)
	assert.False(t, res.IsError)
	assert.Equal(t, time.Second, res.Duration)

	// A second result for the same id no longer resolves.
	events = d.decode([]byte(`{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_9","content":"again"}]}}`))
	require.Len(t, events, 1)
	assert.Empty(t, events[0].(ToolResultEvent).Name)
}

func TestStreamDecoderToolResultBlockList(t *testing.T) {
	d := newTestDecoder(t)

	line := `{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"tu_2","is_error":true,` +
		`"content":[{"type":"text","text":"line one"},{"type":"text","text":"line two"}]}]}}`
	events := d.decode([]byte(line))
	require.Len(t, events, 1)

	res := events[0].(ToolResultEvent)
	assert.Equal(t, "line one\nline two", res.Content)
	assert.True(t, res.IsError)
}

func TestStreamDecoderCompactionAndNotice(t *testing.T) {
	d := newTestDecoder(t)

	events := d.decode([]byte(`{"type":"system","subtype":"compact_boundary"}`))
	require.Len(t, events, 1)
	_, ok := events[0].(CompactionEvent)
	assert.True(t, ok)

	events = d.decode([]byte(`{"type":"system","subtype":"hook_ran"}`))
	require.Len(t, events, 1)
	notice, ok := events[0].(NoticeEvent)
	require.True(t, ok)
	assert.Equal(t, "hook_ran", notice.Subtype)
}

func TestStreamDecoderResultHeldForTerminal(t *testing.T) {
	d := newTestDecoder(t)

	events := d.decode([]byte(`{"type":"result","subtype":"success","is_error":false,"duration_ms":1500,` +
		`"usage":{"input_tokens":10,"output_tokens":5,"cache_creation_input_tokens":3,"cache_read_input_tokens":2}}`))
	assert.Empty(t, events)

	end := d.result()
	require.NotNil(t, end)
	assert.Equal(t, EndCompleted, end.Status)
	assert.Equal(t, 1500*time.Millisecond, end.Duration)
	assert.Equal(t, models.TokenUsage{Input: 10, Output: 5, CacheCreation: 3, CacheRead: 2}, end.Tokens)
}

func TestStreamDecoderErrorResult(t *testing.T) {
	d := newTestDecoder(t)

	d.decode([]byte(`{"type":"result","subtype":"error_max_turns","is_error":true,"duration_ms":900}`))
	end := d.result()
	require.NotNil(t, end)
	assert.Equal(t, EndFailed, end.Status)
}

func TestStreamDecoderSkipsGarbage(t *testing.T) {
	d := newTestDecoder(t)

	assert.Empty(t, d.decode([]byte(`not json at all`)))
	assert.Empty(t, d.decode([]byte(`{"type":"mystery"}`)))
	assert.Nil(t, d.result())
}

func TestReadBoundedLine(t *testing.T) {
	input := "short\n" + strings.Repeat("x", 5000) + "\nafter\nunterminated"
	r := bufio.NewReaderSize(strings.NewReader(input), 64)

	line, overflow, err := readBoundedLine(r, 1024)
	require.NoError(t, err)
	assert.False(t, overflow)
	assert.Equal(t, "short", string(line))

	_, overflow, err = readBoundedLine(r, 1024)
	require.NoError(t, err)
	assert.True(t, overflow, "5000 byte line must overflow a 1024 byte cap")

	line, overflow, err = readBoundedLine(r, 1024)
	require.NoError(t, err)
	assert.False(t, overflow, "decoding must resume after the overlong line")
	assert.Equal(t, "after", string(line))

	line, overflow, err = readBoundedLine(r, 1024)
	require.NoError(t, err)
	assert.False(t, overflow)
	assert.Equal(t, "unterminated", string(line))

	_, _, err = readBoundedLine(r, 1024)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadBoundedLineCRLF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("hello\r\n"))
	line, overflow, err := readBoundedLine(r, 1024)
	require.NoError(t, err)
	assert.False(t, overflow)
	assert.Equal(t, "hello", string(line))
}
