package sessionlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_000_coding.jsonl")
	content := `{"ts":"2026-07-10T11:45:00Z","event":"session_start","session_id":"s1","kind":"coding"}
not json at all
{"ts":"2026-07-10T11:45:01Z","event":"tool_use","session_id":"s1","tool_name":"exec","content":"npm test"}
{"broken": "no event key"}

{"ts":"2026-07-10T11:45:02Z","event":"tool_result","session_id":"s1","tool_name":"exec","is_error":true,"content":"exit 1"}
{"ts":"2026-07-10T11:45:03Z","event":"session_e`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3, "garbage, keyless and truncated lines are skipped")
	assert.Equal(t, EventSessionStart, records[0].Event)
	assert.Equal(t, "exec", records[1].ToolName)
	assert.True(t, records[2].IsError)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.jsonl"))
	require.Error(t, err)
}

func TestReplay_RebuildsCounters(t *testing.T) {
	records := []Record{
		{Event: EventSessionStart, Kind: "coding"},
		{Event: EventToolUse, ToolName: "exec"},
		{Event: EventToolResult, ToolName: "exec", IsError: true},
		{Event: EventToolUse, ToolName: "exec"},
		{Event: EventToolResult, ToolName: "exec"},
		{Event: EventToolUse, ToolName: "playwright_click"},
		{Event: EventToolUse, ToolName: "browser_screenshot"},
		{Event: EventError, ErrorKind: "agent_transport"},
		{Event: EventSystemNotice, Subtype: "wrap_up"},
		{Event: EventSessionEnd, Status: "failed"},
	}

	snap := Replay(records)
	assert.Equal(t, 4, snap.ToolUses)
	assert.Equal(t, 2, snap.Errors)
	assert.Equal(t, 1, snap.ConsecutiveErrors, "success between failures resets the streak")
	assert.Equal(t, 2, snap.PerTool["exec"])
	assert.Equal(t, 2, snap.BrowserCalls, "playwright_* and browser_* both count")
	assert.Equal(t, 1, snap.ScreenshotCalls)
	assert.True(t, snap.WrapUpRequested)
}

func TestBrowserToolDetection(t *testing.T) {
	cases := []struct {
		name    string
		browser bool
	}{
		{"mcp__playwright__browser_navigate", true},
		{"playwright_click", true},
		{"browser_screenshot", true},
		{"exec", false},
		{"update_task_status", false},
		{"web_browser_fetch", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.browser, IsBrowserTool(tc.name), tc.name)
	}
	assert.True(t, IsScreenshotTool("browser_take_screenshot"))
	assert.False(t, IsScreenshotTool("exec"))
}
