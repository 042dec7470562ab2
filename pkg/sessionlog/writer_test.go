package sessionlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
)

func TestWriterRoundTrip(t *testing.T) {
	logsDir := LogsDir(t.TempDir())
	w, err := Open(logsDir, 3, models.SessionKindCoding, "sess-abc", "claude-sonnet-4-5-20250929")
	require.NoError(t, err)

	require.NoError(t, w.AssistantText("Starting on the login form."))
	require.NoError(t, w.ToolUse("exec", `{"command":"npm test"}`))
	require.NoError(t, w.ToolResult("exec", "12 passing", false, 2300*time.Millisecond))
	require.NoError(t, w.ToolUse("browser_navigate", `{"url":"http://localhost:3000"}`))
	require.NoError(t, w.ToolResult("browser_navigate", "timeout waiting for page", true, 5*time.Second))
	require.NoError(t, w.Error("agent_transport", "stream closed unexpectedly"))
	require.NoError(t, w.Notice("model", "switched to fallback model"))
	require.NoError(t, w.CompactionBoundary("context compacted at 92% capacity"))
	require.NoError(t, w.MarkWrapUp("user requested stop after current task"))

	snap := w.Snapshot()
	assert.Equal(t, 2, snap.ToolUses)
	assert.Equal(t, 2, snap.Errors)
	assert.Equal(t, 2, snap.ConsecutiveErrors)
	assert.Equal(t, 1, snap.PerTool["exec"])
	assert.Equal(t, 1, snap.PerTool["browser_navigate"])
	assert.Equal(t, 1, snap.BrowserCalls)
	assert.True(t, snap.WrapUpRequested)

	tokens := models.TokenUsage{Input: 1200, Output: 340, CacheRead: 9000}
	require.NoError(t, w.Close(models.SessionStatusCompleted, tokens))
	require.NoError(t, w.Close(models.SessionStatusCompleted, tokens), "second close is a no-op")

	records, err := ParseFile(filepath.Join(logsDir, JSONLName(3, models.SessionKindCoding)))
	require.NoError(t, err)
	require.Len(t, records, 11)

	assert.Equal(t, EventSessionStart, records[0].Event)
	assert.Equal(t, "sess-abc", records[0].SessionID)
	assert.Equal(t, models.SessionKindCoding, records[0].Kind)
	assert.Equal(t, "claude-sonnet-4-5-20250929", records[0].Model)
	assert.False(t, records[0].TS.IsZero())
	assert.Equal(t, time.UTC, records[0].TS.Location())

	assert.Equal(t, EventToolResult, records[3].Event)
	assert.Equal(t, "exec", records[3].ToolName)
	assert.False(t, records[3].IsError)
	assert.Equal(t, int64(2300), records[3].DurationMS)

	assert.Equal(t, EventCompactionBoundary, records[8].Event)
	assert.Equal(t, SubtypeCompactBoundary, records[8].Subtype)

	footer := records[10]
	assert.Equal(t, EventSessionEnd, footer.Event)
	assert.Equal(t, models.SessionStatusCompleted, footer.Status)
	assert.Equal(t, 2, footer.ToolUseCount)
	assert.Equal(t, 2, footer.ErrorCount)
	require.NotNil(t, footer.Tokens)
	assert.Equal(t, int64(1200), footer.Tokens.Input)
	assert.Equal(t, int64(9000), footer.Tokens.CacheRead)
	assert.Greater(t, footer.DurationSeconds, 0.0)

	narrative, err := os.ReadFile(filepath.Join(logsDir, TextName(3, models.SessionKindCoding)))
	require.NoError(t, err)
	text := string(narrative)
	assert.Contains(t, text, "=== session 003 (coding)")
	assert.Contains(t, text, "tool_use: exec")
	assert.Contains(t, text, "notice(wrap_up)")
	assert.Contains(t, text, "=== session end: completed")
}

func TestWriter_RedactsAndTruncatesContent(t *testing.T) {
	logsDir := LogsDir(t.TempDir())
	w, err := Open(logsDir, 0, models.SessionKindInitializer, "sess-init", "claude-opus-4-5-20251101")
	require.NoError(t, err)

	require.NoError(t, w.ToolUse("exec", `{"command":"psql postgres://app --password=hunter2secret"}`))
	require.NoError(t, w.ToolResult("exec", strings.Repeat("x", 3*maxContentBytes), false, time.Second))
	require.NoError(t, w.Close(models.SessionStatusCompleted, models.TokenUsage{}))

	records, err := ParseFile(filepath.Join(logsDir, JSONLName(0, models.SessionKindInitializer)))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.NotContains(t, records[1].Content, "hunter2secret")
	assert.Contains(t, records[1].Content, "__MASKED_PASSWORD__")
	assert.LessOrEqual(t, len(records[2].Content), maxContentBytes)

	narrative, err := os.ReadFile(filepath.Join(logsDir, TextName(0, models.SessionKindInitializer)))
	require.NoError(t, err)
	assert.NotContains(t, string(narrative), "hunter2secret")
}

func TestWriter_ConsecutiveErrorsResetOnSuccess(t *testing.T) {
	w, err := Open(LogsDir(t.TempDir()), 1, models.SessionKindCoding, "sess-1", "m")
	require.NoError(t, err)
	defer w.Close(models.SessionStatusFailed, models.TokenUsage{})

	require.NoError(t, w.ToolUse("exec", "a"))
	require.NoError(t, w.ToolResult("exec", "boom", true, 0))
	require.NoError(t, w.ToolUse("exec", "b"))
	require.NoError(t, w.ToolResult("exec", "boom again", true, 0))
	assert.Equal(t, 2, w.Snapshot().ConsecutiveErrors)

	require.NoError(t, w.ToolUse("exec", "c"))
	require.NoError(t, w.ToolResult("exec", "fine", false, 0))
	snap := w.Snapshot()
	assert.Equal(t, 0, snap.ConsecutiveErrors)
	assert.Equal(t, 2, snap.Errors)
	assert.Equal(t, 3, snap.PerTool["exec"])
}

func TestWriter_SnapshotIsACopy(t *testing.T) {
	w, err := Open(LogsDir(t.TempDir()), 2, models.SessionKindCoding, "sess-2", "m")
	require.NoError(t, err)
	defer w.Close(models.SessionStatusCompleted, models.TokenUsage{})

	require.NoError(t, w.ToolUse("get_next_task", "{}"))
	snap := w.Snapshot()
	snap.PerTool["get_next_task"] = 99

	assert.Equal(t, 1, w.Snapshot().PerTool["get_next_task"])
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, "session_003_coding.jsonl", JSONLName(3, models.SessionKindCoding))
	assert.Equal(t, "session_000_initializer.txt", TextName(0, models.SessionKindInitializer))
	assert.Equal(t, "session_012_review.md", ReviewName(12))
	assert.Equal(t, "session_1234_coding.jsonl", JSONLName(1234, models.SessionKindCoding))
	assert.Equal(t, filepath.Join("/work/p1", "logs"), LogsDir("/work/p1"))
}
