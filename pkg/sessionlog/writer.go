package sessionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// maxContentBytes caps the content field of any single record. Longer
// payloads are cut at a rune boundary.
const maxContentBytes = 4096

// Writer appends a session's events to two artifacts in the workspace logs
// directory: a structured JSONL stream and a plain-text narrative. Appends
// reach the OS on every call; fsync happens only in Close, so a crash leaves
// a truncated but valid prefix of both files.
type Writer struct {
	mu     sync.Mutex
	jsonl  *os.File
	txt    *os.File
	closed bool

	sessionID string
	number    int
	kind      string
	start     time.Time

	toolUses          int
	errors            int
	consecutiveErrors int
	perTool           map[string]int
	browserCalls      int
	screenshotCalls   int
	wrapUp            bool
}

// Open creates (or continues) the JSONL and narrative artifacts for one
// session and writes the session_start header to both.
func Open(logsDir string, number int, kind, sessionID, model string) (*Writer, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	jsonl, err := os.OpenFile(filepath.Join(logsDir, JSONLName(number, kind)), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}
	txt, err := os.OpenFile(filepath.Join(logsDir, TextName(number, kind)), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		jsonl.Close()
		return nil, fmt.Errorf("failed to open session narrative: %w", err)
	}

	w := &Writer{
		jsonl:     jsonl,
		txt:       txt,
		sessionID: sessionID,
		number:    number,
		kind:      kind,
		start:     time.Now().UTC(),
		perTool:   make(map[string]int),
	}
	rec := Record{
		TS:        w.start,
		Event:     EventSessionStart,
		SessionID: sessionID,
		Kind:      kind,
		Model:     model,
	}
	header := fmt.Sprintf("=== session %03d (%s) model=%s started %s ===",
		number, kind, model, w.start.Format(time.RFC3339))
	if err := w.append(rec, header); err != nil {
		w.closeFiles()
		return nil, err
	}
	return w, nil
}

// AssistantText records a block of assistant output.
func (w *Writer) AssistantText(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	content := sanitize(text)
	rec := w.record(EventAssistantText)
	rec.Content = content
	return w.append(rec, fmt.Sprintf("[%s] assistant: %s", w.clock(), oneline(content)))
}

// ToolUse records a tool invocation and bumps the per-tool counters.
func (w *Writer) ToolUse(name, input string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.toolUses++
	w.perTool[name]++
	if IsBrowserTool(name) {
		w.browserCalls++
	}
	if IsScreenshotTool(name) {
		w.screenshotCalls++
	}
	content := sanitize(input)
	rec := w.record(EventToolUse)
	rec.ToolName = name
	rec.Content = content
	return w.append(rec, fmt.Sprintf("[%s] tool_use: %s %s", w.clock(), name, oneline(content)))
}

// ToolResult records a tool outcome. Failed results advance the error
// counters; successes reset the consecutive-error streak.
func (w *Writer) ToolResult(name, content string, isError bool, duration time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if isError {
		w.errors++
		w.consecutiveErrors++
	} else {
		w.consecutiveErrors = 0
	}
	outcome := "ok"
	if isError {
		outcome = "error"
	}
	body := sanitize(content)
	rec := w.record(EventToolResult)
	rec.ToolName = name
	rec.Content = body
	rec.IsError = isError
	rec.DurationMS = duration.Milliseconds()
	return w.append(rec, fmt.Sprintf("[%s] tool_result: %s %s in %s: %s",
		w.clock(), name, outcome, duration.Round(10*time.Millisecond), oneline(body)))
}

// Error records a session-level failure such as a transport drop.
func (w *Writer) Error(kind, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errors++
	w.consecutiveErrors++
	content := sanitize(message)
	rec := w.record(EventError)
	rec.ErrorKind = kind
	rec.Content = content
	return w.append(rec, fmt.Sprintf("[%s] error(%s): %s", w.clock(), kind, oneline(content)))
}

// Notice records an informational event that is not assistant output.
func (w *Writer) Notice(subtype, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	body := sanitize(content)
	rec := w.record(EventSystemNotice)
	rec.Subtype = subtype
	rec.Content = body
	return w.append(rec, fmt.Sprintf("[%s] notice(%s): %s", w.clock(), subtype, oneline(body)))
}

// CompactionBoundary records a context-compaction point. Everything before
// it has been summarized away from the agent's context.
func (w *Writer) CompactionBoundary(content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	body := sanitize(content)
	rec := w.record(EventCompactionBoundary)
	rec.Subtype = SubtypeCompactBoundary
	rec.Content = body
	return w.append(rec, fmt.Sprintf("[%s] notice(%s): %s", w.clock(), SubtypeCompactBoundary, oneline(body)))
}

// MarkWrapUp flags that the agent asked to finish after the current task.
// The flag surfaces through Snapshot; the record keeps the request auditable.
func (w *Writer) MarkWrapUp(reason string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.wrapUp = true
	body := sanitize(reason)
	rec := w.record(EventSystemNotice)
	rec.Subtype = "wrap_up"
	rec.Content = body
	return w.append(rec, fmt.Sprintf("[%s] notice(wrap_up): %s", w.clock(), oneline(body)))
}

// Snapshot returns a copy of the running counters.
func (w *Writer) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	perTool := make(map[string]int, len(w.perTool))
	for k, v := range w.perTool {
		perTool[k] = v
	}
	return Snapshot{
		ToolUses:          w.toolUses,
		Errors:            w.errors,
		ConsecutiveErrors: w.consecutiveErrors,
		PerTool:           perTool,
		BrowserCalls:      w.browserCalls,
		ScreenshotCalls:   w.screenshotCalls,
		WrapUpRequested:   w.wrapUp,
	}
}

// Close writes the session_end footer, fsyncs both artifacts and closes
// them. Calling Close more than once is a no-op.
func (w *Writer) Close(status string, tokens models.TokenUsage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	elapsed := time.Since(w.start)
	rec := w.record(EventSessionEnd)
	rec.Status = status
	rec.DurationSeconds = elapsed.Seconds()
	rec.ToolUseCount = w.toolUses
	rec.ErrorCount = w.errors
	rec.Tokens = &tokens
	footer := fmt.Sprintf("=== session end: %s in %.1fs, %d tool uses, %d errors, tokens in=%d out=%d ===",
		status, elapsed.Seconds(), w.toolUses, w.errors, tokens.Input, tokens.Output)
	appendErr := w.append(rec, footer)

	var firstErr error
	for _, f := range []*os.File{w.jsonl, w.txt} {
		if err := f.Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if appendErr != nil {
		return appendErr
	}
	return firstErr
}

// record builds the common envelope. Caller must hold w.mu.
func (w *Writer) record(event string) Record {
	return Record{TS: time.Now().UTC(), Event: event, SessionID: w.sessionID}
}

// append writes one line to each artifact. Caller must hold w.mu.
func (w *Writer) append(rec Record, narrative string) error {
	if w.closed && rec.Event != EventSessionEnd {
		return fmt.Errorf("session log already closed")
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode log record: %w", err)
	}
	if _, err := w.jsonl.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append session log: %w", err)
	}
	if _, err := w.txt.WriteString(narrative + "\n"); err != nil {
		return fmt.Errorf("failed to append session narrative: %w", err)
	}
	return nil
}

func (w *Writer) clock() string {
	return time.Now().UTC().Format("15:04:05")
}

func (w *Writer) closeFiles() {
	w.jsonl.Close()
	w.txt.Close()
}

// sanitize masks credentials and caps the payload so one oversized tool
// result cannot bloat the artifacts. Redaction runs before the cut so a
// secret can never straddle it.
func sanitize(s string) string {
	s = guard.RedactSecrets(s)
	if len(s) <= maxContentBytes {
		return s
	}
	cut := maxContentBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// oneline flattens content for the narrative artifact.
func oneline(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
