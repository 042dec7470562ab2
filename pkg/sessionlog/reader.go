package sessionlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// maxLineBytes bounds a single JSONL line during replay. Content is capped
// at write time, so well-formed lines stay far below this.
const maxLineBytes = 1 << 20

// ParseFile replays a structured session log. Malformed lines are skipped
// rather than failing the parse: a crashed session leaves a truncated final
// line, and the prefix before it is still meaningful.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.Event == "" {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session log: %w", err)
	}
	return records, nil
}

// Replay rebuilds the counter snapshot from persisted records, mirroring
// the bookkeeping the writer does live. Used by the quality analyzer after
// the session is gone.
func Replay(records []Record) Snapshot {
	snap := Snapshot{PerTool: make(map[string]int)}
	for _, rec := range records {
		switch rec.Event {
		case EventToolUse:
			snap.ToolUses++
			snap.PerTool[rec.ToolName]++
			if IsBrowserTool(rec.ToolName) {
				snap.BrowserCalls++
			}
			if IsScreenshotTool(rec.ToolName) {
				snap.ScreenshotCalls++
			}
		case EventToolResult:
			if rec.IsError {
				snap.Errors++
				snap.ConsecutiveErrors++
			} else {
				snap.ConsecutiveErrors = 0
			}
		case EventError:
			snap.Errors++
			snap.ConsecutiveErrors++
		case EventSystemNotice:
			if rec.Subtype == "wrap_up" {
				snap.WrapUpRequested = true
			}
		}
	}
	return snap
}
