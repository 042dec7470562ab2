// Package review computes quality checks for finalized sessions: a
// deterministic quick pass derived from the session log after every
// session, and a conditional deep pass that re-invokes the agent on a
// bounded background pool.
package review

import (
	"encoding/json"
	"strings"

	"github.com/ratchet-works/ratchet/pkg/sessionlog"
)

// verificationWindow is how many preceding log records may carry the
// browser evidence for a recorded test pass.
const verificationWindow = 10

// Metrics are the counters derived from one session's structured log.
// The same log always yields the same Metrics.
type Metrics struct {
	ToolUses             int
	Errors               int
	ErrorRate            float64
	BrowserCalls         int
	ScreenshotCalls      int
	VerifiedTestPasses   int
	UnverifiedTestPasses int
	DurationSeconds      float64
	PerTool              map[string]int
}

// DeriveMetrics replays the structured records into quality counters.
func DeriveMetrics(records []sessionlog.Record) Metrics {
	m := Metrics{PerTool: make(map[string]int)}
	for i, rec := range records {
		switch rec.Event {
		case sessionlog.EventToolUse:
			m.ToolUses++
			m.PerTool[rec.ToolName]++
			if sessionlog.IsBrowserTool(rec.ToolName) {
				m.BrowserCalls++
			}
			if sessionlog.IsScreenshotTool(rec.ToolName) {
				m.ScreenshotCalls++
			}
			if isTestPass(rec) {
				if browserEvidence(records, i) {
					m.VerifiedTestPasses++
				} else {
					m.UnverifiedTestPasses++
				}
			}
		case sessionlog.EventToolResult:
			if rec.IsError {
				m.Errors++
			}
		case sessionlog.EventError:
			m.Errors++
		case sessionlog.EventSessionEnd:
			if rec.DurationSeconds > 0 {
				m.DurationSeconds = rec.DurationSeconds
			}
		}
	}
	if m.ToolUses > 0 {
		m.ErrorRate = float64(m.Errors) / float64(m.ToolUses)
	}
	if m.DurationSeconds == 0 && len(records) > 1 {
		// No footer: the session crashed. The timestamp spread still bounds it.
		m.DurationSeconds = records[len(records)-1].TS.Sub(records[0].TS).Seconds()
	}
	return m
}

// isTestPass reports whether a tool_use record marks an acceptance test as
// passing. The recorded input is the redacted tool argument JSON; a
// truncated or unparseable input counts as no pass.
func isTestPass(rec sessionlog.Record) bool {
	if !strings.HasSuffix(rec.ToolName, "update_test_result") {
		return false
	}
	var input struct {
		Outcome string `json:"outcome"`
	}
	if err := json.Unmarshal([]byte(rec.Content), &input); err != nil {
		return false
	}
	return input.Outcome == "pass"
}

// browserEvidence reports whether any of the preceding verificationWindow
// records is a browser-automation call.
func browserEvidence(records []sessionlog.Record, idx int) bool {
	lo := idx - verificationWindow
	if lo < 0 {
		lo = 0
	}
	for j := idx - 1; j >= lo; j-- {
		if records[j].Event == sessionlog.EventToolUse && sessionlog.IsBrowserTool(records[j].ToolName) {
			return true
		}
	}
	return false
}
