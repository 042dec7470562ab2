package review

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/sessionlog"
)

var logStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func rec(i int, event, tool, content string, isError bool) sessionlog.Record {
	return sessionlog.Record{
		TS:       logStart.Add(time.Duration(i) * time.Second),
		Event:    event,
		ToolName: tool,
		Content:  content,
		IsError:  isError,
	}
}

// sessionRecords builds a log with the given number of tool calls and
// failed results. withBrowser prepends a browser navigation so the
// no-verification deduction stays out of the way.
func sessionRecords(toolUses, errs int, withBrowser bool) []sessionlog.Record {
	records := []sessionlog.Record{rec(0, sessionlog.EventSessionStart, "", "", false)}
	i := 1
	if withBrowser {
		records = append(records, rec(i, sessionlog.EventToolUse, "mcp__playwright__browser_navigate", `{"url":"http://localhost:3000"}`, false))
		i++
		toolUses--
	}
	for n := 0; n < toolUses; n++ {
		records = append(records, rec(i, sessionlog.EventToolUse, "mcp__task-manager__exec", `{"command":"npm test"}`, false))
		i++
	}
	for n := 0; n < errs; n++ {
		records = append(records, rec(i, sessionlog.EventToolResult, "mcp__task-manager__exec", "boom", true))
		i++
	}
	return records
}

func TestDeriveMetricsCounts(t *testing.T) {
	records := []sessionlog.Record{
		rec(0, sessionlog.EventSessionStart, "", "", false),
		rec(1, sessionlog.EventToolUse, "mcp__task-manager__exec", `{"command":"ls"}`, false),
		rec(2, sessionlog.EventToolResult, "mcp__task-manager__exec", "ok", false),
		rec(3, sessionlog.EventToolUse, "mcp__playwright__browser_navigate", `{"url":"/"}`, false),
		rec(4, sessionlog.EventToolUse, "mcp__playwright__browser_take_screenshot", `{}`, false),
		rec(5, sessionlog.EventToolUse, "mcp__task-manager__update_test_result", `{"test_id":"t1","outcome":"pass"}`, false),
		rec(6, sessionlog.EventToolResult, "mcp__task-manager__update_test_result", "fail", true),
		rec(7, sessionlog.EventError, "", "transport hiccup", false),
	}
	end := rec(8, sessionlog.EventSessionEnd, "", "", false)
	end.DurationSeconds = 42.5
	records = append(records, end)

	m := DeriveMetrics(records)
	assert.Equal(t, 4, m.ToolUses)
	assert.Equal(t, 2, m.Errors)
	assert.Equal(t, 2, m.BrowserCalls)
	assert.Equal(t, 1, m.ScreenshotCalls)
	assert.Equal(t, 1, m.VerifiedTestPasses)
	assert.Equal(t, 0, m.UnverifiedTestPasses)
	assert.InDelta(t, 0.5, m.ErrorRate, 1e-9)
	assert.Equal(t, 42.5, m.DurationSeconds)
	assert.Equal(t, 1, m.PerTool["mcp__task-manager__exec"])
}

func TestDeriveMetricsDurationFallback(t *testing.T) {
	records := []sessionlog.Record{
		rec(0, sessionlog.EventSessionStart, "", "", false),
		rec(30, sessionlog.EventToolUse, "mcp__task-manager__exec", `{}`, false),
	}
	m := DeriveMetrics(records)
	assert.Equal(t, 30.0, m.DurationSeconds, "crashed sessions fall back to the timestamp spread")
}

func TestEvaluateCleanCodingSession(t *testing.T) {
	v := Evaluate(sessionRecords(10, 0, true), models.SessionKindCoding)
	assert.Equal(t, 10, v.Rating)
	assert.Empty(t, v.Critical)
	assert.Empty(t, v.Warnings)
}

func TestEvaluateNoBrowserInCoding(t *testing.T) {
	v := Evaluate(sessionRecords(10, 0, false), models.SessionKindCoding)
	assert.Equal(t, 6, v.Rating)
	require.Len(t, v.Critical, 1)
	assert.Equal(t, models.IssueNoBrowserVerification, v.Critical[0].Tag)
}

func TestEvaluateInitializerExemptFromBrowser(t *testing.T) {
	v := Evaluate(sessionRecords(10, 0, false), models.SessionKindInitializer)
	assert.Equal(t, 10, v.Rating)
	assert.Empty(t, v.Critical)
}

func TestEvaluateErrorRateBuckets(t *testing.T) {
	tests := []struct {
		errors       int
		wantRating   int
		wantCritical int
		wantWarnings int
	}{
		{errors: 1, wantRating: 10},
		{errors: 2, wantRating: 9, wantWarnings: 1},
		{errors: 5, wantRating: 9, wantWarnings: 1},
		{errors: 6, wantRating: 8, wantWarnings: 1},
		{errors: 10, wantRating: 8, wantWarnings: 1},
		{errors: 11, wantRating: 7, wantCritical: 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_100", tt.errors), func(t *testing.T) {
			v := Evaluate(sessionRecords(100, tt.errors, true), models.SessionKindCoding)
			assert.Equal(t, tt.wantRating, v.Rating)
			assert.Len(t, v.Critical, tt.wantCritical)
			assert.Len(t, v.Warnings, tt.wantWarnings)
		})
	}
}

func TestEvaluateUnverifiedTestPass(t *testing.T) {
	// Browser call first, then enough noise that the pass lands outside
	// the verification window.
	records := sessionRecords(15, 0, true)
	records = append(records, rec(len(records), sessionlog.EventToolUse,
		"mcp__task-manager__update_test_result", `{"test_id":"t1","outcome":"pass"}`, false))

	v := Evaluate(records, models.SessionKindCoding)
	assert.Equal(t, 1, v.Metrics.UnverifiedTestPasses)
	assert.Equal(t, 9, v.Rating)
	require.Len(t, v.Warnings, 1)
	assert.Equal(t, models.IssueUnverifiedTestPass, v.Warnings[0].Tag)

	// The same pass right after the browser call is verified.
	verified := sessionRecords(2, 0, true)
	verified = append(verified, rec(len(verified), sessionlog.EventToolUse,
		"mcp__task-manager__update_test_result", `{"test_id":"t1","outcome":"pass"}`, false))
	v = Evaluate(verified, models.SessionKindCoding)
	assert.Equal(t, 1, v.Metrics.VerifiedTestPasses)
	assert.Equal(t, 10, v.Rating)
}

func TestEvaluateFailOutcomeIsNotAPass(t *testing.T) {
	records := sessionRecords(2, 0, false)
	records = append(records, rec(len(records), sessionlog.EventToolUse,
		"mcp__task-manager__update_test_result", `{"test_id":"t1","outcome":"fail"}`, false))
	v := Evaluate(records, models.SessionKindInitializer)
	assert.Zero(t, v.Metrics.VerifiedTestPasses)
	assert.Zero(t, v.Metrics.UnverifiedTestPasses)
}

func TestEvaluateWorstCase(t *testing.T) {
	records := sessionRecords(20, 5, false)
	records = append(records, rec(len(records), sessionlog.EventToolUse,
		"mcp__task-manager__update_test_result", `{"test_id":"t1","outcome":"pass"}`, false))

	v := Evaluate(records, models.SessionKindCoding)
	// 10 - 4 (no browser) - 3 (>10% errors) - 1 (unverified pass).
	assert.Equal(t, 2, v.Rating)
	assert.Len(t, v.Critical, 2)
	assert.Len(t, v.Warnings, 1)
	assert.GreaterOrEqual(t, v.Rating, 1)
}

func TestEvaluateDeterministic(t *testing.T) {
	records := sessionRecords(50, 4, false)
	records = append(records, rec(len(records), sessionlog.EventToolUse,
		"mcp__task-manager__update_test_result", `{"test_id":"t1","outcome":"pass"}`, false))

	first := Evaluate(records, models.SessionKindCoding)
	second := Evaluate(records, models.SessionKindCoding)
	require.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical logs must serialize to identical verdicts")
}
