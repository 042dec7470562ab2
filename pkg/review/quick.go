package review

import (
	"fmt"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/sessionlog"
)

// Error-rate buckets, as fractions of tool calls. At most one bucket
// deduction applies; crossing errorRateCritical is a critical issue, the
// lower buckets are warnings.
const (
	errorRateWarn     = 0.02
	errorRateElevated = 0.05
	errorRateCritical = 0.10
)

// Deductions from the starting rating of 10.
const (
	deductNoBrowser      = 4
	deductUnverifiedPass = 1
)

// Verdict is the quick analyzer's output for one session log. Evaluating
// the same records twice yields identical verdicts, issue order included.
type Verdict struct {
	Rating   int
	Critical []models.Issue
	Warnings []models.Issue
	Metrics  Metrics
}

// Evaluate derives metrics and applies the fixed deduction table. Ratings
// are clamped to [1,10]. Only coding sessions are expected to verify in a
// browser; the initializer builds the roadmap and scaffolding instead.
func Evaluate(records []sessionlog.Record, sessionKind string) Verdict {
	m := DeriveMetrics(records)
	v := Verdict{Rating: 10, Metrics: m}

	if sessionKind == models.SessionKindCoding && m.BrowserCalls == 0 {
		v.Rating -= deductNoBrowser
		v.Critical = append(v.Critical, models.Issue{
			Tag:     models.IssueNoBrowserVerification,
			Message: "no browser verification in a coding session",
		})
	}

	switch {
	case m.ErrorRate > errorRateCritical:
		v.Rating -= 3
		v.Critical = append(v.Critical, models.Issue{
			Tag:     models.IssueHighErrorRate,
			Message: errorRateMessage(m),
		})
	case m.ErrorRate > errorRateElevated:
		v.Rating -= 2
		v.Warnings = append(v.Warnings, models.Issue{
			Tag:     models.IssueElevatedErrorRate,
			Message: errorRateMessage(m),
		})
	case m.ErrorRate >= errorRateWarn:
		v.Rating -= 1
		v.Warnings = append(v.Warnings, models.Issue{
			Tag:     models.IssueElevatedErrorRate,
			Message: errorRateMessage(m),
		})
	}

	if m.UnverifiedTestPasses > 0 {
		v.Rating -= deductUnverifiedPass
		v.Warnings = append(v.Warnings, models.Issue{
			Tag: models.IssueUnverifiedTestPass,
			Message: fmt.Sprintf("%d test pass(es) recorded without a browser check in the preceding %d events",
				m.UnverifiedTestPasses, verificationWindow),
		})
	}

	if v.Rating < 1 {
		v.Rating = 1
	}
	return v
}

func errorRateMessage(m Metrics) string {
	return fmt.Sprintf("%.1f%% of tool calls failed (%d of %d)", m.ErrorRate*100, m.Errors, m.ToolUses)
}
