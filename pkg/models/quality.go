package models

// Quality check kinds. At most one of each per session.
const (
	CheckTypeQuick = "quick"
	CheckTypeDeep  = "deep"
)

// Issue is one structured finding from the quality analyzer.
type Issue struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Issue tags emitted by the quick analyzer and the deep reviewer.
const (
	IssueNoBrowserVerification = "no_browser_verification"
	IssueHighErrorRate         = "high_error_rate"
	IssueElevatedErrorRate     = "elevated_error_rate"
	IssueUnverifiedTestPass    = "unverified_test_pass"
	IssueReviewError           = "review_error"
)

// AttachQualityCheckInput contains fields for attaching (or replacing) a
// quality check on a finalized session.
type AttachQualityCheckInput struct {
	SessionID            string  `json:"session_id"`
	CheckType            string  `json:"check_type"`
	Rating               int     `json:"rating"`
	ToolUses             int     `json:"tool_uses"`
	Errors               int     `json:"errors"`
	BrowserVerifications int     `json:"browser_verifications"`
	CriticalIssues       []Issue `json:"critical_issues,omitempty"`
	Warnings             []Issue `json:"warnings,omitempty"`
	ReviewText           string  `json:"review_text,omitempty"`
}

// QualityPoint is one entry of a project's quality trend, ordered by
// session number.
type QualityPoint struct {
	SessionID     string `json:"session_id"`
	SessionNumber int    `json:"session_number"`
	SessionKind   string `json:"session_kind"`
	CheckType     string `json:"check_type"`
	Rating        int    `json:"rating"`
}
