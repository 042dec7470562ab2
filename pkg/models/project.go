package models

// Task and epic statuses. Epic status is derived from its tasks and is only
// written by the store's in-transaction recompute helper.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Test outcomes.
const (
	TestOutcomeUnknown = "unknown"
	TestOutcomePass    = "pass"
	TestOutcomeFail    = "fail"
)

// CreateProjectInput contains fields for creating a new project.
// Spec sources may be file paths, inline content, or both; they are
// concatenated into app_spec.txt in the workspace.
type CreateProjectInput struct {
	Name           string
	Workspace      string
	SpecPaths      []string
	SpecContent    string
	Policy         *SandboxPolicy
	PromptVersions map[string]string

	// Force re-creates the workspace spec file and replaces an existing
	// project row with the same name.
	Force bool
}

// Progress is the per-project roadmap completion snapshot, read from the
// v_progress view.
type Progress struct {
	TotalEpics     int     `json:"total_epics"`
	CompletedEpics int     `json:"completed_epics"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	TotalTests     int     `json:"total_tests"`
	PassedTests    int     `json:"passed_tests"`
	Percent        float64 `json:"percent"`
}

// Done reports whether every task in the roadmap is complete.
// An empty roadmap is not done: the initializer has not produced one yet.
func (p Progress) Done() bool {
	return p.TotalTasks > 0 && p.CompletedTasks == p.TotalTasks
}
