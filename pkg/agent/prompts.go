package agent

import (
	"fmt"
	"strings"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// Prompt versions recorded on the session row. Bump the suffix whenever
// the wording changes enough to matter for cross-session comparisons.
const (
	PromptInitializerV1 = "initializer.v1"
	PromptCodingV1      = "coding.v1"
	PromptReviewV1      = "review.v1"
)

// PromptInput carries the per-session values substituted into the
// templates. Unused fields are ignored by kinds that do not need them.
type PromptInput struct {
	ProjectName   string
	SessionNumber int

	// SpecText is the concatenated application specification, consumed by
	// the initializer template.
	SpecText string

	// Progress is a short pre-rendered roadmap summary for coding
	// sessions (epic/task/test counts and the current position).
	Progress string

	// SessionLog is the raw session log fed to review sessions.
	SessionLog string

	SandboxKind models.SandboxKind
}

// basePrompt is the shared system preamble for every session kind.
const basePrompt = `You are an autonomous software engineer working on the project %q inside its workspace directory. All durable project state lives in the task-manager tools; your conversation memory does not survive between sessions, so anything worth keeping must go through a tool call or into a file.

Ground rules:
- Work in small, verifiable steps and keep the working tree in a runnable state.
- Never fabricate tool output or test results; report what actually happened.
- When a command fails, read the error before retrying.
- Call log_session with a concise handoff summary before you stop, so the next session can resume without re-discovering your context.`

// initializerTemplate drives session 0. %s = the application spec text.
const initializerTemplate = `This is the project's first session. Your job is to turn the application spec below into a roadmap and a runnable project skeleton. Do not start implementing features yet.

1. Read the spec carefully.
2. Create the roadmap with the task-manager tools: create_epic for each milestone in delivery order, then create_task for the concrete steps inside each epic (expand_epic can create a batch of tasks with their tests in one call). Give every task at least one create_test acceptance check phrased so a later session can verify it in the running application.
3. Scaffold the project: directory layout, dependency manifest, a minimal app that starts cleanly, and a README with the run instructions.
4. Verify the skeleton actually starts before you finish.

Application spec (everything between the markers):
--- SPEC START ---
%s
--- SPEC END ---

Finish with log_session describing the roadmap shape and anything the first coding session must know.`

// codingTemplate drives every ordinary session. %s = rendered progress block.
const codingTemplate = `Continue building the project, one roadmap task at a time.

Session loop:
1. Call task_status for the big picture, then get_next_task.
2. Call start_task before touching code, and keep your changes scoped to that task.
3. Implement, then verify the behavior in the running application; for anything user-visible, confirm it through the browser tools before trusting it.
4. Record each acceptance check with update_test_result (passed only after you actually verified it), then update_task_status with done=true.
5. Repeat while time remains. If you are asked to wrap up, or the roadmap is complete, stop after the current task.

Current progress:
%s

Finish with log_session summarizing what you completed, what is in flight, and any traps for the next session.`

// reviewTemplate drives deep-review sessions. %d = session number under
// review, %s = raw session log.
const reviewTemplate = `You are reviewing the transcript of coding session %d below. Judge the work, not the prose.

Produce exactly these sections:
## Summary
## What went well
## Problems
## Recommendations for the next session

Then end with a single line of the form:
Rating: N/10

where N is an integer from 1 (session actively damaged the project) to 10 (flawless, verified work). Weigh unverified claims of success and repeated tool failures heavily.

Session log:
%s`

// containerAddendum is appended when the project sandbox is a container.
const containerAddendum = `Sandbox note: this project runs inside a managed container. Run every shell command through the exec tool (it executes inside the sandbox at /workspace); do not assume host binaries, and bind any server you start to 0.0.0.0 so it is reachable for verification.`

// RenderPrompt composes the full prompt for a session kind and reports
// the template version to record on the session row.
func RenderPrompt(kind string, in PromptInput) (prompt string, version string, err error) {
	var body string
	switch kind {
	case models.SessionKindInitializer:
		body = fmt.Sprintf(initializerTemplate, strings.TrimSpace(in.SpecText))
		version = PromptInitializerV1
	case models.SessionKindCoding:
		progress := strings.TrimSpace(in.Progress)
		if progress == "" {
			progress = "(no progress summary available)"
		}
		body = fmt.Sprintf(codingTemplate, progress)
		version = PromptCodingV1
	case models.SessionKindReview:
		body = fmt.Sprintf(reviewTemplate, in.SessionNumber, in.SessionLog)
		version = PromptReviewV1
	default:
		return "", "", services.NewPreconditionError("unknown session kind %q", kind)
	}

	sections := []string{fmt.Sprintf(basePrompt, in.ProjectName), body}
	if in.SandboxKind == models.SandboxContainer && kind != models.SessionKindReview {
		sections = append(sections, containerAddendum)
	}
	return strings.Join(sections, "\n\n"), version, nil
}

// PromptVersionFor reports the current template version for a kind
// without rendering, used when recording a session before the prompt is
// built.
func PromptVersionFor(kind string) string {
	switch kind {
	case models.SessionKindInitializer:
		return PromptInitializerV1
	case models.SessionKindCoding:
		return PromptCodingV1
	case models.SessionKindReview:
		return PromptReviewV1
	default:
		return ""
	}
}
