// Package orchestrator drives the per-project session loop: provision the
// sandbox, open the session, run the agent against it, persist the outcome,
// analyze quality, and decide whether to chain into the next session.
//
// One loop runs per project at a time; loops for different projects run
// concurrently. A registry of in-flight loops provides cooperative
// cancellation and stop-after-current control.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/bridge"
	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/events"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/review"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// Orchestrator owns the session loops. All dependencies are shared across
// projects; per-loop state lives in the run registry.
type Orchestrator struct {
	cfg       *config.Config
	projects  *services.ProjectService
	sessions  *services.SessionService
	roadmap   *services.RoadmapService
	sandboxes SandboxProvider
	host      *bridge.Host
	agent     agent.Client
	analyzer  *review.Analyzer
	publisher *events.EventPublisher
	logger    *slog.Logger

	mu   sync.Mutex
	runs map[string]*runHandle
}

// runHandle is the registry entry for one in-flight project loop.
type runHandle struct {
	cancel context.CancelFunc

	mu       sync.Mutex
	stopNext bool
}

func (h *runHandle) requestStop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopNext = true
}

func (h *runHandle) stopRequested() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopNext
}

// New creates the orchestrator. The analyzer may be nil (quality checks
// disabled) and the publisher may be nil (event streaming disabled).
func New(
	cfg *config.Config,
	projects *services.ProjectService,
	sessions *services.SessionService,
	roadmap *services.RoadmapService,
	sandboxes SandboxProvider,
	host *bridge.Host,
	agentClient agent.Client,
	analyzer *review.Analyzer,
	publisher *events.EventPublisher,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		projects:  projects,
		sessions:  sessions,
		roadmap:   roadmap,
		sandboxes: sandboxes,
		host:      host,
		agent:     agentClient,
		analyzer:  analyzer,
		publisher: publisher,
		logger:    logger.With("component", "orchestrator"),
		runs:      make(map[string]*runHandle),
	}
}

// register claims the project loop slot. A project has at most one loop in
// flight; a second RunProject on the same project is a caller error.
func (o *Orchestrator) register(projectID string, cancel context.CancelFunc) (*runHandle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, exists := o.runs[projectID]; exists {
		return nil, services.NewPreconditionError("project %s already has a session loop in flight", projectID)
	}
	h := &runHandle{cancel: cancel}
	o.runs[projectID] = h
	return h, nil
}

func (o *Orchestrator) unregister(projectID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.runs, projectID)
}

// Cancel aborts a project's loop, interrupting the in-flight session.
// Returns false when the project has no loop running.
func (o *Orchestrator) Cancel(projectID string) bool {
	o.mu.Lock()
	h, ok := o.runs[projectID]
	o.mu.Unlock()
	if !ok {
		return false
	}
	h.cancel()
	return true
}

// StopAfterCurrent lets the in-flight session finish normally and halts the
// loop before the next one starts. Returns false when the project has no
// loop running.
func (o *Orchestrator) StopAfterCurrent(projectID string) bool {
	o.mu.Lock()
	h, ok := o.runs[projectID]
	o.mu.Unlock()
	if !ok {
		return false
	}
	h.requestStop()
	return true
}

// Active returns the ids of projects with a loop in flight.
func (o *Orchestrator) Active() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]string, 0, len(o.runs))
	for id := range o.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RecoverStartup reconciles sessions left running by a previous process.
// Sandbox containers are left alone; surviving ones are adopted when their
// project runs again.
func (o *Orchestrator) RecoverStartup(ctx context.Context) error {
	reconciled, err := o.sessions.ReconcileStartup(ctx)
	if err != nil {
		return err
	}
	if reconciled > 0 {
		o.logger.Info("Startup recovery cancelled orphaned sessions", "count", reconciled)
	}
	return nil
}

// RunProject chains sessions for one project until a halt condition is met:
// roadmap complete, iteration budget exhausted, consecutive failures over
// the threshold, a wrap-up or stop request, cancellation, or the initializer
// finishing (session zero always halts for plan review).
//
// Storage outages never kill the loop; attempts back off exponentially and
// resume. Precondition and sandbox failures surface as errors.
func (o *Orchestrator) RunProject(ctx context.Context, projectID string, opts RunOptions) (*RunResult, error) {
	proj, err := o.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	handle, err := o.register(proj.ID, cancel)
	if err != nil {
		return nil, err
	}
	defer o.unregister(proj.ID)

	log := o.logger.With("project_id", proj.ID, "project", proj.Name)

	budget := opts.Iterations
	if budget == 0 {
		budget = o.cfg.Project.MaxIterations
	}

	result := &RunResult{}
	backoff := o.cfg.Orchestrator.StorageBackoffInitial
	consecutiveFailures := 0
	fresh := opts.FreshSandbox

	log.Info("Project loop starting", "iterations", budget, "fresh_sandbox", fresh)

	for {
		if ctx.Err() != nil {
			result.Halt = HaltCancelled
			break
		}
		if handle.stopRequested() {
			result.Halt = HaltStopRequested
			break
		}

		kind, err := o.nextKind(ctx, proj.ID)
		if err != nil {
			if !o.storageRetry(ctx, log, err, backoff) {
				result.Halt = HaltCancelled
				break
			}
			backoff = nextBackoff(backoff, o.cfg.Orchestrator.StorageBackoffCap)
			continue
		}

		var progress *models.Progress
		if kind == session.KindCoding {
			if budget > 0 && result.CodingRuns >= budget {
				result.Halt = HaltBudget
				break
			}
			progress, err = o.roadmap.Progress(ctx, proj.ID)
			if err != nil {
				if !o.storageRetry(ctx, log, err, backoff) {
					result.Halt = HaltCancelled
					break
				}
				backoff = nextBackoff(backoff, o.cfg.Orchestrator.StorageBackoffCap)
				continue
			}
			result.Progress = progress
			if progress.Done() {
				result.Halt = HaltRoadmapDone
				break
			}
		}

		if result.SessionsRun > 0 {
			// The pause between sessions is the window for stop requests.
			if !o.pause(ctx, o.cfg.Orchestrator.AutoContinueDelay) {
				result.Halt = HaltCancelled
				break
			}
			if handle.stopRequested() {
				result.Halt = HaltStopRequested
				break
			}
		}

		res, err := o.runSession(ctx, proj, kind, fresh, progress)
		if err != nil {
			if services.KindOf(err) == services.KindStorage {
				if !o.storageRetry(ctx, log, err, backoff) {
					result.Halt = HaltCancelled
					break
				}
				backoff = nextBackoff(backoff, o.cfg.Orchestrator.StorageBackoffCap)
				continue
			}
			return nil, err
		}
		backoff = o.cfg.Orchestrator.StorageBackoffInitial
		fresh = false
		result.SessionsRun++
		result.LastSession = res.session
		if kind == session.KindCoding {
			result.CodingRuns++
		}

		switch res.status {
		case session.StatusFailed:
			consecutiveFailures++
		case session.StatusCompleted:
			consecutiveFailures = 0
		}
		// Cancelled sessions leave the failure streak untouched.

		if kind == session.KindInitializer {
			result.Halt = HaltInitializer
			break
		}
		if ctx.Err() != nil {
			result.Halt = HaltCancelled
			break
		}
		if consecutiveFailures >= o.cfg.Orchestrator.FailureStopThreshold {
			log.Warn("Stopping after consecutive session failures", "count", consecutiveFailures)
			result.Halt = HaltFailures
			break
		}
		if res.wrapUp {
			result.Halt = HaltWrapUp
			break
		}
	}

	if progress, err := o.roadmap.Progress(context.Background(), proj.ID); err == nil {
		result.Progress = progress
	}
	log.Info("Project loop halted",
		"reason", result.Halt,
		"sessions_run", result.SessionsRun,
		"coding_runs", result.CodingRuns)
	return result, nil
}

// nextKind picks the session kind: the initializer runs exactly once, as
// session zero of a project that has never run before.
func (o *Orchestrator) nextKind(ctx context.Context, projectID string) (session.Kind, error) {
	existing, err := o.sessions.ListSessions(ctx, projectID)
	if err != nil {
		return "", err
	}
	if len(existing) == 0 {
		return session.KindInitializer, nil
	}
	return session.KindCoding, nil
}

// storageRetry logs a storage failure and sleeps out the backoff. Returns
// false when the loop was cancelled during the wait.
func (o *Orchestrator) storageRetry(ctx context.Context, log *slog.Logger, err error, backoff time.Duration) bool {
	log.Error("Storage failure in session loop, backing off", "backoff", backoff, "error", err)
	return o.pause(ctx, backoff)
}

// pause sleeps for d unless the context is cancelled first.
func (o *Orchestrator) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func nextBackoff(current, limit time.Duration) time.Duration {
	next := current * 2
	if next > limit {
		return limit
	}
	return next
}

// renderProgress builds the roadmap summary substituted into the coding
// prompt: overall counts plus the next pending task when one exists.
func (o *Orchestrator) renderProgress(ctx context.Context, projectID string, progress *models.Progress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Epics: %d/%d complete. Tasks: %d/%d complete. Tests: %d/%d passing.",
		progress.CompletedEpics, progress.TotalEpics,
		progress.CompletedTasks, progress.TotalTasks,
		progress.PassedTests, progress.TotalTests)
	next, err := o.roadmap.GetNextTask(ctx, projectID)
	if err != nil {
		o.logger.Warn("Failed to resolve next task for prompt", "project_id", projectID, "error", err)
		return b.String()
	}
	if next != nil {
		fmt.Fprintf(&b, "\nNext up: epic %d, task %d: %s (%s)",
			next.EpicOrdinal, next.TaskOrdinal, next.Title, next.Status)
	}
	return b.String()
}

// readSpecText loads the concatenated application spec that project
// creation materialized into the workspace.
func readSpecText(workspace string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(workspace, "app_spec.*"))
	if err != nil {
		return "", fmt.Errorf("failed to scan workspace for spec: %w", err)
	}
	if len(matches) == 0 {
		return "", services.NewPreconditionError("workspace %s has no app_spec file", workspace)
	}
	sort.Strings(matches)
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return "", fmt.Errorf("failed to read spec file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", services.NewPreconditionError("spec file %s is empty", matches[0])
	}
	return string(data), nil
}
