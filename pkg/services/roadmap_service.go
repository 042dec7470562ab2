package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/epic"
	"github.com/ratchet-works/ratchet/ent/task"
	"github.com/ratchet-works/ratchet/ent/tasktest"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// RoadmapService manages the epic/task/test hierarchy. Every mutation runs
// in a transaction that first takes the project row lock; the status
// cascade (test outcomes up to tasks, task statuses up to epics) is applied
// inside that same transaction so it is never observable half-done.
type RoadmapService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRoadmapService creates a new RoadmapService.
func NewRoadmapService(client *ent.Client, logger *slog.Logger) *RoadmapService {
	return &RoadmapService{client: client, logger: logger.With("service", "roadmap")}
}

// CreateEpic creates an epic under a project.
func (s *RoadmapService) CreateEpic(callerCtx context.Context, projectID string, input models.CreateEpicInput) (*ent.Epic, error) {
	if input.Title == "" {
		return nil, NewPreconditionError("epic title is required")
	}
	if input.Ordinal < 0 {
		return nil, NewPreconditionError("epic ordinal must not be negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}

	builder := tx.Epic.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetOrdinal(input.Ordinal).
		SetTitle(input.Title)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create epic: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit epic creation: %w", err)
	}
	return created, nil
}

// CreateTask creates a task under an epic. If the epic was already done,
// the new pending task reopens it.
func (s *RoadmapService) CreateTask(callerCtx context.Context, projectID string, input models.CreateTaskInput) (*ent.Task, error) {
	if input.Title == "" {
		return nil, NewPreconditionError("task title is required")
	}
	if input.Ordinal < 0 {
		return nil, NewPreconditionError("task ordinal must not be negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}
	if _, err := ownedEpic(ctx, tx.Epic, projectID, input.EpicID); err != nil {
		return nil, err
	}

	builder := tx.Task.Create().
		SetID(uuid.New().String()).
		SetEpicID(input.EpicID).
		SetOrdinal(input.Ordinal).
		SetTitle(input.Title)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if err := recomputeEpicStatus(ctx, tx, input.EpicID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task creation: %w", err)
	}
	return created, nil
}

// CreateTest creates an acceptance test under a task. A new test starts
// `unknown`, so a done parent task is demoted until the test passes.
func (s *RoadmapService) CreateTest(callerCtx context.Context, projectID string, input models.CreateTestInput) (*ent.TaskTest, error) {
	if input.Description == "" {
		return nil, NewPreconditionError("test description is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}
	parent, err := ownedTask(ctx, tx.Task, tx.Epic, projectID, input.TaskID)
	if err != nil {
		return nil, err
	}

	created, err := tx.TaskTest.Create().
		SetID(uuid.New().String()).
		SetTaskID(input.TaskID).
		SetDescription(input.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}
	if err := demoteTaskIfDone(ctx, tx, parent); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit test creation: %w", err)
	}
	return created, nil
}

// ExpandEpic bulk-creates tasks and their tests under an epic in one
// transaction. Used by the initializer to lay down the roadmap without a
// round trip per row.
func (s *RoadmapService) ExpandEpic(callerCtx context.Context, projectID, epicID string, specs []models.TaskExpansion) ([]*ent.Task, error) {
	if len(specs) == 0 {
		return nil, NewPreconditionError("expand_epic requires at least one task")
	}
	for _, spec := range specs {
		if spec.Title == "" {
			return nil, NewPreconditionError("every expanded task needs a title")
		}
		if spec.Ordinal < 0 {
			return nil, NewPreconditionError("task ordinal must not be negative")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}
	if _, err := ownedEpic(ctx, tx.Epic, projectID, epicID); err != nil {
		return nil, err
	}

	created := make([]*ent.Task, 0, len(specs))
	for _, spec := range specs {
		builder := tx.Task.Create().
			SetID(uuid.New().String()).
			SetEpicID(epicID).
			SetOrdinal(spec.Ordinal).
			SetTitle(spec.Title)
		if spec.Description != "" {
			builder.SetDescription(spec.Description)
		}
		t, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create expanded task: %w", err)
		}
		for _, desc := range spec.Tests {
			if desc == "" {
				return nil, NewPreconditionError("every expanded test needs a description")
			}
			if _, err := tx.TaskTest.Create().
				SetID(uuid.New().String()).
				SetTaskID(t.ID).
				SetDescription(desc).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to create expanded test: %w", err)
			}
		}
		created = append(created, t)
	}

	if err := recomputeEpicStatus(ctx, tx, epicID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit epic expansion: %w", err)
	}

	s.logger.Info("Epic expanded", "project_id", projectID, "epic_id", epicID, "tasks", len(created))
	return created, nil
}

// ListEpics returns a project's epics in ordinal order.
func (s *RoadmapService) ListEpics(ctx context.Context, projectID string) ([]*ent.Epic, error) {
	epics, err := s.client.Epic.Query().
		Where(epic.ProjectIDEQ(projectID)).
		Order(ent.Asc(epic.FieldOrdinal), ent.Asc(epic.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list epics: %w", err)
	}
	return epics, nil
}

// GetEpic retrieves an epic, enforcing project ownership.
func (s *RoadmapService) GetEpic(ctx context.Context, projectID, epicID string) (*ent.Epic, error) {
	return ownedEpic(ctx, s.client.Epic, projectID, epicID)
}

// ListTasks returns an epic's tasks in ordinal order.
func (s *RoadmapService) ListTasks(ctx context.Context, projectID, epicID string) ([]*ent.Task, error) {
	if _, err := ownedEpic(ctx, s.client.Epic, projectID, epicID); err != nil {
		return nil, err
	}
	tasks, err := s.client.Task.Query().
		Where(task.EpicIDEQ(epicID)).
		Order(ent.Asc(task.FieldOrdinal), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a task, enforcing project ownership.
func (s *RoadmapService) GetTask(ctx context.Context, projectID, taskID string) (*ent.Task, error) {
	return ownedTask(ctx, s.client.Task, s.client.Epic, projectID, taskID)
}

// ListTests returns a task's acceptance tests in creation order.
func (s *RoadmapService) ListTests(ctx context.Context, projectID, taskID string) ([]*ent.TaskTest, error) {
	if _, err := ownedTask(ctx, s.client.Task, s.client.Epic, projectID, taskID); err != nil {
		return nil, err
	}
	tests, err := s.client.TaskTest.Query().
		Where(tasktest.TaskIDEQ(taskID)).
		Order(ent.Asc(tasktest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

// GetNextTask returns the next actionable task for a project from the
// v_next_task view: lowest epic ordinal, then lowest task ordinal, skipping
// done tasks. Returns nil when the roadmap is complete or empty.
func (s *RoadmapService) GetNextTask(ctx context.Context, projectID string) (*models.NextTask, error) {
	rows, err := s.client.QueryContext(ctx,
		`SELECT task_id, epic_id, epic_ordinal, task_ordinal, title, status
		 FROM v_next_task WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query next task: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var next models.NextTask
	if err := rows.Scan(&next.TaskID, &next.EpicID, &next.EpicOrdinal,
		&next.TaskOrdinal, &next.Title, &next.Status); err != nil {
		return nil, fmt.Errorf("failed to scan next task: %w", err)
	}
	return &next, rows.Err()
}

// StartTask transitions a pending task to in_progress and stamps
// started_at. A task that is already started or done yields a precondition
// error, which is how losers of a claim race find out.
func (s *RoadmapService) StartTask(callerCtx context.Context, projectID, taskID string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}
	t, err := ownedTask(ctx, tx.Task, tx.Epic, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusPending {
		return nil, NewPreconditionError("task %q is not pending (status %s)", taskID, t.Status)
	}

	t, err = t.Update().
		SetStatus(task.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start task: %w", err)
	}
	if err := recomputeEpicStatus(ctx, tx, t.EpicID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task start: %w", err)
	}
	return t, nil
}

// UpdateTaskStatus marks a task done or reopens it. Marking done requires
// every child test to be passing; reopening restores in_progress when the
// task was ever started and pending otherwise.
func (s *RoadmapService) UpdateTaskStatus(callerCtx context.Context, projectID, taskID string, done bool) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}
	t, err := ownedTask(ctx, tx.Task, tx.Epic, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if done {
		notPassing, err := tx.TaskTest.Query().
			Where(tasktest.TaskIDEQ(taskID), tasktest.OutcomeNEQ(tasktest.OutcomePass)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count failing tests: %w", err)
		}
		if notPassing > 0 {
			return nil, NewPreconditionError("cannot mark task %q done: %d of its tests are not passing", taskID, notPassing)
		}
		t, err = t.Update().
			SetStatus(task.StatusDone).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark task done: %w", err)
		}
	} else {
		t, err = t.Update().
			SetStatus(reopenedStatus(t)).
			ClearCompletedAt().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reopen task: %w", err)
		}
	}

	if err := recomputeEpicStatus(ctx, tx, t.EpicID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task status change: %w", err)
	}
	return t, nil
}

// UpdateTestResult records a test outcome and cascades: flipping a test
// away from pass demotes a done parent task in the same transaction.
func (s *RoadmapService) UpdateTestResult(callerCtx context.Context, projectID, testID, outcome, note string) (*ent.TaskTest, error) {
	switch outcome {
	case models.TestOutcomeUnknown, models.TestOutcomePass, models.TestOutcomeFail:
	default:
		return nil, NewPreconditionError("invalid test outcome %q (want unknown, pass or fail)", outcome)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}
	tt, err := ownedTest(ctx, tx, projectID, testID)
	if err != nil {
		return nil, err
	}

	update := tt.Update().SetOutcome(tasktest.Outcome(outcome))
	if note != "" {
		update.SetVerificationNote(note)
	}
	tt, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update test result: %w", err)
	}

	if outcome != models.TestOutcomePass {
		parent, err := tx.Task.Get(ctx, tt.TaskID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent task: %w", err)
		}
		if err := demoteTaskIfDone(ctx, tx, parent); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit test result: %w", err)
	}
	return tt, nil
}

// Progress reads the per-project completion counters from v_progress.
func (s *RoadmapService) Progress(ctx context.Context, projectID string) (*models.Progress, error) {
	rows, err := s.client.QueryContext(ctx,
		`SELECT total_epics, completed_epics, total_tasks, completed_tasks,
		        total_tests, passed_tests, percent
		 FROM v_progress WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read progress: %w", err)
		}
		return nil, NewNotFoundError("project", projectID)
	}
	var p models.Progress
	if err := rows.Scan(&p.TotalEpics, &p.CompletedEpics, &p.TotalTasks,
		&p.CompletedTasks, &p.TotalTests, &p.PassedTests, &p.Percent); err != nil {
		return nil, fmt.Errorf("failed to scan progress: %w", err)
	}
	return &p, rows.Err()
}

// ownedEpic loads an epic and verifies it belongs to the project.
func ownedEpic(ctx context.Context, epics *ent.EpicClient, projectID, epicID string) (*ent.Epic, error) {
	e, err := epics.Get(ctx, epicID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("epic", epicID)
		}
		return nil, fmt.Errorf("failed to get epic: %w", err)
	}
	if e.ProjectID != projectID {
		return nil, NewForbiddenError("epic", epicID)
	}
	return e, nil
}

// ownedTask loads a task and verifies its epic belongs to the project.
func ownedTask(ctx context.Context, tasks *ent.TaskClient, epics *ent.EpicClient, projectID, taskID string) (*ent.Task, error) {
	t, err := tasks.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("task", taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if _, err := ownedEpic(ctx, epics, projectID, t.EpicID); err != nil {
		return nil, NewForbiddenError("task", taskID)
	}
	return t, nil
}

// ownedTest loads a test and verifies its task's epic belongs to the project.
func ownedTest(ctx context.Context, tx *ent.Tx, projectID, testID string) (*ent.TaskTest, error) {
	tt, err := tx.TaskTest.Get(ctx, testID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("test", testID)
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	if _, err := ownedTask(ctx, tx.Task, tx.Epic, projectID, tt.TaskID); err != nil {
		return nil, NewForbiddenError("test", testID)
	}
	return tt, nil
}

// reopenedStatus is the status a task falls back to when it stops being
// done: in_progress if it was ever started, pending if untouched.
func reopenedStatus(t *ent.Task) task.Status {
	if t.StartedAt != nil {
		return task.StatusInProgress
	}
	return task.StatusPending
}

// demoteTaskIfDone reverts a done task after one of its tests stopped
// passing (or a fresh test appeared), then recomputes the parent epic.
func demoteTaskIfDone(ctx context.Context, tx *ent.Tx, t *ent.Task) error {
	if t.Status != task.StatusDone {
		return nil
	}
	if _, err := t.Update().
		SetStatus(reopenedStatus(t)).
		ClearCompletedAt().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to demote task: %w", err)
	}
	return recomputeEpicStatus(ctx, tx, t.EpicID)
}

// recomputeEpicStatus derives the epic status from its tasks: done when
// every task is done, in_progress when any task has been started or
// finished, pending otherwise. An epic with no tasks stays pending.
func recomputeEpicStatus(ctx context.Context, tx *ent.Tx, epicID string) error {
	total, err := tx.Task.Query().Where(task.EpicIDEQ(epicID)).Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count epic tasks: %w", err)
	}
	done, err := tx.Task.Query().
		Where(task.EpicIDEQ(epicID), task.StatusEQ(task.StatusDone)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count done tasks: %w", err)
	}
	inProgress, err := tx.Task.Query().
		Where(task.EpicIDEQ(epicID), task.StatusEQ(task.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count in-progress tasks: %w", err)
	}

	status := epic.StatusPending
	switch {
	case total > 0 && done == total:
		status = epic.StatusDone
	case done > 0 || inProgress > 0:
		status = epic.StatusInProgress
	}

	if err := tx.Epic.UpdateOneID(epicID).SetStatus(status).Exec(ctx); err != nil {
		return fmt.Errorf("failed to recompute epic status: %w", err)
	}
	return nil
}
