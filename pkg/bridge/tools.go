package bridge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// Schemas are plain JSON Schema documents; the SDK advertises them to the
// agent and validates calls against them.
var (
	noArgsSchema = json.RawMessage(`{"type":"object","properties":{}}`)

	epicIDSchema = json.RawMessage(`{"type":"object","properties":{
		"epic_id":{"type":"string","description":"Epic id"}},
		"required":["epic_id"]}`)

	taskIDSchema = json.RawMessage(`{"type":"object","properties":{
		"task_id":{"type":"string","description":"Task id"}},
		"required":["task_id"]}`)

	updateTaskStatusSchema = json.RawMessage(`{"type":"object","properties":{
		"task_id":{"type":"string","description":"Task id"},
		"done":{"type":"boolean","description":"true marks the task done (requires all tests passing); false re-opens it"}},
		"required":["task_id","done"]}`)

	updateTestResultSchema = json.RawMessage(`{"type":"object","properties":{
		"test_id":{"type":"string","description":"Test id"},
		"outcome":{"type":"string","enum":["pass","fail","unknown"],"description":"Verified outcome"},
		"note":{"type":"string","description":"How the outcome was verified"}},
		"required":["test_id","outcome"]}`)

	createEpicSchema = json.RawMessage(`{"type":"object","properties":{
		"ordinal":{"type":"integer","description":"Delivery order; omit to append"},
		"title":{"type":"string","description":"Short epic title"},
		"description":{"type":"string","description":"What this epic delivers"}},
		"required":["title"]}`)

	createTaskSchema = json.RawMessage(`{"type":"object","properties":{
		"epic_id":{"type":"string","description":"Parent epic id"},
		"ordinal":{"type":"integer","description":"Order within the epic; omit to append"},
		"title":{"type":"string","description":"Short task title"},
		"description":{"type":"string","description":"What to build"}},
		"required":["epic_id","title"]}`)

	createTestSchema = json.RawMessage(`{"type":"object","properties":{
		"task_id":{"type":"string","description":"Parent task id"},
		"description":{"type":"string","description":"Acceptance check phrased so it can be verified in the running app"}},
		"required":["task_id","description"]}`)

	expandEpicSchema = json.RawMessage(`{"type":"object","properties":{
		"epic_id":{"type":"string","description":"Epic to populate"},
		"tasks":{"type":"array","description":"Tasks to create in order","items":{"type":"object","properties":{
			"ordinal":{"type":"integer"},
			"title":{"type":"string"},
			"description":{"type":"string"},
			"tests":{"type":"array","items":{"type":"string"},"description":"Acceptance checks for this task"}},
			"required":["title"]}}},
		"required":["epic_id","tasks"]}`)

	logSessionSchema = json.RawMessage(`{"type":"object","properties":{
		"message":{"type":"string","description":"Handoff note for the next session"},
		"wrap_up":{"type":"boolean","description":"true asks the orchestrator to stop after this session"}},
		"required":["message"]}`)

	execSchema = json.RawMessage(`{"type":"object","properties":{
		"command":{"type":"string","description":"Shell command, run inside the project sandbox at /workspace"},
		"timeout_seconds":{"type":"integer","description":"Optional cap; defaults to the sandbox policy"}},
		"required":["command"]}`)
)

// toolDefs is the full task-manager catalog in presentation order.
func (b *Bridge) toolDefs() []toolDef {
	return []toolDef{
		{"task_status", "Roadmap completion snapshot: epic/task/test totals and percent done.", noArgsSchema, b.taskStatus},
		{"get_next_task", "The next actionable task (lowest epic ordinal, then task ordinal).", noArgsSchema, b.getNextTask},
		{"list_epics", "All epics in delivery order.", noArgsSchema, b.listEpics},
		{"get_epic", "One epic with its tasks.", epicIDSchema, b.getEpic},
		{"list_tasks", "Tasks of one epic in ordinal order.", epicIDSchema, b.listTasks},
		{"get_task", "One task with its acceptance tests.", taskIDSchema, b.getTask},
		{"list_tests", "Acceptance tests of one task.", taskIDSchema, b.listTests},
		{"update_task_status", "Mark a task done (all tests must pass) or re-open it.", updateTaskStatusSchema, b.updateTaskStatus},
		{"start_task", "Claim a pending task before working on it.", taskIDSchema, b.startTask},
		{"update_test_result", "Record a verified test outcome; failures re-open the parent task.", updateTestResultSchema, b.updateTestResult},
		{"create_epic", "Add an epic to the roadmap.", createEpicSchema, b.createEpic},
		{"create_task", "Add a task to an epic.", createTaskSchema, b.createTask},
		{"create_test", "Add an acceptance test to a task.", createTestSchema, b.createTest},
		{"expand_epic", "Create a batch of tasks (with tests) inside an epic in one call.", expandEpicSchema, b.expandEpic},
		{"log_session", "Append a progress note to the session log; set wrap_up to stop after this session.", logSessionSchema, b.logSession},
		{"exec", "Run a shell command in the project sandbox and return stdout, stderr and the exit code.", execSchema, b.execCommand},
	}
}

// AllowedTools lists the catalog as the agent CLI expects it
// (mcp__<server>__<tool>), for --allowedTools wiring.
func AllowedTools() []string {
	names := []string{
		"task_status", "get_next_task", "list_epics", "get_epic",
		"list_tasks", "get_task", "list_tests", "update_task_status",
		"start_task", "update_test_result", "create_epic", "create_task",
		"create_test", "expand_epic", "log_session", "exec",
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "mcp__" + ServerName + "__" + n
	}
	return out
}

// --- read tools ---

func (b *Bridge) taskStatus(ctx context.Context, _ json.RawMessage) (any, error) {
	p, err := b.roadmap.Progress(ctx, b.projectID)
	if err != nil {
		return nil, err
	}
	return struct {
		*models.Progress
		Complete bool `json:"complete"`
	}{p, p.Done()}, nil
}

func (b *Bridge) getNextTask(ctx context.Context, _ json.RawMessage) (any, error) {
	next, err := b.roadmap.GetNextTask(ctx, b.projectID)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return map[string]any{"task": nil, "message": "no actionable tasks remain"}, nil
	}
	return map[string]any{"task": next}, nil
}

func (b *Bridge) listEpics(ctx context.Context, _ json.RawMessage) (any, error) {
	epics, err := b.roadmap.ListEpics(ctx, b.projectID)
	if err != nil {
		return nil, err
	}
	views := make([]epicView, len(epics))
	for i, e := range epics {
		views[i] = newEpicView(e)
	}
	return map[string]any{"epics": views}, nil
}

type epicIDArgs struct {
	EpicID string `json:"epic_id"`
}

func (b *Bridge) getEpic(ctx context.Context, raw json.RawMessage) (any, error) {
	var args epicIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.EpicID == "" {
		return nil, services.NewPreconditionError("epic_id is required")
	}
	e, err := b.roadmap.GetEpic(ctx, b.projectID, args.EpicID)
	if err != nil {
		return nil, err
	}
	tasks, err := b.roadmap.ListTasks(ctx, b.projectID, args.EpicID)
	if err != nil {
		return nil, err
	}
	taskViews := make([]taskView, len(tasks))
	for i, t := range tasks {
		taskViews[i] = newTaskView(t)
	}
	return map[string]any{"epic": newEpicView(e), "tasks": taskViews}, nil
}

func (b *Bridge) listTasks(ctx context.Context, raw json.RawMessage) (any, error) {
	var args epicIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.EpicID == "" {
		return nil, services.NewPreconditionError("epic_id is required")
	}
	tasks, err := b.roadmap.ListTasks(ctx, b.projectID, args.EpicID)
	if err != nil {
		return nil, err
	}
	views := make([]taskView, len(tasks))
	for i, t := range tasks {
		views[i] = newTaskView(t)
	}
	return map[string]any{"tasks": views}, nil
}

type taskIDArgs struct {
	TaskID string `json:"task_id"`
}

func (b *Bridge) getTask(ctx context.Context, raw json.RawMessage) (any, error) {
	var args taskIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.TaskID == "" {
		return nil, services.NewPreconditionError("task_id is required")
	}
	t, err := b.roadmap.GetTask(ctx, b.projectID, args.TaskID)
	if err != nil {
		return nil, err
	}
	tests, err := b.roadmap.ListTests(ctx, b.projectID, args.TaskID)
	if err != nil {
		return nil, err
	}
	testViews := make([]testView, len(tests))
	for i, tt := range tests {
		testViews[i] = newTestView(tt)
	}
	return map[string]any{"task": newTaskView(t), "tests": testViews}, nil
}

func (b *Bridge) listTests(ctx context.Context, raw json.RawMessage) (any, error) {
	var args taskIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.TaskID == "" {
		return nil, services.NewPreconditionError("task_id is required")
	}
	tests, err := b.roadmap.ListTests(ctx, b.projectID, args.TaskID)
	if err != nil {
		return nil, err
	}
	views := make([]testView, len(tests))
	for i, tt := range tests {
		views[i] = newTestView(tt)
	}
	return map[string]any{"tests": views}, nil
}

// --- mutation tools ---

type updateTaskStatusArgs struct {
	TaskID string `json:"task_id"`
	Done   *bool  `json:"done"`
}

func (b *Bridge) updateTaskStatus(ctx context.Context, raw json.RawMessage) (any, error) {
	var args updateTaskStatusArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.TaskID == "" {
		return nil, services.NewPreconditionError("task_id is required")
	}
	if args.Done == nil {
		return nil, services.NewPreconditionError("done is required")
	}
	t, err := b.roadmap.UpdateTaskStatus(ctx, b.projectID, args.TaskID, *args.Done)
	if err != nil {
		return nil, err
	}
	b.publishTaskStatus(ctx, t)
	return map[string]any{"task": newTaskView(t)}, nil
}

func (b *Bridge) startTask(ctx context.Context, raw json.RawMessage) (any, error) {
	var args taskIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.TaskID == "" {
		return nil, services.NewPreconditionError("task_id is required")
	}
	t, err := b.roadmap.StartTask(ctx, b.projectID, args.TaskID)
	if err != nil {
		return nil, err
	}
	b.publishTaskStatus(ctx, t)
	return map[string]any{"task": newTaskView(t)}, nil
}

type updateTestResultArgs struct {
	TestID  string `json:"test_id"`
	Outcome string `json:"outcome"`
	Note    string `json:"note"`
}

func (b *Bridge) updateTestResult(ctx context.Context, raw json.RawMessage) (any, error) {
	var args updateTestResultArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.TestID == "" {
		return nil, services.NewPreconditionError("test_id is required")
	}
	if args.Outcome == "" {
		return nil, services.NewPreconditionError("outcome is required")
	}
	if err := boundedText("note", args.Note); err != nil {
		return nil, err
	}
	tt, err := b.roadmap.UpdateTestResult(ctx, b.projectID, args.TestID, args.Outcome, args.Note)
	if err != nil {
		return nil, err
	}
	// The cascade may have re-opened the parent task; report its state.
	t, err := b.roadmap.GetTask(ctx, b.projectID, tt.TaskID)
	if err != nil {
		return nil, err
	}
	b.publishTaskStatus(ctx, t)
	return map[string]any{"test": newTestView(tt), "task": newTaskView(t)}, nil
}

type createEpicArgs struct {
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (b *Bridge) createEpic(ctx context.Context, raw json.RawMessage) (any, error) {
	var args createEpicArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Title == "" {
		return nil, services.NewPreconditionError("title is required")
	}
	if err := boundedText("title", args.Title); err != nil {
		return nil, err
	}
	if err := boundedText("description", args.Description); err != nil {
		return nil, err
	}
	e, err := b.roadmap.CreateEpic(ctx, b.projectID, models.CreateEpicInput{
		Ordinal:     args.Ordinal,
		Title:       args.Title,
		Description: args.Description,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"epic": newEpicView(e)}, nil
}

type createTaskArgs struct {
	EpicID      string `json:"epic_id"`
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (b *Bridge) createTask(ctx context.Context, raw json.RawMessage) (any, error) {
	var args createTaskArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.EpicID == "" {
		return nil, services.NewPreconditionError("epic_id is required")
	}
	if args.Title == "" {
		return nil, services.NewPreconditionError("title is required")
	}
	if err := boundedText("title", args.Title); err != nil {
		return nil, err
	}
	if err := boundedText("description", args.Description); err != nil {
		return nil, err
	}
	t, err := b.roadmap.CreateTask(ctx, b.projectID, models.CreateTaskInput{
		EpicID:      args.EpicID,
		Ordinal:     args.Ordinal,
		Title:       args.Title,
		Description: args.Description,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"task": newTaskView(t)}, nil
}

type createTestArgs struct {
	TaskID      string `json:"task_id"`
	Description string `json:"description"`
}

func (b *Bridge) createTest(ctx context.Context, raw json.RawMessage) (any, error) {
	var args createTestArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.TaskID == "" {
		return nil, services.NewPreconditionError("task_id is required")
	}
	if args.Description == "" {
		return nil, services.NewPreconditionError("description is required")
	}
	if err := boundedText("description", args.Description); err != nil {
		return nil, err
	}
	tt, err := b.roadmap.CreateTest(ctx, b.projectID, models.CreateTestInput{
		TaskID:      args.TaskID,
		Description: args.Description,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"test": newTestView(tt)}, nil
}

type expandEpicArgs struct {
	EpicID string `json:"epic_id"`
	Tasks  []struct {
		Ordinal     int      `json:"ordinal"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Tests       []string `json:"tests"`
	} `json:"tasks"`
}

func (b *Bridge) expandEpic(ctx context.Context, raw json.RawMessage) (any, error) {
	var args expandEpicArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.EpicID == "" {
		return nil, services.NewPreconditionError("epic_id is required")
	}
	if len(args.Tasks) == 0 {
		return nil, services.NewPreconditionError("tasks must not be empty")
	}
	specs := make([]models.TaskExpansion, len(args.Tasks))
	for i, t := range args.Tasks {
		if t.Title == "" {
			return nil, services.NewPreconditionError("tasks[%d].title is required", i)
		}
		if err := boundedText("title", t.Title); err != nil {
			return nil, err
		}
		if err := boundedText("description", t.Description); err != nil {
			return nil, err
		}
		for _, test := range t.Tests {
			if err := boundedText("test description", test); err != nil {
				return nil, err
			}
		}
		specs[i] = models.TaskExpansion{
			Ordinal:     t.Ordinal,
			Title:       t.Title,
			Description: t.Description,
			Tests:       t.Tests,
		}
	}
	tasks, err := b.roadmap.ExpandEpic(ctx, b.projectID, args.EpicID, specs)
	if err != nil {
		return nil, err
	}
	views := make([]taskView, len(tasks))
	for i, t := range tasks {
		views[i] = newTaskView(t)
	}
	return map[string]any{"tasks": views, "created": len(views)}, nil
}

// --- session tools ---

type logSessionArgs struct {
	Message string `json:"message"`
	WrapUp  bool   `json:"wrap_up"`
}

func (b *Bridge) logSession(_ context.Context, raw json.RawMessage) (any, error) {
	var args logSessionArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Message == "" {
		return nil, services.NewPreconditionError("message is required")
	}
	if err := boundedText("message", args.Message); err != nil {
		return nil, err
	}
	var err error
	if args.WrapUp {
		err = b.sink.MarkWrapUp(args.Message)
	} else {
		err = b.sink.Notice("session_log", args.Message)
	}
	if err != nil {
		return nil, services.NewStorageError(err)
	}
	return map[string]any{"logged": true, "wrap_up": args.WrapUp}, nil
}

type execArgs struct {
	Command        string `json:"command"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func (b *Bridge) execCommand(ctx context.Context, raw json.RawMessage) (any, error) {
	var args execArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Command == "" {
		return nil, services.NewPreconditionError("command is required")
	}
	if len(args.Command) > maxCommandBytes {
		return nil, services.NewPreconditionError("command exceeds %d bytes", maxCommandBytes)
	}

	timeout := time.Duration(args.TimeoutSeconds) * time.Second
	if policyCap := time.Duration(b.policy.ExecTimeoutSeconds) * time.Second; policyCap > 0 && (timeout <= 0 || timeout > policyCap) {
		timeout = policyCap
	}

	res, err := b.exec.Exec(ctx, args.Command, timeout)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"stdout":    res.Stdout,
		"stderr":    res.Stderr,
		"exit_code": res.ExitCode,
		"killed":    res.Killed,
	}, nil
}
