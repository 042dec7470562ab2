package models

// CreateEpicInput contains fields for creating an epic. Ordinals are
// caller-supplied; siblings are never reordered by the store.
type CreateEpicInput struct {
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateTaskInput contains fields for creating a task under an epic.
type CreateTaskInput struct {
	EpicID      string `json:"epic_id"`
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateTestInput contains fields for creating an acceptance test.
type CreateTestInput struct {
	TaskID      string `json:"task_id"`
	Description string `json:"description"`
}

// TaskExpansion is one task plus its acceptance tests, used by the bulk
// expand operation during roadmap creation.
type TaskExpansion struct {
	Ordinal     int      `json:"ordinal"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tests       []string `json:"tests,omitempty"`
}

// NextTask is the single actionable row from the v_next_task view.
type NextTask struct {
	TaskID      string `json:"task_id"`
	EpicID      string `json:"epic_id"`
	EpicOrdinal int    `json:"epic_ordinal"`
	TaskOrdinal int    `json:"task_ordinal"`
	Title       string `json:"title"`
	Status      string `json:"status"`
}
