// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EpicsColumns holds the columns for the "epics" table.
	EpicsColumns = []*schema.Column{
		{Name: "epic_id", Type: field.TypeString, Unique: true},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "done"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// EpicsTable holds the schema information for the "epics" table.
	EpicsTable = &schema.Table{
		Name:       "epics",
		Columns:    EpicsColumns,
		PrimaryKey: []*schema.Column{EpicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "epics_projects_epics",
				Columns:    []*schema.Column{EpicsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "epic_project_id_ordinal",
				Unique:  false,
				Columns: []*schema.Column{EpicsColumns[6], EpicsColumns[1]},
			},
			{
				Name:    "epic_status",
				Unique:  false,
				Columns: []*schema.Column{EpicsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_project_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "workspace", Type: field.TypeString},
		{Name: "sandbox_policy", Type: field.TypeJSON},
		{Name: "prompt_versions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// QualityChecksColumns holds the columns for the "quality_checks" table.
	QualityChecksColumns = []*schema.Column{
		{Name: "check_id", Type: field.TypeString, Unique: true},
		{Name: "check_type", Type: field.TypeEnum, Enums: []string{"quick", "deep"}},
		{Name: "rating", Type: field.TypeInt},
		{Name: "tool_uses", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeInt, Default: 0},
		{Name: "browser_verifications", Type: field.TypeInt, Default: 0},
		{Name: "critical_issues", Type: field.TypeJSON, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "review_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// QualityChecksTable holds the schema information for the "quality_checks" table.
	QualityChecksTable = &schema.Table{
		Name:       "quality_checks",
		Columns:    QualityChecksColumns,
		PrimaryKey: []*schema.Column{QualityChecksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quality_checks_sessions_quality_checks",
				Columns:    []*schema.Column{QualityChecksColumns[10]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "qualitycheck_rating",
				Unique:  false,
				Columns: []*schema.Column{QualityChecksColumns[2]},
			},
			{
				Name:    "qualitycheck_session_id_check_type",
				Unique:  true,
				Columns: []*schema.Column{QualityChecksColumns[10], QualityChecksColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"initializer", "coding", "review"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "cancelled"}, Default: "running"},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "tool_use_count", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "tokens_input", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_output", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_cache_creation", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_cache_read", Type: field.TypeInt64, Default: 0},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "last_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_projects_sessions",
				Columns:    []*schema.Column{SessionsColumns[17]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_status_last_active_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[16]},
			},
			{
				Name:    "session_project_id_session_number",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[17], SessionsColumns[1]},
			},
			{
				Name:    "session_project_id",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[17]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'running'",
				},
			},
			{
				Name:    "session_project_id_kind",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[17], SessionsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "kind = 'initializer'",
				},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "done"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "epic_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_epics_tasks",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{EpicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_epic_id_ordinal",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[1]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
		},
	}
	// TaskTestsColumns holds the columns for the "task_tests" table.
	TaskTestsColumns = []*schema.Column{
		{Name: "test_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"unknown", "pass", "fail"}, Default: "unknown"},
		{Name: "verification_note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskTestsTable holds the schema information for the "task_tests" table.
	TaskTestsTable = &schema.Table{
		Name:       "task_tests",
		Columns:    TaskTestsColumns,
		PrimaryKey: []*schema.Column{TaskTestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_tests_tasks_tests",
				Columns:    []*schema.Column{TaskTestsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasktest_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskTestsColumns[5]},
			},
			{
				Name:    "tasktest_outcome",
				Unique:  false,
				Columns: []*schema.Column{TaskTestsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EpicsTable,
		EventsTable,
		ProjectsTable,
		QualityChecksTable,
		SessionsTable,
		TasksTable,
		TaskTestsTable,
	}
)

func init() {
	EpicsTable.ForeignKeys[0].RefTable = ProjectsTable
	QualityChecksTable.ForeignKeys[0].RefTable = SessionsTable
	SessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[0].RefTable = EpicsTable
	TaskTestsTable.ForeignKeys[0].RefTable = TasksTable
}
