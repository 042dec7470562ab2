package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateReadViews (re)creates the SQL views backing the read-side queries.
// Views are plain SELECTs over the Ent-managed tables, so replacing them on
// every startup keeps the definitions in lockstep with the binary without a
// migration bump.
func CreateReadViews(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Next actionable task per project: lowest epic ordinal, then lowest
	// task ordinal, skipping tasks already done; ordinal ties break by
	// creation order. A task left in_progress by a crashed session is the
	// lowest non-done ordinal, so the replacement session resumes it.
	_, err := db.ExecContext(ctx,
		`CREATE OR REPLACE VIEW v_next_task AS
		SELECT DISTINCT ON (e.project_id)
			e.project_id,
			t.task_id,
			t.epic_id,
			e.ordinal  AS epic_ordinal,
			t.ordinal  AS task_ordinal,
			t.title,
			t.status
		FROM tasks t
		JOIN epics e ON e.epic_id = t.epic_id
		WHERE t.status <> 'done'
		ORDER BY e.project_id, e.ordinal, t.ordinal, t.created_at, t.task_id`)
	if err != nil {
		return fmt.Errorf("failed to create v_next_task view: %w", err)
	}

	// Per-project completion counters. percent is completed tasks over
	// total tasks; a project with no tasks reports zero.
	_, err = db.ExecContext(ctx,
		`CREATE OR REPLACE VIEW v_progress AS
		SELECT
			p.project_id,
			COUNT(DISTINCT e.epic_id)                                        AS total_epics,
			COUNT(DISTINCT e.epic_id)  FILTER (WHERE e.status = 'done')      AS completed_epics,
			COUNT(DISTINCT t.task_id)                                        AS total_tasks,
			COUNT(DISTINCT t.task_id)  FILTER (WHERE t.status = 'done')      AS completed_tasks,
			COUNT(DISTINCT tt.test_id)                                       AS total_tests,
			COUNT(DISTINCT tt.test_id) FILTER (WHERE tt.outcome = 'pass')    AS passed_tests,
			CASE
				WHEN COUNT(DISTINCT t.task_id) = 0 THEN 0
				ELSE ROUND(
					100.0 * COUNT(DISTINCT t.task_id) FILTER (WHERE t.status = 'done')
					/ COUNT(DISTINCT t.task_id), 1)
			END AS percent
		FROM projects p
		LEFT JOIN epics e      ON e.project_id = p.project_id
		LEFT JOIN tasks t      ON t.epic_id = e.epic_id
		LEFT JOIN task_tests tt ON tt.task_id = t.task_id
		GROUP BY p.project_id`)
	if err != nil {
		return fmt.Errorf("failed to create v_progress view: %w", err)
	}

	return nil
}
