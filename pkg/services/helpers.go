package services

import (
	"context"
	"fmt"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/project"
)

// lockProject takes the project row lock that serializes every
// state-changing operation within one project. Callers must already be
// inside a transaction; the lock is held until it commits or rolls back.
func lockProject(ctx context.Context, tx *ent.Tx, projectID string) (*ent.Project, error) {
	proj, err := tx.Project.Query().
		Where(project.IDEQ(projectID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("project", projectID)
		}
		return nil, fmt.Errorf("failed to lock project row: %w", err)
	}
	return proj, nil
}
