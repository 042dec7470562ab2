package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/event"
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// ProjectService manages project rows and their workspace directories.
type ProjectService struct {
	client         *ent.Client
	logger         *slog.Logger
	generationsDir string
}

// NewProjectService creates a new ProjectService. generationsDir is where
// workspaces land when the caller does not name one explicitly.
func NewProjectService(client *ent.Client, logger *slog.Logger, generationsDir string) *ProjectService {
	return &ProjectService{
		client:         client,
		logger:         logger.With("service", "project"),
		generationsDir: generationsDir,
	}
}

// CreateProject validates the input, materializes the workspace directory
// with the concatenated spec file, and inserts the project row. With Force
// an existing project of the same name is replaced and its spec file
// rewritten; the workspace contents otherwise survive.
func (s *ProjectService) CreateProject(callerCtx context.Context, input models.CreateProjectInput) (*ent.Project, error) {
	if input.Name == "" {
		return nil, NewPreconditionError("project name is required")
	}
	if strings.ContainsAny(input.Name, `/\`) || strings.Contains(input.Name, "..") {
		return nil, NewPreconditionError("project name %q must be a plain directory name", input.Name)
	}
	if len(input.SpecPaths) == 0 && input.SpecContent == "" {
		return nil, NewPreconditionError("a spec file or inline spec content is required")
	}
	if input.Policy == nil {
		return nil, NewPreconditionError("sandbox policy is required")
	}

	workspace := input.Workspace
	if workspace == "" {
		workspace = filepath.Join(s.generationsDir, input.Name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.Project.Query().Where(project.NameEQ(input.Name)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up project by name: %w", err)
	}
	if existing != nil {
		if !input.Force {
			return nil, NewPreconditionError("project %q already exists", input.Name)
		}
		s.logger.Warn("Replacing existing project", "project_id", existing.ID, "name", input.Name)
		if _, err := tx.Event.Delete().Where(event.ProjectIDEQ(existing.ID)).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to drop events of replaced project: %w", err)
		}
		if err := tx.Project.DeleteOneID(existing.ID).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to delete replaced project: %w", err)
		}
	}

	specFile, err := materializeWorkspace(workspace, input)
	if err != nil {
		return nil, err
	}

	builder := tx.Project.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetWorkspace(workspace).
		SetSandboxPolicy(*input.Policy)
	if input.PromptVersions != nil {
		builder.SetPromptVersions(input.PromptVersions)
	}
	proj, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewPreconditionError("project %q already exists", input.Name)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit project creation: %w", err)
	}

	s.logger.Info("Project created",
		"project_id", proj.ID, "name", proj.Name,
		"workspace", workspace, "spec_file", specFile)
	return proj, nil
}

// GetProject retrieves a project by id.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	proj, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("project", projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// GetProjectByName retrieves a project by its unique display name.
func (s *ProjectService) GetProjectByName(ctx context.Context, name string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().Where(project.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("project", name)
		}
		return nil, fmt.Errorf("failed to get project by name: %w", err)
	}
	return proj, nil
}

// ListProjects returns all projects, oldest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// DeleteProject removes the project row; epics, tasks, tests, sessions and
// quality checks go with it via cascading deletes, and the project's event
// rows are dropped explicitly (they carry no foreign key). The workspace
// directory is kept; the sandbox must already be destroyed by the caller.
func (s *ProjectService) DeleteProject(callerCtx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return err
	}
	if _, err := tx.Event.Delete().Where(event.ProjectIDEQ(projectID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete project events: %w", err)
	}
	if err := tx.Project.DeleteOneID(projectID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project deletion: %w", err)
	}

	s.logger.Info("Project deleted", "project_id", projectID)
	return nil
}

// UpdateSandboxPolicy replaces the project's sandbox policy. The new policy
// takes effect on the next sandbox start.
func (s *ProjectService) UpdateSandboxPolicy(callerCtx context.Context, projectID string, policy models.SandboxPolicy) (*ent.Project, error) {
	if policy.Kind == "" {
		return nil, NewPreconditionError("sandbox policy kind is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proj, err := s.client.Project.UpdateOneID(projectID).
		SetSandboxPolicy(policy).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("project", projectID)
		}
		return nil, fmt.Errorf("failed to update sandbox policy: %w", err)
	}
	return proj, nil
}

// materializeWorkspace creates the workspace directory and writes the
// concatenated spec file. Returns the spec file name.
func materializeWorkspace(workspace string, input models.CreateProjectInput) (string, error) {
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}

	parts, singleExt, err := collectSpecParts(input.SpecPaths)
	if err != nil {
		return "", err
	}
	if input.SpecContent != "" {
		parts = append(parts, input.SpecContent)
	}

	// A single source file keeps its extension; concatenations are plain text.
	ext := ".txt"
	if len(parts) == 1 && singleExt != "" {
		ext = singleExt
	}
	specFile := "app_spec" + ext

	content := strings.Join(parts, "\n\n")
	if err := os.WriteFile(filepath.Join(workspace, specFile), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write spec file: %w", err)
	}
	return specFile, nil
}

// collectSpecParts reads every spec source. Directories contribute their
// markdown, text and README files in name order, each prefixed with a
// heading naming the source file.
func collectSpecParts(paths []string) ([]string, string, error) {
	var parts []string
	singleExt := ""
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, "", NewPreconditionError("spec path %q: %v", p, err)
		}
		if !info.IsDir() {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, "", fmt.Errorf("failed to read spec file: %w", err)
			}
			parts = append(parts, string(data))
			singleExt = filepath.Ext(p)
			continue
		}

		var files []string
		for _, pattern := range []string{"*.md", "*.txt", "README*"} {
			matches, _ := filepath.Glob(filepath.Join(p, pattern))
			files = append(files, matches...)
		}
		sort.Strings(files)
		seen := make(map[string]bool, len(files))
		for _, f := range files {
			if seen[f] {
				continue
			}
			seen[f] = true
			data, err := os.ReadFile(f)
			if err != nil {
				return nil, "", fmt.Errorf("failed to read spec file: %w", err)
			}
			parts = append(parts, fmt.Sprintf("# %s\n\n%s", filepath.Base(f), string(data)))
		}
	}
	if len(parts) > 1 {
		singleExt = ""
	}
	return parts, singleExt, nil
}
