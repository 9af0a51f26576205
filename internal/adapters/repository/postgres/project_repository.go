package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// ProjectRepository implements ports.ProjectRepository over PostgreSQL.
// Deleting a project leaves its tasks in place, matching the in-memory
// backend's no-cascade behavior.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sqlx.DB) ports.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	query := `
		INSERT INTO projects (name, description, team_id, status, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		project.Name, project.Description, project.TeamID, project.Status, project.Color,
	).Scan(&project.ID)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*entities.Project, error) {
	query := `
		SELECT id, name, description, team_id, status, color
		FROM projects
		WHERE id = $1`

	var project entities.Project
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}

	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, team_id = $4, status = $5, color = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		project.ID, project.Name, project.Description, project.TeamID, project.Status, project.Color)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]*entities.Project, error) {
	query := `SELECT id, name, description, team_id, status, color FROM projects`
	var args []interface{}

	if filter.TeamID != nil {
		query += ` WHERE team_id = $1`
		args = append(args, *filter.TeamID)
	}
	query += ` ORDER BY id`

	projects := make([]*entities.Project, 0)
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}
