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

// TeamRepository implements ports.TeamRepository over PostgreSQL.
type TeamRepository struct {
	db *sqlx.DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *sqlx.DB) ports.TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	query := `
		INSERT INTO teams (name, description)
		VALUES ($1, $2)
		RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, team.Name, team.Description).Scan(&team.ID); err != nil {
		return fmt.Errorf("create team: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*entities.Team, error) {
	query := `SELECT id, name, description FROM teams WHERE id = $1`

	var team entities.Team
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team by id: %w", err)
	}

	return &team, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	query := `UPDATE teams SET name = $2, description = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, team.ID, team.Name, team.Description)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTeamNotFound
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTeamNotFound
	}

	return nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	query := `SELECT id, name, description FROM teams ORDER BY id`

	teams := make([]*entities.Team, 0)
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// TeamMemberRepository implements ports.TeamMemberRepository over PostgreSQL.
type TeamMemberRepository struct {
	db *sqlx.DB
}

// NewTeamMemberRepository creates a new team membership repository.
func NewTeamMemberRepository(db *sqlx.DB) ports.TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Add(ctx context.Context, member *entities.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, member.TeamID, member.UserID, member.Role).Scan(&member.ID); err != nil {
		return fmt.Errorf("add team member: %w", err)
	}

	return nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*entities.TeamMember, error) {
	query := `SELECT id, team_id, user_id, role FROM team_members WHERE id = $1`

	var member entities.TeamMember
	if err := r.db.GetContext(ctx, &member, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("get team member by id: %w", err)
	}

	return &member, nil
}

func (r *TeamMemberRepository) ListByTeam(ctx context.Context, teamID int64) ([]*entities.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, role
		FROM team_members
		WHERE team_id = $1
		ORDER BY id`

	members := make([]*entities.TeamMember, 0)
	if err := r.db.SelectContext(ctx, &members, query, teamID); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	return members, nil
}

func (r *TeamMemberRepository) Remove(ctx context.Context, teamID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return fmt.Errorf("remove team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTeamMemberNotFound
	}

	return nil
}
