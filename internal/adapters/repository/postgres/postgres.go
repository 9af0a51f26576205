// Package postgres implements the repository contract over PostgreSQL using
// sqlx. The schema mirrors the entity model 1:1 (see migrations/); foreign
// keys are not constraint-enforced, so deletes do not cascade across
// aggregates, matching the in-memory backend.
package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/taskflow/core/internal/ports"
)

// NewRepositories returns the Postgres-backed repository set.
func NewRepositories(db *sqlx.DB) ports.Repositories {
	return ports.Repositories{
		Users:       NewUserRepository(db),
		Teams:       NewTeamRepository(db),
		TeamMembers: NewTeamMemberRepository(db),
		Projects:    NewProjectRepository(db),
		Tasks:       NewTaskRepository(db),
		Comments:    NewCommentRepository(db),
	}
}
