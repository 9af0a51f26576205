package ports

import (
	"context"

	"github.com/taskflow/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entities.User, error)
}

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id int64) (*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entities.Team, error)
}

// TeamMemberRepository defines the interface for team membership operations
type TeamMemberRepository interface {
	Add(ctx context.Context, member *entities.TeamMember) error
	GetByID(ctx context.Context, id int64) (*entities.TeamMember, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*entities.TeamMember, error)
	Remove(ctx context.Context, teamID, userID int64) error
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id int64) (*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ProjectFilter) ([]*entities.Project, error)
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id int64) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
}

// CommentRepository defines the interface for comment data operations.
// ListByTask returns comments in ascending creation-time order.
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	GetByID(ctx context.Context, id int64) (*entities.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]*entities.Comment, error)
}

// ProjectFilter narrows project listings. Nil fields are ignored.
type ProjectFilter struct {
	TeamID *int64
}

// TaskFilter narrows task listings. Nil fields are ignored.
type TaskFilter struct {
	ProjectID  *int64
	AssigneeID *int64
	Status     *entities.TaskStatus
}

// Repositories bundles one implementation of every repository. Each storage
// backend provides exactly one conforming set, selected by configuration.
type Repositories struct {
	Users       UserRepository
	Teams       TeamRepository
	TeamMembers TeamMemberRepository
	Projects    ProjectRepository
	Tasks       TaskRepository
	Comments    CommentRepository
}
