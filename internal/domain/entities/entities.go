package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Project status is free text; these are the values the dashboard knows about.
const (
	ProjectStatusActive     = "active"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusArchived   = "archived"
)

// Defaults applied when a create request omits the field.
const (
	DefaultProjectColor   = "#3949AB"
	DefaultTeamMemberRole = "member"
)

// User represents an account in the system. The password is stored as a
// bcrypt hash and is never serialized in API responses.
type User struct {
	ID       int64   `json:"id" db:"id"`
	Username string  `json:"username" db:"username"`
	Email    string  `json:"email" db:"email"`
	Name     string  `json:"name" db:"name"`
	Password string  `json:"-" db:"password"`
	Avatar   *string `json:"avatar" db:"avatar"`
}

// Team represents a group of users that own projects.
type Team struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// TeamMember is the join record between a team and a user.
type TeamMember struct {
	ID     int64  `json:"id" db:"id"`
	TeamID int64  `json:"teamId" db:"team_id"`
	UserID int64  `json:"userId" db:"user_id"`
	Role   string `json:"role" db:"role"`

	User *User `json:"user,omitempty" db:"-"`
}

// Project belongs to a team and owns tasks.
type Project struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	TeamID      int64   `json:"teamId" db:"team_id"`
	Status      string  `json:"status" db:"status"`
	Color       string  `json:"color" db:"color"`
}

// Task belongs to a project, is created by a user and optionally assigned to one.
type Task struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	ProjectID   int64        `json:"projectId" db:"project_id"`
	Status      TaskStatus   `json:"status" db:"status"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	AssigneeID  *int64       `json:"assigneeId" db:"assignee_id"`
	CreatorID   int64        `json:"creatorId" db:"creator_id"`
	DueDate     *time.Time   `json:"dueDate" db:"due_date"`
	Tags        []string     `json:"tags" db:"tags"`
	Progress    int          `json:"progress" db:"progress"`

	Assignee *User `json:"assignee,omitempty" db:"-"`
	Creator  *User `json:"creator,omitempty" db:"-"`
}

// Comment belongs to a task and a user. CreatedAt is set once at creation.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	TaskID    int64     `json:"taskId" db:"task_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User *User `json:"user,omitempty" db:"-"`
}

// IsOverdue reports whether the task's due date has passed at the given
// instant and the task is not done. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.Status != TaskStatusDone && t.DueDate.Before(now)
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	default:
		return false
	}
}

func (tp TaskPriority) IsValid() bool {
	switch tp {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	default:
		return false
	}
}
