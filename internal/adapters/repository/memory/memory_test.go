package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/core/internal/adapters/repository/memory"
	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

func TestUserStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	user := &entities.User{Username: "tom", Email: "tom@example.com", Name: "Tom Cook", Password: "hash"}
	require.NoError(t, store.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	got, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "tom", got.Username)

	byName, err := store.GetByUsername(ctx, "tom")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	got.Name = "Changed"
	require.NoError(t, store.Update(ctx, got))
	updated, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Name)

	require.NoError(t, store.Delete(ctx, user.ID))
	_, err = store.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUserStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	require.NoError(t, store.Create(ctx, &entities.User{Username: "tom", Name: "Tom Cook"}))

	first, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	first.Name = "Mutated"

	second, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tom Cook", second.Name)
}

func TestIDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTaskStore()

	first := &entities.Task{Title: "first", ProjectID: 1, CreatorID: 1, Status: entities.TaskStatusTodo, Priority: entities.TaskPriorityMedium}
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Delete(ctx, first.ID))

	second := &entities.Task{Title: "second", ProjectID: 1, CreatorID: 1, Status: entities.TaskStatusTodo, Priority: entities.TaskPriorityMedium}
	require.NoError(t, store.Create(ctx, second))

	assert.Greater(t, second.ID, first.ID)
}

func TestNotFoundSentinels(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	_, err := repos.Users.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = repos.Teams.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entities.ErrTeamNotFound)

	_, err = repos.Projects.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entities.ErrProjectNotFound)

	_, err = repos.Tasks.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = repos.Comments.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entities.ErrCommentNotFound)

	assert.ErrorIs(t, repos.Users.Delete(ctx, 42), entities.ErrUserNotFound)
	assert.ErrorIs(t, repos.Tasks.Delete(ctx, 42), entities.ErrTaskNotFound)
	assert.ErrorIs(t, repos.TeamMembers.Remove(ctx, 1, 42), entities.ErrTeamMemberNotFound)
}

func TestProjectStoreListByTeam(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProjectStore()

	require.NoError(t, store.Create(ctx, &entities.Project{Name: "a", TeamID: 1, Status: entities.ProjectStatusActive}))
	require.NoError(t, store.Create(ctx, &entities.Project{Name: "b", TeamID: 2, Status: entities.ProjectStatusActive}))
	require.NoError(t, store.Create(ctx, &entities.Project{Name: "c", TeamID: 1, Status: entities.ProjectStatusActive}))

	all, err := store.List(ctx, ports.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	teamID := int64(1)
	filtered, err := store.List(ctx, ports.ProjectFilter{TeamID: &teamID})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Name)
	assert.Equal(t, "c", filtered[1].Name)
}

func TestTaskStoreFilters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTaskStore()

	assignee := int64(7)
	require.NoError(t, store.Create(ctx, &entities.Task{Title: "a", ProjectID: 1, CreatorID: 1, Status: entities.TaskStatusTodo, Priority: entities.TaskPriorityMedium, AssigneeID: &assignee}))
	require.NoError(t, store.Create(ctx, &entities.Task{Title: "b", ProjectID: 1, CreatorID: 1, Status: entities.TaskStatusDone, Priority: entities.TaskPriorityMedium}))
	require.NoError(t, store.Create(ctx, &entities.Task{Title: "c", ProjectID: 2, CreatorID: 1, Status: entities.TaskStatusTodo, Priority: entities.TaskPriorityMedium, AssigneeID: &assignee}))

	projectID := int64(1)
	byProject, err := store.List(ctx, ports.TaskFilter{ProjectID: &projectID})
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byAssignee, err := store.List(ctx, ports.TaskFilter{AssigneeID: &assignee})
	require.NoError(t, err)
	assert.Len(t, byAssignee, 2)

	status := entities.TaskStatusTodo
	combined, err := store.List(ctx, ports.TaskFilter{ProjectID: &projectID, Status: &status})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "a", combined[0].Title)
}

func TestTaskStoreDefaultsTags(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTaskStore()

	task := &entities.Task{Title: "a", ProjectID: 1, CreatorID: 1, Status: entities.TaskStatusTodo, Priority: entities.TaskPriorityMedium}
	require.NoError(t, store.Create(ctx, task))

	got, err := store.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestCommentStoreOrdersByCreationTime(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCommentStore()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose.
	require.NoError(t, store.Create(ctx, &entities.Comment{TaskID: 1, UserID: 1, Content: "third", CreatedAt: base.Add(2 * time.Minute)}))
	require.NoError(t, store.Create(ctx, &entities.Comment{TaskID: 1, UserID: 2, Content: "first", CreatedAt: base}))
	require.NoError(t, store.Create(ctx, &entities.Comment{TaskID: 1, UserID: 3, Content: "second", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, store.Create(ctx, &entities.Comment{TaskID: 2, UserID: 1, Content: "other task", CreatedAt: base}))

	comments, err := store.ListByTask(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "third", comments[2].Content)
}

func TestCommentStoreTiebreaksOnID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCommentStore()

	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, &entities.Comment{TaskID: 1, UserID: 1, Content: "a", CreatedAt: ts}))
	require.NoError(t, store.Create(ctx, &entities.Comment{TaskID: 1, UserID: 2, Content: "b", CreatedAt: ts}))

	comments, err := store.ListByTask(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "a", comments[0].Content)
	assert.Equal(t, "b", comments[1].Content)
}

func TestTeamMemberStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTeamMemberStore()

	require.NoError(t, store.Add(ctx, &entities.TeamMember{TeamID: 1, UserID: 10, Role: "admin"}))
	require.NoError(t, store.Add(ctx, &entities.TeamMember{TeamID: 1, UserID: 11, Role: "member"}))
	require.NoError(t, store.Add(ctx, &entities.TeamMember{TeamID: 2, UserID: 10, Role: "member"}))

	members, err := store.ListByTeam(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	require.NoError(t, store.Remove(ctx, 1, 11))
	members, err = store.ListByTeam(ctx, 1)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, int64(10), members[0].UserID)

	// Removing a user from the wrong team is a not-found, not a cross-team delete.
	assert.ErrorIs(t, store.Remove(ctx, 2, 99), entities.ErrTeamMemberNotFound)
	assert.NoError(t, store.Remove(ctx, 1, 10))
}

func TestEmptyListsAreNonNil(t *testing.T) {
	ctx := context.Background()

	// Empty collections must list as [] on the wire, never null.
	comments, err := memory.NewCommentStore().ListByTask(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)

	members, err := memory.NewTeamMemberStore().ListByTeam(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}
