package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/core/internal/adapters/repository/memory"
	"github.com/taskflow/core/internal/application/seed"
	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

func newSeedServices(repos ports.Repositories) seed.Services {
	log := logger.NewNop()
	return seed.Services{
		Users:    services.NewUserService(repos.Users, log),
		Teams:    services.NewTeamService(repos.Teams, repos.TeamMembers, repos.Users, log),
		Projects: services.NewProjectService(repos.Projects, repos.Tasks, repos.Teams, log),
		Tasks:    services.NewTaskService(repos.Tasks, repos.Comments, repos.Projects, repos.Users, log),
	}
}

func TestLoadPopulatesDemoWorkspace(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := newSeedServices(repos)

	require.NoError(t, seed.Load(ctx, svc, logger.NewNop()))

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	teams, err := repos.Teams.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	members, err := repos.TeamMembers.ListByTeam(ctx, teams[0].ID)
	require.NoError(t, err)
	assert.Len(t, members, 4)

	projects, err := repos.Projects.List(ctx, ports.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, projects, 3)

	tasks, err := repos.Tasks.List(ctx, ports.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 8)

	// The comment thread hangs off the authentication flow task.
	var authFlowID int64
	for _, task := range tasks {
		if task.Title == "Test authentication flow" {
			authFlowID = task.ID
		}
	}
	require.NotZero(t, authFlowID)

	comments, err := repos.Comments.ListByTask(ctx, authFlowID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "Please make sure to test on multiple browsers", comments[0].Content)
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := newSeedServices(repos)

	require.NoError(t, seed.Load(ctx, svc, logger.NewNop()))
	require.NoError(t, seed.Load(ctx, svc, logger.NewNop()))

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	tasks, err := repos.Tasks.List(ctx, ports.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 8)
}
