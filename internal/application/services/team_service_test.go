package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

func TestAddMemberDefaultsRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user, _ := f.seedProject(t)

	team, err := f.teams.CreateTeam(ctx, ports.CreateTeamRequest{Name: "Design"})
	require.NoError(t, err)

	member, err := f.teams.AddMember(ctx, team.ID, ports.AddTeamMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	assert.Equal(t, "member", member.Role)
	require.NotNil(t, member.User)
	assert.Equal(t, user.Username, member.User.Username)
}

func TestAddMemberChecksReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user, _ := f.seedProject(t)

	_, err := f.teams.AddMember(ctx, 999, ports.AddTeamMemberRequest{UserID: user.ID})
	assert.ErrorIs(t, err, entities.ErrTeamNotFound)

	team, err := f.teams.CreateTeam(ctx, ports.CreateTeamRequest{Name: "Design"})
	require.NoError(t, err)

	_, err = f.teams.AddMember(ctx, team.ID, ports.AddTeamMemberRequest{UserID: 999})
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestListMembersSkipsDeletedUsers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user, _ := f.seedProject(t)

	other, err := f.users.CreateUser(ctx, ports.CreateUserRequest{
		Username: "emily", Email: "emily@example.com", Name: "Emily Davis", Password: "secret",
	})
	require.NoError(t, err)

	team, err := f.teams.CreateTeam(ctx, ports.CreateTeamRequest{Name: "Design"})
	require.NoError(t, err)

	_, err = f.teams.AddMember(ctx, team.ID, ports.AddTeamMemberRequest{UserID: user.ID, Role: "admin"})
	require.NoError(t, err)
	_, err = f.teams.AddMember(ctx, team.ID, ports.AddTeamMemberRequest{UserID: other.ID})
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(ctx, other.ID))

	members, err := f.teams.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, user.ID, members[0].UserID)
	require.NotNil(t, members[0].User)
}

func TestRemoveMember(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user, _ := f.seedProject(t)

	team, err := f.teams.CreateTeam(ctx, ports.CreateTeamRequest{Name: "Design"})
	require.NoError(t, err)

	_, err = f.teams.AddMember(ctx, team.ID, ports.AddTeamMemberRequest{UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, f.teams.RemoveMember(ctx, team.ID, user.ID))

	members, err := f.teams.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	assert.ErrorIs(t, f.teams.RemoveMember(ctx, team.ID, user.ID), entities.ErrTeamMemberNotFound)
}

func TestUpdateTeamMergesFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, ports.CreateTeamRequest{
		Name:        "Product Development",
		Description: strPtr("original"),
	})
	require.NoError(t, err)

	updated, err := f.teams.UpdateTeam(ctx, team.ID, ports.UpdateTeamRequest{
		Name: strPtr("Product"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Product", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "original", *updated.Description)
}

func TestDeleteTeamLeavesProjectsInPlace(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, project := f.seedProject(t)

	require.NoError(t, f.teams.DeleteTeam(ctx, project.TeamID))

	// Projects of a deleted team stay retrievable; deletes never cascade.
	got, err := f.projects.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.TeamID, got.TeamID)
}
