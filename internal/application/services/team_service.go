package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// TeamService handles team and membership operations.
type TeamService struct {
	teamRepo   ports.TeamRepository
	memberRepo ports.TeamMemberRepository
	userRepo   ports.UserRepository
	logger     *logger.Logger
}

// NewTeamService creates a new team service.
func NewTeamService(teamRepo ports.TeamRepository, memberRepo ports.TeamMemberRepository, userRepo ports.UserRepository, logger *logger.Logger) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// CreateTeam creates a new team.
func (s *TeamService) CreateTeam(ctx context.Context, req ports.CreateTeamRequest) (*entities.Team, error) {
	team := &entities.Team{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	s.logger.Info("Team created", "team_id", team.ID, "name", team.Name)

	return team, nil
}

// GetTeam retrieves a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

// UpdateTeam merges the supplied fields into the stored team.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, req ports.UpdateTeamRequest) (*entities.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = req.Description
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}

	s.logger.Info("Team updated", "team_id", team.ID)

	return team, nil
}

// DeleteTeam removes a team by ID. Its projects and memberships are not
// cascaded.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Team deleted", "team_id", id)

	return nil
}

// ListTeams returns all teams in insertion order.
func (s *TeamService) ListTeams(ctx context.Context) ([]*entities.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// ListMembers returns the team's memberships with the member's user record
// embedded. Memberships whose user no longer exists are skipped.
func (s *TeamService) ListMembers(ctx context.Context, teamID int64) ([]*entities.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	result := make([]*entities.TeamMember, 0, len(members))
	for _, member := range members {
		user, err := s.userRepo.GetByID(ctx, member.UserID)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve member user: %w", err)
		}
		member.User = user
		result = append(result, member)
	}

	return result, nil
}

// AddMember adds a user to a team. Both the team and the user must exist at
// the time of the check; the check and the insert are not atomic.
func (s *TeamService) AddMember(ctx context.Context, teamID int64, req ports.AddTeamMemberRequest) (*entities.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entities.DefaultTeamMemberRole
	}

	member := &entities.TeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   role,
	}

	if err := s.memberRepo.Add(ctx, member); err != nil {
		return nil, fmt.Errorf("add team member: %w", err)
	}

	member.User = user

	s.logger.Info("Team member added", "team_id", teamID, "user_id", req.UserID, "role", role)

	return member, nil
}

// RemoveMember removes a user's membership in a team.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID int64) error {
	if err := s.memberRepo.Remove(ctx, teamID, userID); err != nil {
		return err
	}

	s.logger.Info("Team member removed", "team_id", teamID, "user_id", userID)

	return nil
}
