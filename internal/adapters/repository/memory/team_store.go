package memory

import (
	"context"
	"sync"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// TeamStore is the in-memory implementation of ports.TeamRepository.
type TeamStore struct {
	mu     sync.RWMutex
	teams  map[int64]entities.Team
	nextID int64
}

// NewTeamStore creates an empty team store.
func NewTeamStore() *TeamStore {
	return &TeamStore{teams: make(map[int64]entities.Team), nextID: 1}
}

var _ ports.TeamRepository = (*TeamStore)(nil)

func (s *TeamStore) Create(ctx context.Context, team *entities.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team.ID = s.nextID
	s.nextID++
	s.teams[team.ID] = *team
	return nil
}

func (s *TeamStore) GetByID(ctx context.Context, id int64) (*entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	return &team, nil
}

func (s *TeamStore) Update(ctx context.Context, team *entities.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[team.ID]; !ok {
		return entities.ErrTeamNotFound
	}
	s.teams[team.ID] = *team
	return nil
}

func (s *TeamStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return entities.ErrTeamNotFound
	}
	delete(s.teams, id)
	return nil
}

func (s *TeamStore) List(ctx context.Context) ([]*entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]*entities.Team, 0, len(s.teams))
	for _, id := range sortedIDs(s.teams) {
		team := s.teams[id]
		teams = append(teams, &team)
	}
	return teams, nil
}

// TeamMemberStore is the in-memory implementation of ports.TeamMemberRepository.
type TeamMemberStore struct {
	mu      sync.RWMutex
	members map[int64]entities.TeamMember
	nextID  int64
}

// NewTeamMemberStore creates an empty team membership store.
func NewTeamMemberStore() *TeamMemberStore {
	return &TeamMemberStore{members: make(map[int64]entities.TeamMember), nextID: 1}
}

var _ ports.TeamMemberRepository = (*TeamMemberStore)(nil)

func (s *TeamMemberStore) Add(ctx context.Context, member *entities.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = s.nextID
	s.nextID++
	stored := *member
	stored.User = nil
	s.members[stored.ID] = stored
	return nil
}

func (s *TeamMemberStore) GetByID(ctx context.Context, id int64) (*entities.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[id]
	if !ok {
		return nil, entities.ErrTeamMemberNotFound
	}
	return &member, nil
}

func (s *TeamMemberStore) ListByTeam(ctx context.Context, teamID int64) ([]*entities.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]*entities.TeamMember, 0)
	for _, id := range sortedIDs(s.members) {
		if s.members[id].TeamID == teamID {
			member := s.members[id]
			members = append(members, &member)
		}
	}
	return members, nil
}

func (s *TeamMemberStore) Remove(ctx context.Context, teamID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, member := range s.members {
		if member.TeamID == teamID && member.UserID == userID {
			delete(s.members, id)
			return nil
		}
	}
	return entities.ErrTeamMemberNotFound
}
