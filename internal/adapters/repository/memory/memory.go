// Package memory implements the repository contract with in-process maps.
// Each collection carries its own RWMutex so individual operations stay
// correct under parallel requests; multi-step flows (existence check, then
// write) remain non-atomic, which the service layer documents and accepts.
//
// IDs are assigned from a per-collection counter and never reused after a
// delete. Stored records are copied on the way in and out, so callers can
// mutate what they get back without touching store state.
package memory

import (
	"sort"

	"github.com/taskflow/core/internal/ports"
)

// NewRepositories returns an empty in-memory repository set. Tests create a
// fresh set per test for isolation; demo data is loaded separately.
func NewRepositories() ports.Repositories {
	return ports.Repositories{
		Users:       NewUserStore(),
		Teams:       NewTeamStore(),
		TeamMembers: NewTeamMemberStore(),
		Projects:    NewProjectStore(),
		Tasks:       NewTaskStore(),
		Comments:    NewCommentStore(),
	}
}

// sortedIDs returns the map keys in ascending order. Since ids are assigned
// sequentially this recovers insertion order for listings.
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
