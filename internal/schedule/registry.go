package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateTeam      = errors.New("duplicate team")
	ErrInvalidCardinality = errors.New("number of teams must be even and positive")
	ErrUnknownTeam        = errors.New("unknown team")
)

// Registry is the ordered set of participating teams. It is the single source
// of truth for the index<->identity mapping and is immutable once built.
type Registry struct {
	teams   []string
	indices map[string]int
}

// NewRegistry builds a registry from an ordered list of distinct team
// identities. The double round-robin formulation assumes an even number of
// teams, so odd cardinalities are rejected rather than padded with a bye.
func NewRegistry(teams []string) (*Registry, error) {
	if len(teams) == 0 || len(teams)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d teams", ErrInvalidCardinality, len(teams))
	}

	registry := &Registry{
		teams:   make([]string, len(teams)),
		indices: make(map[string]int, len(teams)),
	}
	for i, team := range teams {
		if _, ok := registry.indices[team]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateTeam, team)
		}
		registry.teams[i] = team
		registry.indices[team] = i
	}
	return registry, nil
}

func (r *Registry) Len() int {
	return len(r.teams)
}

// Rounds returns the season length: 2*(n-1) rounds for n teams.
func (r *Registry) Rounds() int {
	return 2 * (len(r.teams) - 1)
}

func (r *Registry) Teams() []string {
	teams := make([]string, len(r.teams))
	copy(teams, r.teams)
	return teams
}

func (r *Registry) IndexOf(team string) (int, error) {
	index, ok := r.indices[team]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownTeam, team)
	}
	return index, nil
}

func (r *Registry) IdentityOf(index int) (string, error) {
	if index < 0 || index >= len(r.teams) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownTeam, index)
	}
	return r.teams[index], nil
}
