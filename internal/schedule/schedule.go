package schedule

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"github.com/LucasGrasso/invop-football-scheduler/internal/mip"
)

// Match is a single fixture: Home hosts Away.
type Match struct {
	Home int
	Away int
}

// Round is the set of matches played simultaneously, sorted by home index.
type Round []Match

// Schedule is the decoded season: rounds in ascending index order, each one
// a perfect matching over all teams. It is a value type and is never mutated
// after the decoder builds it.
type Schedule []Round

func (s Schedule) Rounds() int {
	return len(s)
}

// Assignment re-encodes the schedule in the sparse solver convention: one
// entry per played fixture, omitted variables meaning zero.
func (s Schedule) Assignment() mip.Assignment {
	assignment := mip.Assignment{}
	for round, matches := range s {
		for _, match := range matches {
			assignment[FixtureVar(match.Home, match.Away, round)] = 1
		}
	}
	return assignment
}

// Verify re-checks the round-robin invariants of a decoded schedule against
// its registry, independently of how the schedule was produced: every round
// must admit a perfect matching covering all teams, and every ordered pair
// must meet as (home, away) exactly once across the season.
func Verify(registry *Registry, schedule Schedule) bool {
	teams := registry.Len()
	if schedule.Rounds() != registry.Rounds() {
		return false
	}

	hostings := make(map[Match]int)
	for _, matches := range schedule {
		if len(matches) != teams/2 {
			return false
		}
		for _, match := range matches {
			if match.Home == match.Away || match.Home < 0 || match.Home >= teams || match.Away < 0 || match.Away >= teams {
				return false
			}
			hostings[match]++
		}

		if !perfectMatching(teams, matches) {
			return false
		}
	}

	// Each ordered pair hosts exactly once over the season
	if len(hostings) != teams*(teams-1) {
		return false
	}
	return !lo.SomeBy(lo.Values(hostings), func(count int) bool { return count != 1 })
}

// perfectMatching checks that the round's pairs cover every team exactly once
// by computing a maximum matching on the team-opponent graph.
func perfectMatching(teams int, matches Round) bool {
	plays := make(map[[2]int]bool, 2*len(matches))
	for _, match := range matches {
		plays[[2]int{match.Home, match.Away}] = true
		plays[[2]int{match.Away, match.Home}] = true
	}

	neighbors := func(leftAny any, rightAny any) (bool, error) {
		return plays[[2]int{leftAny.(int), rightAny.(int)}], nil
	}

	indices := lo.Map(lo.Range(teams), func(team int, _ int) any { return team })
	graph, err := bipartitegraph.NewBipartiteGraph(indices, indices, neighbors)
	if err != nil {
		return false
	}

	return len(graph.LargestMatching()) == teams
}
