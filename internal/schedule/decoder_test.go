package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LucasGrasso/invop-football-scheduler/internal/mip"
)

func TestDecodeRoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 10} {
		registry := mustRegistry(t, teamNames(n))
		schedule := CircleSchedule(n)

		for _, variant := range []SchemeVariant{Mirrored, MinMax} {
			decoder := NewDecoder(registry, mustScheme(t, variant, n))

			decoded, err := decoder.Decode(schedule.Assignment())

			assert.NoError(t, err)
			assert.Equal(t, schedule, decoded)
		}
	}
}

func TestDecodeMinimalSeason(t *testing.T) {
	// n=2: two rounds, one fixture each way
	registry := mustRegistry(t, []string{"ARG", "BRA"})
	decoder := NewDecoder(registry, mustScheme(t, Mirrored, 2))

	decoded, err := decoder.Decode(mip.Assignment{
		"x_0_1_0": 1,
		"x_1_0_1": 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, Schedule{
		{{Home: 0, Away: 1}},
		{{Home: 1, Away: 0}},
	}, decoded)
	assert.True(t, Verify(registry, decoded))
}

func TestDecodeResolvesDerivedFixtures(t *testing.T) {
	// Only the free first half is materialized; the mirrored second half
	// must be derived through the scheme
	const n = 10
	registry := mustRegistry(t, teamNames(n))
	decoder := NewDecoder(registry, mustScheme(t, Mirrored, n))
	schedule := CircleSchedule(n)

	assignment := mip.Assignment{}
	for round := 0; round < n-1; round++ {
		for _, match := range schedule[round] {
			assignment[FixtureVar(match.Home, match.Away, round)] = 1
		}
	}

	decoded, err := decoder.Decode(assignment)

	assert.NoError(t, err)
	assert.Equal(t, schedule, decoded)
}

func TestDecodeIncompleteRound(t *testing.T) {
	const n = 10
	registry := mustRegistry(t, teamNames(n))
	decoder := NewDecoder(registry, mustScheme(t, MinMax, n))

	// Remove one of round 5's five matches
	assignment := CircleSchedule(n).Assignment()
	removed := CircleSchedule(n)[5][0]
	delete(assignment, FixtureVar(removed.Home, removed.Away, 5))

	_, err := decoder.Decode(assignment)

	assert.ErrorIs(t, err, ErrIncompleteRound)
	assert.ErrorContains(t, err, "round 5")
	assert.ErrorContains(t, err, "4 of 5")
}

func TestDecodeMutualExclusivity(t *testing.T) {
	registry := mustRegistry(t, teamNames(4))
	decoder := NewDecoder(registry, mustScheme(t, MinMax, 4))

	// Both orientations of a pair set in the same round
	assignment := CircleSchedule(4).Assignment()
	match := CircleSchedule(4)[0][0]
	assignment[FixtureVar(match.Away, match.Home, 0)] = 1

	_, err := decoder.Decode(assignment)

	assert.ErrorIs(t, err, ErrMutualExclusivity)
	assert.ErrorIs(t, err, ErrUnresolvedDerivation)
}

func TestDecodeRepeatedHosting(t *testing.T) {
	registry := mustRegistry(t, []string{"ARG", "BRA"})
	decoder := NewDecoder(registry, mustScheme(t, MinMax, 2))

	// Both rounds are perfect matchings, but the same team hosts twice
	_, err := decoder.Decode(mip.Assignment{
		"x_0_1_0": 1,
		"x_0_1_1": 1,
	})

	assert.ErrorIs(t, err, ErrMutualExclusivity)
	assert.ErrorIs(t, err, ErrUnresolvedDerivation)
}

func TestDecodeUnresolvedDerivation(t *testing.T) {
	const n = 4
	registry := mustRegistry(t, teamNames(n))
	decoder := NewDecoder(registry, mustScheme(t, Mirrored, n))

	// A derived fixture claims to be played while its generator is absent
	schedule := CircleSchedule(n)
	assignment := schedule.Assignment()
	generator := schedule[0][0]
	delete(assignment, FixtureVar(generator.Home, generator.Away, 0))

	_, err := decoder.Decode(assignment)

	assert.ErrorIs(t, err, ErrUnresolvedDerivation)
}

func TestDecodeToleratesSolverNoise(t *testing.T) {
	registry := mustRegistry(t, []string{"ARG", "BRA"})
	decoder := NewDecoder(registry, mustScheme(t, MinMax, 2))

	decoded, err := decoder.Decode(mip.Assignment{
		"x_0_1_0": 0.9999999,
		"x_1_0_1": 1.0000001,
		"x_1_0_0": 1e-9,
		"w_0_0":   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, Schedule{
		{{Home: 0, Away: 1}},
		{{Home: 1, Away: 0}},
	}, decoded)
}

func teamNames(n int) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = string(rune('A'+i/2)) + string(rune('A'+i%2))
	}
	return names
}
