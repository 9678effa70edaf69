package schedule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/LucasGrasso/invop-football-scheduler/internal/mip"
)

var (
	ErrIncompleteRound      = errors.New("round is not a perfect matching")
	ErrUnresolvedDerivation = errors.New("cannot resolve derived fixture")
	// ErrMutualExclusivity is an unresolved derivation of its own kind: the
	// assignment sets fixtures no consistent model could set together.
	ErrMutualExclusivity = fmt.Errorf("%w: fixture mutual exclusivity violated", ErrUnresolvedDerivation)
)

// Decoder reconstructs a schedule from a solver assignment. Assignments
// follow the sparse convention (omitted variables are zero), and derived
// fixtures the model never materialized are resolved through the scheme's
// generator. Internally inconsistent assignments are rejected rather than
// decoded into a corrupt schedule.
type Decoder struct {
	registry *Registry
	scheme   Scheme
}

func NewDecoder(registry *Registry, scheme Scheme) *Decoder {
	return &Decoder{
		registry: registry,
		scheme:   scheme,
	}
}

func (d *Decoder) Decode(assignment mip.Assignment) (Schedule, error) {
	n, rounds := d.registry.Len(), d.registry.Rounds()
	indexer := NewIndexer(uint64(n), uint64(rounds))
	played := make([]bool, n*n*rounds)

	// Resolve every fixture, following derivations to their generator. A
	// derived fixture explicitly present in the assignment must agree with
	// its generator; a disagreement means the assignment and the scheme do
	// not describe the same model.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for k := 0; k < rounds; k++ {
				name := FixtureVar(i, j, k)
				value := assignment.IsOne(name)
				if !d.scheme.IsFree(i, j, k) {
					generator := d.scheme.DerivationOf(i, j, k)
					generated := assignment.IsOne(FixtureVar(generator.Home, generator.Away, generator.Round))
					if assignment.Has(name) && value != generated {
						return nil, fmt.Errorf("%w: (%d,%d,%d) contradicts its generator (%d,%d,%d)",
							ErrUnresolvedDerivation, i, j, k, generator.Home, generator.Away, generator.Round)
					}
					value = generated
				}
				played[indexer.Index(uint64(i), uint64(j), uint64(k))] = value
			}
		}
	}

	if err := d.checkExclusivity(indexer, played); err != nil {
		return nil, err
	}
	return d.collectRounds(indexer, played)
}

// checkExclusivity rejects assignments where both orientations of a pair are
// set in the same round, or an ordered pair hosts in more than one round.
func (d *Decoder) checkExclusivity(indexer Indexer, played []bool) error {
	n, rounds := d.registry.Len(), d.registry.Rounds()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			hostings := 0
			for k := 0; k < rounds; k++ {
				if !played[indexer.Index(uint64(i), uint64(j), uint64(k))] {
					continue
				}
				hostings++
				if i < j && played[indexer.Index(uint64(j), uint64(i), uint64(k))] {
					return fmt.Errorf("%w: both orientations of (%d,%d) set in round %d", ErrMutualExclusivity, i, j, k)
				}
			}
			if hostings > 1 {
				return fmt.Errorf("%w: %d hosts %d in %d rounds", ErrMutualExclusivity, i, j, hostings)
			}
		}
	}
	return nil
}

// collectRounds materializes the schedule, requiring every round to be a
// perfect matching: each team appears exactly once, home or away.
func (d *Decoder) collectRounds(indexer Indexer, played []bool) (Schedule, error) {
	n, rounds := d.registry.Len(), d.registry.Rounds()
	schedule := make(Schedule, rounds)

	for k := 0; k < rounds; k++ {
		matches := make(Round, 0, n/2)
		seen := make([]bool, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || !played[indexer.Index(uint64(i), uint64(j), uint64(k))] {
					continue
				}
				if seen[i] || seen[j] {
					return nil, fmt.Errorf("%w: a team plays twice in round %d", ErrIncompleteRound, k)
				}
				seen[i], seen[j] = true, true
				matches = append(matches, Match{Home: i, Away: j})
			}
		}
		if len(matches) != n/2 {
			return nil, fmt.Errorf("%w: round %d has %d of %d matches", ErrIncompleteRound, k, len(matches), n/2)
		}

		slices.SortFunc(matches, func(a, b Match) int { return a.Home - b.Home })
		schedule[k] = matches
	}
	return schedule, nil
}
