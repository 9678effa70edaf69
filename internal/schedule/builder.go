package schedule

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/LucasGrasso/invop-football-scheduler/internal/mip"
)

var (
	ErrEmptyRegistry       = errors.New("registry has no teams")
	ErrInvalidTopTeams     = errors.New("invalid top-team subset")
	ErrInvalidSchemeParams = errors.New("invalid scheme parameters")
)

// defaultMinSpacing bans back-to-back games against distinct top teams.
const defaultMinSpacing = 2

// Options configure the parts of the formulation that are tournament policy
// rather than round-robin structure.
type Options struct {
	// TopTeams enables the marquee-matchup spacing constraint for the named
	// subset; it must contain at least two known teams when non-empty.
	TopTeams []string
	// MinSpacing is the minimum round distance between any team's games
	// against distinct top teams; zero selects the default of 2.
	MinSpacing int
	// BreakBound caps the away breaks per team per half-season when positive;
	// zero or negative leaves breaks to the objective alone.
	BreakBound int
	// Feasibility drops the break-minimization objective.
	Feasibility bool
	// C and D are the MinMax scheme's window parameters: the two meetings of
	// each pair must be more than C and at most D rounds apart.
	C int
	D int
}

// Builder turns a registry, a symmetric scheme and the tournament options
// into a solver-agnostic integer program. It is a pure transformation and
// holds no state across Build calls.
type Builder struct {
	registry *Registry
	scheme   Scheme
	opts     Options
}

func NewBuilder(registry *Registry, scheme Scheme, opts Options) *Builder {
	return &Builder{
		registry: registry,
		scheme:   scheme,
		opts:     opts,
	}
}

// Build emits the full model: fixture variables x_i_j_k, sequence and break
// indicators y_i_k / w_i_k, the double round-robin structure, the scheme's
// symmetry derivations and the configured policy constraints. The
// formulation follows Durán, Mijangos and Frisk's model for the South
// American 2018 World Cup qualifiers.
func (b *Builder) Build() (*mip.Model, error) {
	if b.registry == nil || b.registry.Len() == 0 {
		return nil, ErrEmptyRegistry
	}

	topTeams, spacing, err := b.validateTopTeams()
	if err != nil {
		return nil, err
	}
	if err := b.validateSchemeParams(); err != nil {
		return nil, err
	}

	model := mip.NewModel("football-scheduler")
	b.addVariables(model)
	b.meetingConstraints(model)
	b.compactnessConstraints(model)
	b.topTeamConstraints(model, topTeams, spacing)
	b.balanceConstraints(model)
	b.breakConstraints(model)
	b.schemeConstraints(model)

	if !b.opts.Feasibility {
		model.Minimize(b.breakTerms())
	}
	return model, nil
}

func (b *Builder) validateTopTeams() (topTeams []int, spacing int, err error) {
	if len(b.opts.TopTeams) == 0 {
		return nil, 0, nil
	}
	if len(b.opts.TopTeams) < 2 {
		return nil, 0, fmt.Errorf("%w: need at least 2 top teams, got %d", ErrInvalidTopTeams, len(b.opts.TopTeams))
	}

	topTeams = make([]int, 0, len(b.opts.TopTeams))
	for _, team := range b.opts.TopTeams {
		index, err := b.registry.IndexOf(team)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrInvalidTopTeams, err)
		}
		topTeams = append(topTeams, index)
	}
	if len(lo.Uniq(topTeams)) != len(topTeams) {
		return nil, 0, fmt.Errorf("%w: duplicate top team", ErrInvalidTopTeams)
	}

	spacing = b.opts.MinSpacing
	if spacing == 0 {
		spacing = defaultMinSpacing
	}
	if spacing < 2 || spacing > b.registry.Rounds() {
		return nil, 0, fmt.Errorf("%w: minimum spacing %d out of range", ErrInvalidTopTeams, spacing)
	}
	return topTeams, spacing, nil
}

func (b *Builder) validateSchemeParams() error {
	n := b.registry.Len()
	if b.scheme.Variant() != MinMax {
		if b.opts.C != 0 || b.opts.D != 0 {
			return fmt.Errorf("%w: c and d apply only to the %v scheme", ErrInvalidSchemeParams, MinMax)
		}
		return nil
	}
	if b.opts.C < 1 || b.opts.C > n {
		return fmt.Errorf("%w: c must be in [1, %d], got %d", ErrInvalidSchemeParams, n, b.opts.C)
	}
	if b.opts.D < b.opts.C || b.opts.D > 2*(n-1) {
		return fmt.Errorf("%w: d must be in [%d, %d], got %d", ErrInvalidSchemeParams, b.opts.C, 2*(n-1), b.opts.D)
	}
	return nil
}

func (b *Builder) addVariables(model *mip.Model) {
	n, rounds := b.registry.Len(), b.registry.Rounds()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for k := 0; k < rounds; k++ {
				model.AddBinaryVar(FixtureVar(i, j, k))
			}
		}
	}
	for i := 0; i < n; i++ {
		for k := 0; k < rounds; k += 2 {
			model.AddBinaryVar(SequenceVar(i, k))
			model.AddBinaryVar(BreakVar(i, k))
		}
	}
}

// meetingConstraints make every ordered pair meet as (home, away) exactly
// once over the season, and once per unordered pair per half. The per-half
// structure does not hold under the back-to-back scheme and is dropped there.
func (b *Builder) meetingConstraints(model *mip.Model) {
	n, rounds := b.registry.Len(), b.registry.Rounds()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			terms := make([]mip.Term, 0, rounds)
			for k := 0; k < rounds; k++ {
				terms = append(terms, mip.Term{Var: FixtureVar(i, j, k), Coeff: 1})
			}
			model.AddConstraint(fmt.Sprintf("one_home_%d_%d", i, j), terms, mip.Equal, 1)
		}
	}

	if b.scheme.Variant() == BackToBack {
		return
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			firstHalf := make([]mip.Term, 0, n-1)
			secondHalf := make([]mip.Term, 0, n-1)
			for k := 0; k < rounds; k++ {
				terms := &firstHalf
				if k >= n-1 {
					terms = &secondHalf
				}
				*terms = append(*terms,
					mip.Term{Var: FixtureVar(i, j, k), Coeff: 1},
					mip.Term{Var: FixtureVar(j, i, k), Coeff: 1},
				)
			}
			model.AddConstraint(fmt.Sprintf("match_first_half_%d_%d", i, j), firstHalf, mip.Equal, 1)
			model.AddConstraint(fmt.Sprintf("match_second_half_%d_%d", i, j), secondHalf, mip.Equal, 1)
		}
	}
}

// compactnessConstraints make every team play exactly one match per round.
func (b *Builder) compactnessConstraints(model *mip.Model) {
	n, rounds := b.registry.Len(), b.registry.Rounds()
	for j := 0; j < n; j++ {
		for k := 0; k < rounds; k++ {
			terms := make([]mip.Term, 0, 2*(n-1))
			for i := 0; i < n; i++ {
				if i == j {
					continue
				}
				terms = append(terms,
					mip.Term{Var: FixtureVar(i, j, k), Coeff: 1},
					mip.Term{Var: FixtureVar(j, i, k), Coeff: 1},
				)
			}
			model.AddConstraint(fmt.Sprintf("one_match_per_round_%d_%d", j, k), terms, mip.Equal, 1)
		}
	}
}

// topTeamConstraints keep any non-top team's games against top teams at
// least `spacing` rounds apart: within every window of `spacing` consecutive
// rounds, at most one game against any top team.
func (b *Builder) topTeamConstraints(model *mip.Model, topTeams []int, spacing int) {
	if len(topTeams) == 0 {
		return
	}
	n, rounds := b.registry.Len(), b.registry.Rounds()

	for i := 0; i < n; i++ {
		if lo.Contains(topTeams, i) {
			continue
		}
		for k := 0; k <= rounds-spacing; k++ {
			terms := make([]mip.Term, 0, 2*spacing*len(topTeams))
			for q := k; q < k+spacing; q++ {
				for _, j := range topTeams {
					terms = append(terms,
						mip.Term{Var: FixtureVar(i, j, q), Coeff: 1},
						mip.Term{Var: FixtureVar(j, i, q), Coeff: 1},
					)
				}
			}
			model.AddConstraint(fmt.Sprintf("top_team_%d_%d", i, k), terms, mip.LessOrEqual, 1)
		}
	}
}

// balanceConstraints tie the y_i_k indicators to home-away sequences over
// double rounds and keep each team's sequence count within [n/2-1, n/2].
func (b *Builder) balanceConstraints(model *mip.Model) {
	n, rounds := b.registry.Len(), b.registry.Rounds()

	for i := 0; i < n; i++ {
		bounds := make([]mip.Term, 0, rounds/2)
		for k := 0; k < rounds; k += 2 {
			bounds = append(bounds, mip.Term{Var: SequenceVar(i, k), Coeff: 1})
		}
		model.AddConstraint(fmt.Sprintf("bound_below_HA_seq_%d", i), bounds, mip.GreaterOrEqual, int64(n/2-1))
		model.AddConstraint(fmt.Sprintf("bound_above_HA_seq_%d", i), bounds, mip.LessOrEqual, int64(n/2))

		for k := 0; k < rounds; k += 2 {
			sequence := []mip.Term{{Var: SequenceVar(i, k), Coeff: -1}}
			homeFirst := make([]mip.Term, 0, n)
			awaySecond := make([]mip.Term, 0, n)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				sequence = append(sequence,
					mip.Term{Var: FixtureVar(i, j, k), Coeff: 1},
					mip.Term{Var: FixtureVar(j, i, k+1), Coeff: 1},
				)
				homeFirst = append(homeFirst, mip.Term{Var: FixtureVar(i, j, k), Coeff: 1})
				awaySecond = append(awaySecond, mip.Term{Var: FixtureVar(j, i, k+1), Coeff: 1})
			}
			model.AddConstraint(fmt.Sprintf("HA_%d_%d", i, k), sequence, mip.LessOrEqual, 1)
			model.AddConstraint(fmt.Sprintf("HA_home_%d_%d", i, k),
				append(homeFirst, mip.Term{Var: SequenceVar(i, k), Coeff: -1}), mip.GreaterOrEqual, 0)
			model.AddConstraint(fmt.Sprintf("HA_away_%d_%d", i, k),
				append(awaySecond, mip.Term{Var: SequenceVar(i, k), Coeff: -1}), mip.GreaterOrEqual, 0)
		}
	}
}

// breakConstraints link the w_i_k indicators to away breaks in double rounds
// and, when a hard bound is configured, cap them per team per half.
func (b *Builder) breakConstraints(model *mip.Model) {
	n, rounds := b.registry.Len(), b.registry.Rounds()

	for i := 0; i < n; i++ {
		for k := 0; k < rounds; k += 2 {
			awayBreak := []mip.Term{{Var: BreakVar(i, k), Coeff: -1}}
			awayFirst := make([]mip.Term, 0, n)
			awaySecond := make([]mip.Term, 0, n)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				awayBreak = append(awayBreak,
					mip.Term{Var: FixtureVar(j, i, k), Coeff: 1},
					mip.Term{Var: FixtureVar(j, i, k+1), Coeff: 1},
				)
				awayFirst = append(awayFirst, mip.Term{Var: FixtureVar(j, i, k), Coeff: 1})
				awaySecond = append(awaySecond, mip.Term{Var: FixtureVar(j, i, k+1), Coeff: 1})
			}
			model.AddConstraint(fmt.Sprintf("AB_%d_%d", i, k), awayBreak, mip.LessOrEqual, 1)
			model.AddConstraint(fmt.Sprintf("AB_first_%d_%d", i, k),
				append(awayFirst, mip.Term{Var: BreakVar(i, k), Coeff: -1}), mip.GreaterOrEqual, 0)
			model.AddConstraint(fmt.Sprintf("AB_second_%d_%d", i, k),
				append(awaySecond, mip.Term{Var: BreakVar(i, k), Coeff: -1}), mip.GreaterOrEqual, 0)
		}

		if b.opts.BreakBound <= 0 {
			continue
		}
		firstHalf := make([]mip.Term, 0, rounds/4+1)
		secondHalf := make([]mip.Term, 0, rounds/4+1)
		for k := 0; k < rounds; k += 2 {
			terms := &firstHalf
			if k >= n-1 {
				terms = &secondHalf
			}
			*terms = append(*terms, mip.Term{Var: BreakVar(i, k), Coeff: 1})
		}
		model.AddConstraint(fmt.Sprintf("break_bound_first_%d", i), firstHalf, mip.LessOrEqual, int64(b.opts.BreakBound))
		model.AddConstraint(fmt.Sprintf("break_bound_second_%d", i), secondHalf, mip.LessOrEqual, int64(b.opts.BreakBound))
	}
}

// schemeConstraints bind every derived fixture to its generator, collapsing
// symmetric solutions. The MinMax scheme fixes nothing and instead windows
// the distance between the two meetings of each pair.
func (b *Builder) schemeConstraints(model *mip.Model) {
	if b.scheme.Variant() == MinMax {
		b.minMaxConstraints(model)
		return
	}

	n, rounds := b.registry.Len(), b.registry.Rounds()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for k := 0; k < rounds; k++ {
				if b.scheme.IsFree(i, j, k) {
					continue
				}
				generator := b.scheme.DerivationOf(i, j, k)
				model.AddEquality(
					fmt.Sprintf("%v_%d_%d_%d", b.scheme.Variant(), i, j, k),
					FixtureVar(i, j, k),
					FixtureVar(generator.Home, generator.Away, generator.Round),
				)
			}
		}
	}
}

func (b *Builder) minMaxConstraints(model *mip.Model) {
	n, rounds := b.registry.Len(), b.registry.Rounds()
	c, d := b.opts.C, b.opts.D

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// Meetings of the pair are more than c rounds apart
			for k := 0; k < rounds-c; k++ {
				terms := make([]mip.Term, 0, 2*(c+1))
				for q := k; q <= k+c; q++ {
					terms = append(terms,
						mip.Term{Var: FixtureVar(i, j, q), Coeff: 1},
						mip.Term{Var: FixtureVar(j, i, q), Coeff: 1},
					)
				}
				model.AddConstraint(fmt.Sprintf("min_max_gap_%d_%d_%d", i, j, k), terms, mip.LessOrEqual, 1)
			}
			// The return game is at most d rounds away
			for k := 0; k < rounds; k++ {
				terms := []mip.Term{{Var: FixtureVar(j, i, k), Coeff: -1}}
				for q := max(k-d, 0); q <= min(k+d, rounds-1); q++ {
					if q == k {
						continue
					}
					terms = append(terms, mip.Term{Var: FixtureVar(i, j, q), Coeff: 1})
				}
				model.AddConstraint(fmt.Sprintf("min_max_window_%d_%d_%d", i, j, k), terms, mip.GreaterOrEqual, 0)
			}
		}
	}
}

func (b *Builder) breakTerms() []mip.Term {
	n, rounds := b.registry.Len(), b.registry.Rounds()
	terms := make([]mip.Term, 0, n*rounds/2)
	for i := 0; i < n; i++ {
		for k := 0; k < rounds; k += 2 {
			terms = append(terms, mip.Term{Var: BreakVar(i, k), Coeff: 1})
		}
	}
	return terms
}
