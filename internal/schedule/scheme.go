package schedule

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

var ErrUnknownScheme = errors.New("unknown symmetric scheme")

// SchemeVariant selects one of the symmetry-reduction schemes from the
// round-robin literature.
type SchemeVariant int

const (
	Mirrored SchemeVariant = iota
	French
	English
	Inverted
	BackToBack
	MinMax
)

var schemeNames = map[SchemeVariant]string{
	Mirrored:   "mirrored",
	French:     "french",
	English:    "english",
	Inverted:   "inverted",
	BackToBack: "backtoback",
	MinMax:     "minmax",
}

func (v SchemeVariant) String() string {
	name, ok := schemeNames[v]
	if !ok {
		return fmt.Sprintf("scheme(%d)", int(v))
	}
	return name
}

func ParseSchemeVariant(name string) (SchemeVariant, error) {
	for variant, variantName := range schemeNames {
		if variantName == strings.ToLower(name) {
			return variant, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownScheme, name)
}

// Scheme classifies every fixture variable as either a free decision or a
// fixture derived from a generator under the scheme's canonicalization rule.
// Derived fixtures always mirror their generator with swapped venue, and
// generators are always free, so resolution never chains.
type Scheme interface {
	Variant() SchemeVariant
	// IsFree reports whether the fixture is a genuine decision of the builder
	IsFree(home, away, round int) bool
	// DerivationOf returns the generator fixture a derived fixture must equal
	DerivationOf(home, away, round int) Fixture
}

// NewScheme builds the scheme policy for a season with the given number of
// teams (even, at least 2).
func NewScheme(variant SchemeVariant, teams int) (Scheme, error) {
	switch variant {
	case Mirrored:
		return &mirroredScheme{teams: teams}, nil
	case French:
		return &frenchScheme{teams: teams}, nil
	case English:
		return &englishScheme{teams: teams}, nil
	case Inverted:
		return &invertedScheme{teams: teams}, nil
	case BackToBack:
		return &backToBackScheme{teams: teams}, nil
	case MinMax:
		return &minMaxScheme{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, variant)
}

func mustBeDerived(scheme Scheme, home, away, round int) {
	if scheme.IsFree(home, away, round) {
		log.Panicf("fixture (%d,%d,%d) is free under the %v scheme", home, away, round, scheme.Variant())
	}
}

// mirroredScheme replays the first half with swapped venues: the fixture at
// round k >= n-1 equals its reverse fixture at round k-(n-1).
type mirroredScheme struct {
	teams int
}

func (s *mirroredScheme) Variant() SchemeVariant {
	return Mirrored
}

func (s *mirroredScheme) IsFree(home, away, round int) bool {
	return round < s.teams-1
}

func (s *mirroredScheme) DerivationOf(home, away, round int) Fixture {
	mustBeDerived(s, home, away, round)
	return Fixture{Home: away, Away: home, Round: round - (s.teams - 1)}
}

// frenchScheme shifts the mirrored second half by one round: round n-1+t
// replays round t+1 with swapped venues, and the last round replays round 0.
type frenchScheme struct {
	teams int
}

func (s *frenchScheme) Variant() SchemeVariant {
	return French
}

func (s *frenchScheme) IsFree(home, away, round int) bool {
	return round < s.teams-1
}

func (s *frenchScheme) DerivationOf(home, away, round int) Fixture {
	mustBeDerived(s, home, away, round)
	if round == 2*s.teams-3 {
		return Fixture{Home: away, Away: home, Round: 0}
	}
	return Fixture{Home: away, Away: home, Round: round - (s.teams - 2)}
}

// englishScheme pairs rounds n-2 and n-1 back to back and replays rounds
// 1..n-3 at rounds n+1..2n-3 with swapped venues; rounds 0..n-2 and n stay
// free.
type englishScheme struct {
	teams int
}

func (s *englishScheme) Variant() SchemeVariant {
	return English
}

func (s *englishScheme) IsFree(home, away, round int) bool {
	return round <= s.teams-2 || round == s.teams
}

func (s *englishScheme) DerivationOf(home, away, round int) Fixture {
	mustBeDerived(s, home, away, round)
	if round == s.teams-1 {
		return Fixture{Home: away, Away: home, Round: s.teams - 2}
	}
	return Fixture{Home: away, Away: home, Round: round - s.teams}
}

// invertedScheme replays the first half in reverse order with swapped
// venues: round 2(n-1)-1-k equals the reverse of round k for k <= n-3.
type invertedScheme struct {
	teams int
}

func (s *invertedScheme) Variant() SchemeVariant {
	return Inverted
}

func (s *invertedScheme) IsFree(home, away, round int) bool {
	return round <= s.teams-1
}

func (s *invertedScheme) DerivationOf(home, away, round int) Fixture {
	mustBeDerived(s, home, away, round)
	return Fixture{Home: away, Away: home, Round: 2*(s.teams-1) - 1 - round}
}

// backToBackScheme plays each pairing twice in a row: every odd round
// replays the previous round with swapped venues. The half-season meeting
// structure does not apply under this scheme, so the builder drops the
// per-half constraints and keeps only season-level ones.
type backToBackScheme struct {
	teams int
}

func (s *backToBackScheme) Variant() SchemeVariant {
	return BackToBack
}

func (s *backToBackScheme) IsFree(home, away, round int) bool {
	return round%2 == 0
}

func (s *backToBackScheme) DerivationOf(home, away, round int) Fixture {
	mustBeDerived(s, home, away, round)
	return Fixture{Home: away, Away: home, Round: round - 1}
}

// minMaxScheme fixes no fixtures at all: it controls the spacing between the
// two meetings of each pair through windowed constraints parameterized by
// (c, d), which the builder emits directly.
type minMaxScheme struct{}

func (s *minMaxScheme) Variant() SchemeVariant {
	return MinMax
}

func (s *minMaxScheme) IsFree(home, away, round int) bool {
	return true
}

func (s *minMaxScheme) DerivationOf(home, away, round int) Fixture {
	log.Panicf("fixture (%d,%d,%d) is free under the %v scheme", home, away, round, MinMax)
	return Fixture{}
}
