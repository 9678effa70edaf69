package schedule

import "fmt"

// Fixture is an ordered (home, away) pairing assigned to a round.
type Fixture struct {
	Home  int
	Away  int
	Round int
}

// Indexer gives a unique index to a combination of fixture attributes and
// vice versa. Builder, decoder and exporters agree on variable identity only
// through this mapping and the x_i_j_k naming convention.
type Indexer interface {
	// Returns a unique index for a (home, away, round) combination
	Index(home, away, round uint64) uint64
	// Returns the (home, away, round) combination of a unique index
	Attributes(index uint64) (home, away, round uint64)
}

func NewIndexer(teams, rounds uint64) Indexer {
	return &sortedIndexer{
		teams:  teams,
		rounds: rounds,
	}
}

type sortedIndexer struct {
	teams  uint64
	rounds uint64
}

func (i *sortedIndexer) Index(home, away, round uint64) uint64 {
	return home + i.teams*away + i.teams*i.teams*round
}

func (i *sortedIndexer) Attributes(index uint64) (home uint64, away uint64, round uint64) {
	home = index % i.teams
	index = index / i.teams

	away = index % i.teams
	index = index / i.teams

	round = index

	return home, away, round
}

// FixtureVar names the binary decision "home hosts away in round": x_i_j_k.
// The naming is shared with the solver's solution files.
func FixtureVar(home, away, round int) string {
	return fmt.Sprintf("x_%d_%d_%d", home, away, round)
}

// SequenceVar names the home-away sequence indicator y_i_k for the double
// round starting at round k.
func SequenceVar(team, round int) string {
	return fmt.Sprintf("y_%d_%d", team, round)
}

// BreakVar names the away-break indicator w_i_k for the double round starting
// at round k.
func BreakVar(team, round int) string {
	return fmt.Sprintf("w_%d_%d", team, round)
}
