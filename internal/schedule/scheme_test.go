package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allVariants = []SchemeVariant{Mirrored, French, English, Inverted, BackToBack, MinMax}

func TestSchemeClassifiesEveryFixture(t *testing.T) {
	for _, variant := range allVariants {
		for _, n := range []int{2, 4, 6, 10} {
			t.Run(fmt.Sprintf("%v_n%d", variant, n), func(t *testing.T) {
				// Arrange
				scheme, err := NewScheme(variant, n)
				assert.NoError(t, err)
				rounds := 2 * (n - 1)

				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						if i == j {
							continue
						}
						for k := 0; k < rounds; k++ {
							if scheme.IsFree(i, j, k) {
								continue
							}

							// Act
							generator := scheme.DerivationOf(i, j, k)

							// Assert: the generator mirrors the venue, lives in a
							// valid round and is itself a free decision
							assert.Equal(t, j, generator.Home)
							assert.Equal(t, i, generator.Away)
							assert.GreaterOrEqual(t, generator.Round, 0)
							assert.Less(t, generator.Round, rounds)
							assert.NotEqual(t, k, generator.Round)
							assert.True(t, scheme.IsFree(generator.Home, generator.Away, generator.Round))
						}
					}
				}
			})
		}
	}
}

func TestSchemeFreeRounds(t *testing.T) {
	const n = 10
	freeRounds := func(scheme Scheme) []int {
		rounds := []int{}
		for k := 0; k < 2*(n-1); k++ {
			if scheme.IsFree(0, 1, k) {
				rounds = append(rounds, k)
			}
		}
		return rounds
	}

	scenarios := []struct {
		variant SchemeVariant
		rounds  []int
	}{
		{Mirrored, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{French, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{English, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}},
		{Inverted, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{BackToBack, []int{0, 2, 4, 6, 8, 10, 12, 14, 16}},
		{MinMax, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}},
	}

	for _, scenario := range scenarios {
		scheme, err := NewScheme(scenario.variant, n)
		assert.NoError(t, err)
		assert.Equal(t, scenario.rounds, freeRounds(scheme), "scheme %v", scenario.variant)
	}
}

func TestSchemeDerivations(t *testing.T) {
	const n = 10 // 18 rounds

	mirrored, _ := NewScheme(Mirrored, n)
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 0}, mirrored.DerivationOf(0, 1, 9))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 8}, mirrored.DerivationOf(0, 1, 17))

	french, _ := NewScheme(French, n)
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 1}, french.DerivationOf(0, 1, 9))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 8}, french.DerivationOf(0, 1, 16))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 0}, french.DerivationOf(0, 1, 17))

	english, _ := NewScheme(English, n)
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 8}, english.DerivationOf(0, 1, 9))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 1}, english.DerivationOf(0, 1, 11))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 7}, english.DerivationOf(0, 1, 17))

	inverted, _ := NewScheme(Inverted, n)
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 7}, inverted.DerivationOf(0, 1, 10))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 0}, inverted.DerivationOf(0, 1, 17))

	backToBack, _ := NewScheme(BackToBack, n)
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 0}, backToBack.DerivationOf(0, 1, 1))
	assert.Equal(t, Fixture{Home: 1, Away: 0, Round: 16}, backToBack.DerivationOf(0, 1, 17))
}

func TestParseSchemeVariant(t *testing.T) {
	for _, variant := range allVariants {
		parsed, err := ParseSchemeVariant(variant.String())
		assert.NoError(t, err)
		assert.Equal(t, variant, parsed)
	}

	parsed, err := ParseSchemeVariant("MIRRORED")
	assert.NoError(t, err)
	assert.Equal(t, Mirrored, parsed)

	_, err = ParseSchemeVariant("round-robin")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}
