package schedule

import "slices"

// CircleSchedule builds a valid mirrored double round-robin for n teams
// (even, n >= 2) with the circle method: team n-1 stays fixed while the
// others rotate, and the second half replays the first with swapped venues.
// Useful as a hand-constructed feasible solution in tests and benchmarks.
func CircleSchedule(n int) Schedule {
	rounds := 2 * (n - 1)
	schedule := make(Schedule, rounds)

	for r := 0; r < n-1; r++ {
		matches := make(Round, 0, n/2)

		// Alternate the fixed team's venue so it does not host every round
		if r%2 == 0 {
			matches = append(matches, Match{Home: n - 1, Away: r})
		} else {
			matches = append(matches, Match{Home: r, Away: n - 1})
		}

		for i := 1; i <= (n-2)/2; i++ {
			home := (r + i) % (n - 1)
			away := (r - i + n - 1) % (n - 1)
			if i%2 == 0 {
				home, away = away, home
			}
			matches = append(matches, Match{Home: home, Away: away})
		}

		mirror := make(Round, 0, n/2)
		for _, match := range matches {
			mirror = append(mirror, Match{Home: match.Away, Away: match.Home})
		}

		schedule[r] = sortRound(matches)
		schedule[r+n-1] = sortRound(mirror)
	}
	return schedule
}

func sortRound(matches Round) Round {
	slices.SortFunc(matches, func(a, b Match) int { return a.Home - b.Home })
	return matches
}
