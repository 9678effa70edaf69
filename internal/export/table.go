// Package export renders decoded schedules for human consumption. It only
// reads the schedule and the registry's index<->identity map; all scheduling
// logic lives upstream.
package export

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/LucasGrasso/invop-football-scheduler/internal/schedule"
)

// opponents resolves each team's opponent entry per round: the opponent's
// identity, prefixed with "@" for away games.
func opponents(registry *schedule.Registry, s schedule.Schedule) ([][]string, error) {
	rows := make([][]string, registry.Len())
	for i := range rows {
		rows[i] = make([]string, s.Rounds())
	}

	for round, matches := range s {
		for _, match := range matches {
			home, err := registry.IdentityOf(match.Home)
			if err != nil {
				return nil, err
			}
			away, err := registry.IdentityOf(match.Away)
			if err != nil {
				return nil, err
			}
			rows[match.Home][round] = away
			rows[match.Away][round] = "@" + home
		}
	}
	return rows, nil
}

// Table renders the schedule as a fixture table: one row per team, one
// column per round, away games marked with "@".
func Table(registry *schedule.Registry, s schedule.Schedule) (string, error) {
	rows, err := opponents(registry, s)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	writer := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprint(writer, "Team")
	for round := 0; round < s.Rounds(); round++ {
		fmt.Fprintf(writer, "\t%d", round+1)
	}
	fmt.Fprintln(writer)

	for i, team := range registry.Teams() {
		fmt.Fprint(writer, team)
		for round := 0; round < s.Rounds(); round++ {
			fmt.Fprintf(writer, "\t%s", rows[i][round])
		}
		fmt.Fprintln(writer)
	}

	if err := writer.Flush(); err != nil {
		return "", err
	}
	return builder.String(), nil
}
