package export

import (
	"fmt"
	"strings"

	"github.com/LucasGrasso/invop-football-scheduler/internal/schedule"
)

// LaTeX renders the fixture table as a standalone tabular environment.
func LaTeX(registry *schedule.Registry, s schedule.Schedule) (string, error) {
	rows, err := opponents(registry, s)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "\\begin{tabular}{l%s}\n", strings.Repeat("c", s.Rounds()))
	builder.WriteString("\\hline\n")

	builder.WriteString("Team")
	for round := 0; round < s.Rounds(); round++ {
		fmt.Fprintf(&builder, " & %d", round+1)
	}
	builder.WriteString(" \\\\\n\\hline\n")

	for i, team := range registry.Teams() {
		builder.WriteString(team)
		for round := 0; round < s.Rounds(); round++ {
			fmt.Fprintf(&builder, " & %s", rows[i][round])
		}
		builder.WriteString(" \\\\\n")
	}

	builder.WriteString("\\hline\n\\end{tabular}\n")
	return builder.String(), nil
}
