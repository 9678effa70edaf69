package mip

import (
	"fmt"
	"strings"
)

// termsPerLine keeps constraint rows under the historical LP-format line limit.
const termsPerLine = 8

// ToLP renders the model in CPLEX LP format, the text format both SCIP and
// CBC read.
func (m *Model) ToLP() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\\ %s\n", m.Name)
	builder.WriteString("Minimize\n obj:")
	writeTerms(&builder, m.minimize)
	builder.WriteString("\nSubject To\n")

	for _, constraint := range m.Constraints {
		fmt.Fprintf(&builder, " %s:", constraint.Name)
		writeTerms(&builder, constraint.Terms)
		fmt.Fprintf(&builder, " %s %d\n", senseSymbol(constraint.Sense), constraint.RHS)
	}

	builder.WriteString("Binary\n")
	for _, name := range m.vars {
		fmt.Fprintf(&builder, " %s\n", name)
	}
	builder.WriteString("End\n")

	return builder.String()
}

func writeTerms(builder *strings.Builder, terms []Term) {
	for i, term := range terms {
		if i > 0 && i%termsPerLine == 0 {
			builder.WriteString("\n ")
		}
		sign := "+"
		coeff := term.Coeff
		if coeff < 0 {
			sign = "-"
			coeff = -coeff
		}
		fmt.Fprintf(builder, " %s %d %s", sign, coeff, term.Var)
	}
}

func senseSymbol(sense Sense) string {
	switch sense {
	case Equal:
		return "="
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	}
	return "="
}
