package mip

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLP(t *testing.T) {
	// Arrange
	model := NewModel("test")
	model.AddBinaryVar("x_0_1_0")
	model.AddBinaryVar("x_1_0_0")
	model.AddConstraint("meet_once", []Term{
		{Var: "x_0_1_0", Coeff: 1},
		{Var: "x_1_0_0", Coeff: 1},
	}, Equal, 1)
	model.AddConstraint("cap", []Term{
		{Var: "x_0_1_0", Coeff: 2},
		{Var: "x_1_0_0", Coeff: -1},
	}, LessOrEqual, 1)
	model.Minimize([]Term{{Var: "x_1_0_0", Coeff: 1}})

	// Act
	lp := model.ToLP()

	// Assert
	assert.Contains(t, lp, "Minimize\n obj: + 1 x_1_0_0\n")
	assert.Contains(t, lp, "Subject To\n")
	assert.Contains(t, lp, " meet_once: + 1 x_0_1_0 + 1 x_1_0_0 = 1\n")
	assert.Contains(t, lp, " cap: + 2 x_0_1_0 - 1 x_1_0_0 <= 1\n")
	assert.Contains(t, lp, "Binary\n x_0_1_0\n x_1_0_0\nEnd\n")
}

func TestToLPFeasibilityObjective(t *testing.T) {
	model := NewModel("feasibility")
	model.AddBinaryVar("x_0_1_0")
	model.AddConstraint("fix", []Term{{Var: "x_0_1_0", Coeff: 1}}, GreaterOrEqual, 1)

	lp := model.ToLP()

	assert.Contains(t, lp, "Minimize\n obj:\n")
	assert.Contains(t, lp, " fix: + 1 x_0_1_0 >= 1\n")
}

func TestToLPWrapsLongConstraints(t *testing.T) {
	model := NewModel("wide")
	terms := make([]Term, 0, 20)
	for i := 0; i < 20; i++ {
		name := model.AddBinaryVar(fmt.Sprintf("x_0_%d_17", i))
		terms = append(terms, Term{Var: name, Coeff: 1})
	}
	model.AddConstraint("wide", terms, LessOrEqual, 1)

	lp := model.ToLP()

	for _, line := range strings.Split(lp, "\n") {
		assert.LessOrEqual(t, len(line), 200)
	}
}

func TestAddBinaryVarIsIdempotent(t *testing.T) {
	model := NewModel("vars")
	model.AddBinaryVar("y_0_0")
	model.AddBinaryVar("y_0_0")
	model.AddBinaryVar("y_0_2")

	assert.Equal(t, []string{"y_0_0", "y_0_2"}, model.Vars())
}

func TestAddEquality(t *testing.T) {
	model := NewModel("equality")
	model.AddBinaryVar("x_0_1_0")
	model.AddBinaryVar("x_1_0_9")
	model.AddEquality("mirror_0_1_0", "x_1_0_9", "x_0_1_0")

	assert.Len(t, model.Constraints, 1)
	constraint := model.Constraints[0]
	assert.Equal(t, Equal, constraint.Sense)
	assert.Equal(t, int64(0), constraint.RHS)
	assert.Equal(t, []Term{{Var: "x_1_0_9", Coeff: 1}, {Var: "x_0_1_0", Coeff: -1}}, constraint.Terms)
}
