package mip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const scipOutput = `
SCIP version 8.0.4 [precision: 8 byte]

SCIP Status        : problem is solved [optimal solution found]
Solving Time (sec) : 0.42
Primal Bound       : +0.00000000000000e+00 (1 solutions)
`

const scipSolution = `solution status: optimal solution found
objective value:                                    2
x_0_1_0                                             1 	(obj:0)
x_1_0_9                                             1 	(obj:0)
w_3_4                                               1 	(obj:1)
w_5_0                                               1 	(obj:1)
`

func TestParseSCIPStatus(t *testing.T) {
	scenarios := []struct {
		line   string
		status Status
	}{
		{"SCIP Status        : problem is solved [optimal solution found]", Optimal},
		{"SCIP Status        : problem is solved [infeasible]", Infeasible},
		{"SCIP Status        : solving was interrupted [time limit reached]", TimedOut},
	}

	for _, scenario := range scenarios {
		status, err := ParseSCIPStatus("header\n" + scenario.line + "\nfooter\n")
		assert.NoError(t, err)
		assert.Equal(t, scenario.status, status)
	}

	_, err := ParseSCIPStatus("no verdict here")
	assert.Error(t, err)
}

func TestParseSCIPSolution(t *testing.T) {
	// Act
	assignment, objective := ParseSCIPSolution(scipSolution)

	// Assert
	assert.Equal(t, 2.0, objective)
	assert.Len(t, assignment, 4)
	assert.True(t, assignment.IsOne("x_0_1_0"))
	assert.True(t, assignment.IsOne("w_3_4"))
	assert.False(t, assignment.IsOne("x_0_1_5")) // omitted variables read as zero
	assert.False(t, assignment.Has("x_0_1_5"))
}

func TestParseSCIPSolutionWithoutIncumbent(t *testing.T) {
	assignment, objective := ParseSCIPSolution("no solution available\n")

	assert.Nil(t, assignment)
	assert.Equal(t, 0.0, objective)
}

func TestParseSCIPStatusFromFullOutput(t *testing.T) {
	status, err := ParseSCIPStatus(scipOutput)

	assert.NoError(t, err)
	assert.Equal(t, Optimal, status)
}

func TestParseCBCSolution(t *testing.T) {
	solText := `Optimal - objective value 0.00000000
      0 x_0_1_0               1                       0
      1 x_1_0_9               1                       0
      2 y_0_0                 0                       0
`

	result, err := ParseCBCSolution(solText)

	assert.NoError(t, err)
	assert.Equal(t, Optimal, result.Status)
	assert.Equal(t, 0.0, result.Objective)
	assert.True(t, result.Assignment.IsOne("x_0_1_0"))
	assert.True(t, result.Assignment.IsOne("x_1_0_9"))
	assert.False(t, result.Assignment.IsOne("y_0_0"))
}

func TestParseCBCSolutionInfeasible(t *testing.T) {
	result, err := ParseCBCSolution("Infeasible - objective value 0.00000000\n")

	assert.NoError(t, err)
	assert.Equal(t, Infeasible, result.Status)
	assert.Nil(t, result.Assignment)
}

func TestParseCBCSolutionTimedOut(t *testing.T) {
	solText := `Stopped on time limit - objective value 4.00000000
      0 x_0_1_0               1                       0
`

	result, err := ParseCBCSolution(solText)

	assert.NoError(t, err)
	assert.Equal(t, TimedOut, result.Status)
	assert.Equal(t, 4.0, result.Objective)
	assert.True(t, result.Assignment.IsOne("x_0_1_0"))
}

func TestParseCBCSolutionEmpty(t *testing.T) {
	_, err := ParseCBCSolution("")
	assert.Error(t, err)
}
