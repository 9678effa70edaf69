package mip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const scipPath = "scip"

type scipSolver struct{}

func NewSCIPSolver() Solver {
	return &scipSolver{}
}

func (solver *scipSolver) Solve(model *Model, timeLimit time.Duration) (Result, error) {
	dir, err := os.MkdirTemp("", "scip")
	if err != nil {
		return Result{}, fmt.Errorf("cannot create working directory: %w", err)
	}
	defer os.RemoveAll(dir)

	lpFile := filepath.Join(dir, "model.lp")
	solFile := filepath.Join(dir, "model.sol")
	if err := os.WriteFile(lpFile, []byte(model.ToLP()), 0644); err != nil {
		return Result{}, fmt.Errorf("cannot write model file: %w", err)
	}

	cmd := exec.Command(scipPath,
		"-c", "read "+lpFile,
		"-c", fmt.Sprintf("set limits time %d", int64(timeLimit.Seconds())),
		"-c", "optimize",
		"-c", "write solution "+solFile,
		"-c", "quit",
	)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("an error occurred during scip execution: %v : %v", err.Error(), stdErr.String())
	}

	status, err := ParseSCIPStatus(stdOut.String())
	if err != nil {
		return Result{}, err
	}

	result := Result{Status: status}
	if status == Infeasible {
		return result, nil
	}

	// SCIP writes "no solution available" instead of variable lines when it
	// timed out before finding an incumbent.
	solText, err := os.ReadFile(solFile)
	if err != nil {
		if status == TimedOut {
			return result, nil
		}
		return Result{}, fmt.Errorf("cannot read solution file: %w", err)
	}

	assignment, objective := ParseSCIPSolution(string(solText))
	result.Assignment = assignment
	result.Objective = objective
	return result, nil
}
