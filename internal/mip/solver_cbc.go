package mip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const cbcPath = "cbc"

type cbcSolver struct{}

func NewCBCSolver() Solver {
	return &cbcSolver{}
}

func (solver *cbcSolver) Solve(model *Model, timeLimit time.Duration) (Result, error) {
	dir, err := os.MkdirTemp("", "cbc")
	if err != nil {
		return Result{}, fmt.Errorf("cannot create working directory: %w", err)
	}
	defer os.RemoveAll(dir)

	lpFile := filepath.Join(dir, "model.lp")
	solFile := filepath.Join(dir, "model.sol")
	if err := os.WriteFile(lpFile, []byte(model.ToLP()), 0644); err != nil {
		return Result{}, fmt.Errorf("cannot write model file: %w", err)
	}

	cmd := exec.Command(cbcPath,
		lpFile,
		"-seconds", fmt.Sprint(int64(timeLimit.Seconds())),
		"-solve",
		"-solution", solFile,
	)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("an error occurred during cbc execution: %v : %v", err.Error(), stdErr.String())
	}

	solText, err := os.ReadFile(solFile)
	if err != nil {
		return Result{}, fmt.Errorf("cannot read solution file: %w", err)
	}

	return ParseCBCSolution(string(solText))
}
