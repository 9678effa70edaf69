package mip

import "time"

type Status int

const (
	Optimal Status = iota
	Feasible
	Infeasible
	TimedOut
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	case TimedOut:
		return "timed out"
	}
	return "unknown"
}

// Assignment maps variable names to their solved values. Solvers omit
// variables at zero, so an absent key reads as zero.
type Assignment map[string]float64

func (a Assignment) Value(name string) float64 {
	return a[name]
}

func (a Assignment) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// IsOne reports whether a binary variable is set, tolerating the small
// numerical noise MIP solvers leave on integer values.
func (a Assignment) IsOne(name string) bool {
	return a[name] > 0.5
}

// Result is the tagged outcome of a solve call. Infeasible and TimedOut are
// ordinary outcomes, not errors; TimedOut may still carry the best known
// assignment.
type Result struct {
	Status     Status
	Assignment Assignment
	Objective  float64
}

type Solver interface {
	Solve(model *Model, timeLimit time.Duration) (Result, error) // Returns an error only on solver-process failures; solver verdicts are reported through Result.Status
}
