package mip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseSCIPStatus extracts the solve verdict from SCIP's interactive-shell
// output ("SCIP Status : problem is solved [optimal solution found]").
func ParseSCIPStatus(solverOutput string) (Status, error) {
	statusLine, ok := lo.Find(strings.Split(solverOutput, "\n"), func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), "SCIP Status")
	})
	if !ok {
		return 0, fmt.Errorf("no status line in scip output")
	}

	switch {
	case strings.Contains(statusLine, "optimal solution found"):
		return Optimal, nil
	case strings.Contains(statusLine, "infeasible"):
		return Infeasible, nil
	case strings.Contains(statusLine, "time limit reached"):
		return TimedOut, nil
	case strings.Contains(statusLine, "problem is solved"):
		return Optimal, nil
	case strings.Contains(statusLine, "interrupted"):
		return TimedOut, nil
	}
	return Feasible, nil
}

// ParseSCIPSolution parses the file written by SCIP's "write solution"
// command: a status line, an objective line, then "name value (obj:coef)"
// rows. Variables at zero are omitted by SCIP.
func ParseSCIPSolution(solText string) (Assignment, float64) {
	if strings.Contains(solText, "no solution available") {
		return nil, 0
	}

	assignment := Assignment{}
	var objective float64
	for _, line := range strings.Split(solText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "solution status") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "objective value:"); ok {
			objective, _ = strconv.ParseFloat(strings.TrimSpace(rest), 64)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		assignment[fields[0]] = value
	}
	return assignment, objective
}

// ParseCBCSolution parses the file written by CBC's "-solution" option: a
// verdict header ("Optimal - objective value 0.00000000"), then
// "index name value reduced-cost" rows.
func ParseCBCSolution(solText string) (Result, error) {
	lines := strings.Split(solText, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Result{}, fmt.Errorf("empty cbc solution file")
	}

	header := lines[0]
	var status Status
	switch {
	case strings.Contains(header, "Infeasible") || strings.Contains(header, "infeasible"):
		return Result{Status: Infeasible}, nil
	case strings.HasPrefix(header, "Optimal"):
		status = Optimal
	case strings.Contains(header, "Stopped on time"):
		status = TimedOut
	default:
		status = Feasible
	}

	result := Result{Status: status, Assignment: Assignment{}}
	if splits := strings.Split(header, "objective value"); len(splits) == 2 {
		result.Objective, _ = strconv.ParseFloat(strings.TrimSpace(splits[1]), 64)
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		result.Assignment[fields[1]] = value
	}

	if status == TimedOut && len(result.Assignment) == 0 {
		result.Assignment = nil
	}
	return result, nil
}
