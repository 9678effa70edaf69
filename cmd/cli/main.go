package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/LucasGrasso/invop-football-scheduler/internal/export"
	"github.com/LucasGrasso/invop-football-scheduler/internal/mip"
	"github.com/LucasGrasso/invop-football-scheduler/internal/schedule"
)

var (
	validSolvers = []string{"scip", "cbc"}
	solvers      = map[string]func() mip.Solver{
		"scip": mip.NewSCIPSolver,
		"cbc":  mip.NewCBCSolver,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	schemePtr := flag.String("scheme", "mirrored", "Symmetric scheme to reduce the search space. Allowed values are: \"mirrored\", \"french\", \"english\", \"inverted\", \"backtoback\", \"minmax\", where \"mirrored\" is the default")
	solverPtr := flag.String("solver", "scip", "MIP-Solver to use. Allowed values are: \"scip\", \"cbc\", where \"scip\" is the default")
	timeLimitPtr := flag.Int("timelimit", 300, "Solver time limit in seconds")
	outFilePathPtr := flag.String("out", "", "Path to the file where the fixture table will be written; if empty, it'll be written into the Standard Output")
	latexFilePathPtr := flag.String("latex", "", "Path to the file where a LaTeX fixture table will be written; if empty, none is written")
	modelFilePathPtr := flag.String("model", "", "Path to the file where the LP model will be written; if empty, none is written")
	solutionFilePathPtr := flag.String("solution", "", "Path to the file where the raw solver assignment will be written; if empty, none is written")
	flag.Parse()
	schemeName := strings.ToLower(*schemePtr)
	solverName := strings.ToLower(*solverPtr)
	filePath := *filePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validSolvers, solverName) {
		log.Fatalf("%v is not a valid solver", solverName)
	} else if *timeLimitPtr <= 0 {
		log.Fatalf("time limit must be positive: %v", *timeLimitPtr)
	}
	variant, err := schedule.ParseSchemeVariant(schemeName)
	if err != nil {
		log.Fatalf("%v is not a valid scheme", schemeName)
	}

	// Extract input
	input, err := schedule.InputFromJSON(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	registry, err := schedule.NewRegistry(input.Teams)
	if err != nil {
		log.Fatalf("cannot build team registry: %v", err)
	}
	scheme, err := schedule.NewScheme(variant, registry.Len())
	if err != nil {
		log.Fatalf("cannot build scheme: %v", err)
	}

	// Build model
	model, err := schedule.NewBuilder(registry, scheme, input.Options()).Build()
	if err != nil {
		log.Fatalf("an error occurred during model construction: %v", err)
	}
	writeArtifact(*modelFilePathPtr, model.ToLP())

	// Solve
	solver := solvers[solverName]()
	result, err := solver.Solve(model, time.Duration(*timeLimitPtr)*time.Second)
	if err != nil {
		log.Fatalf("an error occurred during solver execution: %v", err)
	}
	switch result.Status {
	case mip.Infeasible:
		fmt.Println("Model is infeasible: relax the break bound or the top-team spacing, or choose another scheme")
		os.Exit(20)
	case mip.TimedOut:
		if result.Assignment == nil {
			fmt.Printf("No schedule found within %v seconds\n", *timeLimitPtr)
			os.Exit(21)
		}
		fmt.Printf("Time limit reached, using best known schedule (objective %v)\n", result.Objective)
	default:
		fmt.Printf("Solver finished with a %v schedule (objective %v)\n", result.Status, result.Objective)
	}
	writeArtifact(*solutionFilePathPtr, formatAssignment(result.Assignment))

	// Decode and verify
	decoded, err := schedule.NewDecoder(registry, scheme).Decode(result.Assignment)
	if err != nil {
		log.Fatalf("cannot decode solver assignment: %v", err)
	}
	if !schedule.Verify(registry, decoded) {
		fmt.Println("Decoded schedule violates the round-robin invariants")
		os.Exit(15)
	}

	// Render
	table, err := export.Table(registry, decoded)
	if err != nil {
		log.Fatalf("cannot render fixture table: %v", err)
	}
	if *outFilePathPtr == "" {
		fmt.Print(table)
	} else {
		writeArtifact(*outFilePathPtr, table)
	}

	if *latexFilePathPtr != "" {
		latex, err := export.LaTeX(registry, decoded)
		if err != nil {
			log.Fatalf("cannot render LaTeX table: %v", err)
		}
		writeArtifact(*latexFilePathPtr, latex)
	}
}

func writeArtifact(path, content string) {
	if path == "" {
		return
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatalf("cannot write %v: %v", path, err)
	}
}

func formatAssignment(assignment mip.Assignment) string {
	names := make([]string, 0, len(assignment))
	for name := range assignment {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		fmt.Fprintf(&builder, "%s %v\n", name, assignment.Value(name))
	}
	return builder.String()
}
