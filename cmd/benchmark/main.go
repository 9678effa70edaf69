package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/LucasGrasso/invop-football-scheduler/internal/schedule"
)

const outputPath = "benchmark.csv"

var teamCounts = []int{4, 6, 8, 10, 12, 16, 20}

type BenchmarkResult struct {
	Teams       int
	Scheme      schedule.SchemeVariant
	Variables   int
	Constraints int
	Duration    time.Duration
}

// Measures how model size and build time scale with the team count for every
// symmetric scheme. Solving is out of scope here: build time is what the
// core owns.
func main() {
	results := make([]BenchmarkResult, 0, len(teamCounts)*6)

	for _, teams := range teamCounts {
		for _, variant := range []schedule.SchemeVariant{
			schedule.Mirrored,
			schedule.French,
			schedule.English,
			schedule.Inverted,
			schedule.BackToBack,
			schedule.MinMax,
		} {
			fmt.Printf("Benchmarking %v teams with scheme \"%v\"\n", teams, variant)
			results = append(results, measure(teams, variant))
		}
	}

	toCsv(results)
}

func measure(teams int, variant schedule.SchemeVariant) BenchmarkResult {
	names := make([]string, teams)
	for i := 0; i < teams; i++ {
		names[i] = fmt.Sprintf("T%02d", i)
	}
	registry, err := schedule.NewRegistry(names)
	if err != nil {
		log.Fatalf("cannot build registry for %v teams: %v", teams, err)
	}
	scheme, err := schedule.NewScheme(variant, teams)
	if err != nil {
		log.Fatalf("cannot build scheme %v: %v", variant, err)
	}

	opts := schedule.Options{BreakBound: 1}
	if variant == schedule.MinMax {
		opts.C = teams / 2
		opts.D = 2 * (teams - 1)
	}

	start := time.Now()
	model, err := schedule.NewBuilder(registry, scheme, opts).Build()
	if err != nil {
		log.Fatalf("an error occurred during model construction: %v", err)
	}
	duration := time.Since(start)

	return BenchmarkResult{
		Teams:       teams,
		Scheme:      variant,
		Variables:   len(model.Vars()),
		Constraints: len(model.Constraints),
		Duration:    duration,
	}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"teams", "scheme", "variables", "constraints", "duration_us"}); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}
	for _, result := range results {
		record := []string{
			fmt.Sprint(result.Teams),
			result.Scheme.String(),
			fmt.Sprint(result.Variables),
			fmt.Sprint(result.Constraints),
			fmt.Sprint(result.Duration.Microseconds()),
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("cannot write csv record: %v", err)
		}
	}
}
