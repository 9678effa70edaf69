package schedule

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Input is the external configuration of a scheduling run: the ordered team
// list plus the tournament policy knobs.
type Input struct {
	Teams       []string
	TopTeams    []string `mapstructure:"topTeams"`
	MinSpacing  int      `mapstructure:"minSpacing"`
	BreakBound  int      `mapstructure:"breakBound"`
	Feasibility bool
	C           int
	D           int
}

// Options translates the input into builder options. An absent or
// non-positive breakBound disables the hard cap and leaves breaks to the
// objective.
func (input Input) Options() Options {
	return Options{
		TopTeams:    input.TopTeams,
		MinSpacing:  input.MinSpacing,
		BreakBound:  input.BreakBound,
		Feasibility: input.Feasibility,
		C:           input.C,
		D:           input.D,
	}
}

func InputFromJSON(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}
	var inputJSON map[string]any
	if err := json.Unmarshal(bytes, &inputJSON); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJSON, &input); err != nil {
		return Input{}, err
	}
	return input, nil
}
