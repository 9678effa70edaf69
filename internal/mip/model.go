package mip

type Sense int

const (
	Equal Sense = iota
	LessOrEqual
	GreaterOrEqual
)

// Term is a single coefficient*variable product inside a linear expression.
type Term struct {
	Var   string
	Coeff int64
}

// Constraint is a linear constraint over binary variables: sum(Terms) Sense RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   int64
}

// Model is a solver-agnostic integer program over named binary variables.
// Builders populate it and hand it to a Solver; it carries no solver state.
type Model struct {
	Name        string
	Constraints []Constraint

	vars     []string
	varSet   map[string]bool
	minimize []Term
}

func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		varSet: map[string]bool{},
	}
}

// AddBinaryVar registers a binary variable under the given name. Registering
// the same name twice is a no-op, so builders may declare variables lazily.
func (m *Model) AddBinaryVar(name string) string {
	if !m.varSet[name] {
		m.varSet[name] = true
		m.vars = append(m.vars, name)
	}
	return name
}

// Vars returns the variable names in registration order.
func (m *Model) Vars() []string {
	vars := make([]string, len(m.vars))
	copy(vars, m.vars)
	return vars
}

func (m *Model) AddConstraint(name string, terms []Term, sense Sense, rhs int64) {
	m.Constraints = append(m.Constraints, Constraint{
		Name:  name,
		Terms: terms,
		Sense: sense,
		RHS:   rhs,
	})
}

// AddEquality binds two variables to the same value: a - b == 0.
func (m *Model) AddEquality(name, a, b string) {
	m.AddConstraint(name, []Term{{Var: a, Coeff: 1}, {Var: b, Coeff: -1}}, Equal, 0)
}

// Minimize sets the objective. An empty term list leaves the model as a pure
// feasibility problem.
func (m *Model) Minimize(terms []Term) {
	m.minimize = terms
}

func (m *Model) Objective() []Term {
	return m.minimize
}
