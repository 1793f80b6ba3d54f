package scaffold

const goTemplate = `package main

import "github.com/kingrea/pddlkit/pddl"

// {{.Name}}Domain declares the types, predicates and actions.
func {{.Name}}Domain() (*pddl.Domain, error) {
	d := pddl.NewDomain("{{.Name}}Domain")

	types := map[string]*pddl.Type{}
	for _, name := range []string{ {{- range $i, $t := .Types}}{{if $i}}, {{end}}"{{$t}}"{{end -}} } {
		t, err := d.DeclareType(name, nil)
		if err != nil {
			return nil, err
		}
		types[name] = t
	}
{{range .Predicates}}
	// TODO: add typed parameters, e.g. pddl.Param{Name: "x", Type: types["..."]}.
	if _, err := d.DeclarePredicate("{{.}}"); err != nil {
		return nil, err
	}
{{end}}{{range .Actions}}
	// TODO: fill in parameters, precondition and effect, then drop {{.}}_done.
	{{.}}Done, err := d.DeclarePredicate("{{.}}_done")
	if err != nil {
		return nil, err
	}
	if _, err := d.DeclareAction("{{.}}", nil, func(a pddl.Args) ([]pddl.Atom, []pddl.Atom) {
		return []pddl.Atom{}, []pddl.Atom{ {{- .}}Done.Of()}
	}); err != nil {
		return nil, err
	}
{{end}}
	return d, nil
}

// {{.Name}}Problem declares objects, the initial state and the goal.
func {{.Name}}Problem() (*pddl.Problem, error) {
	d, err := {{.Name}}Domain()
	if err != nil {
		return nil, err
	}
	p := pddl.NewProblem("{{.Name}}Problem", d)

	// TODO: declare objects, e.g. p.Objects(t, pddl.Seq(1, 3)).

	p.SetInit(func(opts pddl.Options) ([]pddl.Atom, error) {
		// TODO: return the initial state.
		return []pddl.Atom{}, nil
	})
	p.SetGoal(func(opts pddl.Options) ([]pddl.Atom, error) {
		// TODO: return the goal.
		return []pddl.Atom{}, nil
	})
	return p, nil
}
`

const yamlTemplate = `domain:
  name: {{.Name}}Domain
  identifiers: hyphenated
  types:
{{- range .Types}}
    - name: {{.}}
{{- else}} []{{end}}
  predicates:
{{- range .Predicates}}
    - name: {{.}}
      params: []  # fill in [{name: x, type: T}]
{{- end}}
{{- range .Actions}}
    - name: {{.}}_done  # placeholder effect of {{.}}, remove once it has real ones
{{- end}}
{{- if not (or .Predicates .Actions)}} []{{end}}
  actions:
{{- range .Actions}}
    - name: {{.}}
      params: []  # fill in
      precondition: []  # e.g. ["at x y"]
      effect: ["{{.}}_done"]  # e.g. ["not at x y", "at x z"]
{{- else}} []{{end}}
problem:
  name: {{.Name}}Problem
  objects: []  # e.g. [{type: T, count: 3}]
  init: []
  goal: []
`
