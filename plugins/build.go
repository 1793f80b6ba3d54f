package plugins

import (
	"fmt"

	"github.com/kingrea/pddlkit/pddl"
)

// compiledFact is a fact whose predicate and argument positions were resolved
// once, at build time.
type compiledFact struct {
	source    FactDefinition
	predicate *pddl.Predicate
	indices   []int
}

func (f compiledFact) atom(values []pddl.Value) pddl.Atom {
	args := make([]pddl.Value, len(f.indices))
	for i, idx := range f.indices {
		args[i] = values[idx]
	}
	atom := f.predicate.Of(args...)
	if f.source.Not {
		return pddl.Negate(atom)
	}
	return atom
}

// Build validates the definition and compiles it into a problem and its domain.
// opts are applied after the identifier style named in the file.
func (def DescriptionDefinition) Build(opts ...pddl.Option) (*pddl.Problem, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	normalized := def.Normalized()
	style, _ := pddl.ParseIdentifierStyle(normalized.Domain.Identifiers)
	options := append([]pddl.Option{pddl.WithIdentifierStyle(style)}, opts...)

	d, err := buildDomain(normalized.Domain, options)
	if err != nil {
		return nil, err
	}
	p, err := buildProblem(normalized.Problem, d, options)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func buildDomain(def DomainDefinition, options []pddl.Option) (*pddl.Domain, error) {
	d := pddl.NewDomain(def.Name, options...)
	for _, t := range def.Types {
		var parent *pddl.Type
		if t.Parent != "" {
			found, ok := d.Type(t.Parent)
			if !ok {
				return nil, fmt.Errorf("plugin %s: type %s: %w: parent %s must be declared first", def.Name, t.Name, pddl.ErrUndeclaredType, t.Parent)
			}
			parent = found
		}
		if _, err := d.DeclareType(t.Name, parent); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", def.Name, err)
		}
	}
	for _, p := range def.Predicates {
		params, err := resolveParams(d, p.Params)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: predicate %s: %w", def.Name, p.Name, err)
		}
		if _, err := d.DeclarePredicate(p.Name, params...); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", def.Name, err)
		}
	}
	for _, a := range def.Actions {
		if err := declareAction(d, a); err != nil {
			return nil, fmt.Errorf("plugin %s: action %s: %w", def.Name, a.Name, err)
		}
	}
	return d, nil
}

func resolveParams(d *pddl.Domain, defs []ParamDefinition) ([]pddl.Param, error) {
	params := make([]pddl.Param, len(defs))
	for i, p := range defs {
		t, ok := d.Type(p.Type)
		if !ok {
			return nil, fmt.Errorf("%w: parameter %s has type %s", pddl.ErrUndeclaredType, p.Name, p.Type)
		}
		params[i] = pddl.Param{Name: p.Name, Type: t}
	}
	return params, nil
}

func declareAction(d *pddl.Domain, def ActionDefinition) error {
	params, err := resolveParams(d, def.Params)
	if err != nil {
		return err
	}
	positions := make(map[string]int, len(params))
	for i, p := range def.Params {
		positions[p.Name] = i
	}
	pre, err := compileFacts(d, "precondition", def.Precondition, positions)
	if err != nil {
		return err
	}
	eff, err := compileFacts(d, "effect", def.Effect, positions)
	if err != nil {
		return err
	}
	_, err = d.DeclareAction(def.Name, params, func(args pddl.Args) ([]pddl.Atom, []pddl.Atom) {
		return atoms(pre, args), atoms(eff, args)
	})
	return err
}

func compileFacts(d *pddl.Domain, label string, facts []FactDefinition, positions map[string]int) ([]compiledFact, error) {
	out := make([]compiledFact, 0, len(facts))
	for idx, f := range facts {
		pred, ok := d.Predicate(f.Predicate)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: %w", label, idx, &pddl.KeyLookupError{Alias: f.Predicate, TypeTag: "predicates"})
		}
		indices := make([]int, len(f.Args))
		for i, arg := range f.Args {
			pos, ok := positions[arg]
			if !ok {
				return nil, fmt.Errorf("%s[%d]: %w", label, idx, &pddl.KeyLookupError{Alias: arg, TypeTag: label})
			}
			indices[i] = pos
		}
		out = append(out, compiledFact{source: f, predicate: pred, indices: indices})
	}
	return out, nil
}

func atoms(facts []compiledFact, values []pddl.Value) []pddl.Atom {
	out := make([]pddl.Atom, len(facts))
	for i, f := range facts {
		out[i] = f.atom(values)
	}
	return out
}

func buildProblem(def ProblemDefinition, d *pddl.Domain, options []pddl.Option) (*pddl.Problem, error) {
	p := pddl.NewProblem(def.Name, d, options...)
	for idx, o := range def.Objects {
		t, ok := d.Type(o.Type)
		if !ok {
			return nil, fmt.Errorf("plugin %s: objects[%d]: %w: %s", def.Name, idx, pddl.ErrUndeclaredType, o.Type)
		}
		ids := o.IDs
		if o.Count > 0 {
			ids = pddl.Seq(1, o.Count)
		}
		var objectOpts []pddl.ObjectOption
		if o.Prefix != nil {
			objectOpts = append(objectOpts, pddl.WithPrefix(*o.Prefix))
		}
		if _, err := p.Objects(t, ids, objectOpts...); err != nil {
			return nil, fmt.Errorf("plugin %s: objects[%d]: %w", def.Name, idx, err)
		}
	}

	// Init and goal arguments are object labels, resolved against every
	// registered object in order of appearance.
	var labels []pddl.Value
	positions := map[string]int{}
	for _, set := range p.ObjectSets() {
		for _, v := range set.Values() {
			positions[v.Label()] = len(labels)
			labels = append(labels, v)
		}
	}
	initFacts, err := compileFacts(d, "init", def.Init, positions)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", def.Name, err)
	}
	goalFacts, err := compileFacts(d, "goal", def.Goal, positions)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", def.Name, err)
	}
	p.SetInit(func(pddl.Options) ([]pddl.Atom, error) {
		return atoms(initFacts, labels), nil
	})
	p.SetGoal(func(pddl.Options) ([]pddl.Atom, error) {
		return atoms(goalFacts, labels), nil
	})
	return p, nil
}
