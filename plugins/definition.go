package plugins

import (
	"fmt"
	"strings"

	"github.com/kingrea/pddlkit/pddl"
	"gopkg.in/yaml.v3"
)

// DescriptionDefinition describes a domain and one of its problems in YAML.
//
// The struct mirrors the on-disk schema of *.yaml description files and is
// kept narrow so it can be validated before anything is compiled.
type DescriptionDefinition struct {
	Domain  DomainDefinition  `json:"domain" yaml:"domain"`
	Problem ProblemDefinition `json:"problem" yaml:"problem"`
}

// DomainDefinition lists types, predicates and actions in declaration order.
type DomainDefinition struct {
	Name        string                `json:"name" yaml:"name"`
	Identifiers string                `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
	Types       []TypeDefinition      `json:"types,omitempty" yaml:"types,omitempty"`
	Predicates  []PredicateDefinition `json:"predicates,omitempty" yaml:"predicates,omitempty"`
	Actions     []ActionDefinition    `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// TypeDefinition names a type and, optionally, a previously declared parent.
type TypeDefinition struct {
	Name   string `json:"name" yaml:"name"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// ParamDefinition is one typed formal parameter.
type ParamDefinition struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// PredicateDefinition declares a predicate.
type PredicateDefinition struct {
	Name   string            `json:"name" yaml:"name"`
	Params []ParamDefinition `json:"params,omitempty" yaml:"params,omitempty"`
}

// ActionDefinition declares an action. Fact arguments name action parameters.
type ActionDefinition struct {
	Name         string            `json:"name" yaml:"name"`
	Params       []ParamDefinition `json:"params,omitempty" yaml:"params,omitempty"`
	Precondition []FactDefinition  `json:"precondition,omitempty" yaml:"precondition,omitempty"`
	Effect       []FactDefinition  `json:"effect" yaml:"effect"`
}

// ProblemDefinition declares objects plus init and goal facts. Fact arguments
// name object labels.
type ProblemDefinition struct {
	Name    string              `json:"name" yaml:"name"`
	Objects []ObjectsDefinition `json:"objects,omitempty" yaml:"objects,omitempty"`
	Init    []FactDefinition    `json:"init,omitempty" yaml:"init,omitempty"`
	Goal    []FactDefinition    `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// ObjectsDefinition builds one object set. Count is shorthand for ids 1..Count.
// A nil Prefix keeps the default of the lower-cased type name.
type ObjectsDefinition struct {
	Type   string   `json:"type" yaml:"type"`
	IDs    []string `json:"ids,omitempty" yaml:"ids,omitempty"`
	Count  int      `json:"count,omitempty" yaml:"count,omitempty"`
	Prefix *string  `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// FactDefinition is a possibly negated predicate application. In YAML it is
// either a mapping or a string such as "not plane_at p orig".
type FactDefinition struct {
	Predicate string   `json:"predicate" yaml:"predicate"`
	Args      []string `json:"args,omitempty" yaml:"args,omitempty"`
	Not       bool     `json:"not,omitempty" yaml:"not,omitempty"`
}

// UnmarshalYAML accepts the string and mapping forms of a fact.
func (f *FactDefinition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseFact(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*f = parsed
		return nil
	}
	type rawFact FactDefinition
	var raw rawFact
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*f = FactDefinition(raw)
	return nil
}

// ParseFact reads "[not ]predicate arg..." with optional surrounding parens, so
// "(not (at p a))" and "not at p a" are equivalent.
func ParseFact(text string) (FactDefinition, error) {
	cleaned := strings.NewReplacer("(", " ", ")", " ").Replace(text)
	fields := strings.Fields(cleaned)
	var fact FactDefinition
	if len(fields) > 0 && fields[0] == "not" {
		fact.Not = true
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return FactDefinition{}, fmt.Errorf("fact %q has no predicate", text)
	}
	fact.Predicate = fields[0]
	if len(fields) > 1 {
		fact.Args = fields[1:]
	}
	return fact, nil
}

func (f FactDefinition) String() string {
	parts := append([]string{f.Predicate}, f.Args...)
	if f.Not {
		return "not " + strings.Join(parts, " ")
	}
	return strings.Join(parts, " ")
}

// Normalized returns a trimmed copy of the definition.
func (def DescriptionDefinition) Normalized() DescriptionDefinition {
	return DescriptionDefinition{
		Domain:  def.Domain.normalized(),
		Problem: def.Problem.normalized(),
	}
}

func (def DomainDefinition) normalized() DomainDefinition {
	clone := DomainDefinition{
		Name:        strings.TrimSpace(def.Name),
		Identifiers: strings.TrimSpace(def.Identifiers),
	}
	if len(def.Types) > 0 {
		clone.Types = make([]TypeDefinition, len(def.Types))
		for i, t := range def.Types {
			clone.Types[i] = TypeDefinition{Name: strings.TrimSpace(t.Name), Parent: strings.TrimSpace(t.Parent)}
		}
	}
	if len(def.Predicates) > 0 {
		clone.Predicates = make([]PredicateDefinition, len(def.Predicates))
		for i, p := range def.Predicates {
			clone.Predicates[i] = PredicateDefinition{Name: strings.TrimSpace(p.Name), Params: normalizeParams(p.Params)}
		}
	}
	if len(def.Actions) > 0 {
		clone.Actions = make([]ActionDefinition, len(def.Actions))
		for i, a := range def.Actions {
			clone.Actions[i] = ActionDefinition{
				Name:         strings.TrimSpace(a.Name),
				Params:       normalizeParams(a.Params),
				Precondition: normalizeFacts(a.Precondition),
				Effect:       normalizeFacts(a.Effect),
			}
		}
	}
	return clone
}

func (def ProblemDefinition) normalized() ProblemDefinition {
	clone := ProblemDefinition{
		Name: strings.TrimSpace(def.Name),
		Init: normalizeFacts(def.Init),
		Goal: normalizeFacts(def.Goal),
	}
	if len(def.Objects) > 0 {
		clone.Objects = make([]ObjectsDefinition, len(def.Objects))
		for i, o := range def.Objects {
			objects := ObjectsDefinition{Type: strings.TrimSpace(o.Type), Count: o.Count}
			for _, id := range o.IDs {
				if trimmed := strings.TrimSpace(id); trimmed != "" {
					objects.IDs = append(objects.IDs, trimmed)
				}
			}
			if o.Prefix != nil {
				prefix := strings.TrimSpace(*o.Prefix)
				objects.Prefix = &prefix
			}
			clone.Objects[i] = objects
		}
	}
	return clone
}

func normalizeParams(params []ParamDefinition) []ParamDefinition {
	if len(params) == 0 {
		return nil
	}
	out := make([]ParamDefinition, len(params))
	for i, p := range params {
		out[i] = ParamDefinition{Name: strings.TrimSpace(p.Name), Type: strings.TrimSpace(p.Type)}
	}
	return out
}

func normalizeFacts(facts []FactDefinition) []FactDefinition {
	if facts == nil {
		return nil
	}
	out := make([]FactDefinition, len(facts))
	for i, f := range facts {
		clone := FactDefinition{Predicate: strings.TrimSpace(f.Predicate), Not: f.Not}
		for _, arg := range f.Args {
			clone.Args = append(clone.Args, strings.TrimSpace(arg))
		}
		out[i] = clone
	}
	return out
}

// Validate reports the first structural problem in the definition. Type and
// name resolution happens in Build.
func (def DescriptionDefinition) Validate() error {
	normalized := def.Normalized()
	d := normalized.Domain
	if d.Name == "" {
		return fmt.Errorf("plugin: domain name is required")
	}
	if _, ok := pddl.ParseIdentifierStyle(d.Identifiers); !ok {
		return fmt.Errorf("plugin %s: unknown identifier style %q", d.Name, d.Identifiers)
	}
	for idx, t := range d.Types {
		if t.Name == "" {
			return fmt.Errorf("plugin %s: types[%d]: name is required", d.Name, idx)
		}
	}
	for idx, p := range d.Predicates {
		if p.Name == "" {
			return fmt.Errorf("plugin %s: predicates[%d]: name is required", d.Name, idx)
		}
		if err := validateParams(p.Params); err != nil {
			return fmt.Errorf("plugin %s: predicate %s: %w", d.Name, p.Name, err)
		}
	}
	for idx, a := range d.Actions {
		if a.Name == "" {
			return fmt.Errorf("plugin %s: actions[%d]: name is required", d.Name, idx)
		}
		if err := validateParams(a.Params); err != nil {
			return fmt.Errorf("plugin %s: action %s: %w", d.Name, a.Name, err)
		}
		if len(a.Effect) == 0 {
			return fmt.Errorf("plugin %s: action %s: at least one effect is required", d.Name, a.Name)
		}
		if err := validateFacts("precondition", a.Precondition); err != nil {
			return fmt.Errorf("plugin %s: action %s: %w", d.Name, a.Name, err)
		}
		if err := validateFacts("effect", a.Effect); err != nil {
			return fmt.Errorf("plugin %s: action %s: %w", d.Name, a.Name, err)
		}
	}
	p := normalized.Problem
	if p.Name == "" {
		return fmt.Errorf("plugin %s: problem name is required", d.Name)
	}
	for idx, o := range p.Objects {
		if o.Type == "" {
			return fmt.Errorf("plugin %s: objects[%d]: type is required", p.Name, idx)
		}
		if o.Count < 0 {
			return fmt.Errorf("plugin %s: objects[%d]: count must not be negative", p.Name, idx)
		}
		if len(o.IDs) > 0 && o.Count > 0 {
			return fmt.Errorf("plugin %s: objects[%d]: use either ids or count", p.Name, idx)
		}
	}
	if err := validateFacts("init", p.Init); err != nil {
		return fmt.Errorf("plugin %s: %w", p.Name, err)
	}
	if err := validateFacts("goal", p.Goal); err != nil {
		return fmt.Errorf("plugin %s: %w", p.Name, err)
	}
	return nil
}

func validateParams(params []ParamDefinition) error {
	for idx, p := range params {
		if p.Name == "" {
			return fmt.Errorf("params[%d]: name is required", idx)
		}
		if p.Type == "" {
			return fmt.Errorf("params[%d]: type is required", idx)
		}
	}
	return nil
}

func validateFacts(label string, facts []FactDefinition) error {
	for idx, f := range facts {
		if f.Predicate == "" {
			return fmt.Errorf("%s[%d]: predicate is required", label, idx)
		}
		for argIdx, arg := range f.Args {
			if arg == "" {
				return fmt.Errorf("%s[%d]: args[%d] is empty", label, idx, argIdx)
			}
		}
	}
	return nil
}
