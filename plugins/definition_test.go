package plugins

import (
	"errors"
	"strings"
	"testing"

	"github.com/kingrea/pddlkit/pddl"
	"gopkg.in/yaml.v3"
)

func TestParseFact(t *testing.T) {
	tests := []struct {
		in   string
		want FactDefinition
	}{
		{"at p1 sfo", FactDefinition{Predicate: "at", Args: []string{"p1", "sfo"}}},
		{"not at p1 sfo", FactDefinition{Predicate: "at", Args: []string{"p1", "sfo"}, Not: true}},
		{"(not (at p1 sfo))", FactDefinition{Predicate: "at", Args: []string{"p1", "sfo"}, Not: true}},
		{"handempty", FactDefinition{Predicate: "handempty"}},
	}
	for _, tc := range tests {
		got, err := ParseFact(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got.String() != tc.want.String() || got.Not != tc.want.Not {
			t.Fatalf("parse %q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFact("not"); err == nil {
		t.Fatalf("expected a fact without predicate to fail")
	}
}

func TestFactDefinitionUnmarshalYAML(t *testing.T) {
	var facts []FactDefinition
	payload := "- not at p1 sfo\n- {predicate: at, args: [p1, jfk]}\n"
	if err := yaml.Unmarshal([]byte(payload), &facts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if !facts[0].Not || facts[0].Predicate != "at" || len(facts[0].Args) != 2 {
		t.Fatalf("unexpected string fact: %+v", facts[0])
	}
	if facts[1].Not || facts[1].Args[1] != "jfk" {
		t.Fatalf("unexpected mapping fact: %+v", facts[1])
	}
}

func validDefinition() DescriptionDefinition {
	return DescriptionDefinition{
		Domain: DomainDefinition{
			Name:  " LightDomain ",
			Types: []TypeDefinition{{Name: "Lamp"}},
			Predicates: []PredicateDefinition{
				{Name: "on", Params: []ParamDefinition{{Name: "l", Type: "Lamp"}}},
			},
			Actions: []ActionDefinition{{
				Name:   "switch_on",
				Params: []ParamDefinition{{Name: "l", Type: "Lamp"}},
				Effect: []FactDefinition{{Predicate: "on", Args: []string{"l"}}},
			}},
		},
		Problem: ProblemDefinition{
			Name:    "LightProblem",
			Objects: []ObjectsDefinition{{Type: "Lamp", Count: 2}},
			Goal:    []FactDefinition{{Predicate: "on", Args: []string{"lamp2"}}},
		},
	}
}

func TestDescriptionDefinitionValidate(t *testing.T) {
	def := validDefinition()
	if err := def.Validate(); err != nil {
		t.Fatalf("expected definition to validate, got %v", err)
	}
	if got := def.Normalized().Domain.Name; got != "LightDomain" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestDescriptionDefinitionValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DescriptionDefinition)
		msg    string
	}{
		{"missing domain name", func(d *DescriptionDefinition) { d.Domain.Name = "" }, "domain name is required"},
		{"bad identifiers", func(d *DescriptionDefinition) { d.Domain.Identifiers = "camel" }, "unknown identifier style"},
		{"untyped param", func(d *DescriptionDefinition) { d.Domain.Predicates[0].Params[0].Type = "" }, "type is required"},
		{"no effect", func(d *DescriptionDefinition) { d.Domain.Actions[0].Effect = nil }, "at least one effect"},
		{"missing problem", func(d *DescriptionDefinition) { d.Problem.Name = "" }, "problem name is required"},
		{"ids and count", func(d *DescriptionDefinition) { d.Problem.Objects[0].IDs = []string{"a"} }, "either ids or count"},
		{"empty goal predicate", func(d *DescriptionDefinition) { d.Problem.Goal[0].Predicate = " " }, "goal[0]: predicate is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(&def)
			if err := def.Validate(); err == nil || !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected error containing %q, got %v", tc.msg, err)
			}
		})
	}
}

func TestDescriptionDefinitionBuild(t *testing.T) {
	problem, err := validDefinition().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	doc, err := problem.Document(nil, nil)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	for _, want := range []string{"(define (problem light)", "lamp1 lamp2 - lamp", "(:init)", "(:goal (on lamp2))"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in:\n%s", want, doc)
		}
	}
	domainDoc, err := problem.Domain().Document()
	if err != nil {
		t.Fatalf("domain document: %v", err)
	}
	if !strings.Contains(domainDoc, "(:action switch-on\n") || !strings.Contains(domainDoc, ":precondition (and)") {
		t.Fatalf("unexpected domain document:\n%s", domainDoc)
	}
}

func TestDescriptionDefinitionBuildFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DescriptionDefinition)
		target error
	}{
		{"unknown parent", func(d *DescriptionDefinition) { d.Domain.Types[0].Parent = "Device" }, pddl.ErrUndeclaredType},
		{"unknown param type", func(d *DescriptionDefinition) { d.Domain.Predicates[0].Params[0].Type = "Switch" }, pddl.ErrUndeclaredType},
		{"unknown predicate", func(d *DescriptionDefinition) { d.Domain.Actions[0].Effect[0].Predicate = "off" }, pddl.ErrKeyLookup},
		{"unknown action argument", func(d *DescriptionDefinition) { d.Domain.Actions[0].Effect[0].Args = []string{"x"} }, pddl.ErrKeyLookup},
		{"unknown object", func(d *DescriptionDefinition) { d.Problem.Goal[0].Args = []string{"lamp9"} }, pddl.ErrKeyLookup},
		{"wrong arity", func(d *DescriptionDefinition) { d.Domain.Actions[0].Effect[0].Args = []string{"l", "l"} }, pddl.ErrTypeMismatch},
		{"type name with space", func(d *DescriptionDefinition) { d.Domain.Types[0].Name = "Desk Lamp" }, pddl.ErrConfiguration},
		{"object label with paren", func(d *DescriptionDefinition) {
			d.Problem.Objects[0].Count = 0
			d.Problem.Objects[0].IDs = []string{"(1"}
		}, pddl.ErrConfiguration},
		{"duplicate type", func(d *DescriptionDefinition) {
			d.Domain.Types = append(d.Domain.Types, TypeDefinition{Name: "lamp"})
		}, pddl.ErrDuplicateDeclaration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(&def)
			if _, err := def.Build(); !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}
