package pddl

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Args holds one value per declared action parameter, in declaration order.
type Args []Value

// ActionBody maps an action's arguments to its precondition and effect atoms.
// It is called with placeholders when the action is declared and with real
// objects by Ground, so it must not branch on which object it was given.
type ActionBody func(args Args) (precondition, effect []Atom)

// Action is a declared operator with its harvested precondition and effect.
type Action struct {
	name         string
	params       []Param
	body         ActionBody
	precondition []Atom
	effect       []Atom
	domain       *Domain
}

// DeclareAction registers an action and harvests its static shape by invoking
// body once with placeholders named after params.
func (d *Domain) DeclareAction(name string, params []Param, body ActionBody) (*Action, error) {
	trimmed := strings.TrimSpace(name)
	if err := checkIdentifier("action", trimmed); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: action %s has no body", ErrConfiguration, trimmed)
	}
	checked, err := d.checkParams("action", trimmed, params)
	if err != nil {
		return nil, err
	}
	key := d.style.emit(trimmed)
	if _, exists := d.actionIndex[key]; exists {
		return nil, fmt.Errorf("%w: action %s", ErrDuplicateDeclaration, trimmed)
	}
	a := &Action{name: trimmed, params: checked, body: body, domain: d}
	placeholders := make(Args, len(checked))
	for i, param := range checked {
		placeholders[i] = placeholder(param.Type, param.Name)
	}
	pre, eff, err := a.invoke(placeholders)
	if err != nil {
		return nil, err
	}
	a.precondition, a.effect = pre, eff
	d.actions = append(d.actions, a)
	d.actionIndex[key] = a
	d.logger.Debug("action declared",
		zap.String("action", trimmed),
		zap.Int("parameters", len(checked)),
		zap.Int("precondition", len(pre)),
		zap.Int("effect", len(eff)),
	)
	return a, nil
}

func (a *Action) invoke(args Args) ([]Atom, []Atom, error) {
	pre, eff := a.body(args)
	if err := checkAtoms(pre, a.domain); err != nil {
		return nil, nil, fmt.Errorf("action %s precondition: %w", a.name, err)
	}
	if err := checkAtoms(eff, a.domain); err != nil {
		return nil, nil, fmt.Errorf("action %s effect: %w", a.name, err)
	}
	if len(eff) == 0 {
		return nil, nil, fmt.Errorf("%w: action %s must return at least one effect", ErrReturnType, a.name)
	}
	return pre, eff, nil
}

// Name returns the action name as declared.
func (a *Action) Name() string { return a.name }

// Params returns a copy of the formal parameters.
func (a *Action) Params() []Param {
	out := make([]Param, len(a.params))
	copy(out, a.params)
	return out
}

// Precondition returns the harvested precondition atoms.
func (a *Action) Precondition() []Atom {
	out := make([]Atom, len(a.precondition))
	copy(out, a.precondition)
	return out
}

// Effect returns the harvested effect atoms.
func (a *Action) Effect() []Atom {
	out := make([]Atom, len(a.effect))
	copy(out, a.effect)
	return out
}

// Block renders the action at column zero:
//
//	(:action fly
//	    :parameters (?p - plane ?orig - airport ?dest - airport)
//	    :precondition (at ?p ?orig)
//	    :effect (and (not (at ?p ?orig)) (at ?p ?dest))
//	)
func (a *Action) Block() string {
	style := a.domain.style
	params := make([]string, len(a.params))
	for i, param := range a.params {
		params[i] = "?" + style.emit(param.Name) + " - " + param.Type.Tag()
	}
	lines := []string{
		"(:action " + style.emit(a.name),
		indent + ":parameters (" + strings.Join(params, " ") + ")",
		indent + ":precondition " + conjunction(references(a.precondition)),
		indent + ":effect " + conjunction(references(a.effect)),
		")",
	}
	return strings.Join(lines, "\n")
}

// GroundAction is an action instantiated with concrete objects.
type GroundAction struct {
	Action       *Action
	Args         Args
	Precondition []Atom
	Effect       []Atom
}

// String renders the step as `(name arg...)`.
func (g GroundAction) String() string {
	style := g.Action.domain.style
	parts := []string{style.emit(g.Action.name)}
	for _, arg := range g.Args {
		parts = append(parts, style.emit(arg.label))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Ground validates args against the declared parameter types and instantiates
// the body with them. Unbound arguments keep their parameter placeholder.
func (a *Action) Ground(args ...Value) (GroundAction, error) {
	if len(args) != len(a.params) {
		return GroundAction{}, &TypeMismatchError{
			Kind:     "action",
			Name:     a.name,
			Position: -1,
			Expected: fmt.Sprintf("%d arguments", len(a.params)),
			Actual:   strconv.Itoa(len(args)),
		}
	}
	bound := make(Args, len(args))
	for i, arg := range args {
		param := a.params[i]
		switch {
		case arg.err != nil:
			return GroundAction{}, fmt.Errorf("action %s: %w", a.name, arg.err)
		case arg.IsUnbound():
			bound[i] = placeholder(param.Type, param.Name)
		case !arg.CompatibleWith(param.Type):
			return GroundAction{}, &TypeMismatchError{
				Kind:     "action",
				Name:     a.name,
				Position: i,
				Expected: param.Type.Name(),
				Actual:   arg.typeName(),
			}
		default:
			bound[i] = arg
		}
	}
	pre, eff, err := a.invoke(bound)
	if err != nil {
		return GroundAction{}, err
	}
	return GroundAction{Action: a, Args: bound, Precondition: pre, Effect: eff}, nil
}
